// Copyright 2025 The SPDX Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging wires the diagnostic sink (§7) to a structured
// logger: every diag.Error, whether error or warning severity, is
// rendered as one log line with its phase, position, and kind as
// fields.
package logging

import (
	"io"

	charmlog "charm.land/log/v2"

	"github.com/spdx/spec-compiler/diag"
)

// New returns a logger writing to w at the given level ("debug", "info",
// "warn", "error"), matching what the root command's --log-level flag
// accepts.
func New(w io.Writer, level string) *charmlog.Logger {
	l := charmlog.New(w)
	l.SetReportTimestamp(false)
	switch level {
	case "debug":
		l.SetLevel(charmlog.DebugLevel)
	case "warn":
		l.SetLevel(charmlog.WarnLevel)
	case "error":
		l.SetLevel(charmlog.ErrorLevel)
	default:
		l.SetLevel(charmlog.InfoLevel)
	}
	return l
}

// Report logs every diagnostic in list under phase, warnings at warn
// level and errors at error level, so a driver can call this after each
// phase without inspecting severities itself.
func Report(l *charmlog.Logger, phase string, list diag.List) {
	for _, e := range list {
		fields := []any{"phase", phase, "kind", e.Kind.String()}
		if e.Pos.IsValid() {
			fields = append(fields, "pos", e.Pos.String())
		}
		if e.Severity == diag.SeverityWarning {
			l.Warn(e.Error(), fields...)
		} else {
			l.Error(e.Error(), fields...)
		}
	}
}
