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

package rdf

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spdx/spec-compiler/diag"
	"github.com/spdx/spec-compiler/model"
)

// SerializeDOT renders the class inheritance hierarchy of m as a
// Graphviz "digraph" (the "spdx-model.dot" artifact of §6's emitted
// layout). No Graphviz binding exists anywhere in the retrieved corpus,
// so this writer produces the dot language directly as text.
func SerializeDOT(m *model.Model) string {
	var b strings.Builder
	b.WriteString("digraph spdx_model {\n")
	b.WriteString("  rankdir=BT;\n  node [shape=box, fontname=\"Helvetica\"];\n\n")

	for _, fqn := range m.Classes.Keys() {
		c, _ := m.Classes.Get(fqn)
		style := "solid"
		if c.Instantiability == model.Abstract {
			style = "dashed"
		}
		b.WriteString("  \"" + fqn + "\" [label=\"" + c.Name + "\", style=" + style + "];\n")
	}
	b.WriteString("\n")
	for _, fqn := range m.Classes.Keys() {
		c, _ := m.Classes.Get(fqn)
		if c.FQSuperCName == "" {
			continue
		}
		b.WriteString("  \"" + fqn + "\" -> \"" + c.FQSuperCName + "\";\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// WriteDOT writes the DOT class-hierarchy diagram to "spdx-model.dot"
// under dir.
func WriteDOT(m *model.Model, dir string) diag.List {
	var errs diag.List
	path := filepath.Join(dir, "spdx-model.dot")
	if err := os.WriteFile(path, []byte(SerializeDOT(m)), 0o644); err != nil {
		errs.Addf(diag.Position{Filename: path}, diag.IO, "writing %s: %v", path, err)
	}
	return errs
}
