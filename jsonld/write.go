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

package jsonld

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spdx/spec-compiler/diag"
	"github.com/spdx/spec-compiler/model"
)

// Write renders ctx as "spdx-context.jsonld" under dir, wrapped in the
// standard single-key "@context" envelope (§6 emitted artifact layout).
func Write(ctx *Context, dir string) diag.List {
	var errs diag.List

	doc := model.NewOrderedMap[any]()
	doc.Set("@context", ctx.Terms)

	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		errs.Addf(diag.Position{Filename: dir}, diag.IO, "rendering JSON-LD context: %v", err)
		return errs
	}

	path := filepath.Join(dir, "spdx-context.jsonld")
	if err := os.WriteFile(path, append(body, '\n'), 0o644); err != nil {
		errs.Addf(diag.Position{Filename: path}, diag.IO, "writing %s: %v", path, err)
	}
	return errs
}
