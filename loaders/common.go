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

// Package loaders implements the entity loaders (C3, §4.3): one loader
// per entity kind, each consuming the sections recovered by mdparse and
// producing a typed model entity.
package loaders

import (
	"fmt"

	"github.com/spdx/spec-compiler/diag"
	"github.com/spdx/spec-compiler/mdparse"
	"github.com/spdx/spec-compiler/model"
)

// common is the set of standard text fields every entity kind shares,
// plus its parsed metadata map.
type common struct {
	summary     string
	description string
	metadata    *model.OrderedMap[string]
}

// loadCommon populates Summary, Description, and Metadata, reporting a
// StructuralError for each missing required section. Missing Summary or
// Description is recoverable (the field is left empty); missing Metadata
// aborts the entity, since every loader needs it to validate the name.
func loadCommon(f *mdparse.File) (common, diag.List, bool) {
	var errs diag.List
	var c common

	if sec, ok := f.Sections["Summary"]; ok {
		c.summary = mdparse.ParseContent(sec)
	} else {
		errs.Addf(f.NamePos, diag.Structural, "missing required section 'Summary'")
	}

	if sec, ok := f.Sections["Description"]; ok {
		c.description = mdparse.ParseContent(sec)
	} else {
		errs.Addf(f.NamePos, diag.Structural, "missing required section 'Description'")
	}

	sec, ok := f.Sections["Metadata"]
	if !ok {
		errs.Addf(f.NamePos, diag.Structural, "missing required section 'Metadata'")
		return c, errs, false
	}
	meta, mErrs := mdparse.ParseSingleList(f.Filename, sec)
	errs.Extend(mErrs)
	c.metadata = meta
	return c, errs, true
}

// checkMetadataKeys reports a SchemaError for every metadata key outside
// allowed, and for every key in required that is missing.
func checkMetadataKeys(f *mdparse.File, meta *model.OrderedMap[string], allowed, required []string) diag.List {
	var errs diag.List
	allowedSet := make(map[string]bool, len(allowed))
	for _, k := range allowed {
		allowedSet[k] = true
	}
	for _, k := range meta.Keys() {
		if !allowedSet[k] {
			errs.Addf(f.NamePos, diag.Schema, "unknown metadata key %q", k)
		}
	}
	for _, k := range required {
		if !meta.Has(k) {
			errs.Addf(f.NamePos, diag.Schema, "missing required metadata key %q", k)
		}
	}
	return errs
}

// checkNameAgreement reports a SchemaError unless metadata["name"] equals
// the file's "# Name" header (§3 invariant 1).
func checkNameAgreement(f *mdparse.File, meta *model.OrderedMap[string]) diag.List {
	var errs diag.List
	name, ok := meta.Get("name")
	if ok && name != f.Name {
		errs.Addf(f.NamePos, diag.Schema,
			"metadata name %q does not agree with header name %q", name, f.Name)
	}
	return errs
}

func synthIRI(nsIRI, name string) string {
	return fmt.Sprintf("%s/%s", nsIRI, name)
}
