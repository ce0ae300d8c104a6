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

// Package builder implements the model builder (C4, §4.4): filesystem
// traversal of the input tree, invocation of one loader per recognized
// file, and registration of the resulting entities into the namespace-
// scoped and global maps of the model.
package builder

import (
	"os"
	"path/filepath"
	"unicode"

	"github.com/spdx/spec-compiler/diag"
	"github.com/spdx/spec-compiler/loaders"
	"github.com/spdx/spec-compiler/mdparse"
	"github.com/spdx/spec-compiler/model"
)

type kindDir struct {
	dir            string
	lowercaseFirst bool
}

var kindDirs = []kindDir{
	{"Classes", false},
	{"Properties", true},
	{"Vocabularies", false},
	{"Individuals", false},
	{"Datatypes", false},
}

// Build traverses root (§6 input layout) and returns the populated, but
// not yet analyzed, model. os.ReadDir already returns entries sorted by
// filename, which gives the lexicographic ordering required by §5
// directly, without an explicit sort step.
func Build(root string) (*model.Model, diag.List) {
	var errs diag.List
	m := model.New()

	entries, err := os.ReadDir(root)
	if err != nil {
		errs.Addf(diag.Position{Filename: root}, diag.IO, "reading input root: %v", err)
		return m, errs
	}

	for _, e := range entries {
		if !e.IsDir() || !startsUpper(e.Name()) {
			continue
		}
		nsName := e.Name()
		nsDir := filepath.Join(root, nsName)
		nsErrs := loadNamespaceDir(m, nsDir, nsName)
		errs.Extend(nsErrs)
	}
	return m, errs
}

func startsUpper(name string) bool {
	if name == "" {
		return false
	}
	r := []rune(name)[0]
	return unicode.IsUpper(r)
}

func loadNamespaceDir(m *model.Model, nsDir, nsName string) diag.List {
	var errs diag.List

	nsFile := filepath.Join(nsDir, nsName+".md")
	src, err := os.ReadFile(nsFile)
	if err != nil {
		errs.Addf(diag.Position{Filename: nsFile}, diag.IO, "missing namespace file: %v", err)
		return errs
	}
	f, pErrs := mdparse.Split(nsFile, src)
	errs.Extend(pErrs)
	if f == nil {
		return errs
	}
	ns, lErrs := loaders.LoadNamespace(f)
	errs.Extend(lErrs)
	if ns == nil {
		return errs
	}
	if existing, dup := m.Namespaces.Get(ns.FQName); dup {
		errs.Addf(ns.Pos, diag.Schema, "duplicate namespace %q (first seen at %s)", ns.FQName, existing.Pos)
		return errs
	}
	m.Namespaces.Set(ns.FQName, ns)

	for _, kd := range kindDirs {
		errs.Extend(loadKindDir(m, ns, filepath.Join(nsDir, kd.dir), kd))
	}
	return errs
}

func loadKindDir(m *model.Model, ns *model.Namespace, dir string, kd kindDir) diag.List {
	var errs diag.List
	entries, err := os.ReadDir(dir)
	if err != nil {
		// The subdirectory is optional; absence is not an error.
		return errs
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if len(name) == 0 || name[0] == '.' {
			continue
		}
		if name[0] == '_' {
			errs.Warnf(diag.Position{Filename: filepath.Join(dir, name)}, diag.Schema,
				"skipping file %q (leading underscore)", name)
			continue
		}
		if filepath.Ext(name) != ".md" {
			continue
		}
		base := name[:len(name)-len(".md")]
		if base == "" {
			continue
		}
		first := []rune(base)[0]
		if kd.lowercaseFirst && !unicode.IsLower(first) {
			errs.Warnf(diag.Position{Filename: filepath.Join(dir, name)}, diag.Schema,
				"skipping file %q in %s (expected lowercase first letter)", name, kd.dir)
			continue
		}
		if !kd.lowercaseFirst && !unicode.IsUpper(first) {
			errs.Warnf(diag.Position{Filename: filepath.Join(dir, name)}, diag.Schema,
				"skipping file %q in %s (expected uppercase first letter)", name, kd.dir)
			continue
		}

		path := filepath.Join(dir, name)
		src, err := os.ReadFile(path)
		if err != nil {
			errs.Addf(diag.Position{Filename: path}, diag.IO, "%v", err)
			continue
		}
		f, pErrs := mdparse.Split(path, src)
		errs.Extend(pErrs)
		if f == nil {
			continue
		}
		errs.Extend(loadAndRegister(m, ns, f, kd))
	}
	return errs
}

func loadAndRegister(m *model.Model, ns *model.Namespace, f *mdparse.File, kd kindDir) diag.List {
	var errs diag.List
	switch kd.dir {
	case "Classes":
		v, lErrs := loaders.LoadClass(f, ns.Name, ns.IRI)
		errs.Extend(lErrs)
		if v != nil {
			if existing, dup := m.Classes.Get(v.FQName); dup {
				errs.Addf(v.Pos, diag.Schema, "duplicate class %q (first seen at %s)", v.FQName, existing.Pos)
			} else {
				m.Classes.Set(v.FQName, v)
				ns.Classes.Set(v.Name, v)
			}
		}
	case "Properties":
		v, lErrs := loaders.LoadProperty(f, ns.Name, ns.IRI)
		errs.Extend(lErrs)
		if v != nil {
			if existing, dup := m.Properties.Get(v.FQName); dup {
				errs.Addf(v.Pos, diag.Schema, "duplicate property %q (first seen at %s)", v.FQName, existing.Pos)
			} else {
				m.Properties.Set(v.FQName, v)
				ns.Properties.Set(v.Name, v)
			}
		}
	case "Vocabularies":
		v, lErrs := loaders.LoadVocabulary(f, ns.Name, ns.IRI)
		errs.Extend(lErrs)
		if v != nil {
			if existing, dup := m.Vocabularies.Get(v.FQName); dup {
				errs.Addf(v.Pos, diag.Schema, "duplicate vocabulary %q (first seen at %s)", v.FQName, existing.Pos)
			} else {
				m.Vocabularies.Set(v.FQName, v)
				ns.Vocabularies.Set(v.Name, v)
			}
		}
	case "Individuals":
		v, lErrs := loaders.LoadIndividual(f, ns.Name, ns.IRI)
		errs.Extend(lErrs)
		if v != nil {
			if existing, dup := m.Individuals.Get(v.FQName); dup {
				errs.Addf(v.Pos, diag.Schema, "duplicate individual %q (first seen at %s)", v.FQName, existing.Pos)
			} else {
				m.Individuals.Set(v.FQName, v)
				ns.Individuals.Set(v.Name, v)
			}
		}
	case "Datatypes":
		v, lErrs := loaders.LoadDatatype(f, ns.Name, ns.IRI)
		errs.Extend(lErrs)
		if v != nil {
			if existing, dup := m.Datatypes.Get(v.FQName); dup {
				errs.Addf(v.Pos, diag.Schema, "duplicate datatype %q (first seen at %s)", v.FQName, existing.Pos)
			} else {
				m.Datatypes.Set(v.FQName, v)
				ns.Datatypes.Set(v.Name, v)
			}
		}
	default:
		errs.Addf(diag.Position{Filename: f.Filename}, diag.Schema, "unrecognized entity directory %q", kd.dir)
	}
	return errs
}
