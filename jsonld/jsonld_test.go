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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/spdx/spec-compiler/analyzer"
	"github.com/spdx/spec-compiler/model"
	"github.com/spdx/spec-compiler/rdf"
)

const baseIRI = "https://spdx.org/rdf/3.0.1/terms/"

func fixtureGraph(t *testing.T) *rdf.Graph {
	t.Helper()
	m := model.New()

	element := &model.Class{
		Common: model.Common{
			FQName: "/Core/Element", NS: "Core", Name: "Element",
			IRI: baseIRI + "Core/Element",
		},
		Instantiability: model.Abstract,
		Properties:      model.NewOrderedMap[*model.PropertyRef](),
		ExtPropRestrs:   make(map[string]*model.ExtPropRestriction),
	}
	element.Properties.Set("name", &model.PropertyRef{Token: "name", Type: "xsd:string", MaxCount: "1"})
	element.Properties.Set("originatedBy", &model.PropertyRef{Token: "originatedBy", Type: "/Core/Agent", MaxCount: "*"})
	element.Properties.Set("profile", &model.PropertyRef{Token: "profile", Type: "/Core/ProfileIdentifierType", MaxCount: "*"})

	agent := &model.Class{
		Common: model.Common{
			FQName: "/Core/Agent", NS: "Core", Name: "Agent",
			IRI: baseIRI + "Core/Agent",
		},
		Instantiability: model.Concrete,
		Properties:      model.NewOrderedMap[*model.PropertyRef](),
		ExtPropRestrs:   make(map[string]*model.ExtPropRestriction),
	}

	profileVocab := &model.Vocabulary{
		Common:  model.Common{FQName: "/Core/ProfileIdentifierType", NS: "Core", Name: "ProfileIdentifierType", IRI: baseIRI + "Core/ProfileIdentifierType"},
		Entries: model.NewOrderedMap[string](),
	}
	profileVocab.Entries.Set("core", "Core profile")

	m.Classes.Set(element.FQName, element)
	m.Classes.Set(agent.FQName, agent)
	m.Vocabularies.Set(profileVocab.FQName, profileVocab)

	m.Properties.Set("/Core/name", &model.Property{
		Common: model.Common{FQName: "/Core/name", NS: "Core", Name: "name", IRI: baseIRI + "Core/name"},
		Nature: model.DataProperty, Range: "xsd:string",
	})
	m.Properties.Set("/Core/originatedBy", &model.Property{
		Common: model.Common{FQName: "/Core/originatedBy", NS: "Core", Name: "originatedBy", IRI: baseIRI + "Core/originatedBy"},
		Nature: model.ObjectProperty, Range: "Agent",
	})
	m.Properties.Set("/Core/profile", &model.Property{
		Common: model.Common{FQName: "/Core/profile", NS: "Core", Name: "profile", IRI: baseIRI + "Core/profile"},
		Nature: model.ObjectProperty, Range: "ProfileIdentifierType",
	})

	errs := analyzer.Analyze(m)
	if errs.HasErrors() {
		t.Fatalf("fixture model has errors: %v", errs)
	}

	g, emitErrs := rdf.Emit(m, rdf.Config{BaseIRI: baseIRI, Title: "t", Created: "2024-05-01"})
	if emitErrs.HasErrors() {
		t.Fatalf("emit errors: %v", emitErrs)
	}
	return g
}

func TestDeriveClassTermIsPlainIRI(t *testing.T) {
	g := fixtureGraph(t)
	ctx, errs := Derive(g, baseIRI)
	qt.Assert(t, qt.HasLen(errs, 0))

	v, ok := ctx.Terms.Get("Element")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v.(string), baseIRI+"Core/Element"))
}

func TestDeriveDataPropertyCoercesType(t *testing.T) {
	g := fixtureGraph(t)
	ctx, errs := Derive(g, baseIRI)
	qt.Assert(t, qt.HasLen(errs, 0))

	v, ok := ctx.Terms.Get("name")
	qt.Assert(t, qt.IsTrue(ok))
	m, ok := v.(*model.OrderedMap[any])
	qt.Assert(t, qt.IsTrue(ok))
	id, _ := m.Get("@id")
	qt.Assert(t, qt.Equals(id.(string), baseIRI+"Core/name"))
	typ, _ := m.Get("@type")
	qt.Assert(t, qt.Equals(typ.(string), "http://www.w3.org/2001/XMLSchema#string"))
}

func TestDeriveObjectPropertyToIdCoercion(t *testing.T) {
	g := fixtureGraph(t)
	ctx, errs := Derive(g, baseIRI)
	qt.Assert(t, qt.HasLen(errs, 0))

	v, ok := ctx.Terms.Get("originatedBy")
	qt.Assert(t, qt.IsTrue(ok))
	m, ok := v.(*model.OrderedMap[any])
	qt.Assert(t, qt.IsTrue(ok))
	id, _ := m.Get("@id")
	qt.Assert(t, qt.Equals(id.(string), baseIRI+"Core/originatedBy"))
	typ, _ := m.Get("@type")
	qt.Assert(t, qt.Equals(typ.(string), "@id"))
}

func TestDeriveVocabPropertyGetsVocabObject(t *testing.T) {
	g := fixtureGraph(t)
	ctx, errs := Derive(g, baseIRI)
	qt.Assert(t, qt.HasLen(errs, 0))

	v, ok := ctx.Terms.Get("profile")
	qt.Assert(t, qt.IsTrue(ok))
	m, ok := v.(*model.OrderedMap[any])
	qt.Assert(t, qt.IsTrue(ok))
	id, _ := m.Get("@id")
	qt.Assert(t, qt.Equals(id.(string), baseIRI+"Core/profile"))
	typ, _ := m.Get("@type")
	qt.Assert(t, qt.Equals(typ.(string), "@vocab"))
	_, hasCtx := m.Get("@context")
	qt.Assert(t, qt.IsTrue(hasCtx))
}

func TestDeriveVocabEntryIsSkipped(t *testing.T) {
	g := fixtureGraph(t)
	ctx, _ := Derive(g, baseIRI)

	_, ok := ctx.Terms.Get("core")
	qt.Assert(t, qt.IsFalse(ok))
}

func TestDeriveAppendsWellKnownTerms(t *testing.T) {
	g := fixtureGraph(t)
	ctx, _ := Derive(g, baseIRI)

	v, ok := ctx.Terms.Get("spdx")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v.(string), baseIRI))

	v, ok = ctx.Terms.Get("spdxId")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v.(string), "@id"))
}

func TestWriteContextFile(t *testing.T) {
	g := fixtureGraph(t)
	ctx, _ := Derive(g, baseIRI)

	dir := t.TempDir()
	errs := Write(ctx, dir)
	qt.Assert(t, qt.HasLen(errs, 0))

	body, err := os.ReadFile(filepath.Join(dir, "spdx-context.jsonld"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(strings.HasPrefix(string(body), "{\n  \"@context\": {")))
	qt.Assert(t, qt.IsTrue(strings.Contains(string(body), `"Element": "`+baseIRI+`Core/Element"`)))
}
