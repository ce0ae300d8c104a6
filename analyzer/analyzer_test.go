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

package analyzer

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/spdx/spec-compiler/diag"
	"github.com/spdx/spec-compiler/model"
)

func newClass(fqn, ns, super string) *model.Class {
	return &model.Class{
		Common:        model.Common{FQName: fqn, NS: ns, Name: model.ShortName(fqn)},
		FQSuperCName:  super,
		Properties:    model.NewOrderedMap[*model.PropertyRef](),
		ExtPropRestrs: make(map[string]*model.ExtPropRestriction),
	}
}

func newProperty(fqn, ns, rng string, nature model.Nature) *model.Property {
	return &model.Property{
		Common: model.Common{FQName: fqn, NS: ns, Name: model.ShortName(fqn)},
		Nature: nature,
		Range:  rng,
	}
}

func TestTypeUnionCollision(t *testing.T) {
	m := model.New()
	m.Classes.Set("/Core/Element", newClass("/Core/Element", "Core", ""))
	m.Vocabularies.Set("/Core/Element", &model.Vocabulary{
		Common:  model.Common{FQName: "/Core/Element", NS: "Core", Name: "Element"},
		Entries: model.NewOrderedMap[string](),
	})

	errs := typeUnion(m)
	qt.Assert(t, qt.IsTrue(errs.HasErrors()))
	qt.Assert(t, qt.Equals(m.Types.Len(), 1))
}

func TestPropertyRangeCheckExactMatch(t *testing.T) {
	m := model.New()
	c := newClass("/Core/Element", "Core", "")
	c.Properties.Set("name", &model.PropertyRef{Token: "name", Type: "xsd:string", MaxCount: "1"})
	m.Classes.Set(c.FQName, c)
	m.Properties.Set("/Core/name", newProperty("/Core/name", "Core", "xsd:string", model.DataProperty))

	errs := propertyRangeCheck(m)
	qt.Assert(t, qt.HasLen(errs, 0))

	prop, _ := m.Properties.Get("/Core/name")
	qt.Assert(t, qt.DeepEquals(prop.UsedIn, []string{"/Core/Element"}))
}

func TestPropertyRangeCheckMismatchIsError(t *testing.T) {
	m := model.New()
	c := newClass("/Core/Element", "Core", "")
	c.Properties.Set("name", &model.PropertyRef{Token: "name", Type: "xsd:integer", MaxCount: "1"})
	m.Classes.Set(c.FQName, c)
	m.Properties.Set("/Core/name", newProperty("/Core/name", "Core", "xsd:string", model.DataProperty))

	errs := propertyRangeCheck(m)
	qt.Assert(t, qt.IsTrue(errs.HasErrors()))
}

func TestPropertyRangeCheckUnknownProperty(t *testing.T) {
	m := model.New()
	c := newClass("/Core/Element", "Core", "")
	c.Properties.Set("name", &model.PropertyRef{Token: "name", Type: "xsd:string"})
	m.Classes.Set(c.FQName, c)

	errs := propertyRangeCheck(m)
	qt.Assert(t, qt.IsTrue(errs.HasErrors()))
}

func TestReferenceCheckDanglingSuperclass(t *testing.T) {
	m := model.New()
	c := newClass("/Core/Agent", "Core", "/Core/Missing")
	m.Classes.Set(c.FQName, c)

	errs := referenceCheck(m)
	qt.Assert(t, qt.IsTrue(errs.HasErrors()))
}

func TestReferenceCheckDanglingIndividualType(t *testing.T) {
	m := model.New()
	m.Individuals.Set("/Core/noassertion", &model.Individual{
		Common: model.Common{FQName: "/Core/noassertion"},
		Type:   "/Core/Missing",
	})

	errs := referenceCheck(m)
	qt.Assert(t, qt.IsTrue(errs.HasErrors()))
}

func TestInheritanceOrderAndStacks(t *testing.T) {
	m := model.New()
	m.Classes.Set("/Core/Element", newClass("/Core/Element", "Core", ""))
	m.Classes.Set("/Core/Agent", newClass("/Core/Agent", "Core", "/Core/Element"))
	m.Classes.Set("/Core/Person", newClass("/Core/Person", "Core", "/Core/Agent"))

	var errs diag.List
	order := inheritanceOrder(m, &errs)
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.HasLen(order, 3))
	qt.Assert(t, qt.Equals(order[0], "/Core/Element"))
	qt.Assert(t, qt.Equals(order[2], "/Core/Person"))

	inheritanceStacks(m)
	person, _ := m.Classes.Get("/Core/Person")
	qt.Assert(t, qt.DeepEquals(person.InheritanceStack, []string{"/Core/Agent", "/Core/Element"}))
}

func TestInheritanceOrderCycle(t *testing.T) {
	m := model.New()
	m.Classes.Set("/Core/A", newClass("/Core/A", "Core", "/Core/B"))
	m.Classes.Set("/Core/B", newClass("/Core/B", "Core", "/Core/A"))

	var errs diag.List
	inheritanceOrder(m, &errs)
	qt.Assert(t, qt.IsTrue(errs.HasErrors()))
}

func TestDirectSubclasses(t *testing.T) {
	m := model.New()
	m.Classes.Set("/Core/Element", newClass("/Core/Element", "Core", ""))
	m.Classes.Set("/Core/Agent", newClass("/Core/Agent", "Core", "/Core/Element"))
	m.Classes.Set("/Core/Annotation", newClass("/Core/Annotation", "Core", "/Core/Element"))

	directSubclasses(m)
	el, _ := m.Classes.Get("/Core/Element")
	qt.Assert(t, qt.DeepEquals(el.Subclasses, []string{"/Core/Agent", "/Core/Annotation"}))
}

func TestEffectivePropertiesInheritanceAndRestriction(t *testing.T) {
	m := model.New()

	element := newClass("/Core/Element", "Core", "")
	element.Properties.Set("name", &model.PropertyRef{Token: "name", Type: "xsd:string", MinCount: 0, MaxCount: "1"})

	agent := newClass("/Core/Agent", "Core", "/Core/Element")
	minOne := 1
	agent.ExtPropRestrs["/Core/Element/name"] = &model.ExtPropRestriction{MinCount: &minOne}

	m.Classes.Set(element.FQName, element)
	m.Classes.Set(agent.FQName, agent)
	m.Properties.Set("/Core/name", newProperty("/Core/name", "Core", "xsd:string", model.DataProperty))

	var errs diag.List
	errs.Extend(propertyRangeCheck(m))
	qt.Assert(t, qt.HasLen(errs, 0))

	order := inheritanceOrder(m, &errs)
	inheritanceStacks(m)
	directSubclasses(m)
	effectiveProperties(m, order, &errs)
	qt.Assert(t, qt.HasLen(errs, 0))

	nameProp, ok := agent.AllProperties.Get("name")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(nameProp.MinCount, 1))

	elProp, _ := element.AllProperties.Get("name")
	qt.Assert(t, qt.Equals(elProp.MinCount, 0))
}

func TestEffectivePropertiesRedundantRestrictionWarns(t *testing.T) {
	m := model.New()
	element := newClass("/Core/Element", "Core", "")
	element.Properties.Set("name", &model.PropertyRef{Token: "name", Type: "xsd:string", MinCount: 1, MaxCount: "1"})
	one := 1
	element.ExtPropRestrs["/Core/Element/name"] = &model.ExtPropRestriction{MinCount: &one}

	m.Classes.Set(element.FQName, element)
	m.Properties.Set("/Core/name", newProperty("/Core/name", "Core", "xsd:string", model.DataProperty))

	var errs diag.List
	errs.Extend(propertyRangeCheck(m))
	order := inheritanceOrder(m, &errs)
	inheritanceStacks(m)
	directSubclasses(m)
	effectiveProperties(m, order, &errs)

	qt.Assert(t, qt.IsFalse(errs.HasErrors()))
	qt.Assert(t, qt.HasLen(errs.Warnings(), 1))
}

func TestAnalyzeFullPipeline(t *testing.T) {
	m := model.New()
	element := newClass("/Core/Element", "Core", "")
	element.Properties.Set("name", &model.PropertyRef{Token: "name", Type: "xsd:string", MaxCount: "1"})
	m.Classes.Set(element.FQName, element)
	m.Properties.Set("/Core/name", newProperty("/Core/name", "Core", "xsd:string", model.DataProperty))

	errs := Analyze(m)
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.Equals(m.Types.Len(), 1))

	ep, ok := element.AllProperties.Get("name")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(ep.FullName, "/Core/name"))
}
