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

// Package analyzer implements the semantic analyzer (C5, §4.5): it
// cross-validates the model the builder produced, computes inheritance
// order, direct-subclass lists, and effective properties, applies
// external-property restrictions, and attaches the property/used_in
// reverse index. Analyze never fails hard: every problem is recorded in
// the returned diag.List and processing continues to the next pass, per
// the "process_after_load never fails hard" rule of §4.7/§7.
package analyzer

import (
	"sort"
	"strings"

	"github.com/spdx/spec-compiler/diag"
	"github.com/spdx/spec-compiler/model"
)

// Analyze runs the six passes of §4.5, in order, over m.
func Analyze(m *model.Model) diag.List {
	var errs diag.List

	errs.Extend(typeUnion(m))
	errs.Extend(propertyRangeCheck(m))
	errs.Extend(referenceCheck(m))

	order := inheritanceOrder(m, &errs)
	inheritanceStacks(m)
	directSubclasses(m)
	effectiveProperties(m, order, &errs)

	return errs
}

// typeUnion implements §4.5 step 1: types = classes ∪ vocabularies ∪
// datatypes, an FQN collision across kinds is an error.
func typeUnion(m *model.Model) diag.List {
	var errs diag.List
	add := func(fqn string, pos diag.Position, t model.Type) {
		if _, dup := m.Types.Get(fqn); dup {
			errs.Addf(pos, diag.Schema, "FQN %q is used by more than one kind of type", fqn)
			return
		}
		m.Types.Set(fqn, t)
	}
	for _, fqn := range m.Classes.Keys() {
		c, _ := m.Classes.Get(fqn)
		add(fqn, c.Pos, c)
	}
	for _, fqn := range m.Vocabularies.Keys() {
		v, _ := m.Vocabularies.Get(fqn)
		add(fqn, v.Pos, v)
	}
	for _, fqn := range m.Datatypes.Keys() {
		d, _ := m.Datatypes.Get(fqn)
		add(fqn, d.Pos, d)
	}
	return errs
}

// propertyRangeCheck implements §4.5 step 2: resolve every class property
// token against the global Properties map, check Range/type compatibility,
// and append the owning class to the property's used_in index.
func propertyRangeCheck(m *model.Model) diag.List {
	var errs diag.List
	for _, cfqn := range m.Classes.Keys() {
		c, _ := m.Classes.Get(cfqn)
		for _, tok := range c.Properties.Keys() {
			ref, _ := c.Properties.Get(tok)
			pname := model.ExpandFQN(c.NS, ref.Token)
			prop, ok := m.Properties.Get(pname)
			if !ok {
				errs.Addf(c.Pos, diag.Reference, "class %q references unknown property %q", c.FQName, pname)
				continue
			}
			ref.FQName = pname
			prop.UsedIn = append(prop.UsedIn, c.FQName)

			tfqn := model.ExpandFQN(c.NS, ref.Type)
			rangeFQN := model.ExpandFQN(prop.NS, prop.Range)
			local := !strings.HasPrefix(ref.Token, "/")

			switch {
			case tfqn == rangeFQN:
				// exact match, always acceptable.
			case !local && model.ShortName(tfqn) == model.ShortName(rangeFQN):
				errs.Warnf(c.Pos, diag.Reference,
					"property %q on class %q: type %q matches range %q only by short name",
					pname, c.FQName, ref.Type, prop.Range)
			default:
				errs.Addf(c.Pos, diag.Reference,
					"property %q on class %q: declared type %q does not match range %q",
					pname, c.FQName, ref.Type, prop.Range)
			}
		}
	}
	return errs
}

// referenceCheck implements the remaining invariant-2 dangling-reference
// checks: class superclass references and individual type references.
func referenceCheck(m *model.Model) diag.List {
	var errs diag.List
	for _, fqn := range m.Classes.Keys() {
		c, _ := m.Classes.Get(fqn)
		if c.FQSuperCName == "" {
			continue
		}
		if _, ok := m.Classes.Get(c.FQSuperCName); !ok {
			errs.Addf(c.Pos, diag.Reference, "class %q references unknown superclass %q", c.FQName, c.FQSuperCName)
		}
	}
	for _, fqn := range m.Individuals.Keys() {
		ind, _ := m.Individuals.Get(fqn)
		if ind.Type == "" {
			continue
		}
		if !m.Types.Has(ind.Type) {
			errs.Addf(ind.Pos, diag.Reference, "individual %q references unknown type %q", ind.FQName, ind.Type)
		}
	}
	return errs
}

// inheritanceOrder implements §4.5 step 3: an iterative, explicit-work-
// list topological sort over the child→parent edges, stable under input
// order, yielding an order in which every class appears after all of its
// ancestors. A cycle is reported once per re-entered class; the cyclic
// classes are still appended, in the partial chain found.
func inheritanceOrder(m *model.Model, errs *diag.List) []string {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, m.Classes.Len())
	var order []string

	for _, start := range m.Classes.Keys() {
		if state[start] == done {
			continue
		}
		var chain []string
		cur := start
		for {
			switch state[cur] {
			case done:
				cur = ""
			case visiting:
				if c, ok := m.Classes.Get(cur); ok {
					errs.Addf(c.Pos, diag.Cycle, "inheritance cycle detected at class %q", cur)
				}
				cur = ""
			default:
				state[cur] = visiting
				chain = append(chain, cur)
				c, ok := m.Classes.Get(cur)
				if !ok || c.FQSuperCName == "" {
					cur = ""
					break
				}
				if _, ok := m.Classes.Get(c.FQSuperCName); !ok {
					cur = ""
					break
				}
				cur = c.FQSuperCName
			}
			if cur == "" {
				break
			}
		}
		for i := len(chain) - 1; i >= 0; i-- {
			if state[chain[i]] == done {
				continue
			}
			state[chain[i]] = done
			order = append(order, chain[i])
		}
	}
	return order
}

// inheritanceStacks implements §4.5 step 4: for each class, walk
// FQSuperCName iteratively, nearest ancestor first.
func inheritanceStacks(m *model.Model) {
	for _, fqn := range m.Classes.Keys() {
		c, _ := m.Classes.Get(fqn)
		seen := map[string]bool{fqn: true}
		var stack []string
		cur := c.FQSuperCName
		for cur != "" && !seen[cur] {
			stack = append(stack, cur)
			seen[cur] = true
			parent, ok := m.Classes.Get(cur)
			if !ok {
				break
			}
			cur = parent.FQSuperCName
		}
		c.InheritanceStack = stack
	}
}

// directSubclasses implements §4.5 step 5.
func directSubclasses(m *model.Model) {
	for _, fqn := range m.Classes.Keys() {
		c, _ := m.Classes.Get(fqn)
		if c.FQSuperCName == "" {
			continue
		}
		parent, ok := m.Classes.Get(c.FQSuperCName)
		if !ok {
			continue
		}
		parent.Subclasses = append(parent.Subclasses, c.FQName)
	}
	for _, fqn := range m.Classes.Keys() {
		c, _ := m.Classes.Get(fqn)
		sort.Strings(c.Subclasses)
	}
}

// effectiveProperties implements §4.5 step 6, processing classes in the
// order computed by inheritanceOrder so that a class's ancestors have
// already had AllProperties populated.
func effectiveProperties(m *model.Model, order []string, errs *diag.List) {
	for _, fqn := range order {
		c, _ := m.Classes.Get(fqn)
		c.AllProperties = model.NewOrderedMap[model.EffectiveProperty]()

		for _, tok := range c.Properties.Keys() {
			ref, _ := c.Properties.Get(tok)
			if ref.FQName == "" {
				// Dangling property reference already reported by
				// propertyRangeCheck; skip it here.
				continue
			}
			fulltype := ref.Type
			if !strings.HasPrefix(fulltype, "/") && !strings.HasPrefix(fulltype, "xsd:") {
				fulltype = model.ExpandFQN(c.NS, fulltype)
			}
			ep := model.EffectiveProperty{
				Token:    ref.Token,
				Type:     ref.Type,
				MinCount: ref.MinCount,
				MaxCount: ref.MaxCount,
				FullName: ref.FQName,
				FullType: fulltype,
			}
			c.AllProperties.Set(model.ShortName(ref.FQName), ep)
		}

		if c.FQSuperCName != "" {
			if parent, ok := m.Classes.Get(c.FQSuperCName); ok {
				for _, key := range parent.AllProperties.Keys() {
					if c.AllProperties.Has(key) {
						continue
					}
					v, _ := parent.AllProperties.Get(key)
					c.AllProperties.Set(key, v.Clone())
				}
			}
		}

		for key, restr := range c.ExtPropRestrs {
			short := model.ShortName(key)
			ep, ok := c.AllProperties.Get(short)
			if !ok {
				errs.Addf(c.Pos, diag.Reference,
					"external property restriction %q on class %q does not match any effective property",
					key, c.FQName)
				continue
			}
			redundant := true
			if restr.MinCount != nil {
				if *restr.MinCount != ep.MinCount {
					redundant = false
				}
				ep.MinCount = *restr.MinCount
			}
			if restr.MaxCount != nil {
				if *restr.MaxCount != ep.MaxCount {
					redundant = false
				}
				ep.MaxCount = *restr.MaxCount
			}
			if (restr.MinCount != nil || restr.MaxCount != nil) && redundant {
				errs.Warnf(c.Pos, diag.Schema,
					"redundant external property restriction %q on class %q", key, c.FQName)
			}
			c.AllProperties.Set(short, ep)
		}
	}
}
