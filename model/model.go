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

// Package model defines the typed in-memory ontology graph (§3): the
// entity kinds the loaders populate (C3), the maps the builder registers
// them into (C4), and the derived fields the analyzer computes (C5). The
// model is built bottom-up and, once §4.5 completes, is read-only; it is
// shared by reference with the emitters (C6/C7).
package model

import "github.com/spdx/spec-compiler/diag"

// Instantiability is the Instantiability metadata value of a Class.
type Instantiability string

const (
	Concrete Instantiability = "Concrete"
	Abstract Instantiability = "Abstract"
)

// Nature is the Nature metadata value of a Property.
type Nature string

const (
	ObjectProperty Nature = "ObjectProperty"
	DataProperty   Nature = "DataProperty"
)

// Common holds the text fields every entity kind carries.
type Common struct {
	Name        string
	FQName      string
	NS          string
	License     string
	Summary     string
	Description string
	IRI         string
	Metadata    map[string]string
	Pos         diag.Position
}

// PropertyRef is a class's declaration of one of its own properties,
// before inheritance is applied (§3 Class.properties).
type PropertyRef struct {
	Token    string // the token as written, possibly namespace-relative or "/"-qualified
	Type     string // the token as written in the "type" sub-key
	MinCount int
	MaxCount string // integer literal or "*"
	FQName   string // resolved FQN of the property, filled by the analyzer
}

// EffectiveProperty is one entry of a class's computed all_properties map
// (§4.5 step 6).
type EffectiveProperty struct {
	Token    string
	Type     string
	MinCount int
	MaxCount string
	FullName string // FQN of the property entity
	FullType string // FQN of the referenced type, unless "/"- or "xsd:"-prefixed
}

// Clone returns a value copy of e, so that merging an ancestor's
// effective-property row into a subclass never aliases the row (design
// note: "implementer must not alias inherited rows across classes").
func (e EffectiveProperty) Clone() EffectiveProperty { return e }

// ExtPropRestriction is one external-property-restriction entry, keyed in
// Class.ExtPropRestrs by "/ns/Class/prop".
type ExtPropRestriction struct {
	MinCount    *int
	MaxCount    *string
	Description *string
}

// Class is an ontology class (§3 Class).
type Class struct {
	Common
	SubclassOf      string // raw metadata value, "none" means no parent
	Instantiability Instantiability
	FQSuperCName    string // resolved parent FQN, "" if none
	Properties      *OrderedMap[*PropertyRef]
	ExtPropRestrs   map[string]*ExtPropRestriction

	// Derived by the analyzer (C5).
	InheritanceStack []string // nearest ancestor first
	Subclasses       []string // sorted direct child FQNs
	AllProperties    *OrderedMap[EffectiveProperty]
}

// Property is a standalone ontology property (§3 Property).
type Property struct {
	Common
	Nature Nature
	Range  string // raw metadata value

	// Derived by the analyzer.
	UsedIn []string
}

// Vocabulary is a controlled vocabulary (§3 Vocabulary).
type Vocabulary struct {
	Common
	Entries *OrderedMap[string] // entry name -> description
}

// Individual is a named individual (§3 Individual).
type Individual struct {
	Common
	Type       string // metadata "type", expanded to FQN
	MetaIRI    string // metadata "IRI", if supplied; "" means "use Common.IRI"
	Values     map[string]string
}

// Datatype is a constrained literal class (§3 Datatype).
type Datatype struct {
	Common
	SubclassOf string            // an xsd: base token
	Format     map[string]string // recognized key: "pattern"
}

// Namespace groups entities declared under one top-level input directory
// (§3 Namespace).
type Namespace struct {
	Common
	Conformance string

	Classes      *OrderedMap[*Class]
	Properties   *OrderedMap[*Property]
	Vocabularies *OrderedMap[*Vocabulary]
	Individuals  *OrderedMap[*Individual]
	Datatypes    *OrderedMap[*Datatype]
}

func newNamespace() *Namespace {
	return &Namespace{
		Classes:      NewOrderedMap[*Class](),
		Properties:   NewOrderedMap[*Property](),
		Vocabularies: NewOrderedMap[*Vocabulary](),
		Individuals:  NewOrderedMap[*Individual](),
		Datatypes:    NewOrderedMap[*Datatype](),
	}
}

// Type is the common interface implemented by the three kinds eligible to
// appear in Model.Types: Class, Vocabulary, Datatype.
type Type interface {
	typeFQName() string
}

func (c *Class) typeFQName() string      { return c.FQName }
func (v *Vocabulary) typeFQName() string { return v.FQName }
func (d *Datatype) typeFQName() string   { return d.FQName }

// Model is the full validated ontology graph (§3 Model).
type Model struct {
	Namespaces *OrderedMap[*Namespace]

	Classes      *OrderedMap[*Class]
	Properties   *OrderedMap[*Property]
	Vocabularies *OrderedMap[*Vocabulary]
	Individuals  *OrderedMap[*Individual]
	Datatypes    *OrderedMap[*Datatype]

	// Types is classes ∪ vocabularies ∪ datatypes, disjoint by FQN,
	// computed by the analyzer's type-union pass (§4.5 step 1).
	Types *OrderedMap[Type]
}

// New returns an empty Model ready for the builder to populate.
func New() *Model {
	return &Model{
		Namespaces:   NewOrderedMap[*Namespace](),
		Classes:      NewOrderedMap[*Class](),
		Properties:   NewOrderedMap[*Property](),
		Vocabularies: NewOrderedMap[*Vocabulary](),
		Individuals:  NewOrderedMap[*Individual](),
		Datatypes:    NewOrderedMap[*Datatype](),
		Types:        NewOrderedMap[Type](),
	}
}

// namespace returns the namespace ns, creating it if this is its first
// reference during registration.
func (m *Model) namespace(ns string) *Namespace {
	n, ok := m.Namespaces.Get(ns)
	if !ok {
		n = newNamespace()
		n.Name = ns
		n.NS = ns
		n.FQName = "/" + ns
		m.Namespaces.Set(ns, n)
	}
	return n
}

// ExpandFQN expands a bare token (no leading "/", no ":") relative to
// namespace ns into "/ns/token". Namespaced literals (containing ":",
// e.g. "xsd:string") and already-qualified tokens (leading "/") are
// returned unchanged, per §3's FQN expansion rule.
func ExpandFQN(ns, token string) string {
	if token == "" {
		return token
	}
	if token[0] == '/' {
		return token
	}
	for i := 0; i < len(token); i++ {
		if token[i] == ':' {
			return token
		}
	}
	return "/" + ns + "/" + token
}

// ShortName returns the substring of an FQN after its last "/".
func ShortName(fqn string) string {
	idx := -1
	for i := 0; i < len(fqn); i++ {
		if fqn[i] == '/' {
			idx = i
		}
	}
	if idx < 0 {
		return fqn
	}
	return fqn[idx+1:]
}
