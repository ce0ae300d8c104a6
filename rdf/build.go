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
	"fmt"
	"strconv"
	"strings"

	"github.com/spdx/spec-compiler/diag"
	"github.com/spdx/spec-compiler/model"
)

// Config carries the ontology-level metadata supplied by the runtime
// configuration (§6): a single owl:Ontology resource is asserted from
// these literal values.
type Config struct {
	BaseIRI       string
	Title         string
	Abstract      string
	Creator       string
	Created       string // xsd:date literal, e.g. "2024-05-01"
	License       string
	VersionIRI    string
	ParserVersion string
}

// Emit builds the ontology graph for m (§4.6). The model is assumed
// already analyzed (C5 has run); Emit reports a diagnostic only for
// conditions the analyzer cannot itself observe (none at present, but
// the signature matches the other phases for uniformity).
func Emit(m *model.Model, cfg Config) (*Graph, diag.List) {
	var errs diag.List
	g := &Graph{}

	emitOntology(g, cfg)

	for _, fqn := range m.Properties.Keys() {
		if fqn == reservedProperty {
			continue
		}
		p, _ := m.Properties.Get(fqn)
		emitProperty(g, m, p)
	}
	for _, fqn := range m.Classes.Keys() {
		c, _ := m.Classes.Get(fqn)
		emitClass(g, m, c)
	}
	for _, fqn := range m.Vocabularies.Keys() {
		v, _ := m.Vocabularies.Get(fqn)
		emitVocabulary(g, v)
	}
	for _, fqn := range m.Individuals.Keys() {
		ind, _ := m.Individuals.Get(fqn)
		emitIndividual(g, m, cfg, ind)
	}

	return g, errs
}

func emitOntology(g *Graph, cfg Config) {
	onto := IRI(cfg.BaseIRI)
	g.Add(onto, IRI(rdfType), IRI(owlOntology))
	g.Add(onto, IRI(dctermsTitle), Lit(cfg.Title))
	g.Add(onto, IRI(dctermsAbstract), Lit(cfg.Abstract))
	g.Add(onto, IRI(dctermsCreator), Lit(cfg.Creator))
	g.Add(onto, IRI(dctermsCreated), TypedLit(cfg.Created, nsXSD+"date"))
	if cfg.License != "" {
		g.Add(onto, IRI(dctermsLicense), IRI(cfg.License))
	}
	if cfg.VersionIRI != "" {
		g.Add(onto, IRI(owlVersionIRI), IRI(cfg.VersionIRI))
	}
}

func emitProperty(g *Graph, m *model.Model, p *model.Property) {
	iri := IRI(p.IRI)
	if p.Summary != "" {
		g.Add(iri, IRI(rdfsComment), LangLit(p.Summary, "en"))
	}
	nature := owlObjectProperty
	if p.Nature == model.DataProperty {
		nature = owlDatatypeProperty
	}
	g.Add(iri, IRI(rdfType), IRI(nature))
	g.Add(iri, IRI(rdfsRange), IRI(resolveRangeIRI(m, p.NS, p.Range)))
}

// resolveRangeIRI maps a raw Range/type token to the IRI it denotes: an
// xsd scalar, a datatype's xsd base, or another entity's IRI.
func resolveRangeIRI(m *model.Model, ns, token string) string {
	if strings.HasPrefix(token, "xsd:") {
		return nsXSD + strings.TrimPrefix(token, "xsd:")
	}
	fqn := model.ExpandFQN(ns, token)
	if t, ok := m.Types.Get(fqn); ok {
		switch v := t.(type) {
		case *model.Datatype:
			return nsXSD + strings.TrimPrefix(v.SubclassOf, "xsd:")
		default:
			return entityIRI(t)
		}
	}
	return fqn
}

func entityIRI(t model.Type) string {
	switch v := t.(type) {
	case *model.Class:
		return v.IRI
	case *model.Vocabulary:
		return v.IRI
	case *model.Datatype:
		return v.IRI
	}
	return ""
}

func emitClass(g *Graph, m *model.Model, c *model.Class) {
	iri := IRI(c.IRI)
	g.Add(iri, IRI(rdfType), IRI(owlClass))
	if c.Summary != "" {
		g.Add(iri, IRI(rdfsComment), LangLit(c.Summary, "en"))
	}
	if c.FQSuperCName != "" {
		if parent, ok := m.Classes.Get(c.FQSuperCName); ok {
			g.Add(iri, IRI(rdfsSubClassOf), IRI(parent.IRI))
		}
	}

	hasSpdxID := c.AllProperties.Has("spdxId")
	nodeKind := shBlankOrIRI
	if hasSpdxID {
		nodeKind = shIRIKind
	}

	needsShape := c.Instantiability == model.Abstract || c.Properties.Len() > 0
	if needsShape {
		g.Add(iri, IRI(rdfType), IRI(shNodeShape))
		g.Add(iri, IRI(shNodeKind), IRI(nodeKind))
	}

	if c.Instantiability == model.Abstract {
		shape := g.NewBlank()
		g.Add(iri, IRI(shProperty), shape)
		g.Add(shape, IRI(shPath), IRI(rdfType))
		notNode := g.NewBlank()
		g.Add(shape, IRI(shNot), notNode)
		g.Add(notNode, IRI(shHasValue), iri)
		g.Add(shape, IRI(shMessage), LangLit(
			fmt.Sprintf("%s is abstract and cannot be instantiated directly.", c.Name), "en"))
	}

	for _, tok := range c.Properties.Keys() {
		ref, _ := c.Properties.Get(tok)
		if ref.FQName == reservedProperty || ref.FQName == "" {
			continue
		}
		emitPropertyShape(g, m, c, ref)
	}
}

func emitPropertyShape(g *Graph, m *model.Model, c *model.Class, ref *model.PropertyRef) {
	prop, ok := m.Properties.Get(ref.FQName)
	if !ok {
		return
	}
	shape := g.NewBlank()
	g.Add(IRI(c.IRI), IRI(shProperty), shape)
	g.Add(shape, IRI(shPath), IRI(prop.IRI))

	rangeFQN := model.ExpandFQN(c.NS, ref.Type)
	if rangeFQN == extensionType {
		emitExtensionEscape(g, m, shape)
	} else if t, ok := m.Types.Get(rangeFQN); ok {
		switch target := t.(type) {
		case *model.Class:
			nk := shBlankOrIRI
			if target.AllProperties.Has("spdxId") {
				nk = shIRIKind
			}
			g.Add(shape, IRI(shClass), IRI(target.IRI))
			g.Add(shape, IRI(shNodeKind), IRI(nk))
		case *model.Vocabulary:
			g.Add(shape, IRI(shClass), IRI(target.IRI))
			g.Add(shape, IRI(shNodeKind), IRI(shIRIKind))
			var entries []Term
			for _, name := range target.Entries.Keys() {
				entries = append(entries, IRI(target.IRI+"/"+name))
			}
			g.Add(shape, IRI(shIn), emitList(g, entries))
		case *model.Datatype:
			if pattern, ok := target.Format["pattern"]; ok {
				g.Add(shape, IRI(shPattern), Lit(pattern))
			}
			g.Add(shape, IRI(shDatatype), IRI(nsXSD+strings.TrimPrefix(target.SubclassOf, "xsd:")))
			g.Add(shape, IRI(shNodeKind), IRI(shLiteral))
		}
	} else if strings.HasPrefix(ref.Type, "xsd:") {
		g.Add(shape, IRI(shDatatype), IRI(nsXSD+strings.TrimPrefix(ref.Type, "xsd:")))
		g.Add(shape, IRI(shNodeKind), IRI(shLiteral))
	}

	if ref.MinCount != 0 {
		g.Add(shape, IRI(shMinCount), IntLit(ref.MinCount))
	}
	if ref.MaxCount != "*" {
		if n, err := strconv.Atoi(ref.MaxCount); err == nil {
			g.Add(shape, IRI(shMaxCount), IntLit(n))
		}
	}
}

// emitExtensionEscape expresses "instances of this property must not be
// a known, non-extension class": sh:not ( sh:or ( { sh:class C } ... ) )
// over every concrete class known outside the Extension namespace.
func emitExtensionEscape(g *Graph, m *model.Model, shape Term) {
	var fqns []string
	for _, fqn := range m.Classes.Keys() {
		c, _ := m.Classes.Get(fqn)
		if c.Instantiability != model.Concrete || c.NS == "Extension" {
			continue
		}
		fqns = append(fqns, fqn)
	}

	var items []Term
	for _, fqn := range sortedStrings(fqns) {
		c, _ := m.Classes.Get(fqn)
		item := g.NewBlank()
		g.Add(item, IRI(shClass), IRI(c.IRI))
		items = append(items, item)
	}
	orNode := g.NewBlank()
	g.Add(orNode, IRI(shOr), emitList(g, items))
	g.Add(shape, IRI(shNot), orNode)
}

// emitList materializes items as an RDF collection (rdf:first/rdf:rest
// chain terminated by rdf:nil) and returns its head.
func emitList(g *Graph, items []Term) Term {
	if len(items) == 0 {
		return IRI(rdfNil)
	}
	var head, prev Term
	for i, it := range items {
		node := g.NewBlank()
		if i == 0 {
			head = node
		} else {
			g.Add(prev, IRI(rdfRest), node)
		}
		g.Add(node, IRI(rdfFirst), it)
		prev = node
	}
	g.Add(prev, IRI(rdfRest), IRI(rdfNil))
	return head
}

func emitVocabulary(g *Graph, v *model.Vocabulary) {
	iri := IRI(v.IRI)
	g.Add(iri, IRI(rdfType), IRI(owlClass))
	if v.Summary != "" {
		g.Add(iri, IRI(rdfsComment), LangLit(v.Summary, "en"))
	}
	for _, name := range v.Entries.Keys() {
		desc, _ := v.Entries.Get(name)
		e := IRI(v.IRI + "/" + name)
		g.Add(e, IRI(rdfType), IRI(owlNamedIndividual))
		g.Add(e, IRI(rdfType), iri)
		g.Add(e, IRI(rdfsLabel), Lit(name))
		g.Add(e, IRI(rdfsComment), LangLit(desc, "en"))
	}
}

func emitIndividual(g *Graph, m *model.Model, cfg Config, ind *model.Individual) {
	iri := IRI(ind.IRI)
	creationNode := g.NewBlank()
	core := cfg.BaseIRI + "Core/"
	g.Add(creationNode, IRI(rdfType), IRI(core+"CreationInfo"))
	g.Add(creationNode, IRI(core+"created"), TypedLit(cfg.Created, nsXSD+"dateTime"))
	g.Add(creationNode, IRI(core+"createdBy"), Lit(cfg.Creator))
	g.Add(creationNode, IRI(core+"specVersion"), Lit(cfg.ParserVersion))

	g.Add(iri, IRI(rdfType), IRI(owlNamedIndividual))
	if ind.Type != "" {
		if t, ok := m.Types.Get(ind.Type); ok {
			g.Add(iri, IRI(rdfType), IRI(entityIRI(t)))
		}
	}
	g.Add(iri, IRI(core+"creationInfo"), creationNode)
	if ind.MetaIRI != "" && ind.MetaIRI != ind.IRI {
		g.Add(iri, IRI(owlSameAs), IRI(ind.MetaIRI))
	}
}
