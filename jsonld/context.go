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

// Package jsonld implements the JSON-LD context deriver (C7, §4.7): a
// single walk of the graph C6 built, producing a term -> IRI/coercion
// mapping. Object properties whose range is a vocabulary-backed enum map
// to "@vocab", everything else referencing a class maps to "@id" (§9
// Open Questions).
package jsonld

import (
	"strings"

	"github.com/spdx/spec-compiler/diag"
	"github.com/spdx/spec-compiler/model"
	"github.com/spdx/spec-compiler/rdf"
)

// Context is the derived JSON-LD @context mapping, in the order terms
// were discovered.
type Context struct {
	Terms *model.OrderedMap[any]
}

// Derive walks g once and builds the JSON-LD context for entities based
// at baseIRI.
func Derive(g *rdf.Graph, baseIRI string) (*Context, diag.List) {
	var errs diag.List
	subjects, bySubject := g.BySubject()

	vocabIndividuals := map[string]bool{}
	vocabClasses := map[string]bool{}
	for _, s := range subjects {
		triples := bySubject[rdf.TermKey(s)]
		var classIRI string
		var inHead rdf.Term
		hasIn := false
		for _, tr := range triples {
			if tr.Predicate.Value == rdf.SHClass {
				classIRI = tr.Object.Value
			}
			if tr.Predicate.Value == rdf.SHIn {
				inHead, hasIn = tr.Object, true
			}
		}
		if !hasIn || classIRI == "" {
			continue
		}
		vocabClasses[classIRI] = true
		for _, item := range decodeList(bySubject, inHead) {
			vocabIndividuals[item.Value] = true
		}
	}

	ctx := &Context{Terms: model.NewOrderedMap[any]()}
	seen := map[string]bool{}

	for _, s := range subjects {
		if s.Kind != rdf.KindIRI {
			continue
		}
		iri := s.Value
		if !strings.HasPrefix(iri, baseIRI) {
			continue
		}
		tail := strings.TrimPrefix(iri, baseIRI)
		ns, name, ok := splitTail(tail)
		if !ok {
			continue
		}
		if vocabIndividuals[iri] {
			continue
		}

		key := name
		if ns != "Core" {
			key = strings.ToLower(ns) + "_" + name
		}

		term := classify(bySubject[rdf.TermKey(s)], iri, ns, name, vocabClasses)

		if seen[key] {
			errs.Addf(diag.Position{}, diag.DuplicateContextKey,
				"duplicate JSON-LD context key %q (from %q)", key, iri)
			continue
		}
		seen[key] = true
		ctx.Terms.Set(key, term)
	}

	ctx.Terms.Set("spdx", baseIRI)
	ctx.Terms.Set("spdxId", "@id")
	ctx.Terms.Set("type", "@type")

	return ctx, errs
}

// splitTail splits the portion of an IRI following baseIRI into its
// namespace and local-name segments, e.g. "/Core/Element" -> ("Core",
// "Element"). Deeper paths (vocabulary entries, nested list nodes) do
// not match and are skipped by the caller.
func splitTail(tail string) (ns, name string, ok bool) {
	tail = strings.TrimPrefix(tail, "/")
	idx := strings.Index(tail, "/")
	if idx < 0 {
		return "", "", false
	}
	rest := tail[idx+1:]
	if strings.Contains(rest, "/") {
		return "", "", false
	}
	return tail[:idx], rest, true
}

// classify determines the JSON-LD term definition for one subject: a
// coercion object for object/datatype properties, or a plain IRI string
// for everything else (classes, vocabularies, datatypes, individuals).
func classify(triples []rdf.Triple, iri, ns, name string, vocabClasses map[string]bool) any {
	var kind, rng string
	for _, tr := range triples {
		switch tr.Predicate.Value {
		case rdf.RDFType:
			switch tr.Object.Value {
			case rdf.OWLObjectProperty:
				kind = "object"
			case rdf.OWLDatatypeProperty:
				kind = "data"
			}
		case rdf.RDFSRange:
			rng = tr.Object.Value
		}
	}

	switch kind {
	case "object":
		if vocabClasses[rng] || (ns == "Core" && name == "profile") {
			return vocabObject(iri, rng)
		}
		m := model.NewOrderedMap[any]()
		m.Set("@id", iri)
		m.Set("@type", "@id")
		return m
	case "data":
		m := model.NewOrderedMap[any]()
		m.Set("@id", iri)
		m.Set("@type", rng)
		return m
	default:
		return iri
	}
}

func vocabObject(iri, vocabIRI string) *model.OrderedMap[any] {
	inner := model.NewOrderedMap[any]()
	inner.Set("@vocab", vocabIRI+"/")
	m := model.NewOrderedMap[any]()
	m.Set("@id", iri)
	m.Set("@type", "@vocab")
	m.Set("@context", inner)
	return m
}

// decodeList walks an rdf:first/rdf:rest chain starting at head,
// returning the collected items in list order.
func decodeList(bySubject map[string][]rdf.Triple, head rdf.Term) []rdf.Term {
	var out []rdf.Term
	cur := head
	for !(cur.Kind == rdf.KindIRI && cur.Value == rdf.RDFNil) {
		triples := bySubject[rdf.TermKey(cur)]
		var first, rest rdf.Term
		found := false
		for _, tr := range triples {
			if tr.Predicate.Value == rdf.RDFFirst {
				first = tr.Object
			}
			if tr.Predicate.Value == rdf.RDFRest {
				rest = tr.Object
				found = true
			}
		}
		if !found {
			break
		}
		out = append(out, first)
		cur = rest
	}
	return out
}
