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

// Package rdf implements the RDF/SHACL ontology emitter (C6, §4.6): it
// walks the validated model into an in-memory triple store with precise
// node-kind, cardinality, and datatype constraints, and serializes that
// store into each of the formats named in §4.6. No third-party RDF
// library is available anywhere in the retrieved corpus, so the graph
// and its serializers are hand-rolled, structured the way
// cuelang.org/go keeps one small package per output format under
// encoding/* rather than one monolithic generator.
package rdf

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// TermKind distinguishes the three kinds of RDF term.
type TermKind int

const (
	KindIRI TermKind = iota
	KindBlank
	KindLiteral
)

// Term is an RDF subject, predicate, or object.
type Term struct {
	Kind     TermKind
	Value    string // IRI string, blank node label, or literal lexical form
	Datatype string // literal datatype IRI, optional
	Lang     string // literal language tag, optional
}

func IRI(v string) Term                 { return Term{Kind: KindIRI, Value: v} }
func Blank(label string) Term           { return Term{Kind: KindBlank, Value: label} }
func Lit(v string) Term                 { return Term{Kind: KindLiteral, Value: v} }
func LangLit(v, lang string) Term       { return Term{Kind: KindLiteral, Value: v, Lang: lang} }
func TypedLit(v, datatype string) Term  { return Term{Kind: KindLiteral, Value: v, Datatype: datatype} }
func IntLit(n int) Term                 { return TypedLit(fmt.Sprintf("%d", n), nsXSD+"integer") }

// Triple is one subject-predicate-object statement.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// Graph is the in-memory ontology built by Emit. Triples are recorded in
// emission order; serializers may group or reorder them but the order
// here is itself deterministic because the model's maps are
// insertion-ordered (§5).
type Graph struct {
	Triples []Triple

	// blankSeq allocates deterministic, run-stable blank node labels.
	// The seed itself is fixed (not random) so that two runs over the
	// same model produce byte-identical output (§8 property 9); uuid is
	// used only to derive a short, collision-resistant label alphabet
	// from a fixed namespace, not for per-run randomness.
	blankSeq int
}

var blankNamespace = uuid.MustParse("6f9619ff-8b86-d011-b42d-00cf4fc964ff")

// NewBlank allocates a fresh, deterministically-labeled blank node.
func (g *Graph) NewBlank() Term {
	g.blankSeq++
	id := uuid.NewSHA1(blankNamespace, []byte(fmt.Sprintf("b%d", g.blankSeq)))
	return Blank("n" + id.String()[:8])
}

// Add records one triple.
func (g *Graph) Add(s, p, o Term) {
	g.Triples = append(g.Triples, Triple{s, p, o})
}

// BySubject groups the graph's triples by subject, preserving the
// first-seen order of subjects and, within a subject, the order in which
// its triples were added (triples are not regrouped by predicate).
func (g *Graph) BySubject() ([]Term, map[string][]Triple) {
	var order []Term
	seen := make(map[string]bool)
	byKey := make(map[string][]Triple)
	for _, t := range g.Triples {
		k := termKey(t.Subject)
		if !seen[k] {
			seen[k] = true
			order = append(order, t.Subject)
		}
		byKey[k] = append(byKey[k], t)
	}
	return order, byKey
}

func termKey(t Term) string {
	switch t.Kind {
	case KindBlank:
		return "_:" + t.Value
	default:
		return t.Value
	}
}

// sortedStrings is a convenience used by emitters needing a stable
// string sort of collected entries before building RDF list nodes.
func sortedStrings(items []string) []string {
	out := append([]string(nil), items...)
	sort.Strings(out)
	return out
}
