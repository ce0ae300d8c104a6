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

import "strings"

// compact rewrites an IRI to its "prefix:local" form if it falls under a
// known namespace, else returns the full "<iri>" form.
func compact(iri string) string {
	for _, p := range Prefixes {
		if strings.HasPrefix(iri, p.NS) {
			return p.Prefix + ":" + strings.TrimPrefix(iri, p.NS)
		}
	}
	return "<" + escapeIRI(iri) + ">"
}

func termTTL(t Term) string {
	switch t.Kind {
	case KindIRI:
		return compact(t.Value)
	case KindBlank:
		return "_:" + t.Value
	default:
		return termN(t)
	}
}

func writePrefixes(b *strings.Builder, baseIRI string) {
	for _, p := range Prefixes {
		b.WriteString("@prefix " + p.Prefix + ": <" + p.NS + "> .\n")
	}
	if baseIRI != "" {
		b.WriteString("@prefix spdx: <" + baseIRI + "> .\n")
	}
	b.WriteByte('\n')
}

// serializeTurtle renders g either in compact ";"-grouped Turtle (used
// for "ttl") or in one-triple-per-line Turtle (used for "longturtle" and
// "n3", which otherwise share Turtle's term syntax).
func serializeTurtle(g *Graph, baseIRI string, compactGrouping bool) string {
	var b strings.Builder
	writePrefixes(&b, baseIRI)

	subjects, bySubject := g.BySubject()
	for _, s := range subjects {
		triples := bySubject[termKey(s)]
		if !compactGrouping {
			for _, tr := range triples {
				b.WriteString(termTTL(tr.Subject) + " " + termTTL(tr.Predicate) + " " + termTTL(tr.Object) + " .\n")
			}
			continue
		}

		b.WriteString(termTTL(s))
		var lastPred string
		first := true
		for i, tr := range triples {
			pred := termTTL(tr.Predicate)
			switch {
			case first:
				b.WriteString(" " + pred + " " + termTTL(tr.Object))
				first = false
			case pred == lastPred:
				b.WriteString(", " + termTTL(tr.Object))
			default:
				b.WriteString(" ;\n    " + pred + " " + termTTL(tr.Object))
			}
			lastPred = pred
			if i == len(triples)-1 {
				b.WriteString(" .\n\n")
			}
		}
	}
	return b.String()
}

// SerializeTurtle renders g as compact Turtle (format "ttl").
func SerializeTurtle(g *Graph, baseIRI string) string {
	return serializeTurtle(g, baseIRI, true)
}

// SerializeLongTurtle renders g as one statement per line (format
// "longturtle").
func SerializeLongTurtle(g *Graph, baseIRI string) string {
	return serializeTurtle(g, baseIRI, false)
}

// SerializeN3 renders g using Notation3 syntax. N3 is a syntactic
// superset of Turtle; lacking any N3-specific construct in this model
// (no rules, no formulas), the one-triple-per-line Turtle rendering is
// already valid N3.
func SerializeN3(g *Graph, baseIRI string) string {
	return SerializeLongTurtle(g, baseIRI)
}

// SerializeTriG wraps the default-graph Turtle rendering in a TriG graph
// block (format "trig").
func SerializeTriG(g *Graph, baseIRI string) string {
	var b strings.Builder
	writePrefixes(&b, baseIRI)
	b.WriteString("{\n")
	body := serializeTurtle(g, "", true)
	// Drop the (already written) prefix header from the nested body.
	if idx := strings.Index(body, "\n\n"); idx >= 0 {
		body = body[idx+2:]
	}
	b.WriteString(body)
	b.WriteString("}\n")
	return b.String()
}
