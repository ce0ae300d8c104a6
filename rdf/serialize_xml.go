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
	"encoding/xml"
	"strings"
)

// serializeRDFXML renders g as RDF/XML (formats "xml" and "pretty-xml").
// The two formats share one writer here; "pretty-xml" is the indented
// rendering and "xml" the same tree with indentation collapsed, since
// the underlying triples (and therefore the parsed document) are
// identical either way.
func serializeRDFXML(g *Graph, pretty bool) (string, error) {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<rdf:RDF`)
	for _, p := range Prefixes {
		b.WriteString(` xmlns:` + p.Prefix + `="` + p.NS + `"`)
	}
	b.WriteString(">\n")

	nl, indent := "\n", "  "
	if !pretty {
		nl, indent = "", ""
	}

	subjects, bySubject := g.BySubject()
	for _, s := range subjects {
		attr := `rdf:about`
		val := s.Value
		if s.Kind == KindBlank {
			attr = `rdf:nodeID`
			val = s.Value
		}
		b.WriteString(indent + `<rdf:Description ` + attr + `="` + escapeXMLAttr(val) + `">` + nl)
		for _, tr := range bySubject[termKey(s)] {
			writeXMLProperty(&b, tr.Predicate, tr.Object, indent+indent, nl)
		}
		b.WriteString(indent + "</rdf:Description>" + nl)
	}
	b.WriteString("</rdf:RDF>\n")
	return b.String(), nil
}

func writeXMLProperty(b *strings.Builder, pred, obj Term, indent, nl string) {
	tag := xmlQName(pred.Value)
	switch obj.Kind {
	case KindIRI:
		b.WriteString(indent + "<" + tag + ` rdf:resource="` + escapeXMLAttr(obj.Value) + `"/>` + nl)
	case KindBlank:
		b.WriteString(indent + "<" + tag + ` rdf:nodeID="` + escapeXMLAttr(obj.Value) + `"/>` + nl)
	default:
		var attrs string
		switch {
		case obj.Lang != "":
			attrs = ` xml:lang="` + obj.Lang + `"`
		case obj.Datatype != "" && obj.Datatype != nsXSD+"string":
			attrs = ` rdf:datatype="` + escapeXMLAttr(obj.Datatype) + `"`
		}
		var e strings.Builder
		_ = xml.EscapeText(&e, []byte(obj.Value))
		b.WriteString(indent + "<" + tag + attrs + ">" + e.String() + "</" + tag + ">" + nl)
	}
}

func xmlQName(iri string) string {
	for _, p := range Prefixes {
		if strings.HasPrefix(iri, p.NS) {
			return p.Prefix + ":" + strings.TrimPrefix(iri, p.NS)
		}
	}
	if idx := strings.LastIndexAny(iri, "/#"); idx >= 0 {
		return "spdx:" + iri[idx+1:]
	}
	return "spdx:" + iri
}

func escapeXMLAttr(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// SerializeXML renders g as compact RDF/XML (format "xml").
func SerializeXML(g *Graph) (string, error) { return serializeRDFXML(g, false) }

// SerializePrettyXML renders g as indented RDF/XML (format "pretty-xml").
func SerializePrettyXML(g *Graph) (string, error) { return serializeRDFXML(g, true) }
