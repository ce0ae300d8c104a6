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

// Namespace IRIs and prefix bindings (§4.6), cross-checked against the
// well-known SPDX 3.0 terms namespace (§11 of SPEC_FULL.md).
const (
	nsRDF     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	nsRDFS    = "http://www.w3.org/2000/01/rdf-schema#"
	nsOWL     = "http://www.w3.org/2002/07/owl#"
	nsXSD     = "http://www.w3.org/2001/XMLSchema#"
	nsSH      = "http://www.w3.org/ns/shacl#"
	nsDCTerms = "http://purl.org/dc/terms/"
	nsAnnot   = "https://spdx.org/rdf/3.0.1/annotations/"
)

// Prefixes is the ordered prefix -> namespace binding table used by the
// human-readable serializers (Turtle family, TriG, RDF/XML).
var Prefixes = []struct{ Prefix, NS string }{
	{"rdf", nsRDF},
	{"rdfs", nsRDFS},
	{"owl", nsOWL},
	{"xsd", nsXSD},
	{"sh", nsSH},
	{"dcterms", nsDCTerms},
	{"spdxAnnot", nsAnnot},
}

const (
	rdfType  = nsRDF + "type"
	rdfFirst = nsRDF + "first"
	rdfRest  = nsRDF + "rest"
	rdfNil   = nsRDF + "nil"

	owlClass            = nsOWL + "Class"
	owlOntology          = nsOWL + "Ontology"
	owlObjectProperty    = nsOWL + "ObjectProperty"
	owlDatatypeProperty  = nsOWL + "DatatypeProperty"
	owlNamedIndividual   = nsOWL + "NamedIndividual"
	owlSameAs            = nsOWL + "sameAs"
	owlVersionIRI         = nsOWL + "versionIRI"

	rdfsSubClassOf = nsRDFS + "subClassOf"
	rdfsComment    = nsRDFS + "comment"
	rdfsLabel      = nsRDFS + "label"
	rdfsRange      = nsRDFS + "range"

	shNodeShape  = nsSH + "NodeShape"
	shProperty   = nsSH + "property"
	shPath       = nsSH + "path"
	shNot        = nsSH + "not"
	shOr         = nsSH + "or"
	shHasValue   = nsSH + "hasValue"
	shMessage    = nsSH + "message"
	shNodeKind   = nsSH + "nodeKind"
	shIRIKind    = nsSH + "IRI"
	shBlankOrIRI = nsSH + "BlankNodeOrIRI"
	shLiteral    = nsSH + "Literal"
	shClass      = nsSH + "class"
	shDatatype   = nsSH + "datatype"
	shPattern    = nsSH + "pattern"
	shMinCount   = nsSH + "minCount"
	shMaxCount   = nsSH + "maxCount"
	shIn         = nsSH + "in"

	dctermsTitle    = nsDCTerms + "title"
	dctermsAbstract = nsDCTerms + "abstract"
	dctermsCreator  = nsDCTerms + "creator"
	dctermsCreated  = nsDCTerms + "created"
	dctermsLicense  = nsDCTerms + "license"
)

// reservedProperty is excluded from generated property shapes and from
// the ontology's property list (§9 design notes, §4.6).
const reservedProperty = "/Core/spdxId"

// extensionType is the well-known escape-hatch range that triggers the
// "must not be a known, non-extension class" SHACL constraint (§4.6).
const extensionType = "/Extension/Extension"
