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

// The constants and helper below are re-exported for package jsonld
// (C7), which walks the same graph C6 built rather than duplicating its
// vocabulary IRIs.
const (
	RDFType             = rdfType
	RDFFirst            = rdfFirst
	RDFRest             = rdfRest
	RDFNil              = rdfNil
	SHClass             = shClass
	SHIn                = shIn
	OWLObjectProperty   = owlObjectProperty
	OWLDatatypeProperty = owlDatatypeProperty
	RDFSRange           = rdfsRange
)

// TermKey returns the grouping key BySubject uses for t, so callers can
// look up a term's outgoing triples in the map BySubject returns.
func TermKey(t Term) string { return termKey(t) }
