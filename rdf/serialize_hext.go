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
	"encoding/json"
	"strings"
)

// SerializeHext renders g as newline-delimited Hextuples (format
// "hext"): [subject, predicate, value, type, language-or-datatype,
// graph] per line, with graph always "" (the model has a single default
// graph).
func SerializeHext(g *Graph) (string, error) {
	var b strings.Builder
	for _, tr := range g.Triples {
		var value, kind, extra string
		switch tr.Object.Kind {
		case KindIRI:
			value, kind = tr.Object.Value, "globalId"
		case KindBlank:
			value, kind = "_:"+tr.Object.Value, "blankNode"
		default:
			value, kind = tr.Object.Value, "literal"
			switch {
			case tr.Object.Lang != "":
				extra = tr.Object.Lang
			case tr.Object.Datatype != "":
				extra = tr.Object.Datatype
			default:
				extra = nsXSD + "string"
			}
		}
		row := []string{termKey(tr.Subject), tr.Predicate.Value, value, kind, extra, ""}
		line, err := json.Marshal(row)
		if err != nil {
			return "", err
		}
		b.Write(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}
