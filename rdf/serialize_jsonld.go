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

	"github.com/spdx/spec-compiler/model"
)

func jsonldTermValue(t Term) any {
	switch t.Kind {
	case KindIRI:
		return map[string]string{"@id": t.Value}
	case KindBlank:
		return map[string]string{"@id": "_:" + t.Value}
	default:
		if t.Lang != "" {
			return map[string]string{"@value": t.Value, "@language": t.Lang}
		}
		if t.Datatype != "" && t.Datatype != nsXSD+"string" {
			return map[string]string{"@value": t.Value, "@type": t.Datatype}
		}
		return t.Value
	}
}

// SerializeJSONLD renders g as an expanded JSON-LD "@graph" document
// (format "json-ld"): one node object per subject, built with
// model.OrderedMap so that predicate order matches emission order
// rather than Go's unspecified map order.
func SerializeJSONLD(g *Graph) (string, error) {
	subjects, bySubject := g.BySubject()

	graph := make([]*model.OrderedMap[any], 0, len(subjects))
	for _, s := range subjects {
		node := model.NewOrderedMap[any]()
		if s.Kind == KindBlank {
			node.Set("@id", "_:"+s.Value)
		} else {
			node.Set("@id", s.Value)
		}

		var types []string
		predOrder := []string{}
		values := map[string][]any{}
		for _, tr := range bySubject[termKey(s)] {
			if tr.Predicate.Value == rdfType {
				types = append(types, tr.Object.Value)
				continue
			}
			key := tr.Predicate.Value
			if _, seen := values[key]; !seen {
				predOrder = append(predOrder, key)
			}
			values[key] = append(values[key], jsonldTermValue(tr.Object))
		}
		if len(types) > 0 {
			node.Set("@type", types)
		}
		for _, key := range predOrder {
			node.Set(key, values[key])
		}
		graph = append(graph, node)
	}

	doc := model.NewOrderedMap[any]()
	doc.Set("@graph", graph)

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}
