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
	"os"
	"path/filepath"

	"github.com/spdx/spec-compiler/diag"
)

// Formats lists the serializations §4.6 requires, in emission order.
var Formats = []string{"ttl", "json-ld", "longturtle", "n3", "nt", "pretty-xml", "trig", "hext", "xml"}

func render(g *Graph, baseIRI, format string) (string, error) {
	switch format {
	case "ttl":
		return SerializeTurtle(g, baseIRI), nil
	case "longturtle":
		return SerializeLongTurtle(g, baseIRI), nil
	case "n3":
		return SerializeN3(g, baseIRI), nil
	case "nt":
		return SerializeNTriples(g), nil
	case "trig":
		return SerializeTriG(g, baseIRI), nil
	case "json-ld":
		return SerializeJSONLD(g)
	case "hext":
		return SerializeHext(g)
	case "xml":
		return SerializeXML(g)
	case "pretty-xml":
		return SerializePrettyXML(g)
	default:
		return "", nil
	}
}

// WriteAll serializes g into one "spdx-model.<ext>" file per format
// under dir (§6 emitted artifact layout). Each file is opened, written,
// and closed independently; a failure on one format is reported but does
// not stop the remaining ones (§5 scoped acquisition).
func WriteAll(g *Graph, baseIRI, dir string) diag.List {
	var errs diag.List
	for _, format := range Formats {
		body, err := render(g, baseIRI, format)
		if err != nil {
			errs.Addf(diag.Position{Filename: dir}, diag.IO, "rendering %s: %v", format, err)
			continue
		}
		path := filepath.Join(dir, "spdx-model."+format)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			errs.Addf(diag.Position{Filename: path}, diag.IO, "writing %s: %v", path, err)
		}
	}
	return errs
}
