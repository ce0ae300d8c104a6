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

package mdparse

import (
	"strings"

	"github.com/spdx/spec-compiler/diag"
	"github.com/spdx/spec-compiler/model"
)

// NestedItem is one top-level "- <Item>" entry of a nested-list section,
// together with its indented "- <Key>: <Value>" map.
type NestedItem struct {
	Name   string
	Fields *model.OrderedMap[string]
	Pos    diag.Position
}

// ParseContent implements the content-section shape (§4.2): the body is
// returned verbatim, trailing whitespace already trimmed by the splitter.
func ParseContent(sec Section) string { return sec.Body }

func splitKV(line string) (key, value string, ok bool) {
	rest, found := strings.CutPrefix(line, "- ")
	if !found {
		return "", "", false
	}
	idx := strings.Index(rest, ": ")
	if idx < 0 {
		return "", "", false
	}
	return rest[:idx], rest[idx+2:], true
}

// ParseSingleList implements the single-list section shape (§4.2): each
// non-blank line must be "- Key: Value"; first occurrence wins on
// duplicate keys, with both malformed lines and duplicates reported as
// recoverable errors.
func ParseSingleList(filename string, sec Section) (*model.OrderedMap[string], diag.List) {
	var errs diag.List
	out := model.NewOrderedMap[string]()
	lines := strings.Split(sec.Body, "\n")
	for i, raw := range lines {
		line := strings.TrimRight(raw, " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		pos := diag.Position{Filename: filename, Line: sec.StartLine + i}
		key, value, ok := splitKV(line)
		if !ok {
			errs.Addf(pos, diag.Lexical, "malformed list line %q, expected \"- Key: Value\"", raw)
			continue
		}
		if out.Has(key) {
			errs.Addf(pos, diag.Schema, "duplicate key %q", key)
			continue
		}
		out.Set(key, value)
	}
	return out, errs
}

func indentDepth(line string) (depth int, ok bool) {
	if strings.HasPrefix(line, "\t") {
		return 1, true
	}
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	if n >= 2 && n <= 4 {
		return n, true
	}
	return 0, false
}

// ParseNestedList implements the nested-list section shape (§4.2):
// top-level "- Item" lines each own an indented "- Key: Value" map.
func ParseNestedList(filename string, sec Section) ([]NestedItem, diag.List) {
	var errs diag.List
	var items []NestedItem
	lines := strings.Split(sec.Body, "\n")

	for i := 0; i < len(lines); i++ {
		raw := lines[i]
		line := strings.TrimRight(raw, " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lineNo := sec.StartLine + i
		if _, indented := indentDepth(line); indented {
			errs.Addf(diag.Position{Filename: filename, Line: lineNo}, diag.Lexical,
				"indented line %q with no preceding item", raw)
			continue
		}
		rest, ok := strings.CutPrefix(strings.TrimSpace(line), "- ")
		if !ok {
			errs.Addf(diag.Position{Filename: filename, Line: lineNo}, diag.Lexical,
				"malformed item line %q, expected \"- Item\"", raw)
			continue
		}
		item := NestedItem{
			Name:   strings.TrimSpace(rest),
			Fields: model.NewOrderedMap[string](),
			Pos:    diag.Position{Filename: filename, Line: lineNo},
		}

		for i+1 < len(lines) {
			next := strings.TrimRight(lines[i+1], " \t")
			if strings.TrimSpace(next) == "" {
				i++
				continue
			}
			if _, indented := indentDepth(next); !indented {
				break
			}
			i++
			fieldLine := strings.TrimLeft(next, " \t")
			fieldPos := diag.Position{Filename: filename, Line: sec.StartLine + i}
			key, value, ok := splitKV(fieldLine)
			if !ok {
				errs.Addf(fieldPos, diag.Lexical, "malformed list line %q, expected \"- Key: Value\"", next)
				continue
			}
			if item.Fields.Has(key) {
				errs.Addf(fieldPos, diag.Schema, "duplicate key %q in item %q", key, item.Name)
				continue
			}
			item.Fields.Set(key, value)
		}
		items = append(items, item)
	}
	return items, errs
}
