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

// Package mdparse implements the structured-Markdown front end: the
// section splitter (C1, §4.1) and the three list-body parsers (C2,
// §4.2). It is a hand-rolled, line-oriented scanner in the shape of
// cuelang.org/go's own scanner/parser pair — no general Markdown library
// is used, since the grammar recognized here (exact "# "/"## "
// boundaries, "- Key: Value" lines, 2-4-space/tab nesting) is bespoke,
// not CommonMark.
package mdparse

import (
	"strings"

	"github.com/spdx/spec-compiler/diag"
)

// Section is one "## Title" body recovered by the splitter, not yet
// interpreted as content, a single list, or a nested list.
type Section struct {
	Title     string
	Body      string
	StartLine int // line number of the first line of Body
}

// File is the record produced by the section splitter (§4.1).
type File struct {
	Filename string
	License  string
	Name     string
	NamePos  diag.Position
	Sections map[string]Section
}

// part is one boundary-delimited chunk of the input, with the line number
// of its first line.
type part struct {
	lines     []string
	startLine int
}

func isBoundary(line string) bool {
	return strings.HasPrefix(line, "# ") || strings.HasPrefix(line, "## ")
}

func splitParts(src string) []part {
	// Normalize line endings and drop a single trailing blank line, which
	// corresponds to "a newline immediately preceding end-of-input".
	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(src, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var parts []part
	cur := part{startLine: 1}
	for i, line := range lines {
		lineNo := i + 1
		if lineNo > 1 && isBoundary(line) {
			parts = append(parts, cur)
			cur = part{startLine: lineNo}
		}
		cur.lines = append(cur.lines, line)
	}
	parts = append(parts, cur)
	return parts
}

// Split runs the section splitter (C1) over the text of one spec file.
func Split(filename string, src []byte) (*File, diag.List) {
	var errs diag.List
	parts := splitParts(string(src))

	f := &File{Filename: filename, Sections: make(map[string]Section)}

	if len(parts) < 1 {
		errs.Addf(diag.Position{Filename: filename, Line: 1}, diag.Structural,
			"empty file, missing license and name headers")
		return nil, errs
	}

	licensePart := parts[0]
	licenseText := strings.TrimSpace(strings.Join(licensePart.lines, "\n"))
	const licensePrefix = "SPDX-License-Identifier:"
	if !strings.HasPrefix(licenseText, licensePrefix) {
		errs.Addf(diag.Position{Filename: filename, Line: licensePart.startLine}, diag.Structural,
			"missing required %q header", licensePrefix)
		return nil, errs
	}
	f.License = strings.TrimSpace(strings.TrimPrefix(licenseText, licensePrefix))

	if len(parts) < 2 {
		errs.Addf(diag.Position{Filename: filename, Line: licensePart.startLine}, diag.Structural,
			"missing required '# Name' header")
		return nil, errs
	}
	namePart := parts[1]
	nameLine := strings.TrimSpace(namePart.lines[0])
	if !strings.HasPrefix(nameLine, "# ") {
		errs.Addf(diag.Position{Filename: filename, Line: namePart.startLine}, diag.Structural,
			"missing required '# Name' header")
		return nil, errs
	}
	f.Name = strings.TrimSpace(strings.TrimPrefix(nameLine, "# "))
	f.NamePos = diag.Position{Filename: filename, Line: namePart.startLine, Column: 1}

	for _, p := range parts[2:] {
		if len(strings.TrimSpace(strings.Join(p.lines, "\n"))) == 0 {
			continue
		}
		head := strings.TrimSpace(p.lines[0])
		if !strings.HasPrefix(head, "## ") {
			errs.Addf(diag.Position{Filename: filename, Line: p.startLine}, diag.Structural,
				"expected '## <Title>' section header, got %q", head)
			continue
		}
		title := strings.TrimSpace(strings.TrimPrefix(head, "## "))
		body := strings.TrimRight(strings.Join(p.lines[1:], "\n"), " \t\n")
		if strings.TrimSpace(body) == "" {
			errs.Addf(diag.Position{Filename: filename, Line: p.startLine}, diag.Structural,
				"section %q is empty", title)
			continue
		}
		if _, dup := f.Sections[title]; dup {
			errs.Addf(diag.Position{Filename: filename, Line: p.startLine}, diag.Schema,
				"duplicate section %q", title)
			continue
		}
		f.Sections[title] = Section{Title: title, Body: body, StartLine: p.startLine + 1}
	}

	return f, errs
}
