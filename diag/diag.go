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

package diag

import (
	"fmt"
	"sort"
)

// Kind classifies a diagnostic per the error-handling design in §7 of the
// specification.
type Kind int

const (
	// Lexical marks a malformed section header, list line, or key/value
	// separator.
	Lexical Kind = iota
	// Structural marks a missing required section/header or empty body.
	Structural
	// Schema marks an unknown metadata key, missing required metadata, a
	// name/header mismatch, a duplicate key, or an unknown entity kind.
	Schema
	// Reference marks a dangling FQN, a range/type mismatch, or a
	// restriction against an unknown property.
	Reference
	// Cycle marks an inheritance cycle.
	Cycle
	// DuplicateContextKey marks a JSON-LD context term collision.
	DuplicateContextKey
	// IO marks a file read/write failure.
	IO
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "LexicalError"
	case Structural:
		return "StructuralError"
	case Schema:
		return "SchemaError"
	case Reference:
		return "ReferenceError"
	case Cycle:
		return "CycleError"
	case DuplicateContextKey:
		return "DuplicateContextKeyError"
	case IO:
		return "IOError"
	default:
		return "UnknownError"
	}
}

// Severity distinguishes a warning, which never aborts the run, from an
// error, which does (at the next safe boundary, per §7).
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Error is a single reported diagnostic.
type Error struct {
	Pos      Position
	Kind     Kind
	Severity Severity
	format   string
	args     []any
}

// Newf builds an error-severity diagnostic.
func Newf(pos Position, kind Kind, format string, args ...any) *Error {
	return &Error{Pos: pos, Kind: kind, Severity: SeverityError, format: format, args: args}
}

// Warnf builds a warning-severity diagnostic.
func Warnf(pos Position, kind Kind, format string, args ...any) *Error {
	return &Error{Pos: pos, Kind: kind, Severity: SeverityWarning, format: format, args: args}
}

// Msg returns the unformatted message and its arguments.
func (e *Error) Msg() (string, []any) { return e.format, e.args }

func (e *Error) Error() string {
	msg := fmt.Sprintf(e.format, e.args...)
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

// List accumulates diagnostics across a phase. The zero value is an empty
// list ready to use, mirroring the accumulator used throughout the
// compiler's error-reporting interface (§6/§7).
type List []*Error

// Add appends a diagnostic to the list.
func (l *List) Add(e *Error) {
	if e == nil {
		return
	}
	*l = append(*l, e)
}

// Addf is a convenience wrapper for Add(Newf(...)).
func (l *List) Addf(pos Position, kind Kind, format string, args ...any) {
	l.Add(Newf(pos, kind, format, args...))
}

// Warnf is a convenience wrapper for Add(Warnf(...)).
func (l *List) Warnf(pos Position, kind Kind, format string, args ...any) {
	l.Add(Warnf(pos, kind, format, args...))
}

// Extend appends every diagnostic in other to l.
func (l *List) Extend(other List) {
	*l = append(*l, other...)
}

// HasErrors reports whether any SeverityError diagnostic was recorded.
// Warnings alone never make this true (§7: "Warnings ... never trigger
// exit").
func (l List) HasErrors() bool {
	for _, e := range l {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Errors returns only the error-severity diagnostics, in recorded order.
func (l List) Errors() List {
	var out List
	for _, e := range l {
		if e.Severity == SeverityError {
			out = append(out, e)
		}
	}
	return out
}

// Warnings returns only the warning-severity diagnostics, in recorded
// order.
func (l List) Warnings() List {
	var out List
	for _, e := range l {
		if e.Severity == SeverityWarning {
			out = append(out, e)
		}
	}
	return out
}

// Sort orders diagnostics by position for stable, human-readable output.
// Ties keep their relative (input) order.
func (l List) Sort() {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].Pos.Compare(l[j].Pos) < 0
	})
}

func (l List) Error() string {
	switch len(l) {
	case 0:
		return ""
	case 1:
		return l[0].Error()
	}
	s := fmt.Sprintf("%d diagnostics:", len(l))
	for _, e := range l {
		s += "\n\t" + e.Error()
	}
	return s
}
