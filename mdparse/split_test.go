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
	"testing"

	"github.com/go-quicktest/qt"
)

const sampleFile = `SPDX-License-Identifier: CC0-1.0
# Element
## Summary
A short summary.
## Description
A longer description
spanning two lines.
## Metadata
- Instantiability: Abstract
- SubclassOf: none
`

func TestSplitWellFormed(t *testing.T) {
	f, errs := Split("Element.md", []byte(sampleFile))
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.Equals(f.License, "CC0-1.0"))
	qt.Assert(t, qt.Equals(f.Name, "Element"))
	qt.Assert(t, qt.HasLen(f.Sections, 3))
	qt.Assert(t, qt.Equals(f.Sections["Summary"].Body, "A short summary."))
	qt.Assert(t, qt.Equals(f.Sections["Description"].Body, "A longer description\nspanning two lines."))
}

func TestSplitMissingLicense(t *testing.T) {
	_, errs := Split("Bad.md", []byte("# Element\n## Summary\nx\n"))
	qt.Assert(t, qt.IsTrue(errs.HasErrors()))
}

func TestSplitMissingNameHeader(t *testing.T) {
	_, errs := Split("Bad.md", []byte("SPDX-License-Identifier: CC0-1.0\n"))
	qt.Assert(t, qt.IsTrue(errs.HasErrors()))
}

func TestSplitDuplicateSection(t *testing.T) {
	src := "SPDX-License-Identifier: CC0-1.0\n# Element\n## Summary\na\n## Summary\nb\n"
	f, errs := Split("Dup.md", []byte(src))
	qt.Assert(t, qt.IsTrue(errs.HasErrors()))
	qt.Assert(t, qt.Equals(f.Sections["Summary"].Body, "a"))
}

func TestSplitEmptySection(t *testing.T) {
	src := "SPDX-License-Identifier: CC0-1.0\n# Element\n## Summary\n\n## Description\nok\n"
	_, errs := Split("Empty.md", []byte(src))
	qt.Assert(t, qt.IsTrue(errs.HasErrors()))
}
