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

package loaders

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/spdx/spec-compiler/mdparse"
	"github.com/spdx/spec-compiler/model"
)

func mustSplit(t *testing.T, filename, src string) *mdparse.File {
	t.Helper()
	f, errs := mdparse.Split(filename, []byte(src))
	qt.Assert(t, qt.HasLen(errs, 0))
	return f
}

func TestLoadNamespace(t *testing.T) {
	src := `SPDX-License-Identifier: CC0-1.0
# Core
## Summary
The Core profile.
## Description
Foundational classes and properties.
## Metadata
- name: Core
- id: https://spdx.org/rdf/3.0.1/terms/Core
`
	f := mustSplit(t, "Core.md", src)
	ns, errs := LoadNamespace(f)
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.Equals(ns.Name, "Core"))
	qt.Assert(t, qt.Equals(ns.IRI, "https://spdx.org/rdf/3.0.1/terms/Core"))
}

func TestLoadNamespaceNameMismatch(t *testing.T) {
	src := `SPDX-License-Identifier: CC0-1.0
# Core
## Summary
s
## Description
d
## Metadata
- name: NotCore
- id: https://example.org/Core
`
	f := mustSplit(t, "Core.md", src)
	_, errs := LoadNamespace(f)
	qt.Assert(t, qt.IsTrue(errs.HasErrors()))
}

func TestLoadClassWithPropertiesAndRestrictions(t *testing.T) {
	src := `SPDX-License-Identifier: CC0-1.0
# Element
## Summary
s
## Description
d
## Metadata
- name: Element
- SubclassOf: none
- Instantiability: Abstract
## Properties
- name
  - type: xsd:string
  - minCount: 1
- createdBy
  - type: /Core/Agent
  - maxCount: 1
## External properties restrictions
- /Core/Element/name
  - minCount: 1
`
	f := mustSplit(t, "Element.md", src)
	c, errs := LoadClass(f, "Core", "https://spdx.org/rdf/3.0.1/terms/Core")
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.Equals(c.FQName, "/Core/Element"))
	qt.Assert(t, qt.Equals(c.Instantiability, model.Abstract))
	qt.Assert(t, qt.HasLen(c.Properties.Keys(), 2))

	ref, ok := c.Properties.Get("createdBy")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(ref.Type, "/Core/Agent"))
	qt.Assert(t, qt.Equals(ref.MaxCount, "1"))
	qt.Assert(t, qt.Equals(ref.MinCount, 0))

	restr, ok := c.ExtPropRestrs["/Core/Element/name"]
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsNotNil(restr.MinCount))
	qt.Assert(t, qt.Equals(*restr.MinCount, 1))
}

func TestLoadClassUnknownMetadataKey(t *testing.T) {
	src := `SPDX-License-Identifier: CC0-1.0
# Element
## Summary
s
## Description
d
## Metadata
- name: Element
- Bogus: yes
`
	f := mustSplit(t, "Element.md", src)
	_, errs := LoadClass(f, "Core", "https://example.org/Core")
	qt.Assert(t, qt.IsTrue(errs.HasErrors()))
}

func TestLoadProperty(t *testing.T) {
	src := `SPDX-License-Identifier: CC0-1.0
# name
## Summary
s
## Description
d
## Metadata
- name: name
- Nature: DataProperty
- Range: xsd:string
`
	f := mustSplit(t, "name.md", src)
	p, errs := LoadProperty(f, "Core", "https://spdx.org/rdf/3.0.1/terms/Core")
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.Equals(p.FQName, "/Core/name"))
	qt.Assert(t, qt.Equals(string(p.Nature), "DataProperty"))
	qt.Assert(t, qt.Equals(p.Range, "xsd:string"))
}

func TestLoadVocabularyAndDatatype(t *testing.T) {
	vSrc := `SPDX-License-Identifier: CC0-1.0
# ProfileIdentifierType
## Summary
s
## Description
d
## Metadata
- name: ProfileIdentifierType
## Entries
- core: Core profile
- software: Software profile
`
	v, errs := LoadVocabulary(mustSplit(t, "ProfileIdentifierType.md", vSrc), "Core", "https://example.org/Core")
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.HasLen(v.Entries.Keys(), 2))

	dSrc := `SPDX-License-Identifier: CC0-1.0
# SemVer
## Summary
s
## Description
d
## Metadata
- name: SemVer
- SubclassOf: xsd:string
## Format
- pattern: ^[0-9]+\.[0-9]+\.[0-9]+$
`
	d, errs := LoadDatatype(mustSplit(t, "SemVer.md", dSrc), "Core", "https://example.org/Core")
	qt.Assert(t, qt.HasLen(errs, 0))
	qt.Assert(t, qt.Equals(d.SubclassOf, "xsd:string"))
	qt.Assert(t, qt.Equals(d.Format["pattern"], `^[0-9]+\.[0-9]+\.[0-9]+$`))
}
