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

package model

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestExpandFQN(t *testing.T) {
	cases := []struct{ ns, token, want string }{
		{"Core", "Element", "/Core/Element"},
		{"Core", "/Other/Thing", "/Other/Thing"},
		{"Core", "xsd:string", "xsd:string"},
		{"Core", "", ""},
	}
	for _, c := range cases {
		qt.Assert(t, qt.Equals(ExpandFQN(c.ns, c.token), c.want))
	}
}

func TestShortName(t *testing.T) {
	qt.Assert(t, qt.Equals(ShortName("/Core/Element"), "Element"))
	qt.Assert(t, qt.Equals(ShortName("NoSlash"), "NoSlash"))
	qt.Assert(t, qt.Equals(ShortName("/Core/Nested/Name"), "Name"))
}

func TestOrderedMapPreservesInsertionOrder(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("z", 1)
	m.Set("a", 2)
	m.Set("m", 3)
	qt.Assert(t, qt.DeepEquals(m.Keys(), []string{"z", "a", "m"}))
	qt.Assert(t, qt.DeepEquals(m.Values(), []int{1, 2, 3}))

	// Re-setting an existing key keeps its original position.
	m.Set("a", 20)
	qt.Assert(t, qt.DeepEquals(m.Keys(), []string{"z", "a", "m"}))
	v, ok := m.Get("a")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, 20))
}

func TestOrderedMapMarshalJSONPreservesOrder(t *testing.T) {
	m := NewOrderedMap[any]()
	m.Set("spdxId", "@id")
	m.Set("type", "@type")
	m.Set("alpha", 1)

	b, err := m.MarshalJSON()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(string(b), `{"spdxId":"@id","type":"@type","alpha":1}`))
}

func TestOrderedMapClone(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("a", 1)
	clone := m.Clone()
	clone.Set("b", 2)

	qt.Assert(t, qt.Equals(m.Len(), 1))
	qt.Assert(t, qt.Equals(clone.Len(), 2))
}
