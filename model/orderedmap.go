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

import "encoding/json"

// OrderedMap is a generic set of key-value pairs that preserves insertion
// order. Every per-kind collection in the model (namespaces, classes,
// properties, vocabulary entries, effective properties, ...) uses this
// type so that iteration order matches §5's ordering guarantees without
// a separate index slice at each call site.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedMap returns an empty ordered map.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{values: make(map[string]V)}
}

// Set inserts or replaces the value for key, preserving the key's original
// position if it already existed.
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it was present.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *OrderedMap[V]) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[V]) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int { return len(m.keys) }

// Each calls fn for every entry in insertion order.
func (m *OrderedMap[V]) Each(fn func(key string, value V)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}

// Values returns the values in insertion order.
func (m *OrderedMap[V]) Values() []V {
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

// MarshalJSON renders the map as a JSON object preserving insertion
// order, the way encoding/openapi.OrderedMap does for OpenAPI documents;
// a plain Go map would marshal with its keys sorted instead of in the
// order callers built up, which the JSON-LD emitter (C7)
// relies on for deterministic output (§8 property 9).
func (m *OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var b []byte
	b = append(b, '{')
	for i, k := range m.keys {
		if i > 0 {
			b = append(b, ',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		b = append(b, key...)
		b = append(b, ':')
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		b = append(b, val...)
	}
	b = append(b, '}')
	return b, nil
}

// Clone returns a shallow copy; callers that need value-level copies
// (e.g. the analyzer's effective-property merge, §4.5 step 6) must clone
// each value explicitly before re-inserting it.
func (m *OrderedMap[V]) Clone() *OrderedMap[V] {
	out := NewOrderedMap[V]()
	out.keys = append(out.keys, m.keys...)
	out.values = make(map[string]V, len(m.values))
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}
