// Copyright 2026 The Fundamentals Authors
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

// Package hashmap implements an unordered map from keys to values over an
// open-addressing hash table. The hash function is supplied by the caller
// at construction time; the hashers package provides ready-made ones.
//
// Insert, Remove and Get are the strict operations: they fail on duplicate
// or missing keys. Set, Unset and At are their permissive counterparts.
//
// A Map is NOT goroutine-safe.
package hashmap

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modimore/Fundamentals/containers"
	"github.com/modimore/Fundamentals/internal/hashtable"
)

// Assert Container and serialization implementations.
var _ containers.Container[int] = (*Map[string, int])(nil)
var _ containers.JSONSerializer = (*Map[string, int])(nil)
var _ containers.JSONDeserializer = (*Map[string, int])(nil)

// Map is an unordered map from keys of type K to values of type V.
type Map[K comparable, V any] struct {
	tbl *hashtable.Table[K, V]
}

// New constructs an empty map using the supplied hash function, which must
// agree with key equality. It fails with containers.ErrMissingHashFunction
// if hash is nil.
func New[K comparable, V any](hash func(K) uint64, opts ...Option) (*Map[K, V], error) {
	var s settings
	for _, o := range opts {
		o.apply(&s)
	}
	tbl, err := hashtable.NewSized[K, V](hash, s.capacity)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tbl: tbl}, nil
}

// Size returns the number of entries in the map.
func (m *Map[K, V]) Size() int {
	return m.tbl.Len()
}

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool {
	return m.tbl.Len() == 0
}

// Contains reports whether key is present in the map.
func (m *Map[K, V]) Contains(key K) bool {
	return m.tbl.Contains(key)
}

// Insert adds a new entry to the map. It fails with
// containers.ErrDuplicateKey if the key is already present, leaving the map
// unchanged.
func (m *Map[K, V]) Insert(key K, value V) error {
	if !m.tbl.Insert(key, value) {
		return containers.ErrDuplicateKey
	}
	return nil
}

// Remove deletes the entry for key. It fails with containers.ErrMissingKey
// if the key is not present.
func (m *Map[K, V]) Remove(key K) error {
	if !m.tbl.Remove(key) {
		return containers.ErrMissingKey
	}
	return nil
}

// Set stores an entry, overwriting the existing value if the key is
// already present. It is the permissive version of Insert and never fails.
func (m *Map[K, V]) Set(key K, value V) {
	m.tbl.Put(key, value)
}

// Unset deletes the entry for key if one exists. It is the permissive
// version of Remove; removing an absent key is a no-op.
func (m *Map[K, V]) Unset(key K) {
	m.tbl.Remove(key)
}

// Get returns the value stored for key. It fails with
// containers.ErrMissingKey if the key is not present; it never modifies
// the map.
func (m *Map[K, V]) Get(key K) (V, error) {
	value, ok := m.tbl.Get(key)
	if !ok {
		return value, containers.ErrMissingKey
	}
	return value, nil
}

// At returns a pointer to the value stored for key, first inserting a zero
// value if the key is absent. The pointer is valid only until the next
// mutating operation on the map.
func (m *Map[K, V]) At(key K) *V {
	return m.tbl.At(key)
}

// Keys returns a freshly allocated slice of all keys. The order is the
// table's slot-scan order and is unspecified.
func (m *Map[K, V]) Keys() []K {
	return m.tbl.Keys()
}

// Values returns a freshly allocated slice of all values, in the same
// unspecified order as Keys.
func (m *Map[K, V]) Values() []V {
	return m.tbl.Values()
}

// All calls yield for each entry until yield returns false. The map must
// not be mutated during iteration.
func (m *Map[K, V]) All(yield func(key K, value V) bool) {
	m.tbl.All(yield)
}

// Clear removes all entries from the map.
func (m *Map[K, V]) Clear() {
	m.tbl.Clear()
}

// Clone returns a map with the same contents. Cloning reinserts every
// entry into a freshly sized table; the two maps share no state.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{tbl: m.tbl.Clone()}
}

// EqualFunc reports whether two maps hold the same keys with equal values,
// comparing values with eq.
func (m *Map[K, V]) EqualFunc(other *Map[K, V], eq func(a, b V) bool) bool {
	return m.tbl.EqualFunc(other.tbl, eq)
}

// Equal reports whether two maps hold the same keys with equal values.
// Equality is logical: physical slot layout plays no part, so maps built
// from the same entries in different orders compare equal.
func Equal[K comparable, V comparable](a, b *Map[K, V]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}

// String returns a string representation of the map.
func (m *Map[K, V]) String() string {
	items := make([]string, 0, m.Size())
	m.All(func(key K, value V) bool {
		items = append(items, fmt.Sprintf("%v:%v", key, value))
		return true
	})
	return "HashMap\n" + strings.Join(items, ", ")
}

// ToJSON outputs the JSON representation of the map's entries.
func (m *Map[K, V]) ToJSON() ([]byte, error) {
	elements := make(map[K]V, m.Size())
	m.All(func(key K, value V) bool {
		elements[key] = value
		return true
	})
	return json.Marshal(elements)
}

// FromJSON adds entries from the input JSON representation to the map.
func (m *Map[K, V]) FromJSON(data []byte) error {
	var elements map[K]V
	if err := json.Unmarshal(data, &elements); err != nil {
		return err
	}
	for key, value := range elements {
		m.Set(key, value)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	return m.ToJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	return m.FromJSON(data)
}
