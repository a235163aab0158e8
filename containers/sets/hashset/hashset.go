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

// Package hashset implements an unordered set of elements over the same
// open-addressing hash table as the hashmap package, instantiated with
// key-only slots. The hash function is supplied by the caller at
// construction time.
//
// Insert and Remove are the strict operations: they fail on duplicate or
// missing elements. Add and Discard are their permissive counterparts.
//
// A Set is NOT goroutine-safe.
package hashset

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modimore/Fundamentals/containers"
	"github.com/modimore/Fundamentals/internal/hashtable"
)

// Assert Container and serialization implementations.
var _ containers.Container[int] = (*Set[int])(nil)
var _ containers.JSONSerializer = (*Set[int])(nil)
var _ containers.JSONDeserializer = (*Set[int])(nil)

// Set is an unordered set of elements of type T.
type Set[T comparable] struct {
	tbl *hashtable.Table[T, struct{}]
}

// New constructs an empty set using the supplied hash function, which must
// agree with element equality. It fails with
// containers.ErrMissingHashFunction if hash is nil.
func New[T comparable](hash func(T) uint64, opts ...Option) (*Set[T], error) {
	var s settings
	for _, o := range opts {
		o.apply(&s)
	}
	tbl, err := hashtable.NewSized[T, struct{}](hash, s.capacity)
	if err != nil {
		return nil, err
	}
	return &Set[T]{tbl: tbl}, nil
}

// Size returns the number of elements in the set.
func (s *Set[T]) Size() int {
	return s.tbl.Len()
}

// Empty reports whether the set holds no elements.
func (s *Set[T]) Empty() bool {
	return s.tbl.Len() == 0
}

// Contains reports whether every one of the given elements is present in
// the set. With no arguments it returns true: any set is a superset of the
// empty set.
func (s *Set[T]) Contains(elements ...T) bool {
	for _, element := range elements {
		if !s.tbl.Contains(element) {
			return false
		}
	}
	return true
}

// Insert adds a new element to the set. It fails with
// containers.ErrDuplicateElement if the element is already present,
// leaving the set unchanged.
func (s *Set[T]) Insert(element T) error {
	if !s.tbl.Insert(element, struct{}{}) {
		return containers.ErrDuplicateElement
	}
	return nil
}

// Remove deletes an element from the set. It fails with
// containers.ErrMissingElement if the element is not present.
func (s *Set[T]) Remove(element T) error {
	if !s.tbl.Remove(element) {
		return containers.ErrMissingElement
	}
	return nil
}

// Add adds the elements (one or more) to the set. Elements already present
// are left as they are; Add never fails.
func (s *Set[T]) Add(elements ...T) {
	for _, element := range elements {
		s.tbl.Put(element, struct{}{})
	}
}

// Discard removes the elements (one or more) from the set. Absent elements
// are ignored; Discard never fails.
func (s *Set[T]) Discard(elements ...T) {
	for _, element := range elements {
		s.tbl.Remove(element)
	}
}

// Values returns a freshly allocated slice of all elements. The order is
// the table's slot-scan order and is unspecified.
func (s *Set[T]) Values() []T {
	return s.tbl.Keys()
}

// All calls yield for each element until yield returns false. The set must
// not be mutated during iteration.
func (s *Set[T]) All(yield func(element T) bool) {
	s.tbl.All(func(key T, _ struct{}) bool {
		return yield(key)
	})
}

// Clear removes all elements from the set.
func (s *Set[T]) Clear() {
	s.tbl.Clear()
}

// Clone returns a set with the same elements. Cloning reinserts every
// element into a freshly sized table; the two sets share no state.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{tbl: s.tbl.Clone()}
}

// Equal reports whether two sets hold the same elements. Equality is
// logical: physical slot layout plays no part, so sets built from the same
// elements in different orders compare equal.
func (s *Set[T]) Equal(other *Set[T]) bool {
	return s.tbl.EqualFunc(other.tbl, func(_, _ struct{}) bool { return true })
}

// Union returns a new set of all elements that are in s or other or both.
// The result uses s's hash function.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	result := s.Clone()
	other.All(func(element T) bool {
		result.Add(element)
		return true
	})
	return result
}

// Intersection returns a new set of all elements that are in both s and
// other. The result uses s's hash function.
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	result := &Set[T]{tbl: s.emptyTable()}
	// Iterate over the smaller set.
	a, b := s, other
	if a.Size() > b.Size() {
		a, b = b, a
	}
	a.All(func(element T) bool {
		if b.Contains(element) {
			result.Add(element)
		}
		return true
	})
	return result
}

// Difference returns a new set of all elements that are in s but not in
// other. The result uses s's hash function.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	result := &Set[T]{tbl: s.emptyTable()}
	s.All(func(element T) bool {
		if !other.Contains(element) {
			result.Add(element)
		}
		return true
	})
	return result
}

func (s *Set[T]) emptyTable() *hashtable.Table[T, struct{}] {
	tbl, _ := hashtable.New[T, struct{}](s.tbl.Hash())
	return tbl
}

// String returns a string representation of the set.
func (s *Set[T]) String() string {
	items := make([]string, 0, s.Size())
	s.All(func(element T) bool {
		items = append(items, fmt.Sprintf("%v", element))
		return true
	})
	return "HashSet\n" + strings.Join(items, ", ")
}

// ToJSON outputs the JSON representation of the set's elements.
func (s *Set[T]) ToJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// FromJSON adds elements from the input JSON representation to the set.
func (s *Set[T]) FromJSON(data []byte) error {
	var elements []T
	if err := json.Unmarshal(data, &elements); err != nil {
		return err
	}
	s.Add(elements...)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s *Set[T]) MarshalJSON() ([]byte, error) {
	return s.ToJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	return s.FromJSON(data)
}
