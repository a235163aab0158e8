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

// Package dynamicarray implements a growable contiguous array. It is the
// ordered growable buffer the hash-based containers in this module build
// on: the hash table stores its slot records in an Array and materializes
// key and value sequences through one.
//
// An Array is NOT goroutine-safe.
package dynamicarray

import (
	"fmt"
	"strings"

	"github.com/modimore/Fundamentals/containers"
)

const (
	defaultCapacity = 8
	growthFactor    = 2
)

// Assert Container implementation.
var _ containers.Container[int] = (*Array[int])(nil)

// Array is a dynamically-sized array. The zero value is an empty array
// ready for use.
type Array[T any] struct {
	data []T
	size int
}

// New constructs an empty array with a small initial capacity.
func New[T any]() *Array[T] {
	return &Array[T]{data: make([]T, defaultCapacity)}
}

// NewSized constructs an array holding n zero-valued elements.
func NewSized[T any](n int) *Array[T] {
	return &Array[T]{data: make([]T, n), size: n}
}

// NewFilled constructs an array holding n copies of value.
func NewFilled[T any](n int, value T) *Array[T] {
	a := &Array[T]{data: make([]T, n), size: n}
	for i := range a.data {
		a.data[i] = value
	}
	return a
}

// Size returns the number of elements in the array.
func (a *Array[T]) Size() int {
	return a.size
}

// Capacity returns the number of elements the array can hold before it must
// reallocate.
func (a *Array[T]) Capacity() int {
	return len(a.data)
}

// Empty reports whether the array holds no elements.
func (a *Array[T]) Empty() bool {
	return a.size == 0
}

// Reserve grows the backing buffer to hold at least capacity elements. It
// never shrinks the buffer and never changes the array's size.
func (a *Array[T]) Reserve(capacity int) {
	if capacity <= len(a.data) {
		return
	}
	data := make([]T, capacity)
	copy(data, a.data[:a.size])
	a.data = data
}

// Resize sets the array's size to n. Growing appends zero-valued elements;
// shrinking discards elements from the back.
func (a *Array[T]) Resize(n int) {
	if n > len(a.data) {
		a.Reserve(n)
	}
	if n < a.size {
		// Zero the abandoned tail so the buffer does not pin references.
		var zero T
		for i := n; i < a.size; i++ {
			a.data[i] = zero
		}
	}
	a.size = n
}

// PushBack appends value to the back of the array.
func (a *Array[T]) PushBack(value T) {
	if a.size == len(a.data) {
		next := len(a.data) * growthFactor
		if next == 0 {
			next = 1
		}
		a.Reserve(next)
	}
	a.data[a.size] = value
	a.size++
}

// PopBack removes the last element of the array.
func (a *Array[T]) PopBack() error {
	if a.size == 0 {
		return containers.ErrOutOfBounds
	}
	a.size--
	var zero T
	a.data[a.size] = zero
	return nil
}

// PushFront prepends value to the front of the array, shifting every
// existing element one index forward.
func (a *Array[T]) PushFront(value T) {
	a.PushBack(value)
	copy(a.data[1:a.size], a.data[:a.size-1])
	a.data[0] = value
}

// PopFront removes the first element of the array, shifting every remaining
// element one index backward.
func (a *Array[T]) PopFront() error {
	if a.size == 0 {
		return containers.ErrOutOfBounds
	}
	copy(a.data[:a.size-1], a.data[1:a.size])
	return a.PopBack()
}

// Insert places value at index i, shifting the elements at and after i one
// index forward. i may equal Size(), in which case Insert behaves like
// PushBack.
func (a *Array[T]) Insert(i int, value T) error {
	if i < 0 || i > a.size {
		return containers.ErrOutOfBounds
	}
	a.PushBack(value)
	copy(a.data[i+1:a.size], a.data[i:a.size-1])
	a.data[i] = value
	return nil
}

// Remove deletes the element at index i, shifting the elements after it one
// index backward.
func (a *Array[T]) Remove(i int) error {
	if i < 0 || i >= a.size {
		return containers.ErrOutOfBounds
	}
	copy(a.data[i:a.size-1], a.data[i+1:a.size])
	return a.PopBack()
}

// At returns a pointer to the element at index i. The index must be in
// range [0, Size()); At performs no bounds check of its own beyond the
// runtime's. The pointer remains valid until the array reallocates.
func (a *Array[T]) At(i int) *T {
	return &a.data[i]
}

// Get returns the element at index i.
func (a *Array[T]) Get(i int) (T, error) {
	if i < 0 || i >= a.size {
		var zero T
		return zero, containers.ErrOutOfBounds
	}
	return a.data[i], nil
}

// Set replaces the element at index i with value.
func (a *Array[T]) Set(i int, value T) error {
	if i < 0 || i >= a.size {
		return containers.ErrOutOfBounds
	}
	a.data[i] = value
	return nil
}

// Front returns the first element of the array.
func (a *Array[T]) Front() (T, error) {
	if a.size == 0 {
		var zero T
		return zero, containers.ErrOutOfBounds
	}
	return a.data[0], nil
}

// Back returns the last element of the array.
func (a *Array[T]) Back() (T, error) {
	if a.size == 0 {
		var zero T
		return zero, containers.ErrOutOfBounds
	}
	return a.data[a.size-1], nil
}

// Clear removes all elements, keeping the current capacity.
func (a *Array[T]) Clear() {
	a.Resize(0)
}

// Values returns a freshly allocated slice of the array's elements in
// order.
func (a *Array[T]) Values() []T {
	values := make([]T, a.size)
	copy(values, a.data[:a.size])
	return values
}

// Each calls f once for each element, passing the element's index and
// value.
func (a *Array[T]) Each(f func(index int, value T)) {
	for i := 0; i < a.size; i++ {
		f(i, a.data[i])
	}
}

// EqualFunc reports whether two arrays hold equal elements in the same
// order, comparing elements with eq.
func (a *Array[T]) EqualFunc(other *Array[T], eq func(a, b T) bool) bool {
	if a.size != other.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.data[i], other.data[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether two arrays hold equal elements in the same order.
func Equal[T comparable](a, b *Array[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// String returns a string representation of the array.
func (a *Array[T]) String() string {
	items := make([]string, 0, a.size)
	for i := 0; i < a.size; i++ {
		items = append(items, fmt.Sprintf("%v", a.data[i]))
	}
	return "DynamicArray\n" + strings.Join(items, ", ")
}
