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

// Package linkedlist implements a doubly-linked list with bidirectional
// stateful iterators.
//
// A List is NOT goroutine-safe.
package linkedlist

import (
	"fmt"
	"strings"

	"github.com/modimore/Fundamentals/containers"
)

// Assert Container implementation.
var _ containers.Container[int] = (*List[int])(nil)

type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// List is a doubly-linked list. The zero value is an empty list ready for
// use.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New constructs an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// NewFilled constructs a list holding n copies of value.
func NewFilled[T any](n int, value T) *List[T] {
	l := &List[T]{}
	for i := 0; i < n; i++ {
		l.PushBack(value)
	}
	return l
}

// Size returns the number of elements in the list.
func (l *List[T]) Size() int {
	return l.size
}

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// PushFront prepends value to the list.
func (l *List[T]) PushFront(value T) {
	n := &node[T]{value: value, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.size++
}

// PushBack appends value to the list.
func (l *List[T]) PushBack(value T) {
	n := &node[T]{value: value, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// PopFront removes the first element of the list.
func (l *List[T]) PopFront() error {
	if l.head == nil {
		return containers.ErrOutOfBounds
	}
	l.unlink(l.head)
	return nil
}

// PopBack removes the last element of the list.
func (l *List[T]) PopBack() error {
	if l.tail == nil {
		return containers.ErrOutOfBounds
	}
	l.unlink(l.tail)
	return nil
}

// Front returns the first element of the list.
func (l *List[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, containers.ErrOutOfBounds
	}
	return l.head.value, nil
}

// Back returns the last element of the list.
func (l *List[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, containers.ErrOutOfBounds
	}
	return l.tail.value, nil
}

// Insert places value immediately before the iterator's position. An
// iterator positioned past the last element inserts at the back, so
// repeatedly inserting at an end iterator appends in order. The iterator
// remains positioned on the element it pointed at before the call.
func (l *List[T]) Insert(it *Iterator[T], value T) error {
	if it.list != l {
		return containers.ErrMismatchedIterator
	}
	switch {
	case it.atEnd || l.head == nil:
		l.PushBack(value)
	case it.node == nil || it.node == l.head:
		l.PushFront(value)
	default:
		n := &node[T]{value: value, prev: it.node.prev, next: it.node}
		it.node.prev.next = n
		it.node.prev = n
		l.size++
	}
	return nil
}

// Remove deletes the element at the iterator's position. The iterator is
// advanced to the element after the removed one, or to the past-the-end
// position if the removed element was last.
func (l *List[T]) Remove(it *Iterator[T]) error {
	if it.list != l {
		return containers.ErrMismatchedIterator
	}
	if it.node == nil {
		return containers.ErrOutOfBounds
	}
	next := it.node.next
	l.unlink(it.node)
	it.node = next
	if next == nil {
		it.atEnd = true
	}
	return nil
}

func (l *List[T]) unlink(n *node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.size--
}

// Clear removes all elements from the list.
func (l *List[T]) Clear() {
	l.head, l.tail = nil, nil
	l.size = 0
}

// Values returns a freshly allocated slice of the list's elements from
// front to back.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// Each calls f once for each element from front to back, passing the
// element's position and value.
func (l *List[T]) Each(f func(index int, value T)) {
	i := 0
	for n := l.head; n != nil; n = n.next {
		f(i, n.value)
		i++
	}
}

// EqualFunc reports whether two lists hold equal elements in the same
// order, comparing elements with eq.
func (l *List[T]) EqualFunc(other *List[T], eq func(a, b T) bool) bool {
	if l.size != other.size {
		return false
	}
	for a, b := l.head, other.head; a != nil; a, b = a.next, b.next {
		if !eq(a.value, b.value) {
			return false
		}
	}
	return true
}

// Equal reports whether two lists hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// String returns a string representation of the list.
func (l *List[T]) String() string {
	items := make([]string, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		items = append(items, fmt.Sprintf("%v", n.value))
	}
	return "LinkedList\n" + strings.Join(items, ", ")
}

// Iterator is a stateful bidirectional iterator over a List. A fresh
// iterator is positioned before the first element; call Next to move to
// the first element. Iterators are invalidated by Clear and by removal of
// the element they point at through another iterator.
type Iterator[T any] struct {
	list  *List[T]
	node  *node[T]
	atEnd bool
}

// Iterator returns an iterator positioned before the list's first element.
func (l *List[T]) Iterator() Iterator[T] {
	return Iterator[T]{list: l}
}

// Next moves the iterator to the next element and reports whether one
// exists.
func (it *Iterator[T]) Next() bool {
	if it.atEnd {
		return false
	}
	if it.node == nil {
		it.node = it.list.head
	} else {
		it.node = it.node.next
	}
	if it.node == nil {
		it.atEnd = true
		return false
	}
	return true
}

// Prev moves the iterator to the previous element and reports whether one
// exists.
func (it *Iterator[T]) Prev() bool {
	switch {
	case it.atEnd:
		it.node = it.list.tail
		it.atEnd = false
	case it.node == nil:
		return false
	default:
		it.node = it.node.prev
	}
	return it.node != nil
}

// Begin resets the iterator to its initial position before the first
// element.
func (it *Iterator[T]) Begin() {
	it.node = nil
	it.atEnd = false
}

// End moves the iterator past the last element.
func (it *Iterator[T]) End() {
	it.node = nil
	it.atEnd = true
}

// First moves the iterator to the first element and reports whether one
// exists.
func (it *Iterator[T]) First() bool {
	it.Begin()
	return it.Next()
}

// Last moves the iterator to the last element and reports whether one
// exists.
func (it *Iterator[T]) Last() bool {
	it.End()
	return it.Prev()
}

// Value returns the element at the iterator's position, or the zero value
// if the iterator is not positioned on an element.
func (it *Iterator[T]) Value() T {
	if it.node == nil {
		var zero T
		return zero
	}
	return it.node.value
}

// Set replaces the element at the iterator's position. It is a no-op if
// the iterator is not positioned on an element.
func (it *Iterator[T]) Set(value T) {
	if it.node != nil {
		it.node.value = value
	}
}
