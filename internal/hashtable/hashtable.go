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

// Package hashtable implements the open-addressing engine shared by the
// hashmap and hashset packages. A Table resolves collisions by probing
// alternate slots of a single contiguous buffer rather than chaining, using
// the perturbed probe sequence from CPython's dict:
//
//	idx' = (idx*5 + 1 + perturb) mod capacity
//
// with perturb starting at hash(key) and losing 4 bits after every step.
// With a power-of-two capacity and the multiplier congruent to 1 mod 4 the
// sequence reaches every slot, so probing always terminates at a usable
// slot. The multiplier 5 and shift 4 are load-bearing; other multipliers
// fail to cover all slots at small capacities.
//
// Deletion never reclaims a slot outright. Each slot carries an everUsed
// flag that is set on first use and never reset, so a vacated slot remains
// distinguishable from one that never held a key. Probe chains that passed
// through the vacated slot when it was full therefore still find their keys
// (see findIndex), while insertion may reuse the vacated slot, which bounds
// probe-chain growth under sustained delete/insert churn.
//
// A Table is NOT goroutine-safe.
package hashtable

import (
	"fmt"

	"github.com/modimore/Fundamentals/containers"
	"github.com/modimore/Fundamentals/containers/arrays/dynamicarray"
)

const (
	// invariantChecks enables the self-checks in checkInvariants after
	// every mutating operation. Far too slow to leave on outside of
	// debugging sessions.
	invariantChecks = false

	minCapacity     = 8
	maxLoadFactor   = 0.75
	growthFactor    = 2
	probeMultiplier = 5
	perturbShift    = 4
)

// slot is a single storage cell of the table.
type slot[K comparable, V any] struct {
	key   K
	value V
	// occupied is true iff a key currently resides here.
	occupied bool
	// everUsed is true iff a key has ever been placed here. It is set by
	// set and never cleared again, including by clear; an everUsed slot
	// that is not occupied is a tombstone.
	everUsed bool
}

func (s *slot[K, V]) set(key K, value V) {
	s.key = key
	s.value = value
	s.occupied = true
	s.everUsed = true
}

func (s *slot[K, V]) clear() {
	var zeroK K
	var zeroV V
	s.key = zeroK
	s.value = zeroV
	s.occupied = false
}

func (s *slot[K, V]) keyMatches(key K) bool {
	return s.occupied && s.key == key
}

// Table is an open-addressing hash table mapping keys to values. The
// hashset package instantiates it with V = struct{}.
type Table[K comparable, V any] struct {
	// hash finds the starting slot index for a key. Required; must agree
	// with key equality.
	hash func(K) uint64
	// slots always holds a power-of-two number of cells, at least
	// minCapacity. The buffer is owned exclusively by this table.
	slots *dynamicarray.Array[slot[K, V]]
	// count is the number of occupied slots, not counting tombstones.
	count int
	// growthThreshold is the count ceiling before a grow is triggered,
	// floor(maxLoadFactor * capacity).
	growthThreshold int
}

// New constructs an empty table using the supplied hash function.
func New[K comparable, V any](hash func(K) uint64) (*Table[K, V], error) {
	return NewSized[K, V](hash, 0)
}

// NewSized constructs an empty table able to hold at least minEntries
// entries before its first grow.
func NewSized[K comparable, V any](hash func(K) uint64, minEntries int) (*Table[K, V], error) {
	if hash == nil {
		return nil, containers.ErrMissingHashFunction
	}
	return newTable[K, V](hash, minEntries), nil
}

func newTable[K comparable, V any](hash func(K) uint64, minEntries int) *Table[K, V] {
	capacity := capacityFor(minEntries)
	return &Table[K, V]{
		hash:            hash,
		slots:           dynamicarray.NewSized[slot[K, V]](capacity),
		growthThreshold: int(float64(capacity) * maxLoadFactor),
	}
}

// capacityFor returns the smallest valid capacity able to hold minEntries
// entries under the maximum load factor: minEntries scaled up by the load
// factor, rounded to the next power of two, floored at minCapacity.
func capacityFor(minEntries int) int {
	scaled := int(float64(minEntries) / maxLoadFactor)
	capacity := minCapacity
	for scaled > capacity {
		capacity <<= 1
	}
	return capacity
}

// Len returns the number of entries in the table.
func (t *Table[K, V]) Len() int {
	return t.count
}

// Hash returns the table's hash function, for constructing sibling tables.
func (t *Table[K, V]) Hash() func(K) uint64 {
	return t.hash
}

func (t *Table[K, V]) capacity() int {
	return t.slots.Size()
}

// findIndex resolves a key to a slot index. The returned slot either holds
// the key already or is the best slot for inserting it; callers distinguish
// the cases by checking occupied on the resolved slot.
//
// Probing runs in two phases sharing one sequence state:
//
// Phase 1 walks the probe sequence past occupied non-matching slots and
// stops at the first slot that is unoccupied or matches. An unoccupied stop
// may be a tombstone, and a tombstone proves nothing about absence: the key
// may have been inserted past it while it was still full. The stop index is
// remembered as the insertion candidate, which lets insertion reuse
// tombstones instead of extending probe chains.
//
// Phase 2 continues from the same index and perturb state past everUsed
// non-matching slots. Reaching a never-used slot proves the key is absent
// from the whole chain, so the phase-1 candidate is returned for insertion;
// reaching a match returns the matching index.
//
// Growth triggers on occupancy alone, so delete/insert churn can leave
// every slot everUsed with no never-used slot to prove absence. Phase 2
// therefore gives up after enough steps to have visited every slot: once
// perturb has decayed to zero (at most 16 steps for a 64-bit hash) the
// recurrence is a full-period LCG over the power-of-two capacity, so
// capacity further steps see every index. Exhausting the bound proves
// absence the same way a never-used slot does.
func (t *Table[K, V]) findIndex(key K) int {
	mask := uint64(t.capacity() - 1)
	hash := t.hash(key)
	perturb := hash
	idx := int(hash & mask)

	s := t.slots.At(idx)
	for s.occupied && s.key != key {
		idx = int((uint64(idx)*probeMultiplier + 1 + perturb) & mask)
		perturb >>= perturbShift
		s = t.slots.At(idx)
	}
	firstCandidate := idx

	limit := t.capacity() + 64/perturbShift
	for steps := 0; steps < limit && s.everUsed && !s.keyMatches(key); steps++ {
		idx = int((uint64(idx)*probeMultiplier + 1 + perturb) & mask)
		perturb >>= perturbShift
		s = t.slots.At(idx)
	}

	if s.keyMatches(key) {
		return idx
	}
	return firstCandidate
}

// Contains reports whether key is present in the table.
func (t *Table[K, V]) Contains(key K) bool {
	return t.slots.At(t.findIndex(key)).occupied
}

// Get returns the value stored for key.
func (t *Table[K, V]) Get(key K) (V, bool) {
	s := t.slots.At(t.findIndex(key))
	if !s.occupied {
		var zero V
		return zero, false
	}
	return s.value, true
}

// Insert stores a new entry and reports whether it did; it refuses to
// overwrite and returns false if key is already present.
func (t *Table[K, V]) Insert(key K, value V) bool {
	if t.slots.At(t.findIndex(key)).occupied {
		return false
	}
	if t.count >= t.growthThreshold {
		t.grow()
	}
	// Resolve again even without a grow: the duplicate check above already
	// walked the sequence, and a grow invalidates every index.
	t.uncheckedPut(key, value)
	t.checkInvariants()
	return true
}

// Put stores an entry, overwriting the existing value if key is already
// present.
func (t *Table[K, V]) Put(key K, value V) {
	s := t.slots.At(t.findIndex(key))
	if s.occupied {
		s.set(key, value)
		return
	}
	if t.count >= t.growthThreshold {
		t.grow()
	}
	t.uncheckedPut(key, value)
	t.checkInvariants()
}

// uncheckedPut inserts an entry known not to be in the table.
func (t *Table[K, V]) uncheckedPut(key K, value V) {
	t.slots.At(t.findIndex(key)).set(key, value)
	t.count++
}

// Remove deletes the entry for key, leaving a tombstone, and reports
// whether the key was present.
func (t *Table[K, V]) Remove(key K) bool {
	s := t.slots.At(t.findIndex(key))
	if !s.occupied {
		return false
	}
	s.clear()
	t.count--
	t.checkInvariants()
	return true
}

// At returns a pointer to the value stored for key, inserting a zero value
// first if the key is absent. The pointer is valid only until the next
// mutating operation on the table.
func (t *Table[K, V]) At(key K) *V {
	idx := t.findIndex(key)
	if !t.slots.At(idx).occupied {
		if t.count >= t.growthThreshold {
			t.grow()
			idx = t.findIndex(key)
		}
		var zero V
		t.slots.At(idx).set(key, zero)
		t.count++
		t.checkInvariants()
	}
	return &t.slots.At(idx).value
}

// grow replaces the slot buffer with a larger one and reinserts every
// occupied entry. The new capacity targets a minimum of growthFactor*count
// entries; tombstones are dropped in the move. The new buffer is fully
// allocated before any entry is moved, so a panic partway (impossible under
// the hash function contract) cannot leave the table half-migrated.
func (t *Table[K, V]) grow() {
	next := newTable[K, V](t.hash, growthFactor*t.count)
	for i, seen := 0, 0; seen < t.count; i++ {
		if s := t.slots.At(i); s.occupied {
			next.uncheckedPut(s.key, s.value)
			seen++
		}
	}
	*t = *next
}

// Clear removes all entries, resetting the table to its minimum capacity.
func (t *Table[K, V]) Clear() {
	*t = *newTable[K, V](t.hash, 0)
}

// Clone returns a table with the same logical contents. The clone gets a
// freshly sized buffer and every entry is reinserted, because slot layout
// depends on capacity; the buffer is never shared or copied wholesale.
func (t *Table[K, V]) Clone() *Table[K, V] {
	next := newTable[K, V](t.hash, t.count)
	for i, seen := 0, 0; seen < t.count; i++ {
		if s := t.slots.At(i); s.occupied {
			next.uncheckedPut(s.key, s.value)
			seen++
		}
	}
	return next
}

// All calls yield for each entry in slot-scan order, stopping early if
// yield returns false. The order is unspecified to callers. The table must
// not be mutated during iteration.
func (t *Table[K, V]) All(yield func(key K, value V) bool) {
	slots := t.slots
	for i, seen := 0, 0; seen < t.count && i < slots.Size(); i++ {
		if s := slots.At(i); s.occupied {
			if !yield(s.key, s.value) {
				return
			}
			seen++
		}
	}
}

// Keys returns a freshly materialized sequence of all keys in slot-scan
// order.
func (t *Table[K, V]) Keys() []K {
	keys := dynamicarray.New[K]()
	keys.Reserve(t.count)
	t.All(func(key K, _ V) bool {
		keys.PushBack(key)
		return true
	})
	return keys.Values()
}

// Values returns a freshly materialized sequence of all values in slot-scan
// order.
func (t *Table[K, V]) Values() []V {
	values := dynamicarray.New[V]()
	values.Reserve(t.count)
	t.All(func(_ K, value V) bool {
		values.PushBack(value)
		return true
	})
	return values.Values()
}

// EqualFunc reports whether two tables hold the same keys with equal
// values, comparing values with eq. The comparison is logical rather than
// index-wise: two equal tables generally differ in physical layout.
func (t *Table[K, V]) EqualFunc(other *Table[K, V], eq func(a, b V) bool) bool {
	if t.count != other.count {
		return false
	}
	equal := true
	t.All(func(key K, value V) bool {
		otherValue, ok := other.Get(key)
		if !ok || !eq(value, otherValue) {
			equal = false
		}
		return equal
	})
	return equal
}

// checkInvariants verifies the structural invariants of the table. It is a
// no-op unless invariantChecks is set.
func (t *Table[K, V]) checkInvariants() {
	if !invariantChecks {
		return
	}

	if c := t.capacity(); c < minCapacity || c&(c-1) != 0 {
		panic(fmt.Sprintf("invariant failed: capacity %d is not a power of two >= %d", c, minCapacity))
	}
	if t.growthThreshold != int(float64(t.capacity())*maxLoadFactor) {
		panic(fmt.Sprintf("invariant failed: growthThreshold %d for capacity %d", t.growthThreshold, t.capacity()))
	}
	if t.count > t.growthThreshold {
		panic(fmt.Sprintf("invariant failed: count %d exceeds threshold %d", t.count, t.growthThreshold))
	}

	occupied := 0
	for i := 0; i < t.capacity(); i++ {
		s := t.slots.At(i)
		if s.occupied && !s.everUsed {
			panic(fmt.Sprintf("invariant failed: slot %d occupied but not everUsed", i))
		}
		if s.occupied {
			occupied++
			if got := t.findIndex(s.key); got != i {
				panic(fmt.Sprintf("invariant failed: slot %d key %v resolves to %d", i, s.key, got))
			}
		}
	}
	if occupied != t.count {
		panic(fmt.Sprintf("invariant failed: %d occupied slots but count is %d", occupied, t.count))
	}
}
