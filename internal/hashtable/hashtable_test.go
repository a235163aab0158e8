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

package hashtable

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/modimore/Fundamentals/containers"
	"github.com/modimore/Fundamentals/containers/hashers"
)

// toBuiltinMap returns the entries as a map[K]V. Useful for testing.
func (t *Table[K, V]) toBuiltinMap() map[K]V {
	r := make(map[K]V)
	t.All(func(k K, v V) bool {
		r[k] = v
		return true
	})
	return r
}

func newIntTable(t *testing.T) *Table[int, int] {
	t.Helper()
	tbl, err := New[int, int](hashers.Int)
	require.NoError(t, err)
	return tbl
}

func TestMissingHashFunction(t *testing.T) {
	_, err := New[int, int](nil)
	require.ErrorIs(t, err, containers.ErrMissingHashFunction)

	_, err = NewSized[int, int](nil, 100)
	require.ErrorIs(t, err, containers.ErrMissingHashFunction)
}

func TestCapacityFor(t *testing.T) {
	testCases := []struct {
		minEntries int
		expected   int
	}{
		{0, 8},
		{1, 8},
		{6, 8},
		{7, 16},
		{12, 16},
		{13, 32},
		{24, 32},
		{25, 64},
		{96, 128},
	}
	for _, c := range testCases {
		t.Run(fmt.Sprint(c.minEntries), func(t *testing.T) {
			require.Equal(t, c.expected, capacityFor(c.minEntries))
		})
	}
}

func TestBasic(t *testing.T) {
	test := func(t *testing.T, tbl *Table[int, int]) {
		const count = 100

		e := make(map[int]int)
		require.Equal(t, 0, tbl.Len())

		// Non-existent.
		for i := 0; i < count; i++ {
			_, ok := tbl.Get(i)
			require.False(t, ok)
		}

		// Insert.
		for i := 0; i < count; i++ {
			require.True(t, tbl.Insert(i, i+count))
			e[i] = i + count
			v, ok := tbl.Get(i)
			require.True(t, ok)
			require.Equal(t, i+count, v)
			require.Equal(t, i+1, tbl.Len())
			require.Equal(t, e, tbl.toBuiltinMap())
		}

		// Duplicate inserts are refused and change nothing.
		for i := 0; i < count; i++ {
			require.False(t, tbl.Insert(i, -1))
		}
		require.Equal(t, e, tbl.toBuiltinMap())

		// Update.
		for i := 0; i < count; i++ {
			tbl.Put(i, i+2*count)
			e[i] = i + 2*count
			v, ok := tbl.Get(i)
			require.True(t, ok)
			require.Equal(t, i+2*count, v)
			require.Equal(t, count, tbl.Len())
		}
		require.Equal(t, e, tbl.toBuiltinMap())

		// Delete.
		for i := 0; i < count; i++ {
			require.True(t, tbl.Remove(i))
			require.False(t, tbl.Remove(i))
			delete(e, i)
			require.Equal(t, count-i-1, tbl.Len())
			_, ok := tbl.Get(i)
			require.False(t, ok)
			require.Equal(t, e, tbl.toBuiltinMap())
		}
	}

	t.Run("normal", func(t *testing.T) {
		test(t, newIntTable(t))
	})

	// A constant hash collides every key onto one probe chain. The table
	// degrades to a linear structure but must stay correct.
	t.Run("degenerate", func(t *testing.T) {
		for _, h := range []uint64{0, ^uint64(0), 0xdeadbeef} {
			t.Run(fmt.Sprintf("%016x", h), func(t *testing.T) {
				tbl, err := New[int, int](func(int) uint64 { return h })
				require.NoError(t, err)
				test(t, tbl)
			})
		}
	})
}

func TestGrowthScenario(t *testing.T) {
	tbl := newIntTable(t)
	require.Equal(t, 8, tbl.capacity())
	require.Equal(t, 6, tbl.growthThreshold)

	// Six inserts fit under the 0.75 threshold without growing.
	for i := 0; i < 6; i++ {
		require.True(t, tbl.Insert(i, i*10))
	}
	require.Equal(t, 8, tbl.capacity())

	// The seventh insert grows first: target minimum 2*6=12 entries, so
	// 12/0.75=16 slots.
	require.True(t, tbl.Insert(6, 60))
	require.Equal(t, 16, tbl.capacity())
	require.Equal(t, 12, tbl.growthThreshold)
	require.Equal(t, 7, tbl.Len())

	for i := 0; i < 7; i++ {
		v, ok := tbl.Get(i)
		require.True(t, ok)
		require.Equal(t, i*10, v)
	}
}

func TestGrowthPreservesContents(t *testing.T) {
	tbl := newIntTable(t)
	e := make(map[int]int)
	for i := 0; i < 10_000; i++ {
		tbl.Put(i, i)
		e[i] = i
	}
	require.Equal(t, e, tbl.toBuiltinMap())

	c := tbl.capacity()
	require.GreaterOrEqual(t, c, minCapacity)
	require.Zero(t, c&(c-1), "capacity %d is not a power of two", c)
	require.LessOrEqual(t, tbl.Len(), tbl.growthThreshold)
}

func TestTombstoneLookup(t *testing.T) {
	// All keys on one probe chain.
	tbl, err := New[int, int](func(int) uint64 { return 0 })
	require.NoError(t, err)

	// B is placed past A on the shared chain.
	require.True(t, tbl.Insert(1, 100))
	require.True(t, tbl.Insert(2, 200))

	// Removing A leaves a tombstone in the middle of B's probe chain.
	// Lookups must walk past it rather than stop.
	require.True(t, tbl.Remove(1))
	require.False(t, tbl.Contains(1))
	require.True(t, tbl.Contains(2))
	v, ok := tbl.Get(2)
	require.True(t, ok)
	require.Equal(t, 200, v)

	// A new key reuses the tombstone without resurrecting the removed key.
	require.True(t, tbl.Insert(3, 300))
	require.False(t, tbl.Contains(1))
	require.True(t, tbl.Contains(2))
	require.True(t, tbl.Contains(3))

	// Reinserting the removed key finds it again exactly once.
	require.True(t, tbl.Insert(1, 101))
	require.False(t, tbl.Insert(1, 102))
	v, ok = tbl.Get(1)
	require.True(t, ok)
	require.Equal(t, 101, v)
	require.Equal(t, 3, tbl.Len())
}

func TestTombstoneSlotReuse(t *testing.T) {
	tbl, err := New[int, int](func(int) uint64 { return 0 })
	require.NoError(t, err)

	// With a constant zero hash the first insert lands on slot 0.
	require.True(t, tbl.Insert(1, 100))
	require.True(t, tbl.slots.At(0).occupied)
	require.True(t, tbl.Remove(1))
	require.False(t, tbl.slots.At(0).occupied)
	require.True(t, tbl.slots.At(0).everUsed)

	// The next insert on the same chain reuses the vacated slot instead of
	// extending the chain.
	require.True(t, tbl.Insert(2, 200))
	require.True(t, tbl.slots.At(0).keyMatches(2))
}

func TestTombstoneChurnSaturation(t *testing.T) {
	// Insert/remove churn with all-new keys marks every slot everUsed
	// while the count stays at zero, so nothing ever triggers a grow. The
	// table has no never-used slot left to prove absence; probes must
	// still terminate and answer correctly.
	tbl := newIntTable(t)
	for i := 0; i < 1_000; i++ {
		require.True(t, tbl.Insert(i, i))
		require.True(t, tbl.Remove(i))
	}
	require.Equal(t, 0, tbl.Len())
	require.Equal(t, 8, tbl.capacity())

	for i := 0; i < tbl.capacity(); i++ {
		require.True(t, tbl.slots.At(i).everUsed)
		require.False(t, tbl.slots.At(i).occupied)
	}

	require.False(t, tbl.Contains(12345))
	_, ok := tbl.Get(12345)
	require.False(t, ok)

	require.True(t, tbl.Insert(12345, 1))
	require.True(t, tbl.Contains(12345))
}

func TestAt(t *testing.T) {
	tbl := newIntTable(t)

	// Absent key: a zero value is inserted.
	p := tbl.At(7)
	require.NotNil(t, p)
	require.Equal(t, 0, *p)
	require.Equal(t, 1, tbl.Len())

	*p = 42
	v, ok := tbl.Get(7)
	require.True(t, ok)
	require.Equal(t, 42, v)

	// Present key: no insertion, same value.
	require.Equal(t, 42, *tbl.At(7))
	require.Equal(t, 1, tbl.Len())
}

func TestAtTriggersGrowth(t *testing.T) {
	tbl := newIntTable(t)
	for i := 0; i < 6; i++ {
		tbl.Put(i, i)
	}
	require.Equal(t, 8, tbl.capacity())

	p := tbl.At(100)
	require.Equal(t, 16, tbl.capacity())
	require.Equal(t, 0, *p)
	require.Equal(t, 7, tbl.Len())
}

func TestRandom(t *testing.T) {
	test := func(t *testing.T, tbl *Table[int, int]) {
		rng := rand.New(rand.NewSource(1))
		e := make(map[int]int)
		keys := make([]int, 0, 1024)
		for i := 0; i < 10_000; i++ {
			switch r := rng.Float64(); {
			case r < 0.50: // 50% inserts
				k, v := rng.Intn(2000), rng.Int()
				if _, ok := e[k]; ok {
					require.False(t, tbl.Insert(k, v))
				} else {
					require.True(t, tbl.Insert(k, v))
					e[k] = v
					keys = append(keys, k)
				}
			case r < 0.65: // 15% updates
				k, v := rng.Intn(2000), rng.Int()
				tbl.Put(k, v)
				if _, ok := e[k]; !ok {
					keys = append(keys, k)
				}
				e[k] = v
			case r < 0.80: // 15% deletes
				if len(keys) > 0 {
					k := keys[rng.Intn(len(keys))]
					_, present := e[k]
					require.Equal(t, present, tbl.Remove(k))
					delete(e, k)
				}
			default: // 20% lookups
				k := rng.Intn(2000)
				v, ok := tbl.Get(k)
				ev, eok := e[k]
				require.Equal(t, eok, ok)
				if ok {
					require.Equal(t, ev, v)
				}
			}
			require.Equal(t, len(e), tbl.Len())

			c := tbl.capacity()
			require.GreaterOrEqual(t, c, minCapacity)
			require.Zero(t, c&(c-1))
			require.LessOrEqual(t, tbl.Len(), tbl.growthThreshold)
		}
		require.Equal(t, e, tbl.toBuiltinMap())
	}

	t.Run("normal", func(t *testing.T) {
		test(t, newIntTable(t))
	})

	t.Run("degenerate", func(t *testing.T) {
		tbl, err := New[int, int](func(int) uint64 { return 42 })
		require.NoError(t, err)
		test(t, tbl)
	})
}

func TestKeysValuesAligned(t *testing.T) {
	tbl := newIntTable(t)
	for i := 0; i < 100; i++ {
		tbl.Put(i, i*3)
	}

	keys := tbl.Keys()
	values := tbl.Values()
	require.Len(t, keys, 100)
	require.Len(t, values, 100)

	// Keys and Values share the slot-scan order, so they zip into pairs.
	for i, k := range keys {
		require.Equal(t, k*3, values[i])
	}
}

func TestEqualFunc(t *testing.T) {
	eq := func(a, b int) bool { return a == b }

	a := newIntTable(t)
	b := newIntTable(t)
	require.True(t, a.EqualFunc(b, eq))

	// Same pairs, different insertion orders and different capacities.
	for i := 0; i < 100; i++ {
		a.Put(i, i)
	}
	b2, err := NewSized[int, int](hashers.Int, 512)
	require.NoError(t, err)
	for i := 99; i >= 0; i-- {
		b2.Put(i, i)
	}
	require.True(t, a.EqualFunc(b2, eq))
	require.True(t, b2.EqualFunc(a, eq))

	// Different size.
	b2.Remove(0)
	require.False(t, a.EqualFunc(b2, eq))

	// Same size, different value.
	b2.Put(0, -1)
	require.False(t, a.EqualFunc(b2, eq))
}

func TestClone(t *testing.T) {
	tbl := newIntTable(t)
	for i := 0; i < 50; i++ {
		tbl.Put(i, i)
	}

	clone := tbl.Clone()
	require.Equal(t, tbl.toBuiltinMap(), clone.toBuiltinMap())

	// The clone is independent of the original.
	clone.Put(1000, 1000)
	tbl.Remove(0)
	require.True(t, clone.Contains(0))
	require.False(t, tbl.Contains(1000))
}

func TestClear(t *testing.T) {
	tbl := newIntTable(t)
	for i := 0; i < 1000; i++ {
		tbl.Put(i, i)
	}
	tbl.Clear()
	require.Equal(t, 0, tbl.Len())
	require.Equal(t, minCapacity, tbl.capacity())
	tbl.All(func(int, int) bool {
		t.Fatal("should not iterate")
		return true
	})

	// The cleared table remains usable.
	require.True(t, tbl.Insert(1, 1))
	require.True(t, tbl.Contains(1))
}
