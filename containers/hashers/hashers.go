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

// Package hashers provides ready-made hash functions for the hash-based
// containers in this module. The containers never choose a hash function on
// their own; one of these (or any caller-written func(K) uint64 that agrees
// with key equality) must be supplied at construction time.
package hashers

import (
	"fmt"
	"hash/fnv"
	"math"
)

// Func is a hash function over keys of type K. It must be pure and must
// agree with key equality: a == b implies f(a) == f(b).
type Func[K any] func(K) uint64

// FNV returns an FNV-1a hash function usable with any key type. The key is
// formatted with fmt and the resulting bytes are hashed, so it is the
// slowest of the helpers here; prefer String or one of the integer hashers
// when the key type allows it.
func FNV[K any]() Func[K] {
	return func(key K) uint64 {
		h := fnv.New64a()
		fmt.Fprintf(h, "%v", key)
		return h.Sum64()
	}
}

// String hashes a string key with FNV-1a.
func String(key string) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= prime64
	}
	return h
}

// Int hashes an int key.
func Int(key int) uint64 {
	return mix(uint64(key))
}

// Uint64 hashes a uint64 key.
func Uint64(key uint64) uint64 {
	return mix(key)
}

// Float64 hashes a float64 key by its bit pattern. Note that NaN keys do
// not satisfy the equality contract and should not be used.
func Float64(key float64) uint64 {
	return mix(math.Float64bits(key))
}

// mix is the finalizer from splitmix64. Identity hashes on small integers
// cluster in the low bits of the table index; the finalizer spreads them
// over the whole word.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
