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

package containers

import "errors"

// The error values reported across the containers in this module. Each
// failure is synchronous and reported at the call that triggers it; no
// operation retries or swallows a failure, and a failed operation leaves
// its container unchanged. Callers match these with errors.Is.
var (
	// ErrMissingHashFunction is reported when a hash-based container is
	// constructed without a hash function.
	ErrMissingHashFunction = errors.New("containers: missing hash function")

	// ErrDuplicateKey is reported by strict insertion of a key that is
	// already present in a map.
	ErrDuplicateKey = errors.New("containers: duplicate key")

	// ErrMissingKey is reported by strict removal or strict lookup of a key
	// that is not present in a map.
	ErrMissingKey = errors.New("containers: missing key")

	// ErrDuplicateElement is reported by strict insertion of an element that
	// is already present in a set.
	ErrDuplicateElement = errors.New("containers: duplicate element")

	// ErrMissingElement is reported by strict removal of an element that is
	// not present in a set.
	ErrMissingElement = errors.New("containers: missing element")

	// ErrOutOfBounds is reported on access beyond the bounds of a sequence
	// container, including front/back/pop access on an empty container.
	ErrOutOfBounds = errors.New("containers: out of bounds")

	// ErrMismatchedIterator is reported when an iterator belonging to one
	// list is passed to the insert or remove method of another.
	ErrMismatchedIterator = errors.New("containers: iterator from a different container")
)
