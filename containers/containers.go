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

// Package containers defines the interfaces shared by every container in
// this module along with the error values the containers report. None of
// the containers are goroutine-safe; callers that share a container across
// goroutines must provide their own synchronization.
package containers

// Container is the base interface implemented by all data structures in
// this module.
type Container[T any] interface {
	Size() int
	Empty() bool
	Clear()
	Values() []T
	String() string
}

// JSONSerializer provides JSON serialization.
type JSONSerializer interface {
	// ToJSON outputs the JSON representation of the container's elements.
	ToJSON() ([]byte, error)
	// MarshalJSON implements json.Marshaler.
	MarshalJSON() ([]byte, error)
}

// JSONDeserializer provides JSON deserialization.
type JSONDeserializer interface {
	// FromJSON populates the container's elements from the input JSON
	// representation.
	FromJSON([]byte) error
	// UnmarshalJSON implements json.Unmarshaler.
	UnmarshalJSON([]byte) error
}
