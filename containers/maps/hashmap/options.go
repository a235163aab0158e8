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

package hashmap

// Option configures a Map while it is being created.
type Option interface {
	apply(*settings)
}

type settings struct {
	capacity int
}

type capacityOption int

func (o capacityOption) apply(s *settings) {
	s.capacity = int(o)
}

// WithCapacity is an option specifying the number of entries the map should
// be able to hold without growing.
func WithCapacity(n int) Option {
	return capacityOption(n)
}
