// Copyright 2023 Mapforge
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

package chainmap

import (
	"github.com/mapforge/chainmap/pkg/common/cmerr"
)

// LinearStore is an append-only sequence of cells with linear-time
// lookup.  It carries no index structure; keeping chains short is the
// caller's job.
type LinearStore[K comparable, V any] struct {
	cells []Cell[K, V]
}

// Insert appends the pair.  Key uniqueness is the caller's
// responsibility; a duplicate coexists with earlier cells of the same
// key and is shadowed by them on Find.
func (s *LinearStore[K, V]) Insert(key K, value V) {
	s.cells = append(s.cells, Cell[K, V]{Key: key, Value: value})
}

// Find scans cells in insertion order and returns the value of the first
// match.  Fails with cmerr.ErrKeyNotFound when no cell matches.
func (s *LinearStore[K, V]) Find(key K) (V, error) {
	for i := range s.cells {
		if s.cells[i].Key == key {
			return s.cells[i].Value, nil
		}
	}
	var zero V
	return zero, cmerr.GetKeyNotFound()
}

func (s *LinearStore[K, V]) Len() int {
	return len(s.cells)
}

// Cells exposes the owned cells in insertion order.  The slice aliases
// the store's memory and must not be mutated.
func (s *LinearStore[K, V]) Cells() []Cell[K, V] {
	return s.cells
}
