// Copyright 2023 Mapforge
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package kvmap

import (
	"github.com/mapforge/chainmap/pkg/common/cmerr"
	"github.com/mapforge/chainmap/pkg/container/chainmap"
)

func NewIntMap[V any]() (*IntMap[V], error) {
	mp := &chainmap.GrowableMap[uint64, V]{}
	if err := mp.Init(chainmap.Int64Hash); err != nil {
		return nil, err
	}
	return &IntMap[V]{hashMap: mp}, nil
}

func NewIntMapWithOptions[V any](opts chainmap.Options) (*IntMap[V], error) {
	mp := &chainmap.GrowableMap[uint64, V]{}
	if err := mp.InitWithOptions(chainmap.Int64Hash, opts); err != nil {
		return nil, err
	}
	return &IntMap[V]{hashMap: mp}, nil
}

// InsertValue stores the pair, returning true if the key is new.  An
// existing key keeps its first stored value.
func (m *IntMap[V]) InsertValue(key uint64, value V) bool {
	if _, err := m.hashMap.Find(key); err == nil {
		return false
	}
	m.hashMap.Insert(key, value)
	return true
}

func (m *IntMap[V]) Find(key uint64) (V, error) {
	return m.hashMap.Find(key)
}

func (m *IntMap[V]) Contains(key uint64) bool {
	_, err := m.hashMap.Find(key)
	return !cmerr.IsCmErrCode(err, cmerr.ErrKeyNotFound)
}

// GroupCount returns the number of distinct keys stored.
func (m *IntMap[V]) GroupCount() uint64 {
	return m.hashMap.Cardinality()
}

func (m *IntMap[V]) NewIterator() *chainmap.GrowableMapIterator[uint64, V] {
	it := &chainmap.GrowableMapIterator[uint64, V]{}
	it.Init(m.hashMap)
	return it
}
