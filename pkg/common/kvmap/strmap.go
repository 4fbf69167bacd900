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

func NewStrMap[V any]() (*StrMap[V], error) {
	mp := &chainmap.GrowableMap[string, V]{}
	if err := mp.Init(chainmap.StrHash); err != nil {
		return nil, err
	}
	return &StrMap[V]{hashMap: mp}, nil
}

// NewStrMapWithOptions builds a StrMap with explicit tuning, e.g. from
// config.Parameters.MapOptions.
func NewStrMapWithOptions[V any](opts chainmap.Options) (*StrMap[V], error) {
	mp := &chainmap.GrowableMap[string, V]{}
	if err := mp.InitWithOptions(chainmap.StrHash, opts); err != nil {
		return nil, err
	}
	return &StrMap[V]{hashMap: mp}, nil
}

// InsertValue stores the pair, returning true if the key is new.  An
// existing key keeps its first stored value.
func (m *StrMap[V]) InsertValue(key string, value V) bool {
	if _, err := m.hashMap.Find(key); err == nil {
		return false
	}
	m.hashMap.Insert(key, value)
	return true
}

func (m *StrMap[V]) Find(key string) (V, error) {
	return m.hashMap.Find(key)
}

// Contains reports whether the key is present.
func (m *StrMap[V]) Contains(key string) bool {
	_, err := m.hashMap.Find(key)
	return !cmerr.IsCmErrCode(err, cmerr.ErrKeyNotFound)
}

// GroupCount returns the number of distinct keys stored.
func (m *StrMap[V]) GroupCount() uint64 {
	return m.hashMap.Cardinality()
}

func (m *StrMap[V]) NewIterator() *chainmap.GrowableMapIterator[string, V] {
	it := &chainmap.GrowableMapIterator[string, V]{}
	it.Init(m.hashMap)
	return it
}
