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

// Package kvmap provides ready-to-use string- and integer-keyed maps on
// top of the chainmap containers, with the library hashers pre-wired.
// Unlike the raw containers, the wrappers keep keys unique: inserting an
// existing key leaves the stored value in place.
package kvmap

import (
	"github.com/mapforge/chainmap/pkg/container/chainmap"
)

// StrMap maps string keys to values of type V.
type StrMap[V any] struct {
	hashMap *chainmap.GrowableMap[string, V]
}

// IntMap maps uint64 keys to values of type V.
type IntMap[V any] struct {
	hashMap *chainmap.GrowableMap[uint64, V]
}
