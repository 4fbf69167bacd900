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

// BucketedStore spreads cells across a fixed number of LinearStores so
// that an O(k) chain scan becomes O(k/N) expected, provided keys hash
// uniformly.  The bucket count is fixed at Init; growing is the job of
// GrowableMap, which builds a fresh BucketedStore instead.
type BucketedStore[K comparable, V any] struct {
	bucketCnt uint64
	elemCnt   uint64
	hasher    Hasher[K]
	buckets   []LinearStore[K, V]
}

// Init allocates all bucketCnt buckets eagerly.
func (ht *BucketedStore[K, V]) Init(bucketCnt uint64, hasher Hasher[K]) error {
	if bucketCnt < 1 {
		return cmerr.NewInvalidArg("bucket count", bucketCnt)
	}
	if hasher == nil {
		return cmerr.NewInvalidArg("hasher", nil)
	}
	ht.bucketCnt = bucketCnt
	ht.elemCnt = 0
	ht.hasher = hasher
	ht.buckets = make([]LinearStore[K, V], bucketCnt)
	return nil
}

// BucketIndex routes a key to its bucket.  Deterministic for a given key
// and bucket count within a process.
func (ht *BucketedStore[K, V]) BucketIndex(key K) uint64 {
	return ht.hasher(key) % ht.bucketCnt
}

func (ht *BucketedStore[K, V]) Insert(key K, value V) {
	ht.buckets[ht.BucketIndex(key)].Insert(key, value)
	ht.elemCnt++
}

// Find delegates to the key's bucket.  ErrKeyNotFound propagates
// unchanged.
func (ht *BucketedStore[K, V]) Find(key K) (V, error) {
	return ht.buckets[ht.BucketIndex(key)].Find(key)
}

func (ht *BucketedStore[K, V]) BucketCount() uint64 {
	return ht.bucketCnt
}

func (ht *BucketedStore[K, V]) Cardinality() uint64 {
	return ht.elemCnt
}

func (ht *BucketedStore[K, V]) bucket(idx uint64) *LinearStore[K, V] {
	return &ht.buckets[idx]
}
