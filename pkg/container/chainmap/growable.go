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
	"errors"

	"go.uber.org/zap"

	"github.com/mapforge/chainmap/pkg/common/cmerr"
	"github.com/mapforge/chainmap/pkg/logutil"
)

// GrowableMap owns one BucketedStore at a time, the current generation,
// and replaces it with a strictly larger one whenever the element count
// catches up with the bucket count.  The swap keeps chains at one
// expected cell, so Insert and Find stay amortized O(1).
type GrowableMap[K comparable, V any] struct {
	growthFactor  uint64
	elemCnt       uint64
	rehashedCells uint64
	hasher        Hasher[K]
	store         *BucketedStore[K, V]
}

// Init prepares the map with default options: 2 buckets, doubling
// growth.
func (ht *GrowableMap[K, V]) Init(hasher Hasher[K]) error {
	return ht.InitWithOptions(hasher, Options{})
}

// InitWithOptions prepares the map.  Zero option fields select the
// defaults.
func (ht *GrowableMap[K, V]) InitWithOptions(hasher Hasher[K], opts Options) error {
	if opts.InitialBucketCnt == 0 {
		opts.InitialBucketCnt = kDefaultBucketCnt
	}
	if opts.GrowthFactor == 0 {
		opts.GrowthFactor = kDefaultGrowthFactor
	}
	if opts.GrowthFactor < 2 {
		return cmerr.NewBadConfig("growth factor %d must be at least 2", opts.GrowthFactor)
	}
	store := &BucketedStore[K, V]{}
	if err := store.Init(opts.InitialBucketCnt, hasher); err != nil {
		return err
	}
	ht.growthFactor = opts.GrowthFactor
	ht.elemCnt = 0
	ht.rehashedCells = 0
	ht.hasher = hasher
	ht.store = store
	return nil
}

// Insert never fails.  A resize, when due, completes before the new pair
// is stored, so elemCnt <= bucket count holds after every Insert.
func (ht *GrowableMap[K, V]) Insert(key K, value V) {
	if ht.elemCnt == ht.store.BucketCount() {
		ht.resize()
	}
	ht.store.Insert(key, value)
	ht.elemCnt++
}

// Find delegates to the current generation.  Fails with
// cmerr.ErrKeyNotFound, unchanged from the bucket scan.
func (ht *GrowableMap[K, V]) Find(key K) (V, error) {
	return ht.store.Find(key)
}

// resize builds the next generation sized by the element count, not the
// old bucket count.  The two coincide at the trigger point but are not
// interchangeable if the trigger policy ever changes.  Every cell is
// re-inserted because the modulus changed; the new store is fully
// populated before the swap, so no caller can observe a half-built
// generation.
func (ht *GrowableMap[K, V]) resize() {
	newStore := &BucketedStore[K, V]{}
	if err := newStore.Init(ht.growthFactor*ht.elemCnt, ht.hasher); err != nil {
		// elemCnt == bucketCnt >= 1 here, so the size is always valid
		panic(err)
	}
	oldBucketCnt := ht.store.BucketCount()
	for i := uint64(0); i < oldBucketCnt; i++ {
		for _, cell := range ht.store.bucket(i).Cells() {
			newStore.Insert(cell.Key, cell.Value)
		}
	}
	ht.rehashedCells += ht.elemCnt
	ht.store = newStore
	logutil.Debug("chainmap resized",
		zap.Uint64("elemCnt", ht.elemCnt),
		zap.Uint64("oldBucketCnt", oldBucketCnt),
		zap.Uint64("newBucketCnt", newStore.BucketCount()))
}

func (ht *GrowableMap[K, V]) Cardinality() uint64 {
	return ht.elemCnt
}

func (ht *GrowableMap[K, V]) BucketCount() uint64 {
	return ht.store.BucketCount()
}

// Stats reports the element count, the current bucket count and the
// total number of cells copied by all resizes so far.
func (ht *GrowableMap[K, V]) Stats() Stats {
	return Stats{
		ElemCnt:       ht.elemCnt,
		BucketCnt:     ht.store.BucketCount(),
		RehashedCells: ht.rehashedCells,
	}
}

// GrowableMapIterator walks the current generation in bucket order,
// insertion order within a bucket.  No other order is guaranteed; a
// resize between Init and Next invalidates the iterator.
type GrowableMapIterator[K comparable, V any] struct {
	table  *GrowableMap[K, V]
	bucket uint64
	pos    int
}

func (it *GrowableMapIterator[K, V]) Init(ht *GrowableMap[K, V]) {
	it.table = ht
	it.bucket = 0
	it.pos = 0
}

func (it *GrowableMapIterator[K, V]) Next() (cell *Cell[K, V], err error) {
	for it.bucket < it.table.store.BucketCount() {
		cells := it.table.store.bucket(it.bucket).Cells()
		if it.pos < len(cells) {
			cell = &cells[it.pos]
			it.pos++
			return
		}
		it.bucket++
		it.pos = 0
	}

	err = errors.New("out of range")
	return
}
