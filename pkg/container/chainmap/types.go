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

// Package chainmap implements an open-hashing map built from three layered
// containers: an unindexed LinearStore, a BucketedStore of fixed bucket
// count that routes keys by hash, and a GrowableMap that doubles its
// bucket count to keep the per-bucket chains short.
//
// Collisions are resolved by chaining only.  Duplicate keys are accepted
// and never collapsed; Find returns the first match in insertion order.
// None of the containers are safe for concurrent use; a wrapping system
// must hold a single exclusive lock around the whole map.
package chainmap

// Hasher produces stable, well-distributed 64-bit hashes for keys.  A
// hasher must be deterministic for the life of the process and consistent
// with key equality: equal keys hash equal.
type Hasher[K comparable] func(K) uint64

// Cell is one key-value pair owned by a bucket.
type Cell[K comparable, V any] struct {
	Key   K
	Value V
}

const (
	kDefaultBucketCnt    = 2
	kDefaultGrowthFactor = 2
)

// Options tune a GrowableMap at Init time.  The zero value selects the
// defaults: 2 initial buckets, doubling growth.
type Options struct {
	// InitialBucketCnt is the bucket count of the first generation.
	InitialBucketCnt uint64
	// GrowthFactor multiplies the element count to size the next
	// generation at resize.  Must be at least 2.
	GrowthFactor uint64
}

// Stats is a point-in-time observation of a GrowableMap, used by tests
// and by embedders that track rehash cost.
type Stats struct {
	ElemCnt       uint64
	BucketCnt     uint64
	RehashedCells uint64
}
