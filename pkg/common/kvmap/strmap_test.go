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
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mapforge/chainmap/pkg/common/cmerr"
	"github.com/mapforge/chainmap/pkg/container/chainmap"
)

func TestStrMap_InsertValue(t *testing.T) {
	mp, err := NewStrMap[[]byte]()
	require.NoError(t, err)

	require.True(t, mp.InsertValue("a", []byte("1")))
	require.True(t, mp.InsertValue("b", []byte("2")))
	require.False(t, mp.InsertValue("a", []byte("3")))
	require.Equal(t, uint64(2), mp.GroupCount())

	v, err := mp.Find("a")
	require.NoError(t, err)
	require.Equal(t, []byte("1"), v)

	_, err = mp.Find("c")
	require.True(t, cmerr.IsCmErrCode(err, cmerr.ErrKeyNotFound))
	require.True(t, mp.Contains("b"))
	require.False(t, mp.Contains("c"))
}

func TestStrMap_GrowsThroughResizes(t *testing.T) {
	mp, err := NewStrMap[int]()
	require.NoError(t, err)

	const n = 2000
	for i := 0; i < n; i++ {
		require.True(t, mp.InsertValue(fmt.Sprintf("key-%d", i), i))
	}
	require.Equal(t, uint64(n), mp.GroupCount())

	for i := 0; i < n; i++ {
		v, err := mp.Find(fmt.Sprintf("key-%d", i))
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
}

func TestStrMap_WithOptions(t *testing.T) {
	_, err := NewStrMapWithOptions[int](chainmap.Options{GrowthFactor: 1})
	require.True(t, cmerr.IsCmErrCode(err, cmerr.ErrBadConfig))

	mp, err := NewStrMapWithOptions[int](chainmap.Options{InitialBucketCnt: 128})
	require.NoError(t, err)
	require.True(t, mp.InsertValue("x", 1))
}

func TestStrMap_Iterator(t *testing.T) {
	mp, err := NewStrMap[int]()
	require.NoError(t, err)

	want := map[string]int{"a": 1, "b": 2, "c": 3}
	for k, v := range want {
		require.True(t, mp.InsertValue(k, v))
	}

	got := make(map[string]int)
	it := mp.NewIterator()
	for {
		cell, err := it.Next()
		if err != nil {
			break
		}
		got[cell.Key] = cell.Value
	}
	require.Equal(t, want, got)
}
