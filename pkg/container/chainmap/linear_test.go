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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mapforge/chainmap/pkg/common/cmerr"
)

func TestLinearStore_FirstMatchWins(t *testing.T) {
	var s LinearStore[int, string]
	s.Insert(1, "a")
	s.Insert(2, "b")
	s.Insert(1, "c")

	v, err := s.Find(1)
	require.NoError(t, err)
	require.Equal(t, "a", v)

	v, err = s.Find(2)
	require.NoError(t, err)
	require.Equal(t, "b", v)

	_, err = s.Find(3)
	require.True(t, cmerr.IsCmErrCode(err, cmerr.ErrKeyNotFound))

	require.Equal(t, 3, s.Len())
}

func TestLinearStore_InsertionOrder(t *testing.T) {
	var s LinearStore[uint64, uint64]
	for i := uint64(0); i < 100; i++ {
		s.Insert(i, i*i)
	}
	cells := s.Cells()
	require.Equal(t, 100, len(cells))
	for i, cell := range cells {
		require.Equal(t, uint64(i), cell.Key)
		require.Equal(t, uint64(i*i), cell.Value)
	}
}

func TestLinearStore_Empty(t *testing.T) {
	var s LinearStore[string, int]
	_, err := s.Find("anything")
	require.True(t, cmerr.IsCmErrCode(err, cmerr.ErrKeyNotFound))
	require.Equal(t, 0, s.Len())
}
