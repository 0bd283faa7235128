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

package mrsh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildList(t *testing.T, p CoreParams, seeds ...uint64) *FingerprintList {
	t.Helper()

	l := NewFingerprintList()
	for i, seed := range seeds {
		fp, err := FingerprintFromBytes(lcgBytes(seed, 50_000), string(rune('a'+i)), p)
		require.NoError(t, err)
		l.Add(fp)
	}
	return l
}

func TestFingerprintListAddAndAt(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	l := buildList(t, p, 1, 2, 3)

	require.Equal(t, 3, l.Len())
	assert.Equal(t, "a", l.At(0).Label)
	assert.Equal(t, "c", l.At(2).Label)
}

func TestCompareAllCoversEveryDistinctPair(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	l := buildList(t, p, 1, 2, 3, 4)

	results := l.CompareAll(0)
	assert.Len(t, results, 6, "n=4 distinct unordered pairs is n*(n-1)/2")
}

func TestCompareAllRespectsThreshold(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	l := buildList(t, p, 1, 2, 3)

	all := l.CompareAll(0)
	strict := l.CompareAll(101)
	assert.NotEmpty(t, all)
	assert.Empty(t, strict, "no score can exceed 100, so threshold 101 excludes everything")
}

func TestCompareCrossCoversFullProduct(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	left := buildList(t, p, 1, 2)
	right := buildList(t, p, 3, 4, 5)

	results := left.CompareCross(right, 0)
	assert.Len(t, results, 6)
}

func TestCompareAgainstCoversEveryEntry(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	l := buildList(t, p, 1, 2, 3)
	target, err := FingerprintFromBytes(lcgBytes(9, 50_000), "target", p)
	require.NoError(t, err)

	results := l.CompareAgainst(target, 0)
	assert.Len(t, results, 3)
}

func TestCompareAgainstSelfScoresHigh(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	fp, err := FingerprintFromBytes(lcgBytes(5, 200_000), "self", p)
	require.NoError(t, err)

	l := NewFingerprintList()
	l.Add(fp)

	results := l.CompareAgainst(fp, 0)
	require.Len(t, results, 1)
	assert.GreaterOrEqual(t, results[0].Score, 99)
}

func TestRunParallelVisitsEveryIndexExactlyOnce(t *testing.T) {
	t.Parallel()

	const n = 500
	seen := make([]int32, n)
	runParallel(n, func(i int) {
		seen[i]++
	})

	for i, c := range seen {
		assert.EqualValues(t, 1, c, "index %d", i)
	}
}

func TestRunParallelNoOpOnEmpty(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		runParallel(0, func(i int) { t.Fatal("must not be called") })
	})
}
