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

func TestChunkerEmptyInput(t *testing.T) {
	t.Parallel()

	c, err := NewChunker(DefaultParams())
	require.NoError(t, err)

	var chunks [][]byte
	c.Run(nil, func(chunk []byte) { chunks = append(chunks, chunk) })

	assert.Empty(t, chunks)
}

func TestChunkerFileModeFlushesTrailingChunk(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	c, err := NewChunker(p)
	require.NoError(t, err)
	data := lcgBytes(2, 10_000)

	var chunks [][]byte
	c.Run(data, func(chunk []byte) { chunks = append(chunks, chunk) })

	a := assert.New(t)
	a.NotEmpty(chunks)

	var total int
	for _, ch := range chunks {
		total += len(ch)
	}
	a.Equal(len(data), total, "chunks must partition the whole input with no gaps or overlaps")
}

func TestChunkerNetworkModeSuppressesTrailingFlush(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	p.Mode = ModeNetwork
	p.Skip = 16
	c, err := NewChunker(p)
	require.NoError(t, err)
	data := lcgBytes(9, 20_000)

	var chunks [][]byte
	c.Run(data, func(chunk []byte) { chunks = append(chunks, chunk) })

	var total int
	for _, ch := range chunks {
		total += len(ch)
	}
	assert.Less(t, total, len(data), "network mode must bypass skipped bytes and the trailing partial chunk")
}

func TestChunkerReusableAcrossRuns(t *testing.T) {
	t.Parallel()

	c, err := NewChunker(DefaultParams())
	require.NoError(t, err)
	data := lcgBytes(6, 5000)

	var first, second [][]byte
	c.Run(data, func(chunk []byte) { first = append(first, append([]byte(nil), chunk...)) })
	c.Run(data, func(chunk []byte) { second = append(second, append([]byte(nil), chunk...)) })

	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i], second[i])
	}
}

func TestChunkerBoundariesMonotonic(t *testing.T) {
	t.Parallel()

	c, err := NewChunker(DefaultParams())
	require.NoError(t, err)
	bounds := c.Boundaries(lcgBytes(8, 30_000))

	for i := 1; i < len(bounds); i++ {
		assert.Greater(t, bounds[i], bounds[i-1])
	}
}

func TestNewChunkerRejectsInvalidParams(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		opt  ChunkerOption
		want error
	}{
		{"rolling window zero", WithRollingWindow(0), ErrInvalidRollingWindow},
		{"rolling window too large", WithRollingWindow(rollingWindowMax + 1), ErrInvalidRollingWindow},
		{"block trigger zero", WithBlockTrigger(0), ErrInvalidBlockTrigger},
		{"negative skip", WithSkip(-1), ErrInvalidSkip},
		{"unrecognized mode", WithMode(ChunkMode(99)), ErrInvalidMode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c, err := NewChunker(DefaultParams(), tc.opt)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewChunkerOptionsOverrideDefaults(t *testing.T) {
	t.Parallel()

	c, err := NewChunker(DefaultParams(), WithMode(ModeNetwork), WithSkip(32))
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, ModeNetwork, c.params.Mode)
	assert.Equal(t, 32, c.params.Skip)
}

// TestChunkerNetworkModeSkipDoesNotResetRollingHash is a regression test
// for a bug where the post-boundary skip in ModeNetwork reset the rolling
// hash's h1..h4 accumulators and window to all-zero. Skipped bytes must
// advance i and lastBoundary only, leaving the rolling hash state exactly
// as it was at the boundary; boundaries after a skip must still obey the
// usual monotonic, gap-free contract.
func TestChunkerNetworkModeSkipDoesNotResetRollingHash(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	p.Mode = ModeNetwork
	p.Skip = 16

	c, err := NewChunker(p)
	require.NoError(t, err)
	data := lcgBytes(42, 50_000)

	var chunks [][]byte
	c.Run(data, func(chunk []byte) { chunks = append(chunks, append([]byte(nil), chunk...)) })
	require.NotEmpty(t, chunks)

	bounds := c.Boundaries(data)
	require.NotEmpty(t, bounds)
	for i := 1; i < len(bounds); i++ {
		assert.Greater(t, bounds[i], bounds[i-1])
	}

	// Reference: one RollingHash that is never reset and simply does not
	// see the skipped bytes.
	ref := NewRollingHash(p.RollingWindow)
	var want []int
	for i := 0; i < len(data); i++ {
		if ref.Update(data[i])%p.BlockTrigger != p.BlockTrigger-1 {
			continue
		}
		want = append(want, i+1)
		if i+p.Skip < len(data) {
			i += p.Skip
		}
	}
	assert.Equal(t, want, bounds)
}
