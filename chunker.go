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

// A Chunker partitions a byte stream into variable-length, content-defined
// chunks. It owns a RollingHash, the index of the last declared boundary,
// and a running count of bytes bypassed by network-mode skipping.
//
// Chunker is not safe for concurrent use.
type Chunker struct {
	rolling      *RollingHash
	params       CoreParams
	lastBoundary int
	skippedBytes int
}

// ChunkerOption configures a CoreParams before it is validated by
// NewChunker, grounded on kalbasit/fastcdc's functional-options pattern:
// each option mutates a single field and reports its own validation error,
// and the constructor validates once, after every option has run.
type ChunkerOption func(*CoreParams) error

// WithRollingWindow overrides the rolling hash window size.
func WithRollingWindow(w int) ChunkerOption {
	return func(p *CoreParams) error {
		p.RollingWindow = w
		return nil
	}
}

// WithBlockTrigger overrides the rolling-hash modulus that declares a
// boundary.
func WithBlockTrigger(trigger uint64) ChunkerOption {
	return func(p *CoreParams) error {
		p.BlockTrigger = trigger
		return nil
	}
}

// WithSkip overrides the number of bytes bypassed after a boundary in
// ModeNetwork.
func WithSkip(skip int) ChunkerOption {
	return func(p *CoreParams) error {
		p.Skip = skip
		return nil
	}
}

// WithMode overrides the chunking mode.
func WithMode(mode ChunkMode) ChunkerOption {
	return func(p *CoreParams) error {
		p.Mode = mode
		return nil
	}
}

// NewChunker constructs a Chunker using p's BlockTrigger, Skip, Mode and
// RollingWindow, after applying every opts in order. The resulting
// CoreParams is validated once before any Chunker is built; an invalid
// RollingWindow, zero BlockTrigger, negative Skip, or unrecognized Mode is
// reported as an error rather than surfacing later as a panic or a
// divide-by-zero.
func NewChunker(p CoreParams, opts ...ChunkerOption) (*Chunker, error) {
	for _, opt := range opts {
		if err := opt(&p); err != nil {
			return nil, err
		}
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return newChunkerTrusted(p), nil
}

// newChunkerTrusted builds a Chunker from p without validating it, for call
// sites that already hold a CoreParams known to be valid (it was validated
// when the owning Fingerprint was constructed or parsed).
func newChunkerTrusted(p CoreParams) *Chunker {
	return &Chunker{
		rolling: NewRollingHash(p.RollingWindow),
		params:  p,
	}
}

// Run feeds b through the chunker sequentially, invoking emit with each
// chunk's byte range (as a slice into b, valid only until the next call to
// Run) as soon as a boundary is declared. In ModeFile, a trailing partial
// chunk covering b[lastBoundary:len(b)] is also emitted at end of input,
// inclusive of the final byte per spec §9's resolved open question. In
// ModeNetwork this trailing flush is suppressed.
//
// Run resets the chunker's rolling-hash and boundary state before
// processing, so a Chunker can be reused across independent inputs.
func (c *Chunker) Run(b []byte, emit func(chunk []byte)) {
	c.rolling.Reset()
	c.lastBoundary = 0
	c.skippedBytes = 0

	n := len(b)
	for i := 0; i < n; i++ {
		r := c.rolling.Update(b[i])
		if r%c.params.BlockTrigger != c.params.BlockTrigger-1 {
			continue
		}

		emit(b[c.lastBoundary : i+1])
		c.lastBoundary = i + 1

		if c.params.Mode == ModeNetwork && c.params.Skip > 0 && i+c.params.Skip < n {
			// Skipped bytes never reach rolling.Update: they advance i and
			// lastBoundary only, leaving h1..h4 and the window exactly as
			// they were at the boundary.
			c.skippedBytes += c.params.Skip
			i += c.params.Skip
			c.lastBoundary = i + 1
		}
	}

	if c.params.Mode == ModeFile && c.lastBoundary <= n-1 && n > 0 {
		emit(b[c.lastBoundary:n])
	}
}

// Boundaries returns the sequence of boundary positions (exclusive end
// indices into b, i.e. i+1 at each declared boundary) that Run would
// declare for b, without invoking a callback. In ModeFile, when a trailing
// partial chunk is flushed, len(b) is appended as the final entry. It
// exists primarily to test boundary reproducibility (spec §8 invariant 8): the result must be
// identical whether b is fed in one call or split across several
// RollingHash-preserving calls at the byte level.
func (c *Chunker) Boundaries(b []byte) []int {
	var bounds []int
	c.Run(b, func(chunk []byte) {
		// c.lastBoundary still holds its pre-this-chunk value: Run calls
		// emit before advancing it.
		bounds = append(bounds, c.lastBoundary+len(chunk))
	})
	return bounds
}
