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

// A Fingerprint is an MRSH-v2 similarity digest: a label, the original
// input's byte length, and an ordered chain of Bloom filters built by
// chunking the input and inserting each chunk's digest. All filters but the
// tail have BlockCount == MaxBlocks; the tail has 0 <= BlockCount <=
// MaxBlocks (spec §3).
//
// A Fingerprint exclusively owns its filter chain (spec §3 "Ownership").
// It is not safe for concurrent mutation; once built, concurrent readers
// (comparison, serialization) are safe (spec §5).
type Fingerprint struct {
	Label    string
	Filesize uint64
	Params   CoreParams

	filters []*BloomFilter
	chunker *Chunker
}

// NewFingerprint returns an empty Fingerprint with the given label and
// params, ready for InsertBytes. label must be at most maxLabelLen bytes
// and must not contain ':' (spec §9, resolved Open Question on parser
// separators).
func NewFingerprint(label string, p CoreParams) (*Fingerprint, error) {
	if len(label) > maxLabelLen {
		return nil, ErrLabelTooLong
	}
	for i := 0; i < len(label); i++ {
		if label[i] == ':' {
			return nil, ErrLabelHasColon
		}
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	fp := &Fingerprint{
		Label:   label,
		Params:  p,
		filters: []*BloomFilter{newBloomFilter(p)},
		chunker: newChunkerTrusted(p),
	}
	return fp, nil
}

// FingerprintFromBytes chunks b and builds a complete Fingerprint labeled
// label. An empty or nil b yields a valid empty Fingerprint (filter_count
// == 1, tail BlockCount == 0): this is not an error (spec §6, §7, §8
// invariant 9).
func FingerprintFromBytes(b []byte, label string, p CoreParams) (*Fingerprint, error) {
	fp, err := NewFingerprint(label, p)
	if err != nil {
		return nil, err
	}
	fp.InsertBytes(b)
	return fp, nil
}

// InsertBytes chunks b and inserts every resulting chunk digest, appending
// to Filesize and leaving Label unchanged. It may be called more than once
// to absorb additional byte ranges into the same Fingerprint.
func (fp *Fingerprint) InsertBytes(b []byte) {
	fp.Filesize += uint64(len(b))
	fp.chunker.Run(b, func(chunk []byte) {
		fp.insert(chunkDigest(chunk))
	})
}

// insert grows the filter chain lazily: when the tail filter is saturated
// (BlockCount == MaxBlocks), a fresh filter is appended and becomes the new
// tail before key is inserted (spec §4.5).
func (fp *Fingerprint) insert(key uint64) {
	tail := fp.filters[len(fp.filters)-1]
	if tail.BlockCount() == fp.Params.MaxBlocks {
		tail = newBloomFilter(fp.Params)
		fp.filters = append(fp.filters, tail)
	}
	tail.Insert(key)
}

// FilterCount returns the number of Bloom filters in the chain.
func (fp *Fingerprint) FilterCount() int {
	return len(fp.filters)
}

// TailBlockCount returns the number of keys inserted into the tail filter.
func (fp *Fingerprint) TailBlockCount() int {
	return fp.filters[len(fp.filters)-1].BlockCount()
}

// Empty reports whether fp has never absorbed a chunk: a single, empty tail
// filter with BlockCount == 0 (spec §8 invariant 9).
func (fp *Fingerprint) Empty() bool {
	return len(fp.filters) == 1 && fp.filters[0].BlockCount() == 0
}

// Clone returns a deep copy of fp; mutating the clone never affects fp.
func (fp *Fingerprint) Clone() *Fingerprint {
	clone := &Fingerprint{
		Label:    fp.Label,
		Filesize: fp.Filesize,
		Params:   fp.Params,
		filters:  make([]*BloomFilter, len(fp.filters)),
		chunker:  newChunkerTrusted(fp.Params),
	}
	for i, f := range fp.filters {
		clone.filters[i] = f.clone()
	}
	return clone
}
