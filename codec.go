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
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// ToText renders fp in the wire format (spec §4.7):
//
//	label:filesize:filter_count:tail_block_count:HEXDATA
//
// HEXDATA is the concatenation, in chain order, of every filter's byte
// array as uppercase two-hex-digit pairs.
func (fp *Fingerprint) ToText() string {
	var sb strings.Builder
	sb.Grow(len(fp.Label) + 64 + fp.FilterCount()*fp.Params.FilterSize*2)

	sb.WriteString(fp.Label)
	sb.WriteByte(':')
	sb.WriteString(strconv.FormatUint(fp.Filesize, 10))
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(fp.FilterCount()))
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(fp.TailBlockCount()))
	sb.WriteByte(':')

	for _, f := range fp.filters {
		sb.WriteString(strings.ToUpper(hex.EncodeToString(f.bytes)))
	}

	return sb.String()
}

// FingerprintFromText parses the wire format produced by ToText, using p to
// size and configure the reconstructed Bloom filters. All filters before
// the tail are reconstituted with BlockCount == p.MaxBlocks; the final
// filter receives the parsed tail_block_count (spec §4.7).
//
// A failed parse never returns a partially built Fingerprint (spec §7): on
// any error, the return value is nil.
func FingerprintFromText(s string, p CoreParams) (*Fingerprint, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	label, rest, ok := cutColon(s)
	if !ok {
		return nil, fmt.Errorf("%w: label", ErrField)
	}
	filesizeStr, rest, ok := cutColon(rest)
	if !ok {
		return nil, fmt.Errorf("%w: filesize", ErrField)
	}
	filterCountStr, rest, ok := cutColon(rest)
	if !ok {
		return nil, fmt.Errorf("%w: filter_count", ErrField)
	}
	tailCountStr, hexData, ok := cutColon(rest)
	if !ok {
		return nil, fmt.Errorf("%w: tail_block_count", ErrField)
	}

	filesize, err := strconv.ParseUint(filesizeStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: filesize %q: %v", ErrParse, filesizeStr, err)
	}
	filterCount, err := strconv.Atoi(filterCountStr)
	if err != nil || filterCount < 1 {
		return nil, fmt.Errorf("%w: filter_count %q", ErrFilterCount, filterCountStr)
	}
	tailCount, err := strconv.Atoi(tailCountStr)
	if err != nil || tailCount < 0 {
		return nil, fmt.Errorf("%w: tail_block_count %q", ErrParse, tailCountStr)
	}
	if tailCount > p.MaxBlocks {
		return nil, fmt.Errorf("%w: %d > %d", ErrTailBlockCount, tailCount, p.MaxBlocks)
	}

	wantLen := filterCount * p.FilterSize * 2
	if len(hexData) != wantLen {
		return nil, fmt.Errorf("%w: got %d want %d", ErrHexLength, len(hexData), wantLen)
	}

	raw, err := hex.DecodeString(hexData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHexChars, err)
	}

	filters := make([]*BloomFilter, filterCount)
	for i := 0; i < filterCount; i++ {
		f := newBloomFilter(p)
		copy(f.bytes, raw[i*p.FilterSize:(i+1)*p.FilterSize])
		if i == filterCount-1 {
			f.blockCount = tailCount
		} else {
			f.blockCount = p.MaxBlocks
		}
		filters[i] = f
	}

	fp := &Fingerprint{
		Label:    label,
		Filesize: filesize,
		Params:   p,
		filters:  filters,
		chunker:  newChunkerTrusted(p),
	}
	return fp, nil
}

// cutColon splits s at the first ':' the way FingerprintFromText's field
// walk requires: ok is false if no ':' is present.
func cutColon(s string) (field, rest string, ok bool) {
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}
