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

// rollingWindowMax bounds the ring buffer so RollingHash can be embedded by
// value instead of carrying a heap-allocated slice. spec fixes the window
// at RollingWindow (7); CoreParams.RollingWindow is still validated against
// it so a mismatched configuration fails loudly instead of corrupting the
// ring.
const rollingWindowMax = 64

// RollingHash maintains the MRSH-v2 windowed hash over the last W bytes of
// a byte stream. After n inserts, the state is a pure function of the last
// min(n, W) bytes (spec §3).
//
// The zero value is not ready for use; call NewRollingHash.
type RollingHash struct {
	window [rollingWindowMax]byte
	w      int // active window size, == CoreParams.RollingWindow
	pos    int

	h1, h2, h3, h4 uint32
}

// NewRollingHash constructs a RollingHash with the given window size. w
// must be in (0, rollingWindowMax].
func NewRollingHash(w int) *RollingHash {
	if w <= 0 || w > rollingWindowMax {
		panic("mrsh: invalid rolling hash window size")
	}
	return &RollingHash{w: w}
}

// Reset restores r to its initial, all-zero state.
func (r *RollingHash) Reset() {
	for i := range r.window {
		r.window[i] = 0
	}
	r.pos = 0
	r.h1, r.h2, r.h3, r.h4 = 0, 0, 0, 0
}

// Update feeds one byte into the rolling hash and returns the new hash
// value, h1+h2+h3+h4 as an unsigned 64-bit sum. The exact recurrence
// mirrors the MRSH-v2 reference so that chunk boundaries are reproducible
// cross-implementation (spec §4.1):
//
//	h2 += h3 - h1
//	h1 += b
//	h3 += b
//	h1 -= window[pos]  (byte leaving the window)
//	window[pos] = b; pos = (pos+1) mod w
//	h4 = (h4<<5) ^ (h4>>2) ^ b  (shift-xor fold)
func (r *RollingHash) Update(b byte) uint64 {
	leaving := r.window[r.pos]

	r.h2 += r.h3 - r.h1
	r.h1 += uint32(b)
	r.h3 += uint32(b)
	r.h1 -= uint32(leaving)

	r.window[r.pos] = b
	r.pos++
	if r.pos == r.w {
		r.pos = 0
	}

	r.h4 = (r.h4 << 5) ^ (r.h4 >> 2) ^ uint32(b)

	return uint64(r.h1) + uint64(r.h2) + uint64(r.h3) + uint64(r.h4)
}
