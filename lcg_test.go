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

// lcgBytes deterministically fills n bytes using a Numerical-Recipes-style
// Linear Congruential Generator seeded by seed. Test fixtures use this
// instead of math/rand so that scenario tests (spec §8 S2) stay
// byte-identical across Go versions: math/rand's bit stream is not a
// documented stable contract, but this LCG's recurrence is fixed forever by
// being written out in full here. See DESIGN.md for why no corpus
// dependency (e.g. SymbolNotFound/gorng, which generates from SHA1, not an
// LCG) was reached for instead.
func lcgBytes(seed uint64, n int) []byte {
	const (
		a = 6364136223846793005
		c = 1442695040888963407
	)

	b := make([]byte, n)
	state := seed
	for i := 0; i < n; i++ {
		state = state*a + c
		b[i] = byte(state >> 56)
	}
	return b
}

// flipBytes returns a copy of b with the byte at each offset XORed with
// 0xFF, i.e. bit-flipped, for scenario tests that perturb a fixed baseline
// (spec §8 S2).
func flipBytes(b []byte, offsets ...int) []byte {
	out := append([]byte(nil), b...)
	for _, off := range offsets {
		out[off] ^= 0xFF
	}
	return out
}

// reverseBytes returns a reversed copy of b (spec §8 S3).
func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, x := range b {
		out[len(b)-1-i] = x
	}
	return out
}
