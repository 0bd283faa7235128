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

// FNV-1a 64-bit constants (spec §4.3).
const (
	fnvOffsetBasis64 uint64 = 0xcbf29ce484222325
	fnvPrime64       uint64 = 0x100000001b3
)

// chunkDigest computes the FNV-1a 64-bit hash of a chunk's byte range. It is
// the key inserted into a Fingerprint's Bloom filter chain.
func chunkDigest(chunk []byte) uint64 {
	h := fnvOffsetBasis64
	for _, x := range chunk {
		h ^= uint64(x)
		h *= fnvPrime64
	}
	return h
}
