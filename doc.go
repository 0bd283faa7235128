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

// Package mrsh implements the MRSH-v2 family of similarity-preserving hash
// functions used in digital forensics to locate known content inside
// unknown artifacts.
//
// A Fingerprint is built by feeding a byte stream through a content-defined
// Chunker: a rolling hash (RollingHash) declares chunk boundaries at
// content-dependent positions, each chunk is reduced to a 64-bit digest,
// and every digest is inserted into a chained sequence of Bloom filters
// (BloomFilter). Two Fingerprints are compared with Compare, an asymmetric
// 0..100 similarity score derived from Bloom-filter bit overlap: inputs
// that share substantial byte-level content score high even when one is a
// substring, modification, or embedding of the other.
//
// Fingerprints round-trip through a compact text wire format via ToText and
// FingerprintFromText, suitable for persisting a reference corpus and
// comparing against it later. A FingerprintList groups Fingerprints for
// batch pairwise comparison.
//
// The package performs no cryptographic hashing and makes no authenticity
// or collision-resistance claims: it is a similarity index, not a digital
// signature.
package mrsh
