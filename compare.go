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

import "math"

// CompareResult is the outcome of comparing two Fingerprints. LabelA and
// LabelB are owned copies, not borrowed references into the source
// Fingerprints (spec §9 "String-owning compare results"): a CompareResult
// remains valid after either source Fingerprint is discarded.
type CompareResult struct {
	LabelA string
	LabelB string
	Score  int
}

// Compare returns an asymmetric similarity score in 0..100 expressing how
// much of a's content is present in b (spec §4.6). The convention is fixed:
// filters of a (the first argument) are iterated, each scored against its
// best match among b's filters. Compare(a, b) and Compare(b, a) may differ;
// callers that want a containment-style reading should pass the suspected
// substring as a.
//
// Either Fingerprint being empty yields a score of 0 (spec §4.6 edge case).
func Compare(a, b *Fingerprint) int {
	if a.Empty() || b.Empty() {
		return 0
	}

	var sum float64
	for _, fa := range a.filters {
		best := 0
		for _, fb := range b.filters {
			if s := filterScore(fa, fb); s > best {
				best = s
			}
		}
		sum += float64(best)
	}

	mean := sum / float64(len(a.filters))
	score := int(math.Round(mean))
	return clampScore(score)
}

// CompareLabeled is Compare plus the bookkeeping to build an owned
// CompareResult.
func CompareLabeled(a, b *Fingerprint) CompareResult {
	return CompareResult{
		LabelA: a.Label,
		LabelB: b.Label,
		Score:  Compare(a, b),
	}
}

// filterScore computes the per-filter overlap score of a against b per the
// spec §4.6 reference formula (frozen as part of the wire/comparison
// contract; see DESIGN.md for the resolved Open Question on formula
// variants).
func filterScore(a, b *BloomFilter) int {
	k := float64(a.k)
	blocksMin := float64(min(a.blockCount, b.blockCount))
	blocksMax := float64(max(a.blockCount, b.blockCount))
	bits := float64(len(a.bytes)) * 8

	maxPossible := k * blocksMin
	if maxPossible <= 0 {
		return 0
	}

	e := k * blocksMin * (1 - math.Pow(1-1/bits, k*blocksMax))
	if maxPossible <= e {
		return 0
	}

	common := float64(andPopulation(a, b))
	score := int(math.Round(100 * (common - e) / (maxPossible - e)))
	return clampScore(score)
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
