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
	"runtime"
	"strings"
	"sync"
)

// A FingerprintList is a single-owner, ordered collection of Fingerprints
// (spec §3 "Ownership"). Concurrent insertion into the same list is not
// supported; concurrent read-only comparisons across an already-built list
// are safe, since the Fingerprints it holds are themselves read-only once
// built (spec §5).
type FingerprintList struct {
	entries []*Fingerprint
}

// NewFingerprintList returns an empty FingerprintList.
func NewFingerprintList() *FingerprintList {
	return &FingerprintList{}
}

// Add appends fp to the list. The list takes ownership; fp must not be
// mutated by the caller afterwards.
func (l *FingerprintList) Add(fp *Fingerprint) {
	l.entries = append(l.entries, fp)
}

// Len returns the number of Fingerprints in the list.
func (l *FingerprintList) Len() int {
	return len(l.entries)
}

// At returns the i'th Fingerprint in insertion order.
func (l *FingerprintList) At(i int) *Fingerprint {
	return l.entries[i]
}

// CompareAll compares every distinct pair within l and returns the results
// scoring at or above threshold, in the asymmetric Compare(l[i], l[j])
// sense for i < j. Work fans out across runtime.NumCPU() goroutines: each
// pair is read-only over already-built Fingerprints, so this respects the
// single-owner/no-internal-parallelism rule for fingerprint *construction*
// (spec §5) while still giving batch comparison a usable throughput at
// forensic-triage list sizes.
func (l *FingerprintList) CompareAll(threshold int) []CompareResult {
	type pair struct{ i, j int }

	var pairs []pair
	for i := 0; i < len(l.entries); i++ {
		for j := i + 1; j < len(l.entries); j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	results := make([]CompareResult, len(pairs))
	runParallel(len(pairs), func(idx int) {
		p := pairs[idx]
		results[idx] = CompareLabeled(l.entries[p.i], l.entries[p.j])
	})

	return filterByThreshold(results, threshold)
}

// CompareCross compares every Fingerprint in l against every Fingerprint in
// other, Compare(l[i], other[j]), and returns results at or above threshold.
func (l *FingerprintList) CompareCross(other *FingerprintList, threshold int) []CompareResult {
	type pair struct{ i, j int }

	var pairs []pair
	for i := range l.entries {
		for j := range other.entries {
			pairs = append(pairs, pair{i, j})
		}
	}

	results := make([]CompareResult, len(pairs))
	runParallel(len(pairs), func(idx int) {
		p := pairs[idx]
		results[idx] = CompareLabeled(l.entries[p.i], other.entries[p.j])
	})

	return filterByThreshold(results, threshold)
}

// CompareAgainst compares fp against every entry in l and returns results
// at or above threshold.
func (l *FingerprintList) CompareAgainst(fp *Fingerprint, threshold int) []CompareResult {
	results := make([]CompareResult, len(l.entries))
	runParallel(len(l.entries), func(idx int) {
		results[idx] = CompareLabeled(fp, l.entries[idx])
	})
	return filterByThreshold(results, threshold)
}

func filterByThreshold(results []CompareResult, threshold int) []CompareResult {
	out := results[:0]
	for _, r := range results {
		if r.Score >= threshold {
			out = append(out, r)
		}
	}
	return out
}

// runParallel invokes f(i) for i in [0,n) across a worker pool bounded by
// runtime.NumCPU(), mirroring the bounded-goroutine idiom used throughout
// the corpus for batch CPU work (fastcdc's pooled buffers, codefang's
// goroutine-count config knobs).
func runParallel(n int, f func(i int)) {
	if n == 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	next := make(chan int)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				f(i)
			}
		}()
	}

	for i := 0; i < n; i++ {
		next <- i
	}
	close(next)

	wg.Wait()
}

// ListToText renders l as a multi-fingerprint document: entries separated
// by a single '\n', no trailing newline (spec §4.7).
func ListToText(l *FingerprintList) string {
	lines := make([]string, l.Len())
	for i, fp := range l.entries {
		lines[i] = fp.ToText()
	}
	return strings.Join(lines, "\n")
}

// ListFromText parses a multi-fingerprint document produced by
// ListToText. An empty string yields an empty, zero-length list rather than
// a list containing one empty-label Fingerprint.
func ListFromText(s string, p CoreParams) (*FingerprintList, error) {
	l := NewFingerprintList()
	if s == "" {
		return l, nil
	}

	for _, line := range strings.Split(s, "\n") {
		fp, err := FingerprintFromText(line, p)
		if err != nil {
			return nil, err
		}
		l.Add(fp)
	}
	return l, nil
}
