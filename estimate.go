// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package mrsh

import "math"

// EstimateFilterCount predicts how many Bloom filters a Fingerprint built
// from an input of inputSize bytes will end up with, given p: roughly one
// filter per BlockTrigger*MaxBlocks bytes of input (spec §5 "Resource
// shape"). It is an estimate for pre-sizing a FingerprintList or a progress
// bar, not a guarantee: actual chunk boundaries depend on content, not
// position.
func EstimateFilterCount(inputSize int64, p CoreParams) int {
	if inputSize <= 0 {
		return 1
	}
	perFilter := p.BlockTrigger * uint64(p.MaxBlocks)
	if perFilter == 0 {
		return 1
	}
	n := (uint64(inputSize) + perFilter - 1) / perFilter
	if n < 1 {
		n = 1
	}
	return int(n)
}

// EstimateFPRate estimates the false positive rate of a single BloomFilter
// in a chain after nkeys distinct keys have been inserted, using the
// standard closed-form Bloom filter estimate (1 - e^(-k*n/m))^k. Unlike
// blobloom's blocked-filter FPRate (which sums a Poisson series over
// shards, per Putze, Sanders and Singler), a BloomFilter here has no block
// structure, so the unblocked closed form applies directly.
func EstimateFPRate(nkeys, filterSize, khashes int) float64 {
	if nkeys <= 0 {
		return 0
	}
	m := float64(filterSize) * 8
	k := float64(khashes)
	n := float64(nkeys)

	return math.Pow(1-math.Exp(-k*n/m), k)
}
