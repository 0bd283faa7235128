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
	"fmt"
	"testing"
)

func BenchmarkRollingHashUpdate(b *testing.B) {
	data := lcgBytes(1, 1<<20)
	r := NewRollingHash(RollingWindow)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, x := range data {
			r.Update(x)
		}
	}
}

func BenchmarkChunkerRun(b *testing.B) {
	for _, size := range []int{1 << 16, 1 << 20, 1 << 24} {
		data := lcgBytes(2, size)
		b.Run(fmt.Sprintf("%dB", size), func(b *testing.B) {
			c, err := NewChunker(DefaultParams())
			if err != nil {
				b.Fatal(err)
			}
			b.SetBytes(int64(size))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.Run(data, func([]byte) {})
			}
		})
	}
}

func BenchmarkBloomFilterInsert(b *testing.B) {
	p := DefaultParams()
	f := newBloomFilter(p)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Insert(uint64(i) * 0x9E3779B97F4A7C15)
		if f.BlockCount() == p.MaxBlocks {
			f = newBloomFilter(p)
		}
	}
}

func BenchmarkFingerprintFromBytes(b *testing.B) {
	p := DefaultParams()
	data := lcgBytes(3, 1<<20)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := FingerprintFromBytes(data, "bench", p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompare(b *testing.B) {
	p := DefaultParams()
	fpA, err := FingerprintFromBytes(lcgBytes(4, 1<<20), "a", p)
	if err != nil {
		b.Fatal(err)
	}
	fpB, err := FingerprintFromBytes(lcgBytes(5, 1<<20), "b", p)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Compare(fpA, fpB)
	}
}

func BenchmarkFingerprintListCompareAll(b *testing.B) {
	p := DefaultParams()
	l := NewFingerprintList()
	for i := 0; i < 20; i++ {
		fp, err := FingerprintFromBytes(lcgBytes(uint64(i), 50_000), fmt.Sprintf("f%d", i), p)
		if err != nil {
			b.Fatal(err)
		}
		l.Add(fp)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.CompareAll(0)
	}
}
