// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
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

package histbench

import "fmt"

// Distribution selects the statistical shape of the generated workload.
type Distribution int

const (
	// DistUniform spreads samples approximately evenly over all 256 bins.
	DistUniform Distribution = iota
	// DistSkewed lands ~80% of samples in the first 51 bins — the adversarial
	// case for atomic-increment contention.
	DistSkewed
)

// String returns the wire name used in CLI flags and output records.
func (d Distribution) String() string {
	switch d {
	case DistUniform:
		return "uniform"
	case DistSkewed:
		return "skewed"
	default:
		return fmt.Sprintf("dist(%d)", int(d))
	}
}

// ParseDistribution maps a CLI token to a Distribution.
func ParseDistribution(s string) (Distribution, error) {
	switch s {
	case "uniform":
		return DistUniform, nil
	case "skewed":
		return DistSkewed, nil
	default:
		return 0, fmt.Errorf("unknown distribution %q (use uniform|skewed)", s)
	}
}

// LCG constants and seeds. These are part of the cross-implementation
// contract: any implementation seeded identically produces byte-for-byte
// identical sample buffers.
const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223

	seedUniform = 123456789
	seedSkewed  = 987654321

	// hotBins is the size of the hot range for the skewed shape: the first
	// floor(256 * 0.2) bins.
	hotBins = 51

	// skewThreshold is the cut in the raw 32-bit LCG output below which a
	// sample is forced into the hot range (~80% of outputs).
	skewThreshold = uint32(0.8 * 4294967295.0)
)

func lcgNext(x uint32) uint32 {
	return x*lcgMultiplier + lcgIncrement
}

// Generate produces a reproducible sample buffer of length n under the given
// distribution. Generation is strictly sequential (the LCG carries a serial
// dependency) and is never part of a timed region.
func Generate(dist Distribution, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative sample count %d", n)
	}
	data, err := allocBytes(n)
	if err != nil {
		return nil, err
	}
	switch dist {
	case DistUniform:
		genUniform(data)
	case DistSkewed:
		genSkewed(data)
	default:
		return nil, fmt.Errorf("unknown distribution %d", int(dist))
	}
	return data, nil
}

func genUniform(data []byte) {
	x := uint32(seedUniform)
	for i := range data {
		x = lcgNext(x)
		data[i] = byte(x)
	}
}

// genSkewed reproduces the original arithmetic exactly: the hot/cold branch
// compares the full 32-bit output against skewThreshold, the hot value is the
// output mod 51, and the cold value is the low 8 bits remapped out of the hot
// range by adding 51. The resulting shape is an artifact of this mix and is
// kept bit-for-bit for cross-implementation comparability.
func genSkewed(data []byte) {
	x := uint32(seedSkewed)
	for i := range data {
		x = lcgNext(x)
		if x < skewThreshold {
			data[i] = byte(x % hotBins)
		} else {
			v := byte(x)
			if v < hotBins {
				v += hotBins
			}
			data[i] = v
		}
	}
}
