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

// Package scan is the programmability benchmark: a two-phase blockwise
// exclusive prefix sum. Phase one scans each worker's block serially and
// records block totals; the block totals get a serial scan of their own;
// phase two adds each block's offset back in parallel.
package scan

import (
	"golang.org/x/sync/errgroup"
)

// Exclusive computes the exclusive prefix sum of in across the given worker
// count: out[i] = sum(in[0..i-1]), out[0] = 0.
func Exclusive(in []int64, workers int) ([]int64, error) {
	n := len(in)
	out := make([]int64, n)
	if n == 0 {
		return out, nil
	}
	if workers > n {
		workers = n
	}

	blockSum := make([]int64, workers)

	// Phase 1: serial exclusive scan inside each block; record block totals.
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		beg := n * w / workers
		end := n * (w + 1) / workers
		g.Go(func() error {
			var run int64
			for i := beg; i < end; i++ {
				out[i] = run
				run += in[i]
			}
			blockSum[w] = run
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Serial scan over block totals. workers << n, so this phase is noise.
	blockOff := make([]int64, workers)
	var acc int64
	for w := 0; w < workers; w++ {
		blockOff[w] = acc
		acc += blockSum[w]
	}

	// Phase 2: add each block's offset to its section in parallel.
	var g2 errgroup.Group
	for w := 0; w < workers; w++ {
		beg := n * w / workers
		end := n * (w + 1) / workers
		off := blockOff[w]
		g2.Go(func() error {
			for i := beg; i < end; i++ {
				out[i] += off
			}
			return nil
		})
	}
	if err := g2.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// VerifyOnes checks the scan of an all-ones input: out[i] must equal i.
func VerifyOnes(out []int64) bool {
	for i, v := range out {
		if v != int64(i) {
			return false
		}
	}
	return true
}
