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

// Package histbench provides the building blocks of the parallel histogram
// contention benchmark: a fixed 256-bin counter store with a selectable
// physical layout, and the deterministic workload generators the reduction
// strategies consume.
package histbench

import (
	"fmt"
)

// NumBins is the number of histogram counters. Samples are single bytes, so
// the bin count is fixed at 256.
const NumBins = 256

// cacheLineSize is the counter isolation unit for the padded layout. Each
// padded slot spans one 64-byte line so neighbouring counters never share one.
const cacheLineSize = 64

// paddedStride is the counter spacing, in uint64 slots, of the padded layout.
const paddedStride = cacheLineSize / 8

// BinStore is the 256-slot accumulator populated by a reduction run. The
// compact layout packs the counters contiguously; the padded layout isolates
// each counter on its own cache line to eliminate false sharing between
// workers incrementing adjacent bins.
//
// A BinStore is owned exclusively by the run that allocated it. Increment and
// Slot perform no synchronization of their own; atomicity, when required, is
// the caller's responsibility.
type BinStore struct {
	counts []uint64
	stride int
}

// NewBinStore allocates a zeroed store in the requested layout. Allocation
// failure is reported as an error rather than a panic so callers can exit
// with the resource-failure status.
func NewBinStore(padded bool) (*BinStore, error) {
	stride := 1
	if padded {
		stride = paddedStride
	}
	s := &BinStore{stride: stride}
	var err error
	s.counts, err = allocUint64(NumBins * stride)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Padded reports whether the store uses the cache-line-padded layout.
func (s *BinStore) Padded() bool { return s.stride > 1 }

// Slot returns the address of the counter for bin. Callers that share the
// store across workers must increment through sync/atomic; callers that own
// the store exclusively may use plain arithmetic.
func (s *BinStore) Slot(bin int) *uint64 {
	return &s.counts[bin*s.stride]
}

// Increment adds one to bin without synchronization.
func (s *BinStore) Increment(bin int) {
	s.counts[bin*s.stride]++
}

// Read returns the current count for bin.
func (s *BinStore) Read(bin int) uint64 {
	return s.counts[bin*s.stride]
}

// Counts returns the logical content of the store, independent of layout.
// Padded and compact stores holding the same histogram return equal arrays.
func (s *BinStore) Counts() [NumBins]uint64 {
	var out [NumBins]uint64
	for b := 0; b < NumBins; b++ {
		out[b] = s.counts[b*s.stride]
	}
	return out
}

// Total sums all bins.
func (s *BinStore) Total() uint64 {
	var total uint64
	for b := 0; b < NumBins; b++ {
		total += s.counts[b*s.stride]
	}
	return total
}

// Reset zeroes every counter. The harness resets the store before the timed
// region begins.
func (s *BinStore) Reset() {
	for b := 0; b < NumBins; b++ {
		s.counts[b*s.stride] = 0
	}
}

// Verify reports whether the store's total count equals n. It detects lost
// updates but not misattributed bins; that limitation is accepted for a
// benchmark whose only post-condition is conservation of increments.
// Verification is read-only, so repeated calls yield the same answer.
func (s *BinStore) Verify(n int) bool {
	return n >= 0 && s.Total() == uint64(n)
}

// allocUint64 allocates a zeroed counter slice, converting a makeslice panic
// into an error. A hard OOM kill cannot be intercepted; this catches the
// recoverable cases (absurd lengths, runtime allocation refusal).
func allocUint64(n int) (buf []uint64, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("allocating %d counters: %v", n, r)
		}
	}()
	buf = make([]uint64, n)
	return buf, nil
}

// allocBytes is the byte-slice twin of allocUint64, used for sample buffers.
func allocBytes(n int) (buf []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("allocating %d samples: %v", n, r)
		}
	}()
	buf = make([]byte, n)
	return buf, nil
}
