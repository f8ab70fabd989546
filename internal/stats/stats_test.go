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

package stats

import (
	"testing"
	"time"
)

// TestMedian covers odd and even lengths, unsorted input, and confirms the
// input slice is left untouched.
func TestMedian(t *testing.T) {
	t.Run("OddLength", func(t *testing.T) {
		if got := Median([]int{5, 1, 3}); got != 3 {
			t.Errorf("Median = %d, want 3", got)
		}
	})
	t.Run("EvenLengthUpperMedian", func(t *testing.T) {
		if got := Median([]int{4, 1, 3, 2}); got != 3 {
			t.Errorf("Median = %d, want 3 (upper median)", got)
		}
	})
	t.Run("Durations", func(t *testing.T) {
		xs := []time.Duration{3 * time.Second, time.Second, 2 * time.Second}
		if got := Median(xs); got != 2*time.Second {
			t.Errorf("Median = %v, want 2s", got)
		}
	})
	t.Run("InputUnmodified", func(t *testing.T) {
		xs := []int{9, 1, 5}
		_ = Median(xs)
		if xs[0] != 9 || xs[1] != 1 || xs[2] != 5 {
			t.Errorf("input mutated: %v", xs)
		}
	})
}
