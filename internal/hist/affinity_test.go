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

package hist

import "testing"

// TestNthAllowedCPU pins the worker-to-CPU mapping against restricted CPU
// sets: ids picked in order, wraparound past the set size, and non-contiguous
// ids as handed out by cgroup cpusets.
func TestNthAllowedCPU(t *testing.T) {
	cases := []struct {
		name    string
		allowed []int
		w       int
		cpu     int
		ok      bool
	}{
		{"FirstWorkerFirstCPU", []int{0, 1, 2, 3}, 0, 0, true},
		{"InOrder", []int{0, 1, 2, 3}, 2, 2, true},
		{"WrapsAround", []int{0, 1}, 5, 1, true},
		{"RestrictedNonContiguous", []int{4, 5}, 0, 4, true},
		{"RestrictedWrap", []int{4, 5}, 3, 5, true},
		{"EmptySet", nil, 0, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cpu, ok := nthAllowedCPU(tc.allowed, tc.w)
			if ok != tc.ok || cpu != tc.cpu {
				t.Fatalf("nthAllowedCPU(%v, %d) = (%d, %v), want (%d, %v)",
					tc.allowed, tc.w, cpu, ok, tc.cpu, tc.ok)
			}
		})
	}
}
