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

// Package stats holds the small ordering helpers the benchmark CLIs share.
package stats

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Median returns the upper median of xs without mutating it. The benchmarks
// report the median of repeated timings to damp scheduler noise. Panics on an
// empty slice; callers validate rep counts first.
func Median[T constraints.Ordered](xs []T) T {
	s := slices.Clone(xs)
	slices.Sort(s)
	return s[len(s)/2]
}
