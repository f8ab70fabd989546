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

// nthAllowedCPU maps worker w onto one of the CPUs the process may run on,
// wrapping when there are more workers than allowed CPUs. The allowed ids
// need not be contiguous or start at zero (cgroup cpusets, taskset). Returns
// false only for an empty set.
func nthAllowedCPU(allowed []int, w int) (int, bool) {
	if len(allowed) == 0 {
		return 0, false
	}
	return allowed[w%len(allowed)], true
}
