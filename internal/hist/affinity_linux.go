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

//go:build linux

package hist

import (
	"log"
	"runtime"

	"golang.org/x/sys/unix"
)

// pinWorker wires the calling goroutine to one OS thread and restricts that
// thread to a single CPU, mapping worker w to the w-th CPU the process is
// allowed to run on. Pinning is a placement hint: on any failure the worker
// is left unpinned and the run proceeds. The goroutine must run to completion
// on the locked thread: we never unlock, so the runtime discards the
// affinity-modified thread when the worker exits.
func pinWorker(w int) {
	runtime.LockOSThread()
	var mask unix.CPUSet
	if err := unix.SchedGetaffinity(0, &mask); err != nil {
		log.Printf("affinity: reading allowed CPUs for worker %d: %v", w, err)
		return
	}
	allowed := make([]int, 0, mask.Count())
	for cpu := 0; cpu < len(mask)*64; cpu++ {
		if mask.IsSet(cpu) {
			allowed = append(allowed, cpu)
		}
	}
	cpu, ok := nthAllowedCPU(allowed, w)
	if !ok {
		return
	}
	var set unix.CPUSet
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		log.Printf("affinity: pinning worker %d to cpu %d: %v", w, cpu, err)
	}
}
