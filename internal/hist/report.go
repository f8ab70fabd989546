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

import (
	"fmt"

	"github.com/sugawarayuuta/sonnet"
)

// Record is one flat key-value metric line consumed by external analysis
// tooling. Field order and decimal precision are stable; downstream parsers
// depend on both.
type Record struct {
	Family   string `json:"family"`
	Impl     string `json:"impl"`
	Strategy string `json:"strategy"`
	Dist     string `json:"dist"`
	N        int    `json:"n"`
	T        int    `json:"t"`
	Sched    string `json:"sched"`
	Chunk    int    `json:"chunk"`
	Pad      int    `json:"pad"`
	Affinity int    `json:"affinity"`
	Metric   string `json:"metric"`
	Value    string `json:"value"`
	Unit     string `json:"unit"`
}

// implName tags records with the producing implementation, mirroring the
// "openmp"/"rust" tags of the sibling suites.
const implName = "go"

// Records renders the two metric records of a completed run: elapsed seconds
// at fixed six-digit precision, then the correctness boolean.
func Records(cfg Config, res Result) []Record {
	base := Record{
		Family:   "hist",
		Impl:     implName,
		Strategy: cfg.Strategy.String(),
		Dist:     cfg.Dist.String(),
		N:        cfg.N,
		T:        cfg.Workers,
		Sched:    cfg.Policy.String(),
		Chunk:    cfg.EffectiveChunk(),
		Pad:      boolFlag(cfg.EffectivePadding()),
		Affinity: boolFlag(cfg.Affinity),
	}

	timeRec := base
	timeRec.Metric = "time"
	timeRec.Value = fmt.Sprintf("%.6f", res.Elapsed.Seconds())
	timeRec.Unit = "sec"

	correctRec := base
	correctRec.Metric = "correct"
	correctRec.Value = fmt.Sprintf("%d", boolFlag(res.Correct))
	correctRec.Unit = "boolean"

	return []Record{timeRec, correctRec}
}

// CSV renders the record as one comma-separated line in the shape shared
// across implementations:
//
//	hist,go,strategy=atomic,dist=uniform,N=1000000,T=4,sched=static,chunk=0,pad=0,affinity=0,time,0.123456,sec
func (r Record) CSV() string {
	return fmt.Sprintf("%s,%s,strategy=%s,dist=%s,N=%d,T=%d,sched=%s,chunk=%d,pad=%d,affinity=%d,%s,%s,%s",
		r.Family, r.Impl, r.Strategy, r.Dist, r.N, r.T, r.Sched, r.Chunk, r.Pad, r.Affinity,
		r.Metric, r.Value, r.Unit)
}

// JSON renders the record as a single JSON object line.
func (r Record) JSON() (string, error) {
	b, err := sonnet.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
