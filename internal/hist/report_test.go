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
	"strings"
	"testing"
	"time"

	"histbench"
)

// TestRecords_CSVStability pins the exact CSV shape. External analysis
// tooling parses these lines positionally, so any drift in field order,
// precision, or flag rendering is a breaking change.
func TestRecords_CSVStability(t *testing.T) {
	cfg := Config{
		Strategy: GlobalAtomic,
		Dist:     histbench.DistUniform,
		N:        1_000_000,
		Workers:  4,
		Policy:   PolicyStatic,
		Chunk:    0,
		Padded:   false,
		Affinity: false,
	}
	res := Result{Elapsed: 123456 * time.Microsecond, Correct: true}

	recs := Records(cfg, res)
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}

	wantTime := "hist,go,strategy=atomic,dist=uniform,N=1000000,T=4,sched=static,chunk=0,pad=0,affinity=0,time,0.123456,sec"
	if got := recs[0].CSV(); got != wantTime {
		t.Errorf("time record:\n got %s\nwant %s", got, wantTime)
	}

	wantCorrect := "hist,go,strategy=atomic,dist=uniform,N=1000000,T=4,sched=static,chunk=0,pad=0,affinity=0,correct,1,boolean"
	if got := recs[1].CSV(); got != wantCorrect {
		t.Errorf("correct record:\n got %s\nwant %s", got, wantCorrect)
	}
}

// TestRecords_PaddingReportedDisabledForLocal checks that a ThreadLocalReduce
// run requested with padding reports pad=0: the flag is a no-op there and the
// record must say what the run actually did.
func TestRecords_PaddingReportedDisabledForLocal(t *testing.T) {
	cfg := Config{
		Strategy: ThreadLocalReduce,
		Dist:     histbench.DistSkewed,
		N:        10,
		Workers:  2,
		Policy:   PolicyStatic,
		Padded:   true,
	}
	recs := Records(cfg, Result{Correct: true})
	for _, r := range recs {
		if !strings.Contains(r.CSV(), ",pad=0,") {
			t.Errorf("record %q should report pad=0 for the local strategy", r.CSV())
		}
	}
}

// TestRecords_ChunkReportedEffective checks that records carry the chunk size
// the partitioner actually ran with: the policy default when the flag is left
// at 0, and 0 under static scheduling, which never consults it.
func TestRecords_ChunkReportedEffective(t *testing.T) {
	cases := []struct {
		name   string
		policy Policy
		chunk  int
		want   string
	}{
		{"DynamicDefault", PolicyDynamic, 0, ",chunk=1024,"},
		{"DynamicExplicit", PolicyDynamic, 256, ",chunk=256,"},
		{"GuidedDefault", PolicyGuided, 0, ",chunk=1,"},
		{"StaticIgnoresChunk", PolicyStatic, 512, ",chunk=0,"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{
				Strategy: GlobalAtomic,
				Dist:     histbench.DistUniform,
				N:        10,
				Workers:  2,
				Policy:   tc.policy,
				Chunk:    tc.chunk,
			}
			for _, r := range Records(cfg, Result{Correct: true}) {
				if !strings.Contains(r.CSV(), tc.want) {
					t.Errorf("record %q should contain %q", r.CSV(), tc.want)
				}
			}
		})
	}
}

// TestRecord_JSON spot-checks the JSON rendering carries the same fields.
func TestRecord_JSON(t *testing.T) {
	cfg := Config{
		Strategy: ThreadLocalReduce,
		Dist:     histbench.DistSkewed,
		N:        42,
		Workers:  2,
		Policy:   PolicyGuided,
		Chunk:    16,
		Affinity: true,
	}
	recs := Records(cfg, Result{Elapsed: time.Second, Correct: false})

	line, err := recs[1].JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	for _, want := range []string{
		`"family":"hist"`,
		`"impl":"go"`,
		`"strategy":"local"`,
		`"dist":"skewed"`,
		`"sched":"guided"`,
		`"metric":"correct"`,
		`"value":"0"`,
	} {
		if !strings.Contains(line, want) {
			t.Errorf("JSON record %s missing %s", line, want)
		}
	}
}
