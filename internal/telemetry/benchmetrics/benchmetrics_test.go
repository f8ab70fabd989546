package benchmetrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestObserveRun_DisabledIsNoOp verifies the enable gate: with the module off,
// ObserveRun must leave every metric untouched so harness code can call it
// unconditionally.
func TestObserveRun_DisabledIsNoOp(t *testing.T) {
	t.Cleanup(func() { Enable(Config{Enabled: false}) })
	Enable(Config{Enabled: false})
	if Enabled() {
		t.Fatalf("module should be disabled")
	}

	beforeRuns := testutil.ToFloat64(runsTotal.WithLabelValues("atomic", "uniform"))
	beforeFailures := testutil.ToFloat64(verifyFailuresTotal)

	ObserveRun("atomic", "uniform", 10*time.Millisecond, false)

	if d := testutil.ToFloat64(runsTotal.WithLabelValues("atomic", "uniform")) - beforeRuns; d != 0 {
		t.Fatalf("runsTotal delta = %v while disabled, want 0", d)
	}
	if d := testutil.ToFloat64(verifyFailuresTotal) - beforeFailures; d != 0 {
		t.Fatalf("verifyFailuresTotal delta = %v while disabled, want 0", d)
	}
}

// TestObserveRun_CountsRunsAndFailures drives the enabled path: every run
// increments its strategy/dist cell, and only incorrect runs touch the
// failure counter.
func TestObserveRun_CountsRunsAndFailures(t *testing.T) {
	t.Cleanup(func() { Enable(Config{Enabled: false}) })
	Enable(Config{Enabled: true})
	if !Enabled() {
		t.Fatalf("module should be enabled")
	}

	beforeRuns := testutil.ToFloat64(runsTotal.WithLabelValues("local", "skewed"))
	beforeFailures := testutil.ToFloat64(verifyFailuresTotal)

	ObserveRun("local", "skewed", 5*time.Millisecond, true)
	ObserveRun("local", "skewed", 5*time.Millisecond, false)

	if d := testutil.ToFloat64(runsTotal.WithLabelValues("local", "skewed")) - beforeRuns; d != 2 {
		t.Fatalf("runsTotal delta = %v, want 2", d)
	}
	if d := testutil.ToFloat64(verifyFailuresTotal) - beforeFailures; d != 1 {
		t.Fatalf("verifyFailuresTotal delta = %v, want 1", d)
	}
	// The elapsed histogram must have a populated cell for the labels.
	if testutil.CollectAndCount(elapsedSeconds) == 0 {
		t.Fatalf("elapsedSeconds has no populated cells")
	}
}

// TestStartMetricsEndpoint ensures the standalone endpoint path starts
// without panicking.
func TestStartMetricsEndpoint(t *testing.T) {
	startMetricsEndpoint(":0")
	time.Sleep(5 * time.Millisecond)
}
