// Package benchmetrics provides opt-in, low-overhead telemetry for benchmark
// runs. It is safe to call from harness code unconditionally: when disabled,
// every public function is a no-op. Enabling it lets long sweeps driven by
// external scripts expose run counts and timing distributions on a standalone
// Prometheus endpoint.
package benchmetrics

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config controls the module.
//
// MetricsAddr, when non-empty, starts a dedicated HTTP server serving
// /metrics. If you already expose Prometheus elsewhere, leave it empty and
// register promhttp yourself.
type Config struct {
	Enabled     bool
	MetricsAddr string // e.g., ":9090". Empty to disable the standalone endpoint.
}

var (
	modEnabled atomic.Bool

	// Labels are bounded: two strategies by two distributions.
	runsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "histbench_runs_total",
		Help: "Total completed benchmark runs by strategy and distribution",
	}, []string{"strategy", "dist"})
	verifyFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "histbench_verify_failures_total",
		Help: "Total runs whose bin-store total did not equal the element count",
	})
	elapsedSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "histbench_reduction_elapsed_seconds",
		Help:    "Wall-clock time of the timed reduction phase",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 20),
	}, []string{"strategy", "dist"})
)

func init() {
	// Register eagerly. Harmless if no endpoint is ever exposed.
	prometheus.MustRegister(runsTotal, verifyFailuresTotal, elapsedSeconds)
}

// Enable configures the module. Safe to call multiple times; subsequent calls
// replace the config.
func Enable(cfg Config) {
	modEnabled.Store(cfg.Enabled)
	if cfg.Enabled && cfg.MetricsAddr != "" {
		startMetricsEndpoint(cfg.MetricsAddr)
	}
}

// Enabled reports whether telemetry is active.
func Enabled() bool { return modEnabled.Load() }

// ObserveRun records one completed run. No-op when the module is disabled.
func ObserveRun(strategy, dist string, elapsed time.Duration, correct bool) {
	if !modEnabled.Load() {
		return
	}
	runsTotal.WithLabelValues(strategy, dist).Inc()
	elapsedSeconds.WithLabelValues(strategy, dist).Observe(elapsed.Seconds())
	if !correct {
		verifyFailuresTotal.Inc()
	}
}

// startMetricsEndpoint exposes /metrics on addr in a background goroutine.
func startMetricsEndpoint(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		_ = server.ListenAndServe()
	}()
}
