package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is the optional Prometheus instrumentation realizing
// spec.md §6's "timing instrumentation" host-boundary artifact. It is
// entirely outside the engine's call graph (see SPEC_FULL.md §5): the
// HTTP server it starts serves a snapshot recorded after one search
// invocation completes, it does not observe the engine mid-search.
type Metrics struct {
	registry *prometheus.Registry
	calls    prometheus.Counter
	duration prometheus.Histogram
}

// NewMetrics constructs a fresh Metrics registry with the call counter
// and duration histogram described in SPEC_FULL.md §4.8.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	return &Metrics{
		registry: reg,
		calls: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "covopt_search_calls_total",
			Help: "Total recursive search entries consumed by completed search invocations.",
		}),
		duration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "covopt_search_duration_seconds",
			Help:    "Wall-clock duration of a single search invocation.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Observe records one completed search invocation.
func (m *Metrics) Observe(callsUsed int, elapsed time.Duration) {
	m.calls.Add(float64(callsUsed))
	m.duration.Observe(elapsed.Seconds())
}

// Serve starts an HTTP server exposing /metrics on addr and returns a
// shutdown function the caller must invoke (typically via defer)
// before the process exits.
func (m *Metrics) Serve(addr string) (shutdown func(), err error) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		if serveErr := srv.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			errCh <- serveErr
		}
	}()

	shutdown = func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
	return shutdown, nil
}
