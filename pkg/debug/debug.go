// Package debug hosts the Prometheus registry and a metrics mux for
// embedding processes. The compiler itself is pure; long-lived hosts (a
// reconciler loop, for example) mount GetMux to expose compile counters.
package debug

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var globalRegistry = prometheus.NewRegistry()

// Registry returns the Prometheus registry for registering custom metrics.
// Metrics registered here are exported on /metrics alongside the defaults.
func Registry() prometheus.Registerer {
	return globalRegistry
}

// GetMux returns a mux serving /metrics and a trivial /health endpoint.
func GetMux() *http.ServeMux {
	mux := http.NewServeMux()

	gatherers := prometheus.Gatherers{
		prometheus.DefaultGatherer,
		globalRegistry,
	}
	mux.Handle("/metrics", promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return mux
}
