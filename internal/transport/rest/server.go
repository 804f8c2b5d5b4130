package rest

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/dictionary-bot/internal/transport/middleware"
)

// NewRouter builds the ops mux: probes plus the Prometheus scrape endpoint
// for the given gatherer.
func NewRouter(health *HealthHandler, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	logger = logger.With("transport", "ops")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
	)(mux)
}
