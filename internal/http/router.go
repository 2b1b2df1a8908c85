package http

import (
	"net/http"
	"time"

	"github.com/fjod/go_cart/checkout-api/internal/metrics"
	"github.com/fjod/go_cart/checkout-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type RouterOptions struct {
	Service            service.CheckoutService
	Metrics            *metrics.Metrics
	Gatherer           prometheus.Gatherer
	ServiceName        string
	RequestTimeout     time.Duration
	MaxRequestBodySize int64
}

// NewRouter wires the checkout API routes behind the shared middleware chain.
func NewRouter(opts RouterOptions) http.Handler {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if opts.ServiceName == "" {
		opts.ServiceName = "checkout-api"
	}

	checkoutHandler := NewCheckoutHandler(opts.Service, opts.Metrics, opts.MaxRequestBodySize)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(opts.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(CORS)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/checkout", checkoutHandler.Checkout)
	})

	return otelhttp.NewHandler(r, opts.ServiceName)
}
