package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fjod/go_cart/checkout-api/internal/config"
	h "github.com/fjod/go_cart/checkout-api/internal/http"
	"github.com/fjod/go_cart/checkout-api/internal/metrics"
	"github.com/fjod/go_cart/checkout-api/internal/publisher"
	"github.com/fjod/go_cart/checkout-api/internal/service"
	"github.com/fjod/go_cart/checkout-api/internal/tracing"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	log.Println("checkout-api starting...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Tracing
	exporter, err := tracing.NewExporter(context.Background(), cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("Failed to create trace exporter: %v", err)
	}
	tp := tracing.NewProvider(cfg.ServiceName, exporter)
	if exporter != nil {
		log.Printf("Exporting traces to %s", cfg.OTLPEndpoint)
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	opts := []service.Option{service.WithMetrics(m)}

	// Checkout events are optional
	var kafkaPublisher *publisher.KafkaPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher = publisher.NewKafkaPublisher(cfg.CheckoutTopic, cfg.KafkaBrokers...)
		opts = append(opts, service.WithPublisher(kafkaPublisher))
		log.Printf("Publishing checkout events to topic %s on %v", cfg.CheckoutTopic, cfg.KafkaBrokers)
	}

	checkoutService := service.NewCheckoutService(opts...)

	handler := h.NewRouter(h.RouterOptions{
		Service:            checkoutService,
		Metrics:            m,
		Gatherer:           prometheus.DefaultGatherer,
		ServiceName:        cfg.ServiceName,
		RequestTimeout:     cfg.RequestTimeout,
		MaxRequestBodySize: cfg.MaxRequestBodySize,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Checkout API listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			log.Printf("failed to close kafka writer: %v", err)
		}
	}
	if err := tp.Shutdown(ctx); err != nil {
		log.Printf("failed to shut down tracer provider: %v", err)
	}

	log.Println("server exited")
}
