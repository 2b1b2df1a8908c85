package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_HOST", "HTTP_PORT", "SERVICE_NAME", "REQUEST_TIMEOUT", "SHUTDOWN_TIMEOUT",
		"MAX_REQUEST_BODY_SIZE", "KAFKA_BROKERS", "CHECKOUT_TOPIC", "OTEL_EXPORTER_OTLP_ENDPOINT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
	assert.Equal(t, "checkout-api", cfg.ServiceName)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, int64(1<<20), cfg.MaxRequestBodySize)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "checkout-received", cfg.CheckoutTopic)
	assert.Empty(t, cfg.OTLPEndpoint)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("MAX_REQUEST_BODY_SIZE", "2048")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4317")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, int64(2048), cfg.MaxRequestBodySize)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "collector:4317", cfg.OTLPEndpoint)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad timeout", "REQUEST_TIMEOUT", "soon"},
		{"negative shutdown", "SHUTDOWN_TIMEOUT", "-1s"},
		{"bad body size", "MAX_REQUEST_BODY_SIZE", "big"},
		{"zero body size", "MAX_REQUEST_BODY_SIZE", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
