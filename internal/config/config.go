package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPHost           string
	HTTPPort           string
	ServiceName        string
	RequestTimeout     time.Duration
	ShutdownTimeout    time.Duration
	MaxRequestBodySize int64
	KafkaBrokers       []string
	CheckoutTopic      string
	OTLPEndpoint       string
}

func (c *Config) Addr() string {
	return c.HTTPHost + ":" + c.HTTPPort
}

// Load reads the environment. With nothing set the service binds 0.0.0.0:5000,
// publishes no events and exports no traces.
func Load() (*Config, error) {
	requestTimeout, err := getDuration("REQUEST_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	maxBody, err := getInt64("MAX_REQUEST_BODY_SIZE", 1<<20) // 1MB
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPHost:           getEnv("HTTP_HOST", "0.0.0.0"),
		HTTPPort:           getEnv("HTTP_PORT", "5000"),
		ServiceName:        getEnv("SERVICE_NAME", "checkout-api"),
		RequestTimeout:     requestTimeout,
		ShutdownTimeout:    shutdownTimeout,
		MaxRequestBodySize: maxBody,
		KafkaBrokers:       parseCSV(getEnv("KAFKA_BROKERS", "")),
		CheckoutTopic:      getEnv("CHECKOUT_TOPIC", "checkout-received"),
		OTLPEndpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive duration", key, raw)
	}
	return d, nil
}

func getInt64(key string, defaultValue int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", key, raw)
	}
	return n, nil
}

func parseCSV(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
