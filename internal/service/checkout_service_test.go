package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	d "github.com/fjod/go_cart/checkout-api/internal/domain"
	"github.com/fjod/go_cart/checkout-api/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct {
	Events []d.CheckoutEvent
	Err    error
}

func (m *MockPublisher) Publish(_ context.Context, event d.CheckoutEvent) error {
	m.Events = append(m.Events, event)
	return m.Err
}

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func TestCheckout_Confirmed(t *testing.T) {
	var out bytes.Buffer
	pub := &MockPublisher{}
	svc := NewCheckoutService(
		WithOutput(&out),
		WithPublisher(pub),
		WithMetrics(metrics.New(prometheus.NewRegistry())),
		WithClock(func() time.Time { return fixedNow }),
	)

	items := []d.Item{d.Item(`{"id":1,"qty":2}`)}
	status, err := svc.Checkout(context.Background(), "req-1", items)

	require.NoError(t, err)
	assert.Equal(t, d.CheckoutStatusConfirmed, status)
	assert.Contains(t, out.String(), "--- CHECKOUT RECEIVED ---")
	assert.Contains(t, out.String(), "Processing checkout for 1 item(s).")

	require.Len(t, pub.Events, 1)
	assert.Equal(t, "req-1", pub.Events[0].RequestID)
	assert.Equal(t, 1, pub.Events[0].ItemCount)
	assert.Equal(t, fixedNow, pub.Events[0].ReceivedAt)
}

func TestCheckout_PublishErrorDoesNotFailCheckout(t *testing.T) {
	var out bytes.Buffer
	pub := &MockPublisher{Err: errors.New("broker down")}
	svc := NewCheckoutService(WithOutput(&out), WithPublisher(pub))

	status, err := svc.Checkout(context.Background(), "req-2", []d.Item{d.Item(`1`)})

	require.NoError(t, err)
	assert.Equal(t, d.CheckoutStatusConfirmed, status)
	assert.Len(t, pub.Events, 1)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestCheckout_RecordErrorDoesNotFailCheckout(t *testing.T) {
	svc := NewCheckoutService(WithOutput(failingWriter{}))

	status, err := svc.Checkout(context.Background(), "req-3", []d.Item{d.Item(`1`)})

	require.NoError(t, err)
	assert.Equal(t, d.CheckoutStatusConfirmed, status)
}

func TestCheckout_NoItems(t *testing.T) {
	var out bytes.Buffer
	pub := &MockPublisher{}
	svc := NewCheckoutService(WithOutput(&out), WithPublisher(pub))

	status, err := svc.Checkout(context.Background(), "req-4", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, d.ErrInvalidItems)
	assert.Equal(t, d.CheckoutStatusRejected, status)
	assert.Empty(t, out.String())
	assert.Empty(t, pub.Events)
}

func TestCheckout_Idempotent(t *testing.T) {
	var out bytes.Buffer
	svc := NewCheckoutService(WithOutput(&out))
	items := []d.Item{d.Item(`{"id":7}`)}

	first, err := svc.Checkout(context.Background(), "req-5", items)
	require.NoError(t, err)
	firstRecord := out.String()
	out.Reset()

	second, err := svc.Checkout(context.Background(), "req-5", items)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstRecord, out.String())
}
