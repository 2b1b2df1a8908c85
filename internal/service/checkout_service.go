package service

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/fjod/go_cart/checkout-api/internal/diagnostics"
	d "github.com/fjod/go_cart/checkout-api/internal/domain"
	"github.com/fjod/go_cart/checkout-api/internal/metrics"
)

type CheckoutService interface {
	Checkout(ctx context.Context, requestID string, items []d.Item) (d.CheckoutStatus, error)
}

// EventPublisher receives an event for every confirmed checkout.
type EventPublisher interface {
	Publish(ctx context.Context, event d.CheckoutEvent) error
}

type CheckoutServiceImpl struct {
	out       io.Writer
	publisher EventPublisher
	metrics   *metrics.Metrics
	now       func() time.Time
}

type Option func(*CheckoutServiceImpl)

// WithOutput redirects diagnostic records, which go to stdout by default.
func WithOutput(w io.Writer) Option {
	return func(s *CheckoutServiceImpl) { s.out = w }
}

func WithPublisher(p EventPublisher) Option {
	return func(s *CheckoutServiceImpl) { s.publisher = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *CheckoutServiceImpl) { s.metrics = m }
}

func WithClock(now func() time.Time) Option {
	return func(s *CheckoutServiceImpl) { s.now = now }
}

func NewCheckoutService(opts ...Option) *CheckoutServiceImpl {
	s := &CheckoutServiceImpl{
		out: os.Stdout,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Checkout accepts already validated items. It never fails the checkout on a
// diagnostic or publishing problem; those are logged and counted.
func (s *CheckoutServiceImpl) Checkout(ctx context.Context, requestID string, items []d.Item) (d.CheckoutStatus, error) {
	if len(items) == 0 {
		return d.CheckoutStatusRejected, &d.MalformedRequest{Cause: d.ErrInvalidItems}
	}

	if err := diagnostics.WriteRecord(s.out, items); err != nil {
		log.Printf("failed to write checkout record request_id = %v: %v", requestID, err)
	}
	s.metrics.Confirmed(len(items))

	if s.publisher != nil {
		err := s.publisher.Publish(ctx, d.NewCheckoutEvent(requestID, items, s.now()))
		if err != nil {
			log.Printf("failed to publish checkout event request_id = %v: %v", requestID, err)
		}
		s.metrics.Published(err)
	}

	return d.CheckoutStatusConfirmed, nil
}
