// Package metrics holds the Prometheus collectors of the checkout API.
//
// Metrics (namespace "checkout"):
//
//	requests_total{outcome}         confirmed or rejected checkouts
//	rejections_total{reason}        rejected checkouts by cause
//	items_total                     items across all confirmed checkouts
//	events_published_total{result}  checkout events handed to the event sink (ok / error)
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeConfirmed = "confirmed"
	OutcomeRejected  = "rejected"

	ResultOK    = "ok"
	ResultError = "error"
)

type Metrics struct {
	requests   *prometheus.CounterVec
	rejections *prometheus.CounterVec
	items      prometheus.Counter
	published  *prometheus.CounterVec
}

// New registers all collectors with registry. A nil registry means the default one.
func New(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "checkout",
			Name:      "requests_total",
			Help:      "Checkout requests by outcome",
		}, []string{"outcome"}),
		rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "checkout",
			Name:      "rejections_total",
			Help:      "Rejected checkout requests by reason",
		}, []string{"reason"}),
		items: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "checkout",
			Name:      "items_total",
			Help:      "Items received across confirmed checkouts",
		}),
		published: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "checkout",
			Name:      "events_published_total",
			Help:      "Checkout events handed to the event sink",
		}, []string{"result"}),
	}
}

func (m *Metrics) Confirmed(itemCount int) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(OutcomeConfirmed).Inc()
	m.items.Add(float64(itemCount))
}

func (m *Metrics) Rejected(reason string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(OutcomeRejected).Inc()
	m.rejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) Published(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.published.WithLabelValues(ResultError).Inc()
		return
	}
	m.published.WithLabelValues(ResultOK).Inc()
}
