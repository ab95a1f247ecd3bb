// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics surface used by the ledger, hub and HTTP layer
type Recorder interface {
	RecordBidAccepted(amount float64)
	RecordBidRejected(reason string)
	RecordNotification(kind string)
	RecordHTTPRequest(method, route string, status int, latency time.Duration)
	SetBroadcastClients(count int)
	RecordBroadcast(delivered int)
}

// Collector is the Prometheus-backed Recorder
type Collector struct {
	bidsAccepted     prometheus.Counter
	bidsRejected     *prometheus.CounterVec
	bidAmount        prometheus.Histogram
	notifications    *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpLatency      *prometheus.HistogramVec
	broadcastClients prometheus.Gauge
	broadcastSent    prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		bidsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "auction_bids_accepted_total",
			Help: "Number of accepted bids",
		}),
		bidsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auction_bids_rejected_total",
			Help: "Number of rejected bids by reason",
		}, []string{"reason"}),
		bidAmount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "auction_bid_amount",
			Help:    "Amounts of accepted bids",
			Buckets: prometheus.ExponentialBuckets(10, 4, 8),
		}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auction_notifications_total",
			Help: "Notifications raised by type",
		}, []string{"type"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auction_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "auction_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		broadcastClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "auction_broadcast_clients",
			Help: "Currently connected broadcast clients",
		}),
		broadcastSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "auction_broadcast_messages_total",
			Help: "DOMAINS_UPDATE messages queued to clients",
		}),
	}

	reg.MustRegister(
		c.bidsAccepted,
		c.bidsRejected,
		c.bidAmount,
		c.notifications,
		c.httpRequests,
		c.httpLatency,
		c.broadcastClients,
		c.broadcastSent,
	)

	return c
}

// RecordBidAccepted counts an accepted bid and observes its amount
func (c *Collector) RecordBidAccepted(amount float64) {
	c.bidsAccepted.Inc()
	c.bidAmount.Observe(amount)
}

// RecordBidRejected counts a rejected bid
func (c *Collector) RecordBidRejected(reason string) {
	c.bidsRejected.WithLabelValues(reason).Inc()
}

// RecordNotification counts a raised notification
func (c *Collector) RecordNotification(kind string) {
	c.notifications.WithLabelValues(kind).Inc()
}

// RecordHTTPRequest counts a served request and its latency
func (c *Collector) RecordHTTPRequest(method, route string, status int, latency time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(latency.Seconds())
}

// SetBroadcastClients records the number of connected broadcast clients
func (c *Collector) SetBroadcastClients(count int) {
	c.broadcastClients.Set(float64(count))
}

// RecordBroadcast counts snapshot messages queued to clients
func (c *Collector) RecordBroadcast(delivered int) {
	c.broadcastSent.Add(float64(delivered))
}

// Handler returns the HTTP handler exposing the metrics gathered by g
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Nop is a Recorder that discards everything
type Nop struct{}

func (Nop) RecordBidAccepted(float64) {}
func (Nop) RecordBidRejected(string) {}
func (Nop) RecordNotification(string) {}
func (Nop) RecordHTTPRequest(string, string, int, time.Duration) {}
func (Nop) SetBroadcastClients(int) {}
func (Nop) RecordBroadcast(int) {}
