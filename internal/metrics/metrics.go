package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the service's Prometheus metrics on a private registry.
// A nil *Collector is valid and records nothing.
type Collector struct {
	reg *prometheus.Registry

	FeedRefreshes    *prometheus.CounterVec // result label: ok|error
	FeedVersion      prometheus.Gauge
	FeedTrips        prometheus.Gauge
	FeedLastSuccess  prometheus.Gauge // unix seconds
	FeedLoadDuration prometheus.Histogram

	Estimates        *prometheus.CounterVec // outcome label
	EstimateDuration prometheus.Histogram

	RefreshInterval prometheus.Gauge // seconds
}

// NewCollector creates and registers every metric.
func NewCollector(refreshInterval time.Duration) *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		FeedRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "departures_feed_refreshes_total",
			Help: "Feed refresh attempts by result.",
		}, []string{"result"}),
		FeedVersion: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "departures_feed_version",
			Help: "Version of the snapshot currently served.",
		}),
		FeedTrips: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "departures_feed_trips",
			Help: "Number of trips in the snapshot currently served.",
		}),
		FeedLastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "departures_feed_last_success_timestamp_seconds",
			Help: "Unix time of the last successful feed refresh.",
		}),
		FeedLoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "departures_feed_load_duration_seconds",
			Help:    "Duration to fetch, parse and convert the feed.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		}),
		Estimates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "departures_estimates_total",
			Help: "Departure estimates by outcome.",
		}, []string{"outcome"}),
		EstimateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "departures_estimate_duration_seconds",
			Help:    "Duration of a departure estimate.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 15),
		}),
		RefreshInterval: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "departures_feed_refresh_interval_seconds",
			Help: "Configured feed refresh interval in seconds.",
		}),
	}

	reg.MustRegister(
		c.FeedRefreshes, c.FeedVersion, c.FeedTrips, c.FeedLastSuccess, c.FeedLoadDuration,
		c.Estimates, c.EstimateDuration, c.RefreshInterval,
	)

	c.RefreshInterval.Set(refreshInterval.Seconds())

	return c
}

// Handler exposes the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

// ObserveRefresh records a successful feed refresh.
func (c *Collector) ObserveRefresh(version uint64, trips int, took time.Duration, at time.Time) {
	if c == nil {
		return
	}
	c.FeedRefreshes.WithLabelValues("ok").Inc()
	c.FeedVersion.Set(float64(version))
	c.FeedTrips.Set(float64(trips))
	c.FeedLastSuccess.Set(float64(at.Unix()))
	c.FeedLoadDuration.Observe(took.Seconds())
}

// ObserveRefreshError records a failed feed refresh.
func (c *Collector) ObserveRefreshError() {
	if c == nil {
		return
	}
	c.FeedRefreshes.WithLabelValues("error").Inc()
}

// ObserveEstimate records one estimate.
func (c *Collector) ObserveEstimate(outcome string, took time.Duration) {
	if c == nil {
		return
	}
	c.Estimates.WithLabelValues(outcome).Inc()
	c.EstimateDuration.Observe(took.Seconds())
}
