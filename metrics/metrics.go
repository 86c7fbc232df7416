package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultAvailable = "available"
	ResultConflict  = "conflict"
	ResultError     = "error"
)

type Registry struct {
	reg                *prometheus.Registry
	AvailabilityChecks *prometheus.CounterVec
	SlotGridRequests   prometheus.Counter
	StoreErrors        prometheus.Counter
	HoldsCreated       prometheus.Counter
	HoldsExpired       prometheus.Counter
	CheckLatencySec    prometheus.Histogram
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	checks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "venue_availability_checks_total",
		Help: "Range availability checks by outcome.",
	}, []string{"result"})
	grid := prometheus.NewCounter(prometheus.CounterOpts{Name: "venue_slot_grid_requests_total"})
	storeErrors := prometheus.NewCounter(prometheus.CounterOpts{Name: "venue_store_errors_total"})
	created := prometheus.NewCounter(prometheus.CounterOpts{Name: "venue_holds_created_total"})
	expired := prometheus.NewCounter(prometheus.CounterOpts{Name: "venue_holds_expired_total"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "venue_check_latency_seconds",
		Buckets: prometheus.DefBuckets,
	})

	r.MustRegister(checks, grid, storeErrors, created, expired, latency)
	return &Registry{
		reg:                r,
		AvailabilityChecks: checks,
		SlotGridRequests:   grid,
		StoreErrors:        storeErrors,
		HoldsCreated:       created,
		HoldsExpired:       expired,
		CheckLatencySec:    latency,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

// Gatherer exposes the underlying registry, mainly for tests.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }
