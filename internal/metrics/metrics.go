// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collectors are package level so services can record without threading a
// registry through every constructor. Register exposes them.
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests processed",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	ItemAuthorizationDecisions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "item_authorization_decisions_total",
		Help: "Item mutation authorization decisions by outcome",
	}, []string{"outcome"}) // authorized|not_found|forbidden|integrity_fault

	LikesCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "likes_created_total",
		Help: "Like creation requests by result",
	}, []string{"result"}) // created|existing
)

// Register registers the collectors on reg (or the default registerer if nil).
// Registering twice is not an error.
func Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	collectors := []prometheus.Collector{
		HTTPRequestsTotal,
		HTTPRequestDuration,
		ItemAuthorizationDecisions,
		LikesCreated,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}
