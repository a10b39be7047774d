package mw

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/relaykit/relay"
)

// Metrics records request totals, latency, and in-flight gauge under the
// given namespace, registering its collectors with reg. Pass
// prometheus.DefaultRegisterer for the usual process-wide registry; tests
// use a fresh prometheus.NewRegistry to avoid collisions.
func Metrics(namespace string, reg prometheus.Registerer) relay.Middleware {
	factory := promauto.With(reg)

	total := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "pipeline",
		Name:      "requests_total",
		Help:      "Total requests by method, path, and status code.",
	}, []string{"method", "path", "status"})

	duration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "pipeline",
		Name:      "request_duration_seconds",
		Help:      "Request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	inFlight := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "pipeline",
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed.",
	})

	return relay.MiddlewareFunc(func(ctx context.Context, req *relay.Request, next relay.Handler) (*relay.Response, error) {
		inFlight.Inc()
		start := time.Now()

		resp, err := next.Handle(ctx, req)

		inFlight.Dec()
		duration.WithLabelValues(req.Method(), req.Path()).
			Observe(time.Since(start).Seconds())

		status := "error"
		if err == nil && resp != nil {
			status = strconv.Itoa(resp.Status())
		}

		total.WithLabelValues(req.Method(), req.Path(), status).Inc()

		return resp, err
	})
}
