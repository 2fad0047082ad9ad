// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builtin

import (
	"strconv"

	"github.com/MKhiriev/go-intercept/interceptor"
	"github.com/MKhiriev/go-intercept/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the client-side Prometheus collectors fed by [Metrics.Observe].
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics registers the collectors on reg. Pass prometheus.NewRegistry()
// in tests to avoid clashing with the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "intercept",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "HTTP exchanges completed, by method and status code.",
		}, []string{"method", "status"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "intercept",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of HTTP exchanges, by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

// Observe returns a response interceptor recording every exchange. Failed
// exchanges with no status are counted under status "error".
func (m *Metrics) Observe() interceptor.ResponseInterceptor {
	return func(resp *models.Response) (*models.Response, error) {
		if resp == nil {
			return nil, nil
		}
		status := "error"
		if resp.Status > 0 {
			status = strconv.Itoa(resp.Status)
		}
		method := resp.Method()
		m.Requests.WithLabelValues(method, status).Inc()
		m.Duration.WithLabelValues(method).Observe(resp.Duration.Seconds())
		return resp, nil
	}
}
