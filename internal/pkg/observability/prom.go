package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "placement_portal"

// Prom groups the HTTP and domain collectors.
type Prom struct {
	registry *prometheus.Registry

	RequestsTotal    *prometheus.CounterVec
	RequestsDuration *prometheus.HistogramVec
	InFlight         *prometheus.GaugeVec

	LoginAttempts *prometheus.CounterVec
	DBErrors      *prometheus.CounterVec
}

// NewProm registers every collector on a fresh registry, alongside the Go and
// process collectors.
func NewProm() *Prom {
	reg := prometheus.NewRegistry()

	p := &Prom{
		registry: reg,
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		RequestsDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distributions.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"method", "route", "status"},
		),
		InFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_in_flight_requests",
				Help:      "Current number of in-flight HTTP requests.",
			},
			[]string{"method", "route"},
		),
		LoginAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "auth",
				Name:      "login_attempts_total",
				Help:      "Login attempts by role and outcome.",
			},
			[]string{"role", "result"}, // result=success|failure
		),
		DBErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "db",
				Name:      "errors_total",
				Help:      "Unexpected storage errors by collection and operation.",
			},
			[]string{"collection", "op"},
		),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.RequestsTotal, p.RequestsDuration, p.InFlight, p.LoginAttempts, p.DBErrors,
	)
	return p
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prom) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{}))
}

// GinHandleMiddleware records request count, latency and in-flight gauges
// keyed by route template.
func (p *Prom) GinHandleMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := ctx.Request.Method

		p.InFlight.WithLabelValues(method, route).Inc()
		defer p.InFlight.WithLabelValues(method, route).Dec()

		ctx.Next()

		status := strconv.Itoa(ctx.Writer.Status())
		p.RequestsTotal.WithLabelValues(method, route, status).Inc()
		p.RequestsDuration.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())
	}
}

// ObserveLogin counts a login attempt. Safe on a nil receiver.
func (p *Prom) ObserveLogin(role string, ok bool) {
	if p == nil {
		return
	}
	result := "failure"
	if ok {
		result = "success"
	}
	p.LoginAttempts.WithLabelValues(role, result).Inc()
}

// ObserveDBError counts an unexpected storage error. Safe on a nil receiver.
func (p *Prom) ObserveDBError(collection, op string) {
	if p == nil {
		return
	}
	p.DBErrors.WithLabelValues(collection, op).Inc()
}
