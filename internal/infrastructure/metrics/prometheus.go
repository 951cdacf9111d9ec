package metrics

import (
	"net/http"
	"strconv"
	"time"

	"mecanica_os/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mecanica_os"

// Prometheus holds the service collectors on a private registry.
type Prometheus struct {
	registry       *prometheus.Registry
	reportDispatch *prometheus.CounterVec
	lookupFailures *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

var _ interfaces.IOperationalMetrics = (*Prometheus)(nil)

func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		reportDispatch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_dispatch_total",
			Help:      "Report dispatch runs by outcome.",
		}, []string{"outcome"}),
		lookupFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookup_failures_total",
			Help:      "Client/vehicle lookups replaced by a placeholder.",
		}, []string{"kind"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	p.registry.MustRegister(
		p.reportDispatch,
		p.lookupFailures,
		p.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

func (p *Prometheus) ObserveReportDispatch(outcome string) {
	p.reportDispatch.WithLabelValues(outcome).Inc()
}

func (p *Prometheus) ObserveLookupFailure(kind string) {
	p.lookupFailures.WithLabelValues(kind).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// GinMiddleware records request latency labelled by route template.
func (p *Prometheus) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		p.httpDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
