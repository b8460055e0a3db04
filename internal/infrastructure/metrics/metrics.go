// Package metrics define las métricas Prometheus de la aplicación. Se registran en el
// registro por defecto y se exponen en GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// InvoiceMutations mutaciones de facturas por acción (create, update, delete) y resultado.
	InvoiceMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "invoice_dashboard",
		Name:      "invoice_mutations_total",
		Help:      "Invoice mutations by action and outcome.",
	}, []string{"action", "outcome"})

	// HTTPRequests peticiones atendidas por método, ruta registrada y código.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "invoice_dashboard",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	// HTTPDuration latencia de las peticiones por método y ruta.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "invoice_dashboard",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// ViewCacheLookups lecturas del cache de vistas por resultado (hit, miss).
	ViewCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "invoice_dashboard",
		Name:      "view_cache_lookups_total",
		Help:      "View cache lookups by result.",
	}, []string{"result"})

	// ViewCacheInvalidations invalidaciones de rutas del cache de vistas.
	ViewCacheInvalidations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "invoice_dashboard",
		Name:      "view_cache_invalidations_total",
		Help:      "View cache invalidations by route.",
	}, []string{"route"})
)
