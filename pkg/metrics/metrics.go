package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics prometheus-коллекторы сервиса
type Metrics struct {
	// HTTPRequestsTotal количество HTTP запросов по методу, маршруту и статусу
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration длительность HTTP запросов по методу и маршруту
	HTTPRequestDuration *prometheus.HistogramVec

	// CatalogFields текущее количество полей в каталоге
	CatalogFields prometheus.Gauge
}

// New создает и регистрирует коллекторы метрик
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		CatalogFields: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "catalog_fields_total",
			Help:        "Number of fields currently in the catalog.",
			ConstLabels: labels,
		}),
	}
}
