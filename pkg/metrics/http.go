package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics métricas de peticiones HTTP y de eventos publicados.
type HTTPMetrics struct {
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	published *prometheus.CounterVec
}

// NewHTTPMetrics registra las métricas en el registerer indicado.
// Con reg nil devuelve un recolector vacío que ignora las observaciones.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	if reg == nil {
		return &HTTPMetrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Peticiones HTTP atendidas.",
	}, []string{"method", "route", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duración de las peticiones HTTP en segundos.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	published := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "events_published_total",
		Help: "Eventos de actualización en vivo publicados.",
	}, []string{"event", "result"})
	reg.MustRegister(requests, duration, published)
	return &HTTPMetrics{
		requests:  requests,
		duration:  duration,
		published: published,
	}
}

// ObserveRequest registra una petición terminada.
func (m *HTTPMetrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	route = normalizeLabel(route)
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObservePublish registra el resultado de publicar un evento.
func (m *HTTPMetrics) ObservePublish(event string, err error) {
	if m == nil || m.published == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.published.WithLabelValues(normalizeLabel(event), result).Inc()
}

func normalizeLabel(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
