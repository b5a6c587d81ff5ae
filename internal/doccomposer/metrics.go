package doccomposer

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const metricsNamespace = "doccomposer"

// Metrics - метрики сервиса в собственном реестре.
type Metrics struct {
	registry *prometheus.Registry

	renders        *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	savedBytes     *prometheus.CounterVec
	bootTime       prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "renders_total",
			Help:      "Document renders by renderer and result",
		}, []string{"renderer", "result"}),
		renderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "render_duration_seconds",
			Help:      "Document render duration",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"renderer"}),
		savedBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "saved_bytes_total",
			Help:      "Bytes of rendered documents passed to storage",
		}, []string{"storage"}),
		bootTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "boot_time",
			Help:      "Server startup time",
		}),
	}
	m.bootTime.Set(float64(time.Now().UnixMilli()))

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.renders,
		m.renderDuration,
		m.savedBytes,
		m.bootTime,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveRender(renderer string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.renders.WithLabelValues(renderer, result).Inc()
	m.renderDuration.WithLabelValues(renderer).Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveSave(storage string, size int) {
	m.savedBytes.WithLabelValues(storage).Add(float64(size))
}
