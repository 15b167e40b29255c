package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллекторы prometheus для портала
type Metrics struct {
	serviceName string

	// HTTP метрики
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Метрики жизненного цикла холдов (блокировок расписания)
	HoldsActive         prometheus.Gauge
	HoldsRequestedTotal prometheus.Counter
	HoldsReleasedTotal  *prometheus.CounterVec // label: reason (expired | cancelled)
	HoldsConfirmedTotal prometheus.Counter

	// Метрики кэша справочников
	RefCacheHitsTotal   prometheus.Counter
	RefCacheMissesTotal prometheus.Counter
}

// New создает и регистрирует коллекторы метрик
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		HTTPRequestsInFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests currently being served",
			ConstLabels: constLabels,
		}),

		HoldsActive: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "schedule_holds_active",
			Help:        "Number of schedule holds currently in the held state",
			ConstLabels: constLabels,
		}),

		HoldsRequestedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "schedule_holds_requested_total",
			Help:        "Total number of successful schedule hold requests",
			ConstLabels: constLabels,
		}),

		HoldsReleasedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "schedule_holds_released_total",
			Help:        "Total number of released schedule holds by reason",
			ConstLabels: constLabels,
		}, []string{"reason"}),

		HoldsConfirmedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "schedule_holds_confirmed_total",
			Help:        "Total number of holds converted into confirmed bookings",
			ConstLabels: constLabels,
		}),

		RefCacheHitsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "refdata_cache_hits_total",
			Help:        "Total number of reference data cache hits",
			ConstLabels: constLabels,
		}),

		RefCacheMissesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "refdata_cache_misses_total",
			Help:        "Total number of reference data cache misses",
			ConstLabels: constLabels,
		}),
	}
}

// HoldRequested фиксирует успешный запрос холда
func (m *Metrics) HoldRequested() {
	if m == nil {
		return
	}
	m.HoldsRequestedTotal.Inc()
	m.HoldsActive.Inc()
}

// HoldReleased фиксирует освобождение холда
// reason: expired | cancelled
func (m *Metrics) HoldReleased(reason string) {
	if m == nil {
		return
	}
	m.HoldsReleasedTotal.WithLabelValues(reason).Inc()
	m.HoldsActive.Dec()
}

// HoldConfirmed фиксирует конвертацию холда в бронирование
func (m *Metrics) HoldConfirmed() {
	if m == nil {
		return
	}
	m.HoldsConfirmedTotal.Inc()
	m.HoldsActive.Dec()
}

// CacheHit фиксирует попадание в кэш справочников
func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.RefCacheHitsTotal.Inc()
}

// CacheMiss фиксирует промах кэша справочников
func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.RefCacheMissesTotal.Inc()
}
