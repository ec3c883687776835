// Package metrics exposes Prometheus instrumentation for the storefront:
// HTTP request metrics plus a handful of domain counters.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "eshop"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// CartMutations counts session cart writes by operation
	// ("add", "remove", "clear").
	CartMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cart",
			Name:      "mutations_total",
			Help:      "Session cart mutations by operation.",
		},
		[]string{"op"},
	)

	OrdersPlaced = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "order",
		Name:      "placed_total",
		Help:      "Orders successfully placed from a session cart.",
	})

	// OrderChanges counts staff edits and deletes by outcome.
	OrderChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "order",
			Name:      "changes_total",
			Help:      "Staff order edits and deletes by action and result.",
		},
		[]string{"action", "result"},
	)

	CatalogQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "query_duration_seconds",
			Help:      "Catalog page queries by mode.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .5, 1},
		},
		[]string{"mode"},
	)
)

var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		RequestDuration,
		RequestTotal,
		CartMutations,
		OrdersPlaced,
		OrderChanges,
		CatalogQueryDuration,
	)
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		status := strconv.Itoa(rec.status)
		RequestDuration.WithLabelValues(r.Method, r.URL.Path, status).Observe(time.Since(start).Seconds())
		RequestTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
	})
}

// Handler serves the registry on /metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveCatalogQuery is meant to be deferred:
//
//	defer metrics.ObserveCatalogQuery("search", time.Now())
func ObserveCatalogQuery(mode string, start time.Time) {
	CatalogQueryDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
}

func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
