package monitor

import "github.com/prometheus/client_golang/prometheus"

var (
	// HTTPRequestsTotal HTTP 请求相关
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_http_requests_total",
			Help: "Total number of HTTP requests served, by route and status.",
		},
		[]string{"route", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_http_request_duration_seconds",
			Help:    "Time taken to serve an HTTP request.",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0},
		},
		[]string{"route"},
	)

	// CacheHits 结果缓存指标
	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_result_cache_hits_total",
			Help: "Total number of result cache hits.",
		},
		[]string{"endpoint"},
	)
	CacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_result_cache_misses_total",
			Help: "Total number of result cache misses.",
		},
		[]string{"endpoint"},
	)

	// DBQueryDuration 数据库查询指标
	DBQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_db_query_duration_seconds",
			Help:    "Time taken to execute an analytics query.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0},
		},
		[]string{"query"},
	)
	DBQueryErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_db_query_errors_total",
			Help: "Total number of failed analytics queries.",
		},
		[]string{"query"},
	)

	// CacheWarmRuns 缓存预热指标
	CacheWarmRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_cache_warm_runs_total",
			Help: "Total number of cache warm executions per pool.",
		},
		[]string{"pool", "result"},
	)
)

func init() {
	prometheus.MustRegister(
		// http 指标
		HTTPRequestsTotal,
		HTTPRequestDuration,

		// 缓存指标
		CacheHits,
		CacheMisses,
		CacheWarmRuns,

		// 数据库指标
		DBQueryDuration,
		DBQueryErrors,
	)
}
