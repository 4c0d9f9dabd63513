package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                    sync.Once
	metricsRouter           *chi.Mux
	queueSendErrorCounter   prometheus.Counter
	pollerDurationHistogram *prometheus.HistogramVec
	httpRequestDuration     *prometheus.HistogramVec
	periodsAdvancedCounter  prometheus.Counter
	currentPeriodGauge      prometheus.Gauge
	rewardPoolBalanceGauge  prometheus.Gauge
	operationDuration       *prometheus.HistogramVec
	dbLatency               *prometheus.HistogramVec
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of incoming HTTP request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "path", "status"},
	)

	// add a counter for the number of errors from the fail to push message into queue
	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	periodsAdvancedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "periods_advanced_count",
			Help: "The total number of reward periods closed since process start",
		},
	)

	currentPeriodGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "current_period",
			Help: "Last value of the global period counter",
		},
	)

	rewardPoolBalanceGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "reward_pool_balance",
			Help: "Last observed reward pool balance",
		},
	)

	operationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "staking_operation_duration_seconds",
			Help:    "Staking operation processing duration in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"operation", "status"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	prometheus.MustRegister(
		httpRequestDuration,
		queueSendErrorCounter,
		pollerDurationHistogram,
		periodsAdvancedCounter,
		currentPeriodGauge,
		rewardPoolBalanceGauge,
		operationDuration,
		dbLatency,
	)
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordOperationDuration(d time.Duration, operation string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	operationDuration.WithLabelValues(operation, status.String()).Observe(d.Seconds())
}

func RecordPollerDuration(d time.Duration, pollerType string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	pollerDurationHistogram.WithLabelValues(pollerType, status.String()).Observe(d.Seconds())
}

func RecordHttpRequestDuration(d time.Duration, method, path string, statusCode int) {
	httpRequestDuration.WithLabelValues(
		method,
		path,
		fmt.Sprintf("%d", statusCode),
	).Observe(d.Seconds())
}

func IncPeriodsAdvanced(count int64) {
	periodsAdvancedCounter.Add(float64(count))
}

func RecordCurrentPeriod(period int64) {
	currentPeriodGauge.Set(float64(period))
}

func RecordRewardPoolBalance(balance float64) {
	rewardPoolBalanceGauge.Set(balance)
}

func RecordQueueSendError() {
	queueSendErrorCounter.Inc()
}
