package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired|stale
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

var (
	CarbEvaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carb_evaluations_total",
			Help: "CARB compliance evaluations by result",
		},
		[]string{"result"}, // not_applicable|compliant|non_compliant
	)
	CarbNonCompliantLines = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "carb_non_compliant_lines_total",
			Help: "Cart lines flagged as CARB non-compliant",
		},
	)
	CarbEvaluationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "carb_evaluation_duration_seconds",
			Help:    "Duration of a single CARB compliance evaluation",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)
	CheckoutValidations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_validations_total",
			Help: "Checkout validations by boundary and outcome",
		},
		[]string{"boundary", "outcome"}, // function|checkout; skipped|passed|failed|unavailable
	)
)

var registerOnce sync.Once

// MustRegister: регистрирует метрики в DefaultRegisterer; повторный вызов ничего не делает.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
			CacheOps, CacheSize,
			CarbEvaluations, CarbNonCompliantLines, CarbEvaluationDuration,
			CheckoutValidations,
		)
	})
}
