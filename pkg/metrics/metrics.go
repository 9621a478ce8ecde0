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
	GeocodeCacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geocode_cache_operations_total",
			Help: "Geocode memory cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	GeocodeCacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "geocode_cache_size",
			Help: "Number of addresses currently in the memory cache",
		},
	)
	GeocodeProviderCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geocode_provider_calls_total",
			Help: "External geocoder calls by outcome",
		},
		[]string{"outcome"}, // ok|empty|error
	)
)

var (
	OrderBoardPasses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_board_passes_total",
			Help: "Number of completed matching passes over the order board",
		},
	)
	OrderBoardPassDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_board_pass_duration_seconds",
			Help:    "Duration of a full matching pass",
			Buckets: prometheus.DefBuckets,
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрация всех коллекторов; повторные вызовы безопасны.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
			GeocodeCacheOps, GeocodeCacheSize, GeocodeProviderCalls,
			OrderBoardPasses, OrderBoardPassDuration,
		)
	})
}
