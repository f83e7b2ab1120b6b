package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// HTTP метрики
// =============================================================================

// HttpRequestsTotal - счётчик всех HTTP запросов
// Пример PromQL: rate(http_requests_total{service="marketplace-service"}[5m])
var HttpRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	},
	[]string{"service", "method", "path", "status"},
)

// HttpRequestDuration - гистограмма времени ответа
var HttpRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	},
	[]string{"service", "method", "path"},
)

var HttpRequestsInFlight = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "http_requests_in_flight",
		Help: "Current number of HTTP requests being processed",
	},
	[]string{"service"},
)

// =============================================================================
// MongoDB метрики
// =============================================================================

// DbQueryDuration - время выполнения операций над коллекциями
var DbQueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "db_query_duration_seconds",
		Help:    "Duration of database operations in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	},
	[]string{"service", "operation", "collection"},
)

var DbErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "db_errors_total",
		Help: "Total number of database errors",
	},
	[]string{"service", "operation"},
)

// =============================================================================
// Redis метрики (кеш списка наименований товаров)
// =============================================================================

var RedisCacheHits = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "redis_cache_hits_total",
		Help: "Total number of Redis cache hits",
	},
	[]string{"service", "key_prefix"},
)

var RedisCacheMisses = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "redis_cache_misses_total",
		Help: "Total number of Redis cache misses",
	},
	[]string{"service", "key_prefix"},
)

var RedisOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "redis_operation_duration_seconds",
		Help:    "Duration of Redis operations in seconds",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	},
	[]string{"service", "operation"},
)

var RedisErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "redis_errors_total",
		Help: "Total number of Redis errors",
	},
	[]string{"service", "operation"},
)

// =============================================================================
// Kafka метрики
// =============================================================================

var KafkaMessagesProduced = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kafka_messages_produced_total",
		Help: "Total number of Kafka messages produced",
	},
	[]string{"service", "topic"},
)

var KafkaProduceDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "kafka_produce_duration_seconds",
		Help:    "Duration of Kafka produce operations",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	},
	[]string{"service", "topic"},
)

var KafkaErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kafka_errors_total",
		Help: "Total number of Kafka errors",
	},
	[]string{"service", "topic", "operation"},
)

// =============================================================================
// Бизнес метрики маркетплейса
// =============================================================================

// UsersRegistered - первые входы пользователей (вставка, а не обновление last_loggedIn)
var UsersRegistered = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "marketplace_users_registered_total",
		Help: "Total number of users created on first login",
	},
)

// ProductsSubmitted - товары, отправленные вендорами на модерацию
var ProductsSubmitted = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "marketplace_products_submitted_total",
		Help: "Total number of products submitted for moderation",
	},
)

// ProductsModerated - решения модерации
var ProductsModerated = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "marketplace_products_moderated_total",
		Help: "Total number of moderation decisions",
	},
	[]string{"status"}, // approved, rejected, pending
)

var OrdersPlaced = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "marketplace_orders_placed_total",
		Help: "Total number of orders placed",
	},
)

var ReviewsCreated = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "marketplace_reviews_created_total",
		Help: "Total number of reviews created",
	},
)

// DuplicateSubmissions - повторные добавления в watchlist и повторные отзывы
var DuplicateSubmissions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "marketplace_duplicate_submissions_total",
		Help: "Total number of duplicate watchlist or review submissions",
	},
	[]string{"kind"}, // watchlist, review
)

var PaymentIntents = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "marketplace_payment_intents_total",
		Help: "Total number of payment intent creation attempts",
	},
	[]string{"status"}, // success, failed
)
