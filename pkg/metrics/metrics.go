package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// HTTP Метрики
// =============================================================================

// HttpRequestsTotal - счётчик всех HTTP запросов
// Labels: method, path, status
// Пример запроса PromQL: rate(http_requests_total[5m])
var HttpRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	},
	[]string{"method", "path", "status"},
)

// HttpRequestDuration - гистограмма времени ответа
// Пример: histogram_quantile(0.95, rate(http_request_duration_seconds_bucket[5m]))
var HttpRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	},
	[]string{"method", "path"},
)

// =============================================================================
// Database Метрики
// =============================================================================

// DbErrors - счётчик ошибок базы данных
var DbErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "db_errors_total",
		Help: "Total number of database errors",
	},
	[]string{"operation"},
)

// =============================================================================
// Auth Метрики
// =============================================================================

// AuthRegistrations - регистрации пользователей
var AuthRegistrations = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "auth_registrations_total",
		Help: "Total number of user registrations",
	},
)

// AuthLogins - попытки входа
var AuthLogins = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "auth_logins_total",
		Help: "Total number of login attempts",
	},
	[]string{"status"}, // success, failed
)

// =============================================================================
// Business Метрики
// =============================================================================

// ImportsTotal - вызовы импорта каталога по результату
var ImportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "catalog_imports_total",
		Help: "Total number of catalog import calls",
	},
	[]string{"status"}, // success, forbidden, bad_request, failed
)

// ImportDuration - время полного цикла импорта (fetch + parse + reconcile)
var ImportDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "catalog_import_duration_seconds",
		Help:    "Duration of catalog import calls in seconds",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	},
)

// ImportedOffers - количество созданных предложений (ProductInfo)
var ImportedOffers = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "catalog_imported_offers_total",
		Help: "Total number of product offers created by imports",
	},
)

// OrdersConfirmed - подтверждённые заказы
var OrdersConfirmed = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "orders_confirmed_total",
		Help: "Total number of confirmed orders",
	},
)

// CartOperations - операции с корзиной
var CartOperations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cart_operations_total",
		Help: "Total number of cart operations",
	},
	[]string{"operation"}, // add, remove
)

// EmailsSent - результаты отправки писем (best-effort)
var EmailsSent = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "emails_sent_total",
		Help: "Total number of notification emails",
	},
	[]string{"status"}, // sent, failed
)
