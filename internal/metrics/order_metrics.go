package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics содержит метрики workflow создания заказов.
type OrderMetrics struct {
	// Счётчики исходов
	ordersCreated    prometheus.Counter
	paymentsDeclined prometheus.Counter
	gatewayErrors    prometheus.Counter
	persistFailures  prometheus.Counter
	usersRegistered  prometheus.Counter

	// Гистограмма полного времени создания заказа (включая провайдера)
	createDuration prometheus.Histogram
}

// NewOrderMetrics создаёт новый экземпляр метрик workflow.
func NewOrderMetrics() *OrderMetrics {
	return newOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orderpay_orders_created_total",
			Help: "Total number of orders charged and persisted",
		}),
		paymentsDeclined: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orderpay_payments_declined_total",
			Help: "Total number of charges explicitly declined by the provider",
		}),
		gatewayErrors: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orderpay_gateway_errors_total",
			Help: "Total number of transport-level payment gateway failures",
		}),
		persistFailures: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orderpay_persist_failures_total",
			Help: "Total number of order writes that failed after a successful charge",
		}),
		usersRegistered: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orderpay_users_registered_total",
			Help: "Total number of registered users",
		}),
		createDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "orderpay_order_create_duration_seconds",
			Help:    "Duration of the full order creation workflow in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// RecordOrderCreated увеличивает счётчик успешно созданных заказов.
func (m *OrderMetrics) RecordOrderCreated() {
	m.ordersCreated.Inc()
}

// RecordPaymentDeclined увеличивает счётчик отказов провайдера.
func (m *OrderMetrics) RecordPaymentDeclined() {
	m.paymentsDeclined.Inc()
}

// RecordGatewayError увеличивает счётчик транспортных сбоев провайдера.
func (m *OrderMetrics) RecordGatewayError() {
	m.gatewayErrors.Inc()
}

// RecordPersistFailure увеличивает счётчик потерянных записей после списания.
func (m *OrderMetrics) RecordPersistFailure() {
	m.persistFailures.Inc()
}

// RecordUserRegistered увеличивает счётчик зарегистрированных пользователей.
func (m *OrderMetrics) RecordUserRegistered() {
	m.usersRegistered.Inc()
}

// RecordCreateDuration фиксирует длительность workflow создания заказа.
func (m *OrderMetrics) RecordCreateDuration(d time.Duration) {
	m.createDuration.Observe(d.Seconds())
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}
