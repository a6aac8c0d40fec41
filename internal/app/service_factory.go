package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderpay/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/orderpay/internal/service/orders"
	"github.com/vladislavdragonenkov/orderpay/internal/service/users"
)

// createOrderService создаёт workflow заказов с или без Kafka в зависимости
// от наличия kafka producer.
func createOrderService(deps *runtimeDependencies, kafkaProducer *kafka.Producer, logger *log.Entry) *orders.Service {
	serviceLogger := logger.WithField("component", "orders")
	if kafkaProducer != nil {
		return orders.NewServiceWithKafka(deps.users, deps.orders, deps.gateway, kafkaProducer, serviceLogger)
	}
	return orders.NewService(deps.users, deps.orders, deps.gateway, serviceLogger)
}

// createUserService создаёт сервис пользователей с или без Kafka.
func createUserService(deps *runtimeDependencies, kafkaProducer *kafka.Producer, logger *log.Entry) *users.Service {
	serviceLogger := logger.WithField("component", "users")
	if kafkaProducer != nil {
		return users.NewServiceWithKafka(deps.users, kafkaProducer, serviceLogger)
	}
	return users.NewService(deps.users, serviceLogger)
}
