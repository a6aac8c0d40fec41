package orders

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderpay/internal/domain"
	"github.com/vladislavdragonenkov/orderpay/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/orderpay/internal/metrics"
)

// Service реализует workflow создания заказа: валидация → проверка
// пользователя → списание у провайдера → сохранение. Других переходов
// состояния нет: заказ не возобновляется, не ретраится и не меняется.
type Service struct {
	users         domain.UserRepository
	orders        domain.OrderRepository
	gateway       domain.PaymentGateway
	logger        *log.Entry
	metrics       *metrics.OrderMetrics
	kafkaProducer *kafka.Producer // опциональный producer для событий заказов
}

// NewService создаёт рабочий экземпляр workflow.
func NewService(
	users domain.UserRepository,
	orders domain.OrderRepository,
	gateway domain.PaymentGateway,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "orders")
	}
	return &Service{
		users:   users,
		orders:  orders,
		gateway: gateway,
		logger:  logger,
		metrics: metrics.NewOrderMetrics(),
	}
}

// NewServiceWithKafka создаёт workflow с Kafka producer для публикации событий.
func NewServiceWithKafka(
	users domain.UserRepository,
	orders domain.OrderRepository,
	gateway domain.PaymentGateway,
	kafkaProducer *kafka.Producer,
	logger *log.Entry,
) *Service {
	svc := NewService(users, orders, gateway, logger)
	svc.kafkaProducer = kafkaProducer
	return svc
}

// NewServiceWithoutMetrics создаёт workflow без метрик (для тестов).
func NewServiceWithoutMetrics(
	users domain.UserRepository,
	orders domain.OrderRepository,
	gateway domain.PaymentGateway,
	logger *log.Entry,
) *Service {
	svc := NewService(users, orders, gateway, logger)
	svc.metrics = nil
	return svc
}

// CreateOrder проводит заказ через весь workflow и возвращает сохранённый заказ.
// Ровно один вызов провайдера и максимум одна запись в хранилище на вызов;
// дедупликации нет: два одинаковых вызова спишут и сохранят дважды.
func (s *Service) CreateOrder(userID string, amount float64) (domain.Order, error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.RecordCreateDuration(time.Since(start))
		}
	}()

	if userID == "" {
		return domain.Order{}, domain.ErrUserIDRequired
	}
	if !domain.IsAmountValid(amount) {
		return domain.Order{}, domain.ErrAmountInvalid
	}

	// Point-in-time чтение: между проверкой и списанием блокировка не держится.
	user, err := s.users.FindByID(userID)
	if err != nil {
		return domain.Order{}, err
	}

	return s.chargeAndPersist(user, amount)
}

// chargeAndPersist изолирует пару "списание → запись". Между шагами нет
// транзакционной связки: сбой записи после успешного списания — известное
// окно несогласованности. Будущий outbox/компенсация вставляется сюда,
// не трогая валидацию.
func (s *Service) chargeAndPersist(user domain.User, amount float64) (domain.Order, error) {
	result, err := s.gateway.Charge(user.ID, amount)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordGatewayError()
		}
		s.logger.WithError(err).WithField("user_id", user.ID).Warn("payment gateway call failed")
		return domain.Order{}, fmt.Errorf("%w: %v", domain.ErrPaymentGateway, err)
	}

	switch result.Status {
	case domain.ChargeStatusApproved:
		if result.Reference == "" {
			if s.metrics != nil {
				s.metrics.RecordGatewayError()
			}
			return domain.Order{}, fmt.Errorf("%w: approved charge without reference", domain.ErrPaymentGateway)
		}
	case domain.ChargeStatusDeclined:
		if s.metrics != nil {
			s.metrics.RecordPaymentDeclined()
		}
		s.logger.WithFields(log.Fields{
			"user_id": user.ID,
			"reason":  result.Reason,
		}).Info("payment declined")
		return domain.Order{}, fmt.Errorf("%w: %s", domain.ErrPaymentDeclined, result.Reason)
	default:
		if s.metrics != nil {
			s.metrics.RecordGatewayError()
		}
		return domain.Order{}, fmt.Errorf("%w: unexpected charge status %q", domain.ErrPaymentGateway, result.Status)
	}

	order := domain.Order{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		Amount:     amount,
		Status:     domain.OrderStatusCreated,
		PaymentRef: result.Reference,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.orders.Create(order); err != nil {
		if s.metrics != nil {
			s.metrics.RecordPersistFailure()
		}
		// Деньги списаны, записи нет: кандидат на reconciliation.
		s.logger.WithError(err).WithFields(log.Fields{
			"user_id":     user.ID,
			"amount":      amount,
			"payment_ref": order.PaymentRef,
		}).Error("order persist failed after successful charge, reconciliation required")
		return domain.Order{}, fmt.Errorf("%w: %v", domain.ErrOrderPersist, err)
	}

	if s.metrics != nil {
		s.metrics.RecordOrderCreated()
	}
	s.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"user_id":  order.UserID,
	}).Info("order created")

	s.publishOrderCreated(order)

	return order, nil
}

// GetOrder возвращает сохранённый заказ по идентификатору.
func (s *Service) GetOrder(id string) (domain.Order, error) {
	if id == "" {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return s.orders.Get(id)
}

// ListByUser возвращает заказы пользователя.
func (s *Service) ListByUser(userID string) ([]domain.Order, error) {
	return s.orders.ListByUser(userID)
}

// publishOrderCreated публикует событие заказа в Kafka (если producer настроен).
func (s *Service) publishOrderCreated(order domain.Order) {
	if s.kafkaProducer == nil {
		return
	}

	event := kafka.NewOrderCreatedEvent(order.ID, order.UserID, order.Amount, order.PaymentRef)
	if err := s.kafkaProducer.PublishEvent(kafka.TopicOrderEvents, order.ID, event); err != nil {
		// Логируем и продолжаем: публикация не влияет на исход запроса.
		s.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to publish order event to kafka")
	}
}
