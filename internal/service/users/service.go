package users

import (
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderpay/internal/domain"
	"github.com/vladislavdragonenkov/orderpay/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/orderpay/internal/metrics"
)

// Service управляет пользователями: регистрация с контролем уникальности
// email и выдача списка. Пользователь после создания неизменяем.
type Service struct {
	users         domain.UserRepository
	logger        *log.Entry
	metrics       *metrics.OrderMetrics
	kafkaProducer *kafka.Producer
}

// NewService создаёт рабочий экземпляр сервиса пользователей.
func NewService(users domain.UserRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "users")
	}
	return &Service{
		users:   users,
		logger:  logger,
		metrics: metrics.NewOrderMetrics(),
	}
}

// NewServiceWithKafka создаёт сервис с Kafka producer для публикации событий.
func NewServiceWithKafka(users domain.UserRepository, kafkaProducer *kafka.Producer, logger *log.Entry) *Service {
	svc := NewService(users, logger)
	svc.kafkaProducer = kafkaProducer
	return svc
}

// NewServiceWithoutMetrics создаёт сервис без метрик (для тестов).
func NewServiceWithoutMetrics(users domain.UserRepository, logger *log.Entry) *Service {
	svc := NewService(users, logger)
	svc.metrics = nil
	return svc
}

// Register создаёт пользователя. Занятый email — ErrEmailTaken.
func (s *Service) Register(name, email string) (domain.User, error) {
	user := domain.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	if errs := user.Validate(); len(errs) > 0 {
		return domain.User{}, errors.Join(errs...)
	}

	if err := s.users.Create(user); err != nil {
		return domain.User{}, err
	}

	if s.metrics != nil {
		s.metrics.RecordUserRegistered()
	}
	s.logger.WithFields(log.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("user registered")

	if s.kafkaProducer != nil {
		event := kafka.NewUserRegisteredEvent(user.ID, user.Email)
		if err := s.kafkaProducer.PublishEvent(kafka.TopicUserEvents, user.ID, event); err != nil {
			s.logger.WithError(err).WithField("user_id", user.ID).Warn("failed to publish user event to kafka")
		}
	}

	return user, nil
}

// List возвращает всех пользователей.
func (s *Service) List() ([]domain.User, error) {
	return s.users.List()
}
