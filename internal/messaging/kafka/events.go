package kafka

import "time"

// EventType определяет тип события
type EventType string

const (
	// EventTypeOrderCreated — заказ оплачен и сохранён.
	EventTypeOrderCreated EventType = "order.created"
	// EventTypeUserRegistered — зарегистрирован новый пользователь.
	EventTypeUserRegistered EventType = "user.registered"
)

// Topics для Kafka
const (
	TopicOrderEvents = "orderpay.order.events"
	TopicUserEvents  = "orderpay.user.events"
)

// OrderEvent представляет событие заказа
type OrderEvent struct {
	EventType  EventType `json:"event_type"`
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id"`
	Amount     float64   `json:"amount"`
	PaymentRef string    `json:"payment_ref"`
	Timestamp  time.Time `json:"timestamp"`
}

// UserEvent представляет событие пользователя
type UserEvent struct {
	EventType EventType `json:"event_type"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// NewOrderCreatedEvent создает событие о созданном заказе
func NewOrderCreatedEvent(orderID, userID string, amount float64, paymentRef string) *OrderEvent {
	return &OrderEvent{
		EventType:  EventTypeOrderCreated,
		OrderID:    orderID,
		UserID:     userID,
		Amount:     amount,
		PaymentRef: paymentRef,
		Timestamp:  time.Now(),
	}
}

// NewUserRegisteredEvent создает событие о регистрации пользователя
func NewUserRegisteredEvent(userID, email string) *UserEvent {
	return &UserEvent{
		EventType: EventTypeUserRegistered,
		UserID:    userID,
		Email:     email,
		Timestamp: time.Now(),
	}
}
