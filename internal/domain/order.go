package domain

import (
	"math"
	"time"
)

// OrderStatus описывает исход обработки заказа.
type OrderStatus string

const (
	// OrderStatusCreated — платёж прошёл, заказ сохранён в хранилище.
	OrderStatusCreated OrderStatus = "created"
	// OrderStatusFailed — платёж не состоялся; такой заказ никогда не сохраняется
	// и существует только как ответ вызывающей стороне.
	OrderStatusFailed OrderStatus = "failed"
)

// Order описывает заказ. Заказ неизменяем после создания: ни обновлений,
// ни удалений, ни повторных попыток оплаты не существует.
type Order struct {
	ID     string
	UserID string
	// Amount — сумма списания; всегда конечное число больше нуля.
	Amount float64
	Status OrderStatus
	// PaymentRef — opaque-токен провайдера; непустой у каждого сохранённого заказа.
	PaymentRef string
	CreatedAt  time.Time
}

// ValidateInvariants проверяет инварианты сохраняемого заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.UserID == "" {
		errs = append(errs, ErrUserIDRequired)
	}
	if !IsAmountValid(o.Amount) {
		errs = append(errs, ErrAmountInvalid)
	}
	// В хранилище попадают только заказы со статусом created и ссылкой на платёж.
	if o.Status != OrderStatusCreated {
		errs = append(errs, ErrOrderStatusInvalid)
	}
	if o.PaymentRef == "" {
		errs = append(errs, ErrPaymentRefRequired)
	}

	return errs
}

// IsAmountValid сообщает, является ли сумма конечным положительным числом.
func IsAmountValid(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount > 0
}
