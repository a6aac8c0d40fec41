package domain

import "errors"

var (
	// Ошибка отсутствующего идентификатора пользователя в заявке на заказ.
	ErrUserIDRequired = errors.New("user_id is required")
	// Ошибка нечисловой, нулевой или отрицательной суммы заказа.
	ErrAmountInvalid = errors.New("amount must be a positive number")
	// Ошибка отсутствующего имени пользователя.
	ErrNameRequired = errors.New("name is required")
	// Ошибка отсутствующего email пользователя.
	ErrEmailRequired = errors.New("email is required")
	// Ошибка недопустимого статуса при сохранении заказа.
	ErrOrderStatusInvalid = errors.New("only created orders may be persisted")
	// Ошибка отсутствующей ссылки на платёж у сохраняемого заказа.
	ErrPaymentRefRequired = errors.New("payment reference is required")

	// ErrUserNotFound возвращается, если пользователь не найден в репозитории.
	ErrUserNotFound = errors.New("user not found")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrEmailTaken сигнализирует о попытке создать пользователя с занятым email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrOrderExists сигнализирует о коллизии идентификатора заказа при вставке.
	ErrOrderExists = errors.New("order already exists")

	// ErrPaymentDeclined — провайдер явно отклонил списание (бизнес-исход, не сбой).
	ErrPaymentDeclined = errors.New("payment declined")
	// ErrPaymentGateway — транспортная или иная неожиданная ошибка провайдера.
	ErrPaymentGateway = errors.New("payment gateway error")
	// ErrOrderPersist — сбой записи заказа после успешного списания;
	// деньги ушли, записи нет, требуется reconciliation.
	ErrOrderPersist = errors.New("order persist failed after charge")
)

// IsValidation проверяет, относится ли ошибка к классу ошибок валидации входа.
func IsValidation(err error) bool {
	return errors.Is(err, ErrUserIDRequired) ||
		errors.Is(err, ErrAmountInvalid) ||
		errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrEmailRequired)
}

// IsDeclined проверяет, является ли ошибка отказом провайдера.
func IsDeclined(err error) bool {
	return errors.Is(err, ErrPaymentDeclined)
}
