package domain

// UserRepository описывает требования к хранилищу пользователей.
type UserRepository interface {
	// Create сохраняет нового пользователя. Возвращает ErrEmailTaken,
	// если email уже занят.
	Create(user User) error
	// FindByID возвращает пользователя по идентификатору или ErrUserNotFound.
	FindByID(id string) (User, error)
	// List возвращает всех пользователей, отсортированных по дате создания.
	List() ([]User, error)
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет новый заказ. Возвращает ошибку, если запись с таким ID уже существует.
	Create(order Order) error
	// Get возвращает заказ по идентификатору или ErrOrderNotFound, если его нет.
	Get(id string) (Order, error)
	// ListByUser возвращает заказы пользователя.
	ListByUser(userID string) ([]Order, error)
}

// ChargeStatus описывает решение провайдера по списанию.
type ChargeStatus string

const (
	// ChargeStatusApproved — списание прошло, провайдер вернул ссылку.
	ChargeStatusApproved ChargeStatus = "approved"
	// ChargeStatusDeclined — провайдер явно отказал в списании.
	ChargeStatusDeclined ChargeStatus = "declined"
)

// ChargeResult — ответ провайдера на попытку списания.
type ChargeResult struct {
	Status ChargeStatus
	// Reference — opaque-токен платежа; непустой при approved.
	Reference string
	// Reason — текст отказа провайдера; заполнен при declined.
	Reason string
}

// PaymentGateway описывает взаимодействие с платёжным провайдером.
// Вызов синхронный: workflow ждёт ответа, fire-and-forget списания запрещены,
// потому что сохраняемое состояние заказа зависит от исхода.
type PaymentGateway interface {
	// Charge пытается списать amount с плательщика userID.
	// Ошибка означает транспортный сбой, а не отказ провайдера.
	Charge(userID string, amount float64) (ChargeResult, error)
}
