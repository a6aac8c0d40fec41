package payment

import "github.com/vladislavdragonenkov/orderpay/internal/domain"

// MockGateway — конфигурируемая заглушка PaymentGateway для тестов.
type MockGateway struct {
	ChargeResult domain.ChargeResult
	ChargeErr    error

	ChargeCalls int
	LastUserID  string
	LastAmount  float64
}

// NewMockGateway возвращает mock с успешным сценарием по умолчанию.
func NewMockGateway() *MockGateway {
	return &MockGateway{
		ChargeResult: domain.ChargeResult{
			Status:    domain.ChargeStatusApproved,
			Reference: "PAY-FAKE-123",
		},
	}
}

// Charge возвращает заранее настроенный результат и считает вызовы.
func (m *MockGateway) Charge(userID string, amount float64) (domain.ChargeResult, error) {
	m.ChargeCalls++
	m.LastUserID = userID
	m.LastAmount = amount
	return m.ChargeResult, m.ChargeErr
}

var _ domain.PaymentGateway = (*MockGateway)(nil)
