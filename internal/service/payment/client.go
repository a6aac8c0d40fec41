package payment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderpay/internal/domain"
)

const defaultChargeTimeout = 10 * time.Second

// Client — HTTP-клиент платёжного провайдера. Таймаут ограничен, чтобы
// зависший провайдер не держал обработку запроса бесконечно.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Entry
}

// NewClient создаёт клиента провайдера по базовому URL.
func NewClient(baseURL string, logger *log.Entry) *Client {
	if logger == nil {
		logger = log.WithField("component", "payment-client")
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultChargeTimeout},
		logger:  logger,
	}
}

type chargeRequest struct {
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
}

type chargeResponse struct {
	Success bool   `json:"success"`
	Ref     string `json:"ref"`
	Error   string `json:"error"`
}

// Charge выполняет синхронное списание через POST {base}/charge.
// Явный отказ провайдера — это не ошибка: он возвращается в ChargeResult.
func (c *Client) Charge(userID string, amount float64) (domain.ChargeResult, error) {
	body, err := json.Marshal(chargeRequest{UserID: userID, Amount: amount})
	if err != nil {
		return domain.ChargeResult{}, fmt.Errorf("marshal charge request: %w", err)
	}

	resp, err := c.http.Post(c.baseURL+"/charge", "application/json", bytes.NewReader(body))
	if err != nil {
		return domain.ChargeResult{}, fmt.Errorf("call payment provider: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusInternalServerError {
		return domain.ChargeResult{}, fmt.Errorf("payment provider returned %d", resp.StatusCode)
	}

	var decoded chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.ChargeResult{}, fmt.Errorf("decode charge response: %w", err)
	}

	if !decoded.Success {
		c.logger.WithFields(log.Fields{
			"user_id": userID,
			"reason":  decoded.Error,
		}).Info("charge declined by provider")
		return domain.ChargeResult{
			Status: domain.ChargeStatusDeclined,
			Reason: decoded.Error,
		}, nil
	}

	return domain.ChargeResult{
		Status:    domain.ChargeStatusApproved,
		Reference: decoded.Ref,
	}, nil
}

var _ domain.PaymentGateway = (*Client)(nil)
