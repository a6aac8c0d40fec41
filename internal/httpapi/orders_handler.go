package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderpay/internal/domain"
	"github.com/vladislavdragonenkov/orderpay/internal/service/orders"
)

// OrdersHandler отображает workflow создания заказа на HTTP-коды:
// 201 created, 422 валидация, 404 нет пользователя, 400 отказ провайдера,
// 502 сбой провайдера, 500 сбой записи после списания.
type OrdersHandler struct {
	Service *orders.Service
	Logger  *log.Entry
}

type createOrderReq struct {
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
}

type createOrderResp struct {
	Status  string  `json:"status"`
	OrderID string  `json:"order_id"`
	Amount  float64 `json:"amount"`
}

type orderResp struct {
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	PaymentRef string    `json:"payment_ref"`
	CreatedAt  time.Time `json:"created_at"`
}

// Register вешает маршруты заказов на роутер.
func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Post("/orders", h.createOrder)
	r.Get("/orders/{id}", h.getOrder)
}

func (h *OrdersHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Нечисловой amount и битый JSON неразличимы для клиента: оба — 422.
		writeError(w, http.StatusUnprocessableEntity, "invalid json body")
		return
	}

	order, err := h.Service.CreateOrder(req.UserID, req.Amount)
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createOrderResp{
		Status:  string(order.Status),
		OrderID: order.ID,
		Amount:  order.Amount,
	})
}

func (h *OrdersHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Service.GetOrder(chi.URLParam(r, "id"))
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, orderResp{
		OrderID:    order.ID,
		UserID:     order.UserID,
		Amount:     order.Amount,
		Status:     string(order.Status),
		PaymentRef: order.PaymentRef,
		CreatedAt:  order.CreatedAt,
	})
}

// writeOrderError переводит доменную ошибку в статус и тело ответа.
func (h *OrdersHandler) writeOrderError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case domain.IsDeclined(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrPaymentGateway):
		writeError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, domain.ErrOrderPersist):
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		h.Logger.WithError(err).Error("unexpected order error")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
