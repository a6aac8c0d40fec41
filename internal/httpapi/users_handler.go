package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderpay/internal/domain"
	"github.com/vladislavdragonenkov/orderpay/internal/service/users"
)

// UsersHandler обслуживает регистрацию и список пользователей.
type UsersHandler struct {
	Service *users.Service
	Logger  *log.Entry
}

type createUserReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type userView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type createUserResp struct {
	User userView `json:"user"`
}

type listUsersResp struct {
	Count int        `json:"count"`
	Users []userView `json:"users"`
}

// Register вешает маршруты пользователей на роутер.
func (h *UsersHandler) Register(r *chi.Mux) {
	r.Post("/users", h.createUser)
	r.Get("/users", h.listUsers)
}

func (h *UsersHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid json body")
		return
	}

	user, err := h.Service.Register(req.Name, req.Email)
	if err != nil {
		switch {
		case domain.IsValidation(err):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrEmailTaken):
			writeError(w, http.StatusConflict, err.Error())
		default:
			h.Logger.WithError(err).Error("unexpected user error")
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, createUserResp{
		User: userView{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

func (h *UsersHandler) listUsers(w http.ResponseWriter, _ *http.Request) {
	list, err := h.Service.List()
	if err != nil {
		h.Logger.WithError(err).Error("list users failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	views := make([]userView, 0, len(list))
	for _, u := range list {
		views = append(views, userView{ID: u.ID, Name: u.Name, Email: u.Email})
	}

	writeJSON(w, http.StatusOK, listUsersResp{Count: len(views), Users: views})
}
