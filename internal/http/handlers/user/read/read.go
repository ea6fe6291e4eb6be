// Package read реализует HTTP-обработчик чтения профиля пользователя по идентификатору.
//
// Читать профиль может только его владелец. Ответ включает хранимый хэш пароля —
// поле называется password для совместимости с клиентом формы редактирования.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/task-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/task-tracker/internal/http/response"
	"github.com/magabrotheeeer/task-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/task-tracker/internal/models"
	userservice "github.com/magabrotheeeer/task-tracker/internal/services/user"
	"github.com/magabrotheeeer/task-tracker/internal/storage/mongodb"
)

// Response — данные профиля, возвращаемые клиенту.
type Response struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"` // bcrypt-хэш, не исходный пароль
}

// Service описывает интерфейс бизнес-логики чтения профиля.
type Service interface {
	Profile(ctx context.Context, id, callerID string) (*models.User, error)
}

// Handler управляет HTTP-запросами на чтение профиля.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := r.Context().Value(middlewarectx.UserID).(string)
	if !ok || userID == "" {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	id := chi.URLParam(r, "id")
	user, err := h.service.Profile(r.Context(), id, userID)
	switch {
	case errors.Is(err, userservice.ErrNotOwner):
		log.Error("profile belongs to another user", slog.String("id", id))
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("access denied"))
		return
	case errors.Is(err, mongodb.ErrNotFound):
		log.Error("user not found", slog.String("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("user not found"))
		return
	case err != nil:
		log.Error("failed to fetch user details", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Failed to fetch user details"))
		return
	}

	render.JSON(w, r, Response{
		Name:     user.Name,
		Email:    user.Email,
		Password: user.PasswordHash,
	})
}
