// Package remove реализует HTTP-обработчик удаления объявления.
//
// Удалить объявление может его владелец или модератор.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ragheeddamaj/dubizzle-mini/internal/http/middlewarectx"
	"github.com/ragheeddamaj/dubizzle-mini/internal/http/response"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/apperr"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/sl"
	"github.com/ragheeddamaj/dubizzle-mini/internal/models"
)

// Handler управляет HTTP-запросами на удаление объявлений.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления объявления.
type Service interface {
	Remove(ctx context.Context, actor models.Identity, uid string) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить объявление
// @Description Удаляет объявление. Доступно владельцу и модераторам.
// @Tags Ads
// @Produce  json
// @Param id path string true "ID объявления"
// @Success 200 {object} map[string]any "Объявление удалено"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Доступ запрещен"
// @Failure 404 {object} response.ErrorResponse "Объявление не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /ads/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ad.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	identity := middlewarectx.IdentityFromContext(r.Context())
	if identity == nil {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("authentication required"))
		return
	}

	uid := chi.URLParam(r, "id")

	if err := h.service.Remove(r.Context(), *identity, uid); err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			log.Info("ad not found", slog.String("uid", uid))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("ad not found"))
		case errors.Is(err, apperr.ErrForbidden):
			log.Info("remove denied", slog.String("uid", uid), slog.String("actor", identity.UID))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("access denied"))
		default:
			log.Error("failed to remove ad", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to remove ad"))
		}
		return
	}
	log.Info("ad removed", slog.String("uid", uid))

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "ad removed",
	}))
}
