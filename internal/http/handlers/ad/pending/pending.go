// Package pending реализует HTTP-обработчик очереди модерации.
//
// Возвращает объявления в статусе pending, старые первыми, чтобы модератор
// разбирал очередь в порядке поступления. Доступно только модераторам.
package pending

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ragheeddamaj/dubizzle-mini/internal/http/middlewarectx"
	"github.com/ragheeddamaj/dubizzle-mini/internal/http/response"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/apperr"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/sl"
	"github.com/ragheeddamaj/dubizzle-mini/internal/models"
)

// Handler обрабатывает запросы на очередь модерации.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики очереди модерации.
type Service interface {
	ListPending(ctx context.Context, actor models.Identity) ([]*models.Ad, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Очередь модерации
// @Description Возвращает объявления в статусе pending, старые первыми. Только для модераторов.
// @Tags Moderation
// @Produce  json
// @Success 200 {object} map[string]any "Очередь объявлений"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Доступно только модераторам"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /ads/pending [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ad.pending"

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

	ads, err := h.service.ListPending(r.Context(), *identity)
	if err != nil {
		if errors.Is(err, apperr.ErrForbidden) {
			log.Info("pending queue access denied", slog.String("actor", identity.UID))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("moderator role required"))
			return
		}
		log.Error("failed to list pending ads", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list pending ads"))
		return
	}

	log.Info("success to list pending ads", slog.Int("count", len(ads)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"ads": ads,
	}))
}
