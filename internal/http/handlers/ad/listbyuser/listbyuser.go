// Package listbyuser реализует HTTP-обработчик объявлений конкретного автора.
//
// Владелец и модераторы видят все объявления автора, остальные — только
// одобренные.
package listbyuser

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ragheeddamaj/dubizzle-mini/internal/http/middlewarectx"
	"github.com/ragheeddamaj/dubizzle-mini/internal/http/response"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/sl"
	"github.com/ragheeddamaj/dubizzle-mini/internal/models"
)

// Handler обрабатывает запросы на объявления конкретного пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики листинга по автору.
type Service interface {
	ListByUser(ctx context.Context, viewer *models.Identity, userUID string) ([]*models.Ad, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Объявления пользователя
// @Description Возвращает объявления автора, новые первыми. Чужие непроверенные объявления скрываются.
// @Tags Ads
// @Produce  json
// @Param userId path string true "ID автора"
// @Success 200 {object} map[string]any "Список объявлений"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /ads/user/{userId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ad.listbyuser"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID := chi.URLParam(r, "userId")
	viewer := middlewarectx.IdentityFromContext(r.Context())

	ads, err := h.service.ListByUser(r.Context(), viewer, userUID)
	if err != nil {
		log.Error("failed to list user ads", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list ads"))
		return
	}

	log.Info("success to list user ads", slog.String("user_uid", userUID), slog.Int("count", len(ads)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"ads": ads,
	}))
}
