// Package list реализует HTTP-обработчик публичной ленты объявлений.
//
// Возвращает только одобренные объявления, новые первыми. Доступно без
// авторизации.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ragheeddamaj/dubizzle-mini/internal/http/response"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/sl"
	"github.com/ragheeddamaj/dubizzle-mini/internal/models"
)

// Handler обрабатывает запросы на публичную ленту объявлений.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики листинга объявлений.
type Service interface {
	ListApproved(ctx context.Context) ([]*models.Ad, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Лента объявлений
// @Description Возвращает одобренные объявления, новые первыми.
// @Tags Ads
// @Produce  json
// @Success 200 {object} map[string]any "Список объявлений"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /ads [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ad.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ads, err := h.service.ListApproved(r.Context())
	if err != nil {
		log.Error("failed to list ads", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list ads"))
		return
	}

	log.Info("success to list ads", slog.Int("count", len(ads)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"ads": ads,
	}))
}
