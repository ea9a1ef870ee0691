// Package read реализует HTTP-обработчик получения объявления по ID.
//
// Handler извлекает ID из URL-параметров и возвращает объявление с учетом
// правил видимости: непроверенные объявления видны владельцу и модераторам.
package read

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

// Handler обрабатывает запросы на получение объявления по идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения объявления.
type Service interface {
	Read(ctx context.Context, viewer *models.Identity, uid string) (*models.Ad, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить объявление
// @Description Возвращает объявление по ID с учетом правил видимости.
// @Tags Ads
// @Produce  json
// @Param id path string true "ID объявления"
// @Success 200 {object} map[string]any "Данные объявления"
// @Failure 403 {object} response.ErrorResponse "Доступ запрещен"
// @Failure 404 {object} response.ErrorResponse "Объявление не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /ads/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ad.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	uid := chi.URLParam(r, "id")
	viewer := middlewarectx.IdentityFromContext(r.Context())

	ad, err := h.service.Read(r.Context(), viewer, uid)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			log.Info("ad not found", slog.String("uid", uid))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("ad not found"))
		case errors.Is(err, apperr.ErrForbidden):
			log.Info("access to ad denied", slog.String("uid", uid))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("access denied"))
		default:
			log.Error("failed to read ad", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not read ad"))
		}
		return
	}

	log.Info("success to read ad", slog.String("uid", ad.UID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"ad": ad,
	}))
}
