// Package update реализует HTTP-обработчик редактирования объявления.
//
// Редактировать объявление может только его владелец. После сохранения
// объявление возвращается в статус pending и ждет повторной модерации.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/ragheeddamaj/dubizzle-mini/internal/http/middlewarectx"
	"github.com/ragheeddamaj/dubizzle-mini/internal/http/response"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/apperr"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/sl"
	"github.com/ragheeddamaj/dubizzle-mini/internal/models"
)

// Handler управляет HTTP-запросами на редактирование объявлений.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики редактирования объявления.
type Service interface {
	Update(ctx context.Context, actor models.Identity, uid string, req models.DummyAd) (*models.Ad, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить объявление
// @Description Заменяет содержимое объявления владельца и возвращает его в статус pending.
// @Tags Ads
// @Accept  json
// @Produce  json
// @Param id path string true "ID объявления"
// @Param request body models.DummyAd true "Новые данные объявления"
// @Success 200 {object} map[string]any "Объявление обновлено"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или категория"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Редактировать может только владелец"
// @Failure 404 {object} response.ErrorResponse "Объявление не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /ads/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ad.update"

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

	var req models.DummyAd
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	ad, err := h.service.Update(r.Context(), *identity, uid, req)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			log.Info("ad not found", slog.String("uid", uid))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("ad not found"))
		case errors.Is(err, apperr.ErrForbidden):
			log.Info("update denied", slog.String("uid", uid), slog.String("actor", identity.UID))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("only the owner can edit the ad"))
		case errors.Is(err, apperr.ErrValidation):
			log.Error("unknown category", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown category or subcategory"))
		default:
			log.Error("failed to update ad", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update ad"))
		}
		return
	}
	log.Info("ad updated", slog.String("uid", ad.UID))

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"ad": ad,
	}))
}
