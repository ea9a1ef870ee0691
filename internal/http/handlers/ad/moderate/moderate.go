// Package moderate реализует HTTP-обработчик решения модератора.
//
// Handler принимает решение approved или rejected с опциональными причиной
// и комментарием. Отклонение без причины не принимается.
package moderate

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
	services "github.com/ragheeddamaj/dubizzle-mini/internal/services/moderation"
)

// Handler управляет HTTP-запросами на модерацию объявлений.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики модерации.
type Service interface {
	Moderate(ctx context.Context, actor models.Identity, adUID string, req models.DummyModeration) (*services.Result, error)
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
// @Summary Вынести решение модерации
// @Description Переводит объявление в approved или rejected. Отклонение требует причины.
// @Tags Moderation
// @Accept  json
// @Produce  json
// @Param id path string true "ID объявления"
// @Param request body models.DummyModeration true "Решение модератора"
// @Success 200 {object} map[string]any "Решение записано"
// @Failure 400 {object} response.ErrorResponse "Некорректное решение"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Доступно только модераторам"
// @Failure 404 {object} response.ErrorResponse "Объявление не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /ads/moderate/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ad.moderate"

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

	var req models.DummyModeration
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

	result, err := h.service.Moderate(r.Context(), *identity, uid, req)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrForbidden):
			log.Info("moderation denied", slog.String("actor", identity.UID))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("moderator role required"))
		case errors.Is(err, apperr.ErrValidation):
			log.Error("invalid moderation decision", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("rejection requires a reason"))
		case errors.Is(err, apperr.ErrNotFound):
			log.Info("ad not found", slog.String("uid", uid))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("ad not found"))
		default:
			log.Error("failed to moderate ad", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to moderate ad"))
		}
		return
	}
	log.Info("ad moderated", slog.String("uid", uid), slog.String("status", result.Status))

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"result": result,
	}))
}
