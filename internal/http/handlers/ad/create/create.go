// Package create реализует HTTP-обработчик создания нового объявления.
//
// Handler принимает JSON с данными объявления, валидирует их, извлекает
// личность пользователя из контекста и создает объявление в статусе pending.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/ragheeddamaj/dubizzle-mini/internal/http/middlewarectx"
	"github.com/ragheeddamaj/dubizzle-mini/internal/http/response"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/apperr"
	"github.com/ragheeddamaj/dubizzle-mini/internal/lib/sl"
	"github.com/ragheeddamaj/dubizzle-mini/internal/models"
)

// Handler управляет HTTP-запросами на создание объявлений.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания объявлений
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания объявления.
type Service interface {
	Create(ctx context.Context, owner models.Identity, req models.DummyAd) (*models.Ad, error)
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
// @Summary Создать объявление
// @Description Создает новое объявление текущего пользователя в статусе pending.
// @Tags Ads
// @Accept  json
// @Produce  json
// @Param request body models.DummyAd true "Данные нового объявления"
// @Success 201 {object} map[string]any "Объявление создано"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или неизвестная категория"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /ads [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ad.create"

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

	var req models.DummyAd
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("title", req.Title))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	ad, err := h.service.Create(r.Context(), *identity, req)
	if err != nil {
		log.Error("failed to create ad", sl.Err(err))
		w.WriteHeader(apperr.HTTPStatus(err))
		if errors.Is(err, apperr.ErrValidation) {
			render.JSON(w, r, response.Error("unknown category or subcategory"))
			return
		}
		render.JSON(w, r, response.Error("failed to create ad"))
		return
	}
	log.Info("ad created", slog.String("uid", ad.UID))

	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"ad": ad,
	}))
}
