// Package categories реализует HTTP-обработчик справочника категорий.
package categories

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/ragheeddamaj/dubizzle-mini/internal/http/response"
	"github.com/ragheeddamaj/dubizzle-mini/internal/models"
)

// Handler отдает справочник категорий и подкатегорий объявлений.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler с переданным логгером.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Справочник категорий
// @Description Возвращает категории объявлений с их подкатегориями.
// @Tags Ads
// @Produce  json
// @Success 200 {object} map[string]any "Категории и подкатегории"
// @Router /categories [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.categories"
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"categories": models.Categories,
	}))
}
