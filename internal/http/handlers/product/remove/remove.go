// Package remove реализует HTTP-обработчик для удаления товара из каталога.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/krotovalex/inventory-keeper/internal/http/response"
	"github.com/krotovalex/inventory-keeper/internal/lib/sl"
	"github.com/krotovalex/inventory-keeper/internal/models"
)

// Handler обрабатывает запросы на удаление товара по имени.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики каталога
}

// Service описывает интерфейс бизнес-логики удаления товара.
type Service interface {
	Remove(ctx context.Context, name string) error
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить товар
// @Description Удаляет товар из каталога по имени. Имя снова становится доступным для новых товаров.
// @Tags Products
// @Security BearerAuth
// @Produce  json
// @Param name path string true "Имя товара"
// @Success 200 {object} response.Response "Товар удалён"
// @Failure 400 {object} response.ErrorResponse "Некорректное имя товара"
// @Failure 404 {object} response.ErrorResponse "Товар не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при удалении товара"
// @Router /products/{name} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		log.Error("failed to decode name from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid product name"))
		return
	}
	if name == "" {
		log.Error("empty product name in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid product name"))
		return
	}

	if err := h.service.Remove(r.Context(), name); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Info("product not found", slog.String("name", name))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("product not found"))
			return
		}
		log.Error("failed to remove product", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove product"))
		return
	}

	log.Info("success to remove product", slog.String("name", name))
	render.JSON(w, r, response.OK())
}
