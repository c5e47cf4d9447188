// Package get реализует HTTP-обработчик для получения товара по имени.
//
// Handler извлекает имя из URL-параметров, вызывает бизнес-логику чтения
// товара и возвращает данные товара со стоимостью позиции в JSON-формате.
//
// В случае ошибок формирует соответствующие HTTP-ответы с описанием проблемы.
package get

import (
	"context"
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

// Handler обрабатывает запросы на получение товара по имени.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики каталога
}

// Service описывает интерфейс бизнес-логики чтения товара.
type Service interface {
	Get(ctx context.Context, name string) (*models.ProductInfo, bool, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить товар
// @Description Возвращает карточку товара по имени вместе со стоимостью позиции.
// @Tags Products
// @Security BearerAuth
// @Produce  json
// @Param name path string true "Имя товара"
// @Success 200 {object} map[string]any "Карточка товара"
// @Failure 400 {object} response.ErrorResponse "Некорректное имя товара"
// @Failure 404 {object} response.ErrorResponse "Товар не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении товара"
// @Router /products/{name} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.get"

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

	product, found, err := h.service.Get(r.Context(), name)
	if err != nil {
		log.Error("failed to read product", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read product"))
		return
	}
	if !found {
		log.Info("product not found", slog.String("name", name))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("product not found"))
		return
	}

	log.Info("success to read product", slog.String("name", product.Name))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"product": product,
	}))
}
