// Package update реализует HTTP-обработчик для изменения количества товара.
//
// Handler принимает JSON-запрос с новым количеством, валидирует его
// и заменяет количество товара с указанным именем.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/krotovalex/inventory-keeper/internal/http/response"
	"github.com/krotovalex/inventory-keeper/internal/lib/sl"
	"github.com/krotovalex/inventory-keeper/internal/models"
)

// Handler обрабатывает запросы на изменение количества товара.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики каталога
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики изменения количества.
type Service interface {
	UpdateQuantity(ctx context.Context, name string, quantity int) error
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
// @Summary Изменить количество товара
// @Description Заменяет количество товара с указанным именем на новое значение.
// @Tags Products
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param name path string true "Имя товара"
// @Param request body models.DummyQuantity true "Новое количество"
// @Success 200 {object} response.Response "Количество обновлено"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или имя товара"
// @Failure 404 {object} response.ErrorResponse "Товар не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при обновлении товара"
// @Router /products/{name} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.update"

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

	var req models.DummyQuantity
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := h.service.UpdateQuantity(r.Context(), name, req.Quantity); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			log.Info("product not found", slog.String("name", name))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("product not found"))
		case errors.Is(err, models.ErrInvalidArgument):
			log.Error("invalid quantity", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid quantity"))
		default:
			log.Error("failed to update quantity", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update quantity"))
		}
		return
	}

	log.Info("success to update quantity",
		slog.String("name", name), slog.Int("quantity", req.Quantity))
	render.JSON(w, r, response.OK())
}
