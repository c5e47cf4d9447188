// Package add реализует HTTP-обработчик для добавления нового товара в каталог.
//
// Handler принимает JSON-запрос с данными товара, валидирует их,
// вызывает бизнес-логику добавления через сервис и возвращает ID созданной
// записи в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package add

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/krotovalex/inventory-keeper/internal/http/response"
	"github.com/krotovalex/inventory-keeper/internal/lib/sl"
	"github.com/krotovalex/inventory-keeper/internal/models"
)

// Handler управляет HTTP-запросами на добавление товаров.
//
// Использует логгер для записи операций и ошибок,
// сервис бизнес-логики для добавления товара,
// а также валидатор для проверки структуры входных данных.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики каталога
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики добавления товара.
type Service interface {
	Add(ctx context.Context, req models.DummyProduct) (int, error)
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
// @Summary Добавить товар
// @Description Добавляет новый товар в каталог. Возвращает ID созданной записи.
// @Tags Products
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param request body models.DummyProduct true "Данные нового товара"
// @Success 200 {object} map[string]any "Успешное добавление товара"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или данные товара"
// @Failure 409 {object} response.ErrorResponse "Товар с таким именем уже существует"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при добавлении товара"
// @Router /products [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.add"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyProduct
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
	log.Info("all fields are validated")

	id, err := h.service.Add(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrAlreadyExists):
			log.Error("product already exists", sl.Err(err))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("product already exists"))
		case errors.Is(err, models.ErrInvalidArgument):
			log.Error("invalid product data", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid product data"))
		default:
			log.Error("failed to add product", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not add product"))
		}
		return
	}

	log.Info("success to add product", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"id": id,
	}))
}
