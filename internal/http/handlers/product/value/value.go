// Package value реализует HTTP-обработчик для подсчёта общей стоимости запасов.
package value

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/krotovalex/inventory-keeper/internal/http/response"
	"github.com/krotovalex/inventory-keeper/internal/lib/sl"
)

// Handler обрабатывает запросы на подсчёт стоимости всех запасов каталога.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики каталога
}

// Service описывает интерфейс бизнес-логики подсчёта стоимости.
type Service interface {
	TotalValue(ctx context.Context) (float64, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Общая стоимость запасов
// @Description Возвращает сумму цена*количество по всем товарам каталога.
// @Tags Products
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} map[string]any "Общая стоимость"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при подсчёте стоимости"
// @Router /products/value [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.value"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	total, err := h.service.TotalValue(r.Context())
	if err != nil {
		log.Error("failed to count total value", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not count total value"))
		return
	}

	log.Info("success to count total value", slog.Float64("total_value", total))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"total_value": total,
	}))
}
