// Package sync реализует HTTP-обработчик запуска синхронизации каталога
// с поставщиком Unimall B2B. Доступен только администраторам.
package sync

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/krotovalex/inventory-keeper/internal/http/response"
	"github.com/krotovalex/inventory-keeper/internal/lib/sl"
	"github.com/krotovalex/inventory-keeper/internal/models"
	"github.com/krotovalex/inventory-keeper/internal/services/syncer"
)

// Handler обрабатывает запросы на запуск синхронизации каталога.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис синхронизации
}

// Service описывает интерфейс сервиса синхронизации.
type Service interface {
	Run(ctx context.Context) (*syncer.Report, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Синхронизировать каталог с поставщиком
// @Description Забирает остатки и каталог Unimall B2B и приводит локальный каталог к данным поставщика.
// @Tags Products
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} map[string]any "Итог синхронизации"
// @Failure 502 {object} response.ErrorResponse "Поставщик недоступен"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при синхронизации"
// @Router /products/sync [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.sync"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	report, err := h.service.Run(r.Context())
	if err != nil {
		if errors.Is(err, models.ErrRemoteUnavailable) {
			log.Error("supplier is unavailable", sl.Err(err))
			w.WriteHeader(http.StatusBadGateway)
			render.JSON(w, r, response.Error("supplier is unavailable"))
			return
		}
		log.Error("failed to sync inventory", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not sync inventory"))
		return
	}

	log.Info("success to sync inventory",
		slog.Int("created", report.Created), slog.Int("updated", report.Updated))
	render.JSON(w, r, response.OKWithData(report))
}
