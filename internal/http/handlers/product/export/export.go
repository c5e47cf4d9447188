// Package export реализует HTTP-обработчик выгрузки каталога в файл.
//
// Формат выгрузки задаётся query-параметром format: excel (по умолчанию,
// xlsx принимается как синоним) или pdf. Ответ отдаётся как вложение
// с соответствующим Content-Type.
package export

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	exporter "github.com/krotovalex/inventory-keeper/internal/export"
	"github.com/krotovalex/inventory-keeper/internal/http/response"
	"github.com/krotovalex/inventory-keeper/internal/lib/sl"
	"github.com/krotovalex/inventory-keeper/internal/models"
)

// Handler обрабатывает запросы на выгрузку каталога в Excel или PDF.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики каталога
}

// Service описывает интерфейс бизнес-логики списка товаров.
type Service interface {
	List(ctx context.Context) ([]*models.ProductInfo, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Выгрузить каталог в файл
// @Description Формирует файл с каталогом товаров. Параметр format выбирает между excel и pdf.
// @Tags Products
// @Security BearerAuth
// @Produce  application/octet-stream
// @Param format query string false "Формат выгрузки: excel (синоним xlsx) или pdf" default(excel)
// @Success 200 {file} file "Файл с каталогом"
// @Failure 400 {object} response.ErrorResponse "Неизвестный формат выгрузки"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при формировании файла"
// @Router /products/export [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.export"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	format := r.URL.Query().Get("format")
	if format == "" || format == "xlsx" {
		format = "excel"
	}
	if format != "excel" && format != "pdf" {
		log.Error("unknown export format", slog.String("format", format))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("unknown export format"))
		return
	}

	products, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list products", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not export products"))
		return
	}

	var (
		data        []byte
		contentType string
		filename    string
	)
	switch format {
	case "excel":
		data, err = exporter.ToExcel(products)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		filename = "inventory.xlsx"
	case "pdf":
		data, err = exporter.ToPDF(products)
		contentType = "application/pdf"
		filename = "inventory.pdf"
	}
	if err != nil {
		log.Error("failed to build export file", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not export products"))
		return
	}

	log.Info("success to export products",
		slog.String("format", format), slog.Int("size", len(data)))

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if _, err := w.Write(data); err != nil {
		log.Error("failed to write export file", sl.Err(err))
	}
}
