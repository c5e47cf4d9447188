// Package syncer реализует синхронизацию локального каталога товаров
// с данными поставщика Unimall B2B.
//
// Один прогон забирает остатки с ценами и страницу каталога, сопоставляет
// их по идентификатору товара и приводит локальный каталог к данным
// поставщика: новые товары создаются, существующие получают новое количество.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/krotovalex/inventory-keeper/internal/models"
	"github.com/krotovalex/inventory-keeper/internal/unimall"
)

// Catalog описывает операции локального каталога, необходимые синхронизации.
type Catalog interface {
	// Add создаёт товар и возвращает его идентификатор.
	Add(ctx context.Context, product models.DummyProduct) (int, error)
	// UpdateQuantity заменяет количество существующего товара.
	UpdateQuantity(ctx context.Context, name string, quantity int) error
}

// Supplier отдаёт данные внешнего поставщика.
type Supplier interface {
	// QuantitiesAndPrices возвращает остатки и цены всех товаров.
	QuantitiesAndPrices(ctx context.Context) ([]unimall.Stock, error)
	// Catalogue возвращает страницу каталога с названиями товаров.
	Catalogue(ctx context.Context, page int) ([]unimall.CatalogueItem, error)
}

// Report содержит итог одного прогона синхронизации.
type Report struct {
	Created int `json:"created"` // Сколько товаров создано
	Updated int `json:"updated"` // У скольких обновлено количество
}

// Service синхронизирует локальный каталог с поставщиком.
type Service struct {
	catalog  Catalog
	supplier Supplier
	log      *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(catalog Catalog, supplier Supplier, log *slog.Logger) *Service {
	return &Service{
		catalog:  catalog,
		supplier: supplier,
		log:      log,
	}
}

// Run выполняет один прогон синхронизации.
//
// Оба запроса к поставщику выполняются до первой записи в каталог, поэтому
// при недоступном поставщике локальные данные не меняются. Товар без записи
// в каталоге поставщика получает имя вида "Product <id>".
func (s *Service) Run(ctx context.Context) (*Report, error) {
	const op = "services.syncer.Run"

	stocks, err := s.supplier.QuantitiesAndPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	items, err := s.supplier.Catalogue(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	names := make(map[int]string, len(items))
	for _, item := range items {
		names[item.ID] = item.Name
	}

	var report Report
	for _, stock := range stocks {
		name := names[stock.ID]
		if name == "" {
			name = fmt.Sprintf("Product %d", stock.ID)
		}

		_, err := s.catalog.Add(ctx, models.DummyProduct{
			Name:     name,
			Price:    stock.Price,
			Quantity: stock.Quantity,
		})
		switch {
		case err == nil:
			report.Created++
		case errors.Is(err, models.ErrAlreadyExists):
			if err := s.catalog.UpdateQuantity(ctx, name, stock.Quantity); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			report.Updated++
		default:
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	s.log.Info("inventory synchronized",
		slog.Int("created", report.Created), slog.Int("updated", report.Updated))
	return &report, nil
}
