// Package inventory содержит бизнес-логику учёта товаров, включая кеширование каталога.
package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/krotovalex/inventory-keeper/internal/models"
)

// Repository определяет методы для работы с товарами в хранилище.
type Repository interface {
	// CreateProduct добавляет новый товар и возвращает его ID.
	CreateProduct(ctx context.Context, product models.Product) (int, error)
	// RemoveProduct удаляет товар по имени и возвращает количество удалённых записей.
	RemoveProduct(ctx context.Context, name string) (int, error)
	// UpdateProductQuantity обновляет количество товара по имени.
	UpdateProductQuantity(ctx context.Context, name string, quantity int) (int, error)
	// GetProductByName возвращает товар по имени с признаком наличия.
	GetProductByName(ctx context.Context, name string) (*models.Product, bool, error)
	// ListProducts возвращает список всех товаров в порядке добавления.
	ListProducts(ctx context.Context) ([]*models.Product, error)
	// CountTotalValue подсчитывает суммарную стоимость склада.
	CountTotalValue(ctx context.Context) (float64, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// Service реализует бизнес-логику работы с каталогом товаров.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Add добавляет новый товар в каталог, кеширует его и возвращает ID.
func (s *Service) Add(ctx context.Context, req models.DummyProduct) (int, error) {
	product, err := models.NewProduct(req.Name, req.Price, req.Quantity)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return 0, err
	}

	s.log.Info("added new product", slog.String("name", product.Name), slog.Int("id", id))

	cacheKey := fmt.Sprintf("product:%s", product.Name)
	if err := s.cache.Set(cacheKey, product.Info(), time.Hour); err != nil {
		s.log.Warn("failed to cache product", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return id, nil
}

// Remove удаляет товар из каталога по имени и инвалидирует кеш.
func (s *Service) Remove(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)

	cacheKey := fmt.Sprintf("product:%s", name)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove product from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	count, err := s.repo.RemoveProduct(ctx, name)
	if err != nil {
		return err
	}
	if count == 0 {
		return models.ErrProductNotFound
	}

	s.log.Info("removed product", slog.String("name", name))
	return nil
}

// UpdateQuantity обновляет количество товара по имени и инвалидирует кеш.
func (s *Service) UpdateQuantity(ctx context.Context, name string, quantity int) error {
	if quantity < 0 {
		return models.ErrNegativeQuantity
	}
	name = strings.TrimSpace(name)

	count, err := s.repo.UpdateProductQuantity(ctx, name, quantity)
	if err != nil {
		return err
	}
	if count == 0 {
		return models.ErrProductNotFound
	}

	cacheKey := fmt.Sprintf("product:%s", name)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate product cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	s.log.Info("updated product quantity", slog.String("name", name), slog.Int("quantity", quantity))
	return nil
}

// Get возвращает сведения о товаре по имени, используя кеш или репозиторий.
// Если товар не найден, возвращает false без ошибки.
func (s *Service) Get(ctx context.Context, name string) (*models.ProductInfo, bool, error) {
	name = strings.TrimSpace(name)

	var cached *models.ProductInfo
	cacheKey := fmt.Sprintf("product:%s", name)
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		return nil, false, err
	}
	if found {
		return cached, true, nil
	}

	product, found, err := s.repo.GetProductByName(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	info := product.Info()
	if err := s.cache.Set(cacheKey, info, time.Hour); err != nil {
		s.log.Warn("failed to cache product", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return &info, true, nil
}

// List возвращает сведения обо всех товарах в порядке добавления.
func (s *Service) List(ctx context.Context) ([]*models.ProductInfo, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*models.ProductInfo, 0, len(products))
	for _, product := range products {
		info := product.Info()
		result = append(result, &info)
	}
	return result, nil
}

// TotalValue подсчитывает суммарную стоимость всех товаров на складе.
func (s *Service) TotalValue(ctx context.Context) (float64, error) {
	return s.repo.CountTotalValue(ctx)
}
