// Package memstore реализует хранилище данных в памяти процесса.
// Используется при локальном запуске без PostgreSQL: набор методов
// полностью повторяет репозиторий на основе базы данных.
package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/krotovalex/inventory-keeper/internal/models"
)

// Storage хранит товары и пользователей в памяти, сохраняя порядок добавления.
type Storage struct {
	mu        sync.RWMutex
	products  map[string]models.Product
	order     []string
	nextID    int
	users     map[string]models.User
	userOrder []string
}

// New создает новый экземпляр Storage.
func New() *Storage {
	return &Storage{
		products: make(map[string]models.Product),
		users:    make(map[string]models.User),
	}
}

// CreateProduct вставляет новый товар и возвращает его ID.
func (s *Storage) CreateProduct(_ context.Context, product models.Product) (int, error) {
	const op = "memstore.CreateProduct"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.Name]; ok {
		return 0, fmt.Errorf("%s: %w", op, models.ErrProductExists)
	}
	s.nextID++
	s.products[product.Name] = product
	s.order = append(s.order, product.Name)
	return s.nextID, nil
}

// RemoveProduct удаляет товар по имени и возвращает количество удалённых записей.
func (s *Storage) RemoveProduct(_ context.Context, name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[name]; !ok {
		return 0, nil
	}
	delete(s.products, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

// UpdateProductQuantity обновляет количество товара по имени
// и возвращает количество изменённых записей.
func (s *Storage) UpdateProductQuantity(_ context.Context, name string, quantity int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[name]
	if !ok {
		return 0, nil
	}
	product.Quantity = quantity
	s.products[name] = product
	return 1, nil
}

// GetProductByName возвращает товар по его имени. Если товар не найден,
// возвращает false без ошибки.
func (s *Storage) GetProductByName(_ context.Context, name string) (*models.Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[name]
	if !ok {
		return nil, false, nil
	}
	return &product, true, nil
}

// ListProducts возвращает список всех товаров в порядке добавления.
func (s *Storage) ListProducts(_ context.Context) ([]*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.Product
	for _, name := range s.order {
		product := s.products[name]
		result = append(result, &product)
	}
	return result, nil
}

// CountTotalValue подсчитывает суммарную стоимость всех товаров на складе.
func (s *Storage) CountTotalValue(_ context.Context) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, product := range s.products {
		total += product.TotalValue()
	}
	return total, nil
}

// RegisterUser сохраняет нового пользователя и возвращает его ID.
func (s *Storage) RegisterUser(_ context.Context, user models.User) (string, error) {
	const op = "memstore.RegisterUser"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Username]; ok {
		return "", fmt.Errorf("%s: %w", op, models.ErrUsernameTaken)
	}
	user.UID = uuid.NewString()
	s.users[user.Username] = user
	s.userOrder = append(s.userOrder, user.Username)
	return user.UID, nil
}

// GetUserByUsername возвращает пользователя по его username. Если пользователь
// не найден, возвращает false без ошибки.
func (s *Storage) GetUserByUsername(_ context.Context, username string) (*models.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, false, nil
	}
	return &user, true, nil
}

// ListUsers возвращает список всех пользователей в порядке регистрации.
func (s *Storage) ListUsers(_ context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.User
	for _, username := range s.userOrder {
		user := s.users[username]
		result = append(result, &user)
	}
	return result, nil
}
