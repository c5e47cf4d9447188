package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/krotovalex/inventory-keeper/internal/models"
)

// CreateProduct вставляет новый товар и возвращает его ID.
func (s *Storage) CreateProduct(ctx context.Context, product models.Product) (int, error) {
	const op = "storage.CreateProduct"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO products (name, price, quantity)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		product.Name, product.Price, product.Quantity).Scan(&newID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, models.ErrProductExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// RemoveProduct удаляет товар по имени и возвращает количество удалённых строк.
func (s *Storage) RemoveProduct(ctx context.Context, name string) (int, error) {
	const op = "storage.RemoveProduct"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM products WHERE name = $1`
	result, err := s.DB.ExecContext(ctx, query, name)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// UpdateProductQuantity обновляет количество товара по имени и возвращает количество изменённых строк.
func (s *Storage) UpdateProductQuantity(ctx context.Context, name string, quantity int) (int, error) {
	const op = "storage.UpdateProductQuantity"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE products
			  SET quantity = $1, updated_at = NOW()
			  WHERE name = $2`
	result, err := s.DB.ExecContext(ctx, query, quantity, name)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// GetProductByName возвращает товар по его имени. Если товар не найден,
// возвращает false без ошибки.
func (s *Storage) GetProductByName(ctx context.Context, name string) (*models.Product, bool, error) {
	const op = "storage.GetProductByName"
	select {
	case <-ctx.Done():
		return nil, false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT name, price, quantity
			  FROM products
			  WHERE name = $1`
	row := s.DB.QueryRowContext(ctx, query, name)

	var result models.Product
	if err := row.Scan(&result.Name, &result.Price, &result.Quantity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return &result, true, nil
}

// ListProducts возвращает список всех товаров в порядке добавления.
func (s *Storage) ListProducts(ctx context.Context) ([]*models.Product, error) {
	const op = "storage.ListProducts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT name, price, quantity
			  FROM products
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Product
	for rows.Next() {
		var item models.Product
		if err := rows.Scan(&item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountTotalValue подсчитывает суммарную стоимость всех товаров на складе.
func (s *Storage) CountTotalValue(ctx context.Context) (float64, error) {
	const op = "storage.CountTotalValue"
	select {
	case <-ctx.Done():
		return 0.0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COALESCE(SUM(price * quantity), 0)
			  FROM products`
	var total float64
	if err := s.DB.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}
