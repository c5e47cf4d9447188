// Package models содержит доменные структуры системы учёта товаров,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "strings"

// Product — карточка товара в каталоге. Имя хранится без начальных
// и завершающих пробелов и служит уникальным ключом каталога.
type Product struct {
	Name     string  // Название товара
	Price    float64 // Цена за единицу
	Quantity int     // Количество на складе
}

// NewProduct проверяет поля и возвращает товар с нормализованным именем.
// Пустое после обрезки имя, отрицательная цена или отрицательное количество
// дают ошибку класса ErrInvalidArgument.
func NewProduct(name string, price float64, quantity int) (Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, ErrEmptyProductName
	}
	if price < 0 {
		return Product{}, ErrNegativePrice
	}
	if quantity < 0 {
		return Product{}, ErrNegativeQuantity
	}
	return Product{Name: name, Price: price, Quantity: quantity}, nil
}

// TotalValue возвращает стоимость запаса по этой позиции.
func (p Product) TotalValue() float64 {
	return p.Price * float64(p.Quantity)
}

// Info возвращает снимок товара для списков и экспорта.
func (p Product) Info() ProductInfo {
	return ProductInfo{
		Name:       p.Name,
		Price:      p.Price,
		Quantity:   p.Quantity,
		TotalValue: p.TotalValue(),
	}
}

// ProductInfo — снимок товара с вычисленной стоимостью позиции.
type ProductInfo struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	TotalValue float64 `json:"total_value"`
}

// DummyProduct используется для приёма данных о новом товаре из JSON-запроса,
// прежде чем конвертировать их в Product.
type DummyProduct struct {
	Name     string  `json:"name" validate:"required"`  // Название товара
	Price    float64 `json:"price" validate:"gte=0"`    // Цена (не меньше 0)
	Quantity int     `json:"quantity" validate:"gte=0"` // Количество (не меньше 0)
}

// DummyQuantity используется для приёма нового количества товара.
type DummyQuantity struct {
	Quantity int `json:"quantity" validate:"gte=0"` // Новое количество (не меньше 0)
}
