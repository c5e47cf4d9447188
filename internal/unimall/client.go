// Package unimall реализует HTTP-клиент для B2B API поставщика Unimall.
//
// Клиент отдаёт остатки с ценами (productsQuantitiesAndPrices) и страницы
// каталога (productsCatalogue). Любая ошибка транспорта, неуспешный статус
// или битый ответ оборачиваются в models.ErrRemoteUnavailable.
package unimall

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/krotovalex/inventory-keeper/internal/models"
)

// Client выполняет запросы к Unimall B2B API с Bearer-авторизацией.
type Client struct {
	baseURL    string
	apiKey     string
	pageSize   int
	httpClient *http.Client
}

// NewClient создаёт новый клиент Unimall B2B API.
func NewClient(baseURL, apiKey string, pageSize int) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		pageSize:   pageSize,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) newRequest(ctx context.Context, path string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck // закрытие тела после чтения

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %s", models.ErrRemoteUnavailable, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: decode response: %v", models.ErrRemoteUnavailable, err)
	}
	return nil
}

// QuantitiesAndPrices возвращает остатки и цены всех товаров поставщика.
func (c *Client) QuantitiesAndPrices(ctx context.Context) ([]Stock, error) {
	const op = "unimall.QuantitiesAndPrices"
	req, err := c.newRequest(ctx, "/productsQuantitiesAndPrices")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var stocks []Stock
	if err := c.do(req, &stocks); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return stocks, nil
}

// Catalogue возвращает одну страницу каталога поставщика.
// Размер страницы задаётся при создании клиента.
func (c *Client) Catalogue(ctx context.Context, page int) ([]CatalogueItem, error) {
	const op = "unimall.Catalogue"
	req, err := c.newRequest(ctx, "/productsCatalogue")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	q := req.URL.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(c.pageSize))
	req.URL.RawQuery = q.Encode()

	var result cataloguePage
	if err := c.do(req, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result.Data, nil
}
