package syncer_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/krotovalex/inventory-keeper/internal/models"
	"github.com/krotovalex/inventory-keeper/internal/services/syncer"
	"github.com/krotovalex/inventory-keeper/internal/unimall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Мок для Catalog
type CatalogMock struct {
	mock.Mock
}

func (m *CatalogMock) Add(ctx context.Context, product models.DummyProduct) (int, error) {
	args := m.Called(ctx, product)
	return args.Int(0), args.Error(1)
}

func (m *CatalogMock) UpdateQuantity(ctx context.Context, name string, quantity int) error {
	args := m.Called(ctx, name, quantity)
	return args.Error(0)
}

// Мок для Supplier
type SupplierMock struct {
	mock.Mock
}

func (m *SupplierMock) QuantitiesAndPrices(ctx context.Context) ([]unimall.Stock, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]unimall.Stock), args.Error(1)
}

func (m *SupplierMock) Catalogue(ctx context.Context, page int) ([]unimall.CatalogueItem, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]unimall.CatalogueItem), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_Run(t *testing.T) {
	stocks := []unimall.Stock{
		{ID: 1, Price: 10.99, Quantity: 5},
		{ID: 2, Price: 20.00, Quantity: 3},
	}
	items := []unimall.CatalogueItem{
		{ID: 1, Name: "Widget"},
		{ID: 2, Name: "Gadget"},
	}

	tests := []struct {
		name        string
		setupMocks  func(c *CatalogMock, s *SupplierMock)
		wantCreated int
		wantUpdated int
		wantErr     error
	}{
		{
			name: "creates new products",
			setupMocks: func(c *CatalogMock, s *SupplierMock) {
				s.On("QuantitiesAndPrices", mock.Anything).Return(stocks, nil).Once()
				s.On("Catalogue", mock.Anything, 1).Return(items, nil).Once()
				c.On("Add", mock.Anything, models.DummyProduct{Name: "Widget", Price: 10.99, Quantity: 5}).
					Return(1, nil).Once()
				c.On("Add", mock.Anything, models.DummyProduct{Name: "Gadget", Price: 20.00, Quantity: 3}).
					Return(2, nil).Once()
			},
			wantCreated: 2,
		},
		{
			name: "updates quantity of existing products",
			setupMocks: func(c *CatalogMock, s *SupplierMock) {
				s.On("QuantitiesAndPrices", mock.Anything).Return(stocks, nil).Once()
				s.On("Catalogue", mock.Anything, 1).Return(items, nil).Once()
				c.On("Add", mock.Anything, mock.Anything).Return(0, models.ErrProductExists).Twice()
				c.On("UpdateQuantity", mock.Anything, "Widget", 5).Return(nil).Once()
				c.On("UpdateQuantity", mock.Anything, "Gadget", 3).Return(nil).Once()
			},
			wantUpdated: 2,
		},
		{
			name: "mix of created and updated",
			setupMocks: func(c *CatalogMock, s *SupplierMock) {
				s.On("QuantitiesAndPrices", mock.Anything).Return(stocks, nil).Once()
				s.On("Catalogue", mock.Anything, 1).Return(items, nil).Once()
				c.On("Add", mock.Anything, models.DummyProduct{Name: "Widget", Price: 10.99, Quantity: 5}).
					Return(1, nil).Once()
				c.On("Add", mock.Anything, models.DummyProduct{Name: "Gadget", Price: 20.00, Quantity: 3}).
					Return(0, models.ErrProductExists).Once()
				c.On("UpdateQuantity", mock.Anything, "Gadget", 3).Return(nil).Once()
			},
			wantCreated: 1,
			wantUpdated: 1,
		},
		{
			name: "falls back to generated name without catalogue entry",
			setupMocks: func(c *CatalogMock, s *SupplierMock) {
				s.On("QuantitiesAndPrices", mock.Anything).
					Return([]unimall.Stock{{ID: 7, Price: 5.00, Quantity: 2}}, nil).Once()
				s.On("Catalogue", mock.Anything, 1).Return([]unimall.CatalogueItem{}, nil).Once()
				c.On("Add", mock.Anything, models.DummyProduct{Name: "Product 7", Price: 5.00, Quantity: 2}).
					Return(1, nil).Once()
			},
			wantCreated: 1,
		},
		{
			name: "supplier stocks unavailable",
			setupMocks: func(_ *CatalogMock, s *SupplierMock) {
				s.On("QuantitiesAndPrices", mock.Anything).
					Return(nil, models.ErrRemoteUnavailable).Once()
			},
			wantErr: models.ErrRemoteUnavailable,
		},
		{
			name: "supplier catalogue unavailable",
			setupMocks: func(_ *CatalogMock, s *SupplierMock) {
				s.On("QuantitiesAndPrices", mock.Anything).Return(stocks, nil).Once()
				s.On("Catalogue", mock.Anything, 1).
					Return(nil, models.ErrRemoteUnavailable).Once()
			},
			wantErr: models.ErrRemoteUnavailable,
		},
		{
			name: "unexpected catalog error aborts the run",
			setupMocks: func(c *CatalogMock, s *SupplierMock) {
				s.On("QuantitiesAndPrices", mock.Anything).Return(stocks, nil).Once()
				s.On("Catalogue", mock.Anything, 1).Return(items, nil).Once()
				c.On("Add", mock.Anything, mock.Anything).
					Return(0, errors.New("storage down")).Once()
			},
			wantErr: errors.New("storage down"),
		},
		{
			name: "update failure aborts the run",
			setupMocks: func(c *CatalogMock, s *SupplierMock) {
				s.On("QuantitiesAndPrices", mock.Anything).Return(stocks, nil).Once()
				s.On("Catalogue", mock.Anything, 1).Return(items, nil).Once()
				c.On("Add", mock.Anything, mock.Anything).Return(0, models.ErrProductExists).Once()
				c.On("UpdateQuantity", mock.Anything, "Widget", 5).
					Return(errors.New("storage down")).Once()
			},
			wantErr: errors.New("storage down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := new(CatalogMock)
			supplier := new(SupplierMock)
			svc := syncer.NewService(catalog, supplier, newNoopLogger())

			tt.setupMocks(catalog, supplier)

			report, err := svc.Run(context.Background())
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantCreated, report.Created)
				assert.Equal(t, tt.wantUpdated, report.Updated)
			}

			catalog.AssertExpectations(t)
			supplier.AssertExpectations(t)
		})
	}
}

// Каталог не должен меняться, пока не получены оба ответа поставщика.
func TestService_Run_NoWritesBeforeBothFetches(t *testing.T) {
	catalog := new(CatalogMock)
	supplier := new(SupplierMock)
	svc := syncer.NewService(catalog, supplier, newNoopLogger())

	supplier.On("QuantitiesAndPrices", mock.Anything).
		Return([]unimall.Stock{{ID: 1, Price: 1.00, Quantity: 1}}, nil).Once()
	supplier.On("Catalogue", mock.Anything, 1).
		Return(nil, models.ErrRemoteUnavailable).Once()

	_, err := svc.Run(context.Background())
	require.ErrorIs(t, err, models.ErrRemoteUnavailable)

	catalog.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	catalog.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
	supplier.AssertExpectations(t)
}
