package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmaxstore/catalog-admin/app/models"
	"github.com/tmaxstore/catalog-admin/app/repositories"
)

type fakeProductRepo struct {
	products []models.Product
	err      error
}

func (f *fakeProductRepo) GetProducts(ctx context.Context) ([]models.Product, error) {
	return f.products, f.err
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeProductRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeProductRepo) UpdateProduct(ctx context.Context, id string, fields map[string]interface{}) (*models.Product, error) {
	return nil, repositories.ErrNotFound
}

func (f *fakeProductRepo) DeleteProduct(ctx context.Context, id string) error {
	return repositories.ErrNotFound
}

type fakeSettingRepo struct {
	values map[string]string
	setErr error
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{values: make(map[string]string)}
}

func (f *fakeSettingRepo) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", repositories.ErrNotFound
	}
	return v, nil
}

func (f *fakeSettingRepo) Set(ctx context.Context, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	return nil
}

func TestDeriveStockStatus(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		threshold int
		want      StockStatus
	}{
		{"zero stock is out", 0, 10, StockStatusOut},
		{"one below threshold is low", 9, 10, StockStatusLow},
		{"single unit is low", 1, 10, StockStatusLow},
		{"at threshold is in stock", 10, 10, StockStatusIn},
		{"above threshold is in stock", 250, 10, StockStatusIn},
		{"custom threshold boundary", 4, 5, StockStatusLow},
		{"threshold of one never reports low", 1, 1, StockStatusIn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStockStatus(tt.stock, tt.threshold)
			assert.Equal(t, tt.want, got)
			// Pure function: repeated calls agree.
			assert.Equal(t, got, DeriveStockStatus(tt.stock, tt.threshold))
		})
	}
}

func product(name string, price string, stock int) models.Product {
	return models.Product{
		Name:   name,
		Price:  decimal.RequireFromString(price),
		Stock:  stock,
		Status: models.ProductStatusActive,
	}
}

func TestStats(t *testing.T) {
	repo := &fakeProductRepo{products: []models.Product{
		product("a", "10.00", 3),
		product("b", "2.50", 0),
		product("c", "100.00", 40),
	}}
	svc := NewInventoryService(repo, newFakeSettingRepo())

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.ProductCount)
	assert.Equal(t, 43, stats.TotalStock)
	assert.True(t, stats.TotalValue.Equal(decimal.RequireFromString("4030.00")),
		"got %s", stats.TotalValue)
	// stock < 10 for products a and b
	assert.Equal(t, 2, stats.LowStockCount)
}

func TestStats_EmptySet(t *testing.T) {
	svc := NewInventoryService(&fakeProductRepo{}, newFakeSettingRepo())

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.ProductCount)
	assert.Equal(t, 0, stats.TotalStock)
	assert.Equal(t, 0, stats.LowStockCount)
	assert.True(t, stats.TotalValue.IsZero())
}

func TestLowStockThreshold(t *testing.T) {
	settings := newFakeSettingRepo()
	svc := NewInventoryService(&fakeProductRepo{}, settings)
	ctx := context.Background()

	assert.Equal(t, models.DefaultLowStockThreshold, svc.LowStockThreshold(ctx))

	require.NoError(t, svc.SetLowStockThreshold(ctx, 25))
	assert.Equal(t, 25, svc.LowStockThreshold(ctx))

	// Garbage in the store falls back to the default.
	settings.values[models.SettingLowStockThreshold] = "not-a-number"
	assert.Equal(t, models.DefaultLowStockThreshold, svc.LowStockThreshold(ctx))

	err := svc.SetLowStockThreshold(ctx, 0)
	_, ok := AsValidationError(err)
	assert.True(t, ok)
}
