package services

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/tmaxstore/catalog-admin/app/models"
	"github.com/tmaxstore/catalog-admin/app/repositories"
)

// StockStatus is the presentation-facing stock category. It is derived on
// every read and never written back to Product.Status, which remains the
// operator's field.
type StockStatus string

const (
	StockStatusOut StockStatus = "Out of Stock"
	StockStatusLow StockStatus = "Low Stock"
	StockStatusIn  StockStatus = "In Stock"
)

// DeriveStockStatus classifies a stock count against a low-stock threshold.
func DeriveStockStatus(stock, threshold int) StockStatus {
	switch {
	case stock == 0:
		return StockStatusOut
	case stock < threshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// InventoryStats are dashboard aggregates, recomputed from the full product
// set on every call.
type InventoryStats struct {
	ProductCount  int             `json:"product_count"`
	LowStockCount int             `json:"low_stock_count"`
	TotalValue    decimal.Decimal `json:"total_value"`
	TotalStock    int             `json:"total_stock"`
}

type InventoryService struct {
	productRepo repositories.ProductRepositoryImpl
	settingRepo repositories.SettingRepositoryImpl
}

func NewInventoryService(productRepo repositories.ProductRepositoryImpl, settingRepo repositories.SettingRepositoryImpl) *InventoryService {
	return &InventoryService{
		productRepo: productRepo,
		settingRepo: settingRepo,
	}
}

// LowStockThreshold reads the persisted threshold setting, falling back to
// the default when unset or unparseable.
func (s *InventoryService) LowStockThreshold(ctx context.Context) int {
	raw, err := s.settingRepo.Get(ctx, models.SettingLowStockThreshold)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			log.Printf("LowStockThreshold: falling back to default: %v", err)
		}
		return models.DefaultLowStockThreshold
	}
	threshold, err := strconv.Atoi(raw)
	if err != nil || threshold <= 0 {
		log.Printf("LowStockThreshold: invalid stored value %q, using default", raw)
		return models.DefaultLowStockThreshold
	}
	return threshold
}

// SetLowStockThreshold persists a new threshold. Values below one are
// rejected as a validation failure.
func (s *InventoryService) SetLowStockThreshold(ctx context.Context, threshold int) error {
	if threshold <= 0 {
		return NewValidationError("low_stock_threshold", "must be a positive integer")
	}
	return s.settingRepo.Set(ctx, models.SettingLowStockThreshold, strconv.Itoa(threshold))
}

// StockStatusFor derives the category for a single product using the
// currently configured threshold.
func (s *InventoryService) StockStatusFor(ctx context.Context, product *models.Product) StockStatus {
	return DeriveStockStatus(product.Stock, s.LowStockThreshold(ctx))
}

// Stats recomputes the catalog-wide aggregates from scratch.
func (s *InventoryService) Stats(ctx context.Context) (*InventoryStats, error) {
	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	threshold := s.LowStockThreshold(ctx)
	stats := &InventoryStats{TotalValue: decimal.Zero}
	for _, p := range products {
		stats.ProductCount++
		stats.TotalStock += p.Stock
		stats.TotalValue = stats.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
		if p.Stock < threshold {
			stats.LowStockCount++
		}
	}
	return stats, nil
}
