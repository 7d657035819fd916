package repositories

import (
	"context"

	"github.com/tmaxstore/catalog-admin/app/models"
	"gorm.io/gorm"
)

type OrderRepositoryImpl interface {
	GetAllOrders(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	CreateOrder(ctx context.Context, order *models.Order) error
	UpdateStatus(ctx context.Context, orderID string, status string) error
	DeleteOrder(ctx context.Context, id string) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepositoryImpl {
	return &orderRepository{db}
}

func (r *orderRepository) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, wrapStoreErr("GetAllOrders", err)
	}
	r.resolveProducts(ctx, orders)
	return orders, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, wrapStoreErr("GetByID", err)
	}
	orders := []models.Order{order}
	r.resolveProducts(ctx, orders)
	return &orders[0], nil
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return wrapStoreErr("CreateOrder", err)
	}
	return nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID string, status string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if res.Error != nil {
		return wrapStoreErr("UpdateStatus", res.Error)
	}
	if res.RowsAffected == 0 {
		// Reapplying the current status also affects zero rows on some
		// drivers, so distinguish a genuinely missing order explicitly.
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Order{}).
			Where("id = ?", orderID).Count(&count).Error; err != nil {
			return wrapStoreErr("UpdateStatus", err)
		}
		if count == 0 {
			return ErrNotFound
		}
	}
	return nil
}

func (r *orderRepository) DeleteOrder(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Where("id = ?", id).First(&order).Error; err != nil {
			return wrapStoreErr("DeleteOrder", err)
		}
		if err := tx.Delete(&models.OrderItem{}, "order_id = ?", id).Error; err != nil {
			return wrapStoreErr("DeleteOrder", err)
		}
		if err := tx.Delete(&models.Order{}, "id = ?", id).Error; err != nil {
			return wrapStoreErr("DeleteOrder", err)
		}
		return nil
	})
}

// resolveProducts enriches order items with their product, honoring the
// weak reference: a missing product leaves Item.Product nil without error.
func (r *orderRepository) resolveProducts(ctx context.Context, orders []models.Order) {
	ids := make([]string, 0)
	seen := make(map[string]bool)
	for _, o := range orders {
		for _, item := range o.Items {
			if !seen[item.ProductID] {
				seen[item.ProductID] = true
				ids = append(ids, item.ProductID)
			}
		}
	}
	if len(ids) == 0 {
		return
	}

	var products []models.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return
	}
	byID := make(map[string]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	for oi := range orders {
		for ii := range orders[oi].Items {
			orders[oi].Items[ii].Product = byID[orders[oi].Items[ii].ProductID]
		}
	}
}
