package repositories

import (
	"context"
	"time"

	"github.com/tmaxstore/catalog-admin/app/models"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, id string, fields map[string]interface{}) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, wrapStoreErr("GetProducts", err)
	}
	return products, nil
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		First(&product).Error; err != nil {
		return nil, wrapStoreErr("GetByID", err)
	}
	return &product, nil
}

func (p *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := p.db.WithContext(ctx).Create(product).Error; err != nil {
		return wrapStoreErr("CreateProduct", err)
	}
	return nil
}

func (p *productRepository) UpdateProduct(ctx context.Context, id string, fields map[string]interface{}) (*models.Product, error) {
	var product models.Product
	if err := p.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, wrapStoreErr("UpdateProduct", err)
	}

	fields["updated_at"] = time.Now()
	if err := p.db.WithContext(ctx).Model(&product).Updates(fields).Error; err != nil {
		return nil, wrapStoreErr("UpdateProduct", err)
	}

	if err := p.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, wrapStoreErr("UpdateProduct", err)
	}
	return &product, nil
}

// DeleteProduct hard-deletes a product. Products cited by any order item
// are protected: order items keep their price history and must stay
// resolvable by id, so the delete is rejected with ErrReferentialConflict.
func (p *productRepository) DeleteProduct(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Where("id = ?", id).First(&product).Error; err != nil {
			return wrapStoreErr("DeleteProduct", err)
		}

		var refs int64
		if err := tx.Model(&models.OrderItem{}).
			Where("product_id = ?", id).
			Count(&refs).Error; err != nil {
			return wrapStoreErr("DeleteProduct", err)
		}
		if refs > 0 {
			return ErrReferentialConflict
		}

		if err := tx.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
			return wrapStoreErr("DeleteProduct", err)
		}
		return nil
	})
}
