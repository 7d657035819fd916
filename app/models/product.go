package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product statuses are operator-set and independent from the stock
// category derived in services.InventoryService.
const (
	ProductStatusDraft      = "Draft"
	ProductStatusActive     = "Active"
	ProductStatusArchived   = "Archived"
	ProductStatusOutOfStock = "Out of Stock"
	ProductStatusLowStock   = "Low Stock"
)

const (
	CategoryElectronics = "Electronics"
	CategoryAccessories = "Accessories"
	CategoryAudio       = "Audio"
	CategoryWearables   = "Wearables"
	CategoryHome        = "Home"
	CategoryGaming      = "Gaming"
)

// MaxProductImages caps the gallery; the first image is the thumbnail.
const MaxProductImages = 4

type Product struct {
	ID            string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Brand         string          `gorm:"size:255" json:"brand"`
	Description   string          `gorm:"type:text" json:"description"`
	Sku           string          `gorm:"size:100;index" json:"sku"`
	Price         decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	OriginalPrice decimal.Decimal `gorm:"type:decimal(16,2);default:0.00" json:"original_price"`
	Stock         int             `gorm:"not null;default:0" json:"stock"`
	Category      string          `gorm:"size:100" json:"category"`
	Status        string          `gorm:"size:50;not null;default:'Draft'" json:"status"`
	ImageURL      string          `gorm:"type:text" json:"image_url"`
	Images        ImageList       `gorm:"type:text" json:"images"`
	Rating        float64         `gorm:"default:0" json:"rating"`
	ReviewCount   int             `gorm:"default:0" json:"review_count"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func ValidProductStatus(s string) bool {
	switch s {
	case ProductStatusDraft, ProductStatusActive, ProductStatusArchived,
		ProductStatusOutOfStock, ProductStatusLowStock:
		return true
	}
	return false
}

func ValidCategory(c string) bool {
	switch c {
	case CategoryElectronics, CategoryAccessories, CategoryAudio,
		CategoryWearables, CategoryHome, CategoryGaming:
		return true
	}
	return false
}
