package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Banner is a promotional slot on the storefront home screen. ProductID is
// a weak, navigational reference only.
type Banner struct {
	ID           string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Subtitle     string    `gorm:"size:255" json:"subtitle"`
	DiscountText string    `gorm:"size:255" json:"discount_text"`
	ImageURL     string    `gorm:"type:text" json:"image_url"`
	ProductID    string    `gorm:"size:36;index" json:"product_id"`
	Active       bool      `gorm:"default:false" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (b *Banner) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}
