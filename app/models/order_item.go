package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem keeps a weak reference to its product: ProductID is resolved by
// lookup at read time, and the product may be archived or deleted later
// without touching the item. PriceAtPurchase is the historical snapshot.
type OrderItem struct {
	ID              string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderID         string          `gorm:"size:36;not null;index" json:"order_id"`
	ProductID       string          `gorm:"size:36;not null;index" json:"product_id"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	PriceAtPurchase decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price_at_purchase"`
	CreatedAt       time.Time       `json:"created_at"`

	// Product is the read-time enrichment. Nil when the referenced product
	// no longer exists; the item itself stays valid.
	Product *Product `gorm:"-" json:"product,omitempty"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}
