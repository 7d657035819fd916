package fakers

import (
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tmaxstore/catalog-admin/app/models"
)

var orderStatuses = models.OrderStatuses()

// OrderFaker builds an order over the given products, snapshotting each
// item's price at the current product price the way the storefront does.
func OrderFaker(products []*models.Product) *models.Order {
	orderID := uuid.New().String()

	itemCount := rand.Intn(3) + 1
	items := make([]models.OrderItem, 0, itemCount)
	total := decimal.Zero
	for i := 0; i < itemCount; i++ {
		product := products[rand.Intn(len(products))]
		qty := rand.Intn(3) + 1
		items = append(items, models.OrderItem{
			ID:              uuid.New().String(),
			OrderID:         orderID,
			ProductID:       product.ID,
			Quantity:        qty,
			PriceAtPurchase: product.Price,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(qty))))
	}

	return &models.Order{
		ID:              orderID,
		UserID:          uuid.New().String(),
		TotalAmount:     total,
		Status:          orderStatuses[rand.Intn(len(orderStatuses))],
		ShippingAddress: faker.Sentence(),
		PaymentMethod:   "card",
		Items:           items,
		CreatedAt:       time.Now().Add(-time.Duration(rand.Intn(72)) * time.Hour),
	}
}
