package fakers

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/tmaxstore/catalog-admin/app/models"
)

func BannerFaker(product *models.Product) *models.Banner {
	return &models.Banner{
		ID:           uuid.New().String(),
		Title:        product.Name,
		Subtitle:     "LIMITED OFFER",
		DiscountText: fmt.Sprintf("%d%% OFF", (rand.Intn(5)+1)*10),
		ImageURL:     product.ImageURL,
		ProductID:    product.ID,
		Active:       false,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}
