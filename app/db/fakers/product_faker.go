package fakers

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"github.com/tmaxstore/catalog-admin/app/models"
)

var categories = []string{
	models.CategoryElectronics,
	models.CategoryAccessories,
	models.CategoryAudio,
	models.CategoryWearables,
	models.CategoryHome,
	models.CategoryGaming,
}

var statuses = []string{
	models.ProductStatusDraft,
	models.ProductStatusActive,
	models.ProductStatusActive,
	models.ProductStatusArchived,
}

func ProductFaker() *models.Product {
	name := strings.Title(faker.Word() + " " + faker.Word())
	price := decimal.NewFromFloat(float64(rand.Intn(49000)+999) / 100)

	skuBase := strings.ToUpper(slug.Make(name))
	if len(skuBase) > 8 {
		skuBase = skuBase[:8]
	}

	imageURL := fmt.Sprintf("/uploads/%s.jpg", uuid.New().String())

	return &models.Product{
		ID:            uuid.New().String(),
		Name:          name,
		Brand:         "TMAX",
		Description:   faker.Paragraph(),
		Sku:           skuBase + fmt.Sprintf("-%03d", rand.Intn(1000)),
		Price:         price,
		OriginalPrice: price.Mul(decimal.NewFromFloat(1.2)).Round(2),
		Stock:         rand.Intn(60),
		Category:      categories[rand.Intn(len(categories))],
		Status:        statuses[rand.Intn(len(statuses))],
		ImageURL:      imageURL,
		Images:        models.ImageList{imageURL},
		Rating:        float64(rand.Intn(50)) / 10,
		ReviewCount:   rand.Intn(500),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}
