package seeders

import (
	"strconv"

	"github.com/tmaxstore/catalog-admin/app/db/fakers"
	"github.com/tmaxstore/catalog-admin/app/models"
	"gorm.io/gorm"
)

const (
	seedProducts = 20
	seedOrders   = 12
	seedBanners  = 3
)

func DBSeed(db *gorm.DB) error {
	products := make([]*models.Product, 0, seedProducts)
	for i := 0; i < seedProducts; i++ {
		product := fakers.ProductFaker()
		if err := db.Create(product).Error; err != nil {
			return err
		}
		products = append(products, product)
	}

	for i := 0; i < seedOrders; i++ {
		if err := db.Create(fakers.OrderFaker(products)).Error; err != nil {
			return err
		}
	}

	for i := 0; i < seedBanners; i++ {
		banner := fakers.BannerFaker(products[i])
		banner.Active = i == 0
		if err := db.Create(banner).Error; err != nil {
			return err
		}
	}

	threshold := models.Setting{
		Key:   models.SettingLowStockThreshold,
		Value: strconv.Itoa(models.DefaultLowStockThreshold),
	}
	return db.Where("key = ?", threshold.Key).FirstOrCreate(&threshold).Error
}
