package migrations

import (
	"github.com/tmaxstore/catalog-admin/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}, &models.Banner{}, &models.Setting{})
}
