package repositories

import (
	"context"

	"github.com/tmaxstore/catalog-admin/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepositoryImpl interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepositoryImpl {
	return &settingRepository{db}
}

func (s *settingRepository) Get(ctx context.Context, key string) (string, error) {
	var setting models.Setting
	if err := s.db.WithContext(ctx).
		Where("key = ?", key).
		First(&setting).Error; err != nil {
		return "", wrapStoreErr("Get", err)
	}
	return setting.Value, nil
}

func (s *settingRepository) Set(ctx context.Context, key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error
	if err != nil {
		return wrapStoreErr("Set", err)
	}
	return nil
}
