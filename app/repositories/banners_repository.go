package repositories

import (
	"context"
	"time"

	"github.com/tmaxstore/catalog-admin/app/models"
	"gorm.io/gorm"
)

type BannerRepositoryImpl interface {
	GetBanners(ctx context.Context) ([]models.Banner, error)
	GetByID(ctx context.Context, id string) (*models.Banner, error)
	CreateBanner(ctx context.Context, banner *models.Banner) error
	UpdateBanner(ctx context.Context, id string, fields map[string]interface{}) (*models.Banner, error)
	SetActive(ctx context.Context, id string, clearOthers bool) error
	DeleteBanner(ctx context.Context, id string) error
}

type bannerRepository struct {
	db *gorm.DB
}

func NewBannerRepository(db *gorm.DB) BannerRepositoryImpl {
	return &bannerRepository{db}
}

func (b *bannerRepository) GetBanners(ctx context.Context) ([]models.Banner, error) {
	var banners []models.Banner
	if err := b.db.WithContext(ctx).
		Model(&models.Banner{}).
		Order("active DESC").
		Order("created_at DESC").
		Find(&banners).Error; err != nil {
		return nil, wrapStoreErr("GetBanners", err)
	}
	return banners, nil
}

func (b *bannerRepository) GetByID(ctx context.Context, id string) (*models.Banner, error) {
	var banner models.Banner
	if err := b.db.WithContext(ctx).
		Where("id = ?", id).
		First(&banner).Error; err != nil {
		return nil, wrapStoreErr("GetByID", err)
	}
	return &banner, nil
}

func (b *bannerRepository) CreateBanner(ctx context.Context, banner *models.Banner) error {
	if err := b.db.WithContext(ctx).Create(banner).Error; err != nil {
		return wrapStoreErr("CreateBanner", err)
	}
	return nil
}

func (b *bannerRepository) UpdateBanner(ctx context.Context, id string, fields map[string]interface{}) (*models.Banner, error) {
	var banner models.Banner
	if err := b.db.WithContext(ctx).Where("id = ?", id).First(&banner).Error; err != nil {
		return nil, wrapStoreErr("UpdateBanner", err)
	}

	fields["updated_at"] = time.Now()
	if err := b.db.WithContext(ctx).Model(&banner).Updates(fields).Error; err != nil {
		return nil, wrapStoreErr("UpdateBanner", err)
	}

	if err := b.db.WithContext(ctx).Where("id = ?", id).First(&banner).Error; err != nil {
		return nil, wrapStoreErr("UpdateBanner", err)
	}
	return &banner, nil
}

// SetActive flips the target banner's active flag on. With clearOthers it
// first clears every other flag in the same transaction, so at most one
// banner ends up active.
func (b *bannerRepository) SetActive(ctx context.Context, id string, clearOthers bool) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var banner models.Banner
		if err := tx.Where("id = ?", id).First(&banner).Error; err != nil {
			return wrapStoreErr("SetActive", err)
		}

		if clearOthers {
			if err := tx.Model(&models.Banner{}).
				Where("id <> ? AND active = ?", id, true).
				Updates(map[string]interface{}{"active": false, "updated_at": time.Now()}).Error; err != nil {
				return wrapStoreErr("SetActive", err)
			}
		}

		if err := tx.Model(&banner).
			Updates(map[string]interface{}{"active": true, "updated_at": time.Now()}).Error; err != nil {
			return wrapStoreErr("SetActive", err)
		}
		return nil
	})
}

func (b *bannerRepository) DeleteBanner(ctx context.Context, id string) error {
	res := b.db.WithContext(ctx).Delete(&models.Banner{}, "id = ?", id)
	if res.Error != nil {
		return wrapStoreErr("DeleteBanner", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
