package services

import (
	"context"
	"log"
	"strings"

	"github.com/tmaxstore/catalog-admin/app/models"
	"github.com/tmaxstore/catalog-admin/app/repositories"
)

// ExclusivityMode decides how "only one banner should be active" is
// enforced when an operator activates a banner.
type ExclusivityMode string

const (
	// ExclusivityExclusive clears every other active flag before setting
	// the target, guaranteeing at most one active banner.
	ExclusivityExclusive ExclusivityMode = "exclusive"

	// ExclusivityAdvisory only sets the target flag. Exclusivity is then a
	// UI convention (active banners sort first) and several banners can
	// read active at once. Kept for compatibility with the legacy panel.
	ExclusivityAdvisory ExclusivityMode = "advisory"
)

// ParseExclusivityMode maps a config string onto a mode, defaulting to
// exclusive enforcement.
func ParseExclusivityMode(raw string) ExclusivityMode {
	if strings.EqualFold(raw, string(ExclusivityAdvisory)) {
		return ExclusivityAdvisory
	}
	return ExclusivityExclusive
}

type BannerService struct {
	bannerRepo repositories.BannerRepositoryImpl
	mode       ExclusivityMode
}

func NewBannerService(bannerRepo repositories.BannerRepositoryImpl, mode ExclusivityMode) *BannerService {
	return &BannerService{bannerRepo: bannerRepo, mode: mode}
}

func (s *BannerService) Mode() ExclusivityMode {
	return s.mode
}

// List returns banners active-first, then newest-first.
func (s *BannerService) List(ctx context.Context) ([]models.Banner, error) {
	return s.bannerRepo.GetBanners(ctx)
}

func (s *BannerService) Create(ctx context.Context, banner *models.Banner) error {
	if strings.TrimSpace(banner.Title) == "" {
		return NewValidationError("title", "title is required")
	}
	return s.bannerRepo.CreateBanner(ctx, banner)
}

// SetActive activates the target banner under the configured policy mode.
func (s *BannerService) SetActive(ctx context.Context, id string) error {
	clearOthers := s.mode == ExclusivityExclusive
	if err := s.bannerRepo.SetActive(ctx, id, clearOthers); err != nil {
		return err
	}
	log.Printf("SetActive: banner %s activated (mode=%s)", id, s.mode)
	return nil
}

// Update applies a partial update to content fields.
func (s *BannerService) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Banner, error) {
	return s.bannerRepo.UpdateBanner(ctx, id, fields)
}

// Deactivate clears a single banner's active flag.
func (s *BannerService) Deactivate(ctx context.Context, id string) error {
	_, err := s.bannerRepo.UpdateBanner(ctx, id, map[string]interface{}{"active": false})
	return err
}

func (s *BannerService) Delete(ctx context.Context, id string) error {
	return s.bannerRepo.DeleteBanner(ctx, id)
}
