package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/tmaxstore/catalog-admin/app/models"
	"github.com/tmaxstore/catalog-admin/app/repositories"
)

// ThemeService keeps the panel theme as process-local state with an
// explicit lifecycle: loaded once at startup, persisted on every toggle.
type ThemeService struct {
	settingRepo repositories.SettingRepositoryImpl

	mu      sync.RWMutex
	current string
}

func NewThemeService(settingRepo repositories.SettingRepositoryImpl) *ThemeService {
	return &ThemeService{settingRepo: settingRepo, current: models.DefaultTheme}
}

// Load reads the persisted theme. Called once at startup; a missing
// setting keeps the default.
func (s *ThemeService) Load(ctx context.Context) error {
	value, err := s.settingRepo.Get(ctx, models.SettingTheme)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return err
	}
	s.mu.Lock()
	s.current = value
	s.mu.Unlock()
	return nil
}

func (s *ThemeService) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Toggle switches between dark and light and persists the result. The
// in-memory value only changes after the write is confirmed.
func (s *ThemeService) Toggle(ctx context.Context) (string, error) {
	next := "dark"
	if s.Current() == "dark" {
		next = "light"
	}
	if err := s.settingRepo.Set(ctx, models.SettingTheme, next); err != nil {
		return s.Current(), err
	}
	s.mu.Lock()
	s.current = next
	s.mu.Unlock()
	log.Printf("Toggle: theme switched to %s", next)
	return next, nil
}
