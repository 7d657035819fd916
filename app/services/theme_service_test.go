package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmaxstore/catalog-admin/app/models"
)

func TestThemeService_Lifecycle(t *testing.T) {
	settings := newFakeSettingRepo()
	svc := NewThemeService(settings)
	ctx := context.Background()

	require.NoError(t, svc.Load(ctx))
	assert.Equal(t, models.DefaultTheme, svc.Current())

	theme, err := svc.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "light", theme)
	assert.Equal(t, "light", settings.values[models.SettingTheme])

	// A fresh service picks the persisted value up at load time.
	fresh := NewThemeService(settings)
	require.NoError(t, fresh.Load(ctx))
	assert.Equal(t, "light", fresh.Current())
}

func TestThemeService_ToggleKeepsStateOnWriteFailure(t *testing.T) {
	settings := newFakeSettingRepo()
	settings.setErr = errors.New("store unavailable")
	svc := NewThemeService(settings)

	theme, err := svc.Toggle(context.Background())
	assert.Error(t, err)
	// The in-memory value stays at the last confirmed state.
	assert.Equal(t, models.DefaultTheme, theme)
	assert.Equal(t, models.DefaultTheme, svc.Current())
}
