package models

import "time"

// Named settings persisted by the settings repository.
const (
	SettingLowStockThreshold = "low_stock_threshold"
	SettingTheme             = "theme"
)

// Defaults applied when a setting has never been written.
const (
	DefaultLowStockThreshold = 10
	DefaultTheme             = "dark"
)

type Setting struct {
	Key       string    `gorm:"size:100;not null;uniqueIndex;primary_key" json:"key"`
	Value     string    `gorm:"size:255;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
