package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUpload tags image transfer failures so handlers can map them apart
// from store errors.
var ErrUpload = errors.New("image upload failed")

// ImageUploader moves raw image bytes to public storage and returns the
// URL to persist on the entity. Failures leave no partial state behind.
type ImageUploader interface {
	Upload(ctx context.Context, data []byte, suggestedName string) (string, error)
}

// LocalImageUploader stores uploads on the local disk under Dir and serves
// them from BaseURL. The stored name is a fresh uuid with the suggested
// name's extension, so repeated uploads never collide.
type LocalImageUploader struct {
	Dir     string
	BaseURL string
}

func NewLocalImageUploader(dir, baseURL string) *LocalImageUploader {
	return &LocalImageUploader{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (u *LocalImageUploader) Upload(ctx context.Context, data []byte, suggestedName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrUpload)
	}

	ext := filepath.Ext(suggestedName)
	name := uuid.New().String() + ext

	if err := os.MkdirAll(u.Dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if err := os.WriteFile(filepath.Join(u.Dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}

	return u.BaseURL + "/" + name, nil
}
