package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// ImageList stores an ordered set of image URLs as a JSON text column.
// Empty entries are dropped on write so UI slot holes never persist.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	cleaned := make([]string, 0, len(l))
	for _, u := range l {
		if strings.TrimSpace(u) == "" {
			continue
		}
		cleaned = append(cleaned, u)
	}
	if len(cleaned) > MaxProductImages {
		cleaned = cleaned[:MaxProductImages]
	}
	b, err := json.Marshal(cleaned)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *ImageList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported image list column type %T", src)
	}
	if len(raw) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(raw, l)
}

// Thumbnail returns the first image by convention, or "" when empty.
func (l ImageList) Thumbnail() string {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}
