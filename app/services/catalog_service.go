package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/tmaxstore/catalog-admin/app/models"
)

// StatusFilterAll is the default filter selection. It deliberately hides
// archived products rather than passing everything through.
const StatusFilterAll = "All"

// FilterProducts returns the visible subset for a search string and status
// selection. Search matches name or sku as a case-insensitive substring;
// an empty search matches everything.
func FilterProducts(products []models.Product, search, status string) []models.Product {
	needle := strings.ToLower(strings.TrimSpace(search))
	if status == "" {
		status = StatusFilterAll
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if needle != "" {
			matched := strings.Contains(strings.ToLower(p.Name), needle) ||
				(p.Sku != "" && strings.Contains(strings.ToLower(p.Sku), needle))
			if !matched {
				continue
			}
		}

		if status == StatusFilterAll {
			if p.Status == models.ProductStatusArchived {
				continue
			}
		} else if p.Status != status {
			continue
		}

		filtered = append(filtered, p)
	}
	return filtered
}

// ExportCSV renders the (already filtered) product view as CSV. Embedded
// quotes are doubled per RFC 4180 quoting.
func ExportCSV(products []models.Product) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Name", "SKU", "Category", "Price", "Stock", "Status"}); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	for _, p := range products {
		row := []string{
			p.Name,
			p.Sku,
			p.Category,
			p.Price.StringFixed(2),
			fmt.Sprintf("%d", p.Stock),
			p.Status,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("export csv: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	return buf.Bytes(), nil
}
