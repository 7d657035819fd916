package admin

import (
	"net/http"

	"github.com/tmaxstore/catalog-admin/app/helpers"
)

// GetDashboardStats returns the catalog aggregates, recomputed on every
// call from the full product set.
func (h *AdminHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.inventorySvc.Stats(r.Context())
	if err != nil {
		h.renderError(w, "GetDashboardStats", err)
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"product_count":         stats.ProductCount,
		"low_stock_count":       stats.LowStockCount,
		"total_stock":           stats.TotalStock,
		"total_value":           stats.TotalValue,
		"total_value_formatted": helpers.FormatUSD(stats.TotalValue),
	})
}
