package admin

import (
	"encoding/json"
	"net/http"

	"github.com/tmaxstore/catalog-admin/app/services"
)

func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"low_stock_threshold": h.inventorySvc.LowStockThreshold(r.Context()),
		"theme":               h.themeSvc.Current(),
	})
}

type settingsForm struct {
	LowStockThreshold *int `json:"low_stock_threshold"`
}

func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var form settingsForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.renderError(w, "UpdateSettings", services.NewValidationError("body", "invalid JSON payload"))
		return
	}

	if form.LowStockThreshold != nil {
		if err := h.inventorySvc.SetLowStockThreshold(r.Context(), *form.LowStockThreshold); err != nil {
			h.renderError(w, "UpdateSettings", err)
			return
		}
	}
	h.GetSettings(w, r)
}

func (h *AdminHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.themeSvc.Toggle(r.Context())
	if err != nil {
		h.renderError(w, "ToggleTheme", err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"theme": theme})
}
