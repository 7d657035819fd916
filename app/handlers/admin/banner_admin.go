package admin

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/tmaxstore/catalog-admin/app/models"
	"github.com/tmaxstore/catalog-admin/app/services"
)

type BannerForm struct {
	Title        string `json:"title" validate:"required,min=1,max=255"`
	Subtitle     string `json:"subtitle"`
	DiscountText string `json:"discount_text"`
	ImageURL     string `json:"image_url"`
	ProductID    string `json:"product_id"`
	Active       bool   `json:"active"`
}

func (h *AdminHandler) GetBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.bannerSvc.List(r.Context())
	if err != nil {
		h.renderError(w, "GetBanners", err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"banners": banners,
		"count":   len(banners),
	})
}

func (h *AdminHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var form BannerForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.renderError(w, "CreateBanner", services.NewValidationError("body", "invalid JSON payload"))
		return
	}

	banner := &models.Banner{
		Title:        form.Title,
		Subtitle:     form.Subtitle,
		DiscountText: form.DiscountText,
		ImageURL:     form.ImageURL,
		ProductID:    form.ProductID,
	}
	if err := h.bannerSvc.Create(r.Context(), banner); err != nil {
		h.renderError(w, "CreateBanner", err)
		return
	}

	// A banner created as active goes through the policy so exclusivity
	// holds for creates too, not just toggles.
	if form.Active {
		if err := h.bannerSvc.SetActive(r.Context(), banner.ID); err != nil {
			h.renderError(w, "CreateBanner", err)
			return
		}
		banner.Active = true
	}
	h.render.JSON(w, http.StatusCreated, banner)
}

// UpdateBanner applies a partial update to the banner's content fields.
// The active flag is excluded here: activation goes through the policy.
func (h *AdminHandler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	var patch map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.renderError(w, "UpdateBanner", services.NewValidationError("body", "invalid JSON payload"))
		return
	}

	fields := make(map[string]interface{})
	for key, raw := range patch {
		switch key {
		case "title":
			var v string
			if err := json.Unmarshal(raw, &v); err != nil || strings.TrimSpace(v) == "" {
				h.renderError(w, "UpdateBanner", services.NewValidationError("title", "must be a non-empty string"))
				return
			}
			fields["title"] = v
		case "subtitle", "discount_text", "image_url", "product_id":
			var v string
			if err := json.Unmarshal(raw, &v); err != nil {
				h.renderError(w, "UpdateBanner", services.NewValidationError(key, "must be a string"))
				return
			}
			fields[key] = v
		}
	}
	if len(fields) == 0 {
		h.renderError(w, "UpdateBanner", services.NewValidationError("body", "no updatable fields in payload"))
		return
	}

	banner, err := h.bannerSvc.Update(r.Context(), mux.Vars(r)["id"], fields)
	if err != nil {
		h.renderError(w, "UpdateBanner", err)
		return
	}
	h.render.JSON(w, http.StatusOK, banner)
}

func (h *AdminHandler) SetBannerActive(w http.ResponseWriter, r *http.Request) {
	if err := h.bannerSvc.SetActive(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.renderError(w, "SetBannerActive", err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"status": "active"})
}

func (h *AdminHandler) DeactivateBanner(w http.ResponseWriter, r *http.Request) {
	if err := h.bannerSvc.Deactivate(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.renderError(w, "DeactivateBanner", err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"status": "inactive"})
}

func (h *AdminHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	if err := h.bannerSvc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.renderError(w, "DeleteBanner", err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
