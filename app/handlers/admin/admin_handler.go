package admin

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tmaxstore/catalog-admin/app/helpers"
	"github.com/tmaxstore/catalog-admin/app/repositories"
	"github.com/tmaxstore/catalog-admin/app/services"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	render       *render.Render
	validator    *validator.Validate
	productRepo  repositories.ProductRepositoryImpl
	inventorySvc *services.InventoryService
	orderSvc     *services.OrderService
	bannerSvc    *services.BannerService
	themeSvc     *services.ThemeService
	uploader     services.ImageUploader
}

func NewAdminHandler(
	render *render.Render,
	validator *validator.Validate,
	productRepo repositories.ProductRepositoryImpl,
	inventorySvc *services.InventoryService,
	orderSvc *services.OrderService,
	bannerSvc *services.BannerService,
	themeSvc *services.ThemeService,
	uploader services.ImageUploader,
) *AdminHandler {
	return &AdminHandler{
		render:       render,
		validator:    validator,
		productRepo:  productRepo,
		inventorySvc: inventorySvc,
		orderSvc:     orderSvc,
		bannerSvc:    bannerSvc,
		themeSvc:     themeSvc,
		uploader:     uploader,
	}
}

// renderError maps the error taxonomy onto HTTP statuses. Referential
// conflicts get their own status and remediation hint so the UI can tell
// the operator to archive instead of delete.
func (h *AdminHandler) renderError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, repositories.ErrReferentialConflict):
		h.render.JSON(w, http.StatusConflict, map[string]string{
			"error":       "referential conflict",
			"remediation": "This product cannot be deleted because it exists in past orders. Try archiving it instead.",
		})
	case errors.Is(err, services.ErrUpload):
		log.Printf("%s: upload failed: %v", op, err)
		h.render.JSON(w, http.StatusBadGateway, map[string]string{"error": "image upload failed"})
	default:
		if ve, ok := services.AsValidationError(err); ok {
			h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":  "validation failed",
				"fields": map[string]string{ve.Field: ve.Message},
			})
			return
		}
		log.Printf("%s: %v", op, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *AdminHandler) renderValidationErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	h.render.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"error":  "validation failed",
		"fields": helpers.FormatValidationErrors(errs),
	})
}
