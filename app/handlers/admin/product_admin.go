package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/tmaxstore/catalog-admin/app/models"
	"github.com/tmaxstore/catalog-admin/app/services"
)

type ProductForm struct {
	Name          string          `json:"name" validate:"required,min=1,max=255"`
	Brand         string          `json:"brand"`
	Description   string          `json:"description"`
	Sku           string          `json:"sku"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Stock         int             `json:"stock"`
	Category      string          `json:"category" validate:"required"`
	Status        string          `json:"status" validate:"required"`
	ImageURL      string          `json:"image_url"`
	Images        []string        `json:"images"`
	Rating        float64         `json:"rating"`
	ReviewCount   int             `json:"review_count"`
}

// productView decorates a stored product with its derived stock category.
// The derived value is never written back.
type productView struct {
	models.Product
	StockStatus services.StockStatus `json:"stock_status"`
}

func (h *AdminHandler) viewsFor(r *http.Request, products []models.Product) []productView {
	threshold := h.inventorySvc.LowStockThreshold(r.Context())
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, productView{
			Product:     p,
			StockStatus: services.DeriveStockStatus(p.Stock, threshold),
		})
	}
	return views
}

// GetProducts lists the filtered product view. Query params: search
// (name/sku substring) and status ("All" by default, which hides Archived).
func (h *AdminHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetProducts(r.Context())
	if err != nil {
		h.renderError(w, "GetProducts", err)
		return
	}

	filtered := services.FilterProducts(products, r.URL.Query().Get("search"), r.URL.Query().Get("status"))
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products": h.viewsFor(r, filtered),
		"count":    len(filtered),
	})
}

// ExportProducts streams the currently filtered view as CSV, never the raw
// unfiltered set.
func (h *AdminHandler) ExportProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetProducts(r.Context())
	if err != nil {
		h.renderError(w, "ExportProducts", err)
		return
	}

	filtered := services.FilterProducts(products, r.URL.Query().Get("search"), r.URL.Query().Get("status"))
	data, err := services.ExportCSV(filtered)
	if err != nil {
		h.renderError(w, "ExportProducts", err)
		return
	}

	filename := fmt.Sprintf("inventory_export_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *AdminHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.productRepo.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.renderError(w, "GetProduct", err)
		return
	}

	threshold := h.inventorySvc.LowStockThreshold(r.Context())
	h.render.JSON(w, http.StatusOK, productView{
		Product:     *product,
		StockStatus: services.DeriveStockStatus(product.Stock, threshold),
	})
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var form ProductForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.renderError(w, "CreateProduct", services.NewValidationError("body", "invalid JSON payload"))
		return
	}

	if err := h.validator.Struct(&form); err != nil {
		h.renderValidationErrors(w, err.(validator.ValidationErrors))
		return
	}
	if err := validateProductFields(&form); err != nil {
		h.renderError(w, "CreateProduct", err)
		return
	}

	product := &models.Product{
		Name:          form.Name,
		Brand:         form.Brand,
		Description:   form.Description,
		Sku:           form.Sku,
		Price:         form.Price,
		OriginalPrice: form.OriginalPrice,
		Stock:         form.Stock,
		Category:      form.Category,
		Status:        form.Status,
		ImageURL:      form.ImageURL,
		Images:        models.ImageList(form.Images),
		Rating:        form.Rating,
		ReviewCount:   form.ReviewCount,
	}
	if product.ImageURL == "" {
		product.ImageURL = product.Images.Thumbnail()
	}

	if err := h.productRepo.CreateProduct(r.Context(), product); err != nil {
		h.renderError(w, "CreateProduct", err)
		return
	}
	h.render.JSON(w, http.StatusCreated, product)
}

// UpdateProduct applies a partial update: only the fields present in the
// payload are written.
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var patch map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.renderError(w, "UpdateProduct", services.NewValidationError("body", "invalid JSON payload"))
		return
	}

	fields, err := productPatchFields(patch)
	if err != nil {
		h.renderError(w, "UpdateProduct", err)
		return
	}
	if len(fields) == 0 {
		h.renderError(w, "UpdateProduct", services.NewValidationError("body", "no updatable fields in payload"))
		return
	}

	product, err := h.productRepo.UpdateProduct(r.Context(), mux.Vars(r)["id"], fields)
	if err != nil {
		h.renderError(w, "UpdateProduct", err)
		return
	}
	h.render.JSON(w, http.StatusOK, product)
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.productRepo.DeleteProduct(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.renderError(w, "DeleteProduct", err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func validateProductFields(form *ProductForm) error {
	if form.Price.IsNegative() {
		return services.NewValidationError("price", "must not be negative")
	}
	if form.OriginalPrice.IsNegative() {
		return services.NewValidationError("original_price", "must not be negative")
	}
	if form.Stock < 0 {
		return services.NewValidationError("stock", "must not be negative")
	}
	if !models.ValidCategory(form.Category) {
		return services.NewValidationError("category", "unknown category "+form.Category)
	}
	if !models.ValidProductStatus(form.Status) {
		return services.NewValidationError("status", "unknown status "+form.Status)
	}
	if len(form.Images) > models.MaxProductImages {
		return services.NewValidationError("images", fmt.Sprintf("at most %d images allowed", models.MaxProductImages))
	}
	return nil
}

// productPatchFields converts a raw JSON patch into a column map, applying
// the same field rules the create path enforces.
func productPatchFields(patch map[string]json.RawMessage) (map[string]interface{}, error) {
	fields := make(map[string]interface{})

	for key, raw := range patch {
		switch key {
		case "name":
			var v string
			if err := json.Unmarshal(raw, &v); err != nil || v == "" {
				return nil, services.NewValidationError("name", "must be a non-empty string")
			}
			fields["name"] = v
		case "brand", "description", "sku", "image_url":
			var v string
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, services.NewValidationError(key, "must be a string")
			}
			fields[key] = v
		case "price", "original_price":
			var v decimal.Decimal
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, services.NewValidationError(key, "must be a number")
			}
			if v.IsNegative() {
				return nil, services.NewValidationError(key, "must not be negative")
			}
			fields[key] = v
		case "stock":
			var v int
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, services.NewValidationError("stock", "must be an integer")
			}
			if v < 0 {
				return nil, services.NewValidationError("stock", "must not be negative")
			}
			fields["stock"] = v
		case "category":
			var v string
			if err := json.Unmarshal(raw, &v); err != nil || !models.ValidCategory(v) {
				return nil, services.NewValidationError("category", "unknown category")
			}
			fields["category"] = v
		case "status":
			var v string
			if err := json.Unmarshal(raw, &v); err != nil || !models.ValidProductStatus(v) {
				return nil, services.NewValidationError("status", "unknown status")
			}
			fields["status"] = v
		case "images":
			var v []string
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, services.NewValidationError("images", "must be a list of URLs")
			}
			if len(v) > models.MaxProductImages {
				return nil, services.NewValidationError("images", fmt.Sprintf("at most %d images allowed", models.MaxProductImages))
			}
			fields["images"] = models.ImageList(v)
		case "rating":
			var v float64
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, services.NewValidationError("rating", "must be a number")
			}
			fields["rating"] = v
		case "review_count":
			var v int
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, services.NewValidationError("review_count", "must be an integer")
			}
			fields["review_count"] = v
		}
	}
	return fields, nil
}
