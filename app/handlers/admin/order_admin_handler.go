package admin

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tmaxstore/catalog-admin/app/services"
)

// GetOrders lists all orders, optionally narrowed by ?search= matching the
// order id or shipping address.
func (h *AdminHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderSvc.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.renderError(w, "GetOrders", err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
	})
}

func (h *AdminHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.renderError(w, "GetOrder", err)
		return
	}
	h.render.JSON(w, http.StatusOK, order)
}

type orderStatusForm struct {
	Status string `json:"status"`
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var form orderStatusForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.renderError(w, "UpdateOrderStatus", services.NewValidationError("body", "invalid JSON payload"))
		return
	}

	if err := h.orderSvc.ChangeStatus(r.Context(), mux.Vars(r)["id"], form.Status); err != nil {
		h.renderError(w, "UpdateOrderStatus", err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"status": form.Status})
}

func (h *AdminHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.orderSvc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.renderError(w, "DeleteOrder", err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// GetCustomers lists the distinct customers derived from the order history.
func (h *AdminHandler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.orderSvc.Customers(r.Context())
	if err != nil {
		h.renderError(w, "GetCustomers", err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"customers": customers,
		"count":     len(customers),
	})
}
