package handlers

import (
	"net/http"

	"github.com/tmaxstore/catalog-admin/app/auth"
	"github.com/unrolled/render"
)

// SessionHandler exposes the current principal and its resolved capability
// to the UI. Mounted outside the admin gate so the login screen can ask
// "who am I" before any admin route is reachable.
type SessionHandler struct {
	render   *render.Render
	idp      auth.IdentityProvider
	resolver *auth.Resolver
}

func NewSessionHandler(render *render.Render, idp auth.IdentityProvider, resolver *auth.Resolver) *SessionHandler {
	return &SessionHandler{render: render, idp: idp, resolver: resolver}
}

func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.idp.CurrentPrincipal(r)
	if !ok {
		h.render.JSON(w, http.StatusOK, map[string]interface{}{
			"authenticated": false,
			"is_admin":      false,
		})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"email":         principal.Email,
		"is_admin":      h.resolver.IsAdmin(principal),
	})
}
