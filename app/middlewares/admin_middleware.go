package middlewares

import (
	"context"
	"log"
	"net/http"

	"github.com/tmaxstore/catalog-admin/app/auth"
	"github.com/tmaxstore/catalog-admin/app/helpers"
	"github.com/unrolled/render"
)

// AdminAuthMiddleware resolves the current principal and gates the admin
// API behind the binary admin capability. The capability is recomputed on
// every request, never stored.
func AdminAuthMiddleware(idp auth.IdentityProvider, resolver *auth.Resolver, rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := idp.CurrentPrincipal(r)
			if !ok {
				rnd.JSON(w, http.StatusUnauthorized, map[string]string{
					"error": "authentication required",
				})
				return
			}

			if !resolver.IsAdmin(principal) {
				log.Printf("AdminAuthMiddleware: %s attempted admin access without the admin capability", principal.Email)
				rnd.JSON(w, http.StatusForbidden, map[string]string{
					"error": "admin access required",
				})
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyPrincipal, principal)
			ctx = context.WithValue(ctx, helpers.ContextKeyIsAdmin, true)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
