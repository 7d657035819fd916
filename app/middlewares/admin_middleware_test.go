package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmaxstore/catalog-admin/app/auth"
	"github.com/tmaxstore/catalog-admin/app/helpers"
	"github.com/unrolled/render"
)

type stubIdentityProvider struct {
	principal auth.Principal
	ok        bool
}

func (s *stubIdentityProvider) CurrentPrincipal(r *http.Request) (auth.Principal, bool) {
	return s.principal, s.ok
}

func runMiddleware(t *testing.T, idp auth.IdentityProvider) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	resolver := auth.NewResolver("tmax.com")

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		isAdmin, _ := r.Context().Value(helpers.ContextKeyIsAdmin).(bool)
		assert.True(t, isAdmin)
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/products", nil)
	AdminAuthMiddleware(idp, resolver, render.New())(next).ServeHTTP(rec, req)
	return rec, reached
}

func TestAdminAuthMiddleware_Anonymous(t *testing.T) {
	rec, reached := runMiddleware(t, &stubIdentityProvider{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAdminAuthMiddleware_NonAdmin(t *testing.T) {
	idp := &stubIdentityProvider{principal: auth.Principal{Email: "a@other.com"}, ok: true}
	rec, reached := runMiddleware(t, idp)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}

func TestAdminAuthMiddleware_AdminByDomain(t *testing.T) {
	idp := &stubIdentityProvider{principal: auth.Principal{Email: "ops@tmax.com"}, ok: true}
	rec, reached := runMiddleware(t, idp)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestAdminAuthMiddleware_AdminByClaim(t *testing.T) {
	idp := &stubIdentityProvider{principal: auth.Principal{Email: "a@other.com", RoleClaim: "admin"}, ok: true}
	rec, reached := runMiddleware(t, idp)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}
