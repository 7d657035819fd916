package auth

import (
	"net/http"

	"github.com/gorilla/sessions"
)

// Principal is the authenticated actor as reported by the external
// identity provider. The zero value means anonymous.
type Principal struct {
	Email     string `json:"email"`
	RoleClaim string `json:"role_claim"`
}

func (p Principal) Anonymous() bool {
	return p.Email == "" && p.RoleClaim == ""
}

// IdentityProvider resolves the current principal for a request. The core
// never verifies credentials; it only consumes what the provider asserts.
type IdentityProvider interface {
	CurrentPrincipal(r *http.Request) (Principal, bool)
}

const (
	sessionCookieName   = "admin-session"
	emailSessionKey     = "email"
	roleClaimSessionKey = "roleClaim"
)

// SessionIdentityProvider reads the principal out of the session cookie
// written by the identity provider integration at sign-in.
type SessionIdentityProvider struct {
	store *sessions.CookieStore
}

func NewSessionIdentityProvider(keyPairs ...[]byte) *SessionIdentityProvider {
	store := sessions.NewCookieStore(keyPairs...)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionIdentityProvider{store: store}
}

func (s *SessionIdentityProvider) CurrentPrincipal(r *http.Request) (Principal, bool) {
	session, err := s.store.Get(r, sessionCookieName)
	if err != nil || session.IsNew {
		return Principal{}, false
	}

	email, _ := session.Values[emailSessionKey].(string)
	roleClaim, _ := session.Values[roleClaimSessionKey].(string)
	p := Principal{Email: email, RoleClaim: roleClaim}
	if p.Anonymous() {
		return Principal{}, false
	}
	return p, true
}

// WritePrincipal stores an asserted identity on the session. Used by the
// sign-in callback that fronts the external provider.
func (s *SessionIdentityProvider) WritePrincipal(w http.ResponseWriter, r *http.Request, p Principal) error {
	session, _ := s.store.Get(r, sessionCookieName)
	session.Values[emailSessionKey] = p.Email
	session.Values[roleClaimSessionKey] = p.RoleClaim
	return session.Save(r, w)
}

// ClearPrincipal drops the session.
func (s *SessionIdentityProvider) ClearPrincipal(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, sessionCookieName)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
