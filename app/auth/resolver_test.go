package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAdmin(t *testing.T) {
	resolver := NewResolver("org.com")

	tests := []struct {
		name      string
		principal Principal
		want      bool
	}{
		{"organizational email", Principal{Email: "a@org.com"}, true},
		{"outside email with admin claim", Principal{Email: "a@other.com", RoleClaim: "admin"}, true},
		{"outside email without claim", Principal{Email: "a@other.com"}, false},
		{"anonymous", Principal{}, false},
		{"claim other than admin", Principal{Email: "a@other.com", RoleClaim: "editor"}, false},
		{"case-insensitive domain match", Principal{Email: "A@ORG.COM"}, true},
		{"domain as substring does not match", Principal{Email: "a@notorg.com"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.IsAdmin(tt.principal))
		})
	}
}

func TestIsAdmin_EmptyDomain(t *testing.T) {
	resolver := NewResolver("")

	assert.False(t, resolver.IsAdmin(Principal{Email: "a@org.com"}))
	assert.True(t, resolver.IsAdmin(Principal{Email: "a@org.com", RoleClaim: "admin"}))
}

func TestPrincipalAnonymous(t *testing.T) {
	assert.True(t, Principal{}.Anonymous())
	assert.False(t, Principal{Email: "a@org.com"}.Anonymous())
}
