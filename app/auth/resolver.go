package auth

import "strings"

// Resolver maps a principal to the binary admin capability. There is no
// role hierarchy beyond this, and nothing is persisted: the answer is
// recomputed on every identity load.
type Resolver struct {
	// AdminDomain is the organizational email suffix, e.g. "tmax.com".
	AdminDomain string
}

func NewResolver(adminDomain string) *Resolver {
	return &Resolver{AdminDomain: adminDomain}
}

// IsAdmin is total: it returns false for anonymous or incomplete
// identities rather than erroring. Admin means the email belongs to the
// organizational domain or the provider asserted an explicit admin claim.
func (r *Resolver) IsAdmin(p Principal) bool {
	if p.RoleClaim == "admin" {
		return true
	}
	if r.AdminDomain == "" || p.Email == "" {
		return false
	}
	return strings.HasSuffix(strings.ToLower(p.Email), "@"+strings.ToLower(r.AdminDomain))
}
