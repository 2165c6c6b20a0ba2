package domain

import "time"

// RoleAdmin is the role required for account administration.
const RoleAdmin = "admin"

// Claims identifies the caller of an admin request.
type Claims struct {
	UserID string
	Email  string
	Roles  []string
}

// HasRole reports whether the claims include role.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the caller's claims.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}
