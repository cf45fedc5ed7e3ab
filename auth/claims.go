package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of a session token
type Claims struct {
	jwt.RegisteredClaims
	UID      string `json:"uid,omitempty"`
	Uname    string `json:"username,omitempty"`
	UserRole string `json:"role,omitempty"`
}

// Subject returns the subject claim
func (c *Claims) Subject() string {
	return c.RegisteredClaims.Subject
}

// UserID returns the user ID, falling back to the subject
func (c *Claims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.Subject()
}

// Username returns the username claim
func (c *Claims) Username() string {
	return c.Uname
}

// Role returns the global role
func (c *Claims) Role() string {
	return c.UserRole
}

// Expires returns the expiration time
func (c *Claims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedTime returns the issued at time
func (c *Claims) IssuedTime() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}
