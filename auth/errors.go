package auth

import (
	"strings"

	"github.com/goliatone/go-errors"
)

const (
	TextCodeInvalidCredentials   = "auth_invalid_credentials"
	TextCodeAuthorityUnreachable = "auth_authority_unreachable"
	TextCodeTokenExpired         = "auth_token_expired"
	TextCodeTokenMalformed       = "auth_token_malformed"
	TextCodeNoToken              = "auth_no_token"
)

// ErrInvalidCredentials is returned when the authority rejects a credential pair.
var ErrInvalidCredentials = errors.New("Invalid credentials", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCredentials).
	WithCode(errors.CodeUnauthorized)

// ErrAuthorityUnreachable is returned when the authority cannot be reached.
var ErrAuthorityUnreachable = errors.New("Login error", errors.CategoryOperation).
	WithTextCode(TextCodeAuthorityUnreachable).
	WithCode(errors.CodeInternal)

// ErrTokenExpired is returned when a session token is past its expiry.
var ErrTokenExpired = errors.New("token is expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed is returned when a session token cannot be decoded or verified.
var ErrTokenMalformed = errors.New("token is malformed", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)

// ErrNoToken is returned when the authority response carries no token field.
var ErrNoToken = errors.New("no token received", errors.CategoryAuth).
	WithTextCode(TextCodeNoToken).
	WithCode(errors.CodeUnauthorized)

// ErrMismatchedHashAndPassword local credential comparison failure
var ErrMismatchedHashAndPassword = errors.New("mismatched hash and password", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized)

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}
