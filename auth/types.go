package auth

import (
	"context"
	"fmt"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// Config holds gateway options
type Config interface {
	GetSigningKey() string
	GetIssuer() string
	GetTokenExpiration() int
	GetCookieName() string
	GetProtectedPrefix() string
	GetPublicPaths() []string
	GetLoginPath() string
	IsProduction() bool
}

// CredentialExchanger exchanges a credential pair for a signed session token.
// Implementations talk to the upstream auth authority or verify locally.
type CredentialExchanger interface {
	Exchange(ctx context.Context, username, password string) (string, error)
}

// TokenVerifier decodes a raw session token into an explicit outcome.
// Callers choose their own policy for non Valid results.
type TokenVerifier interface {
	Verify(raw string) VerifyResult
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTH "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTH "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTH "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
