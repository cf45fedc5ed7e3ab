package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

// TokenStatus is the outcome of verifying a raw session token
type TokenStatus int

const (
	StatusAbsent TokenStatus = iota
	StatusMalformed
	StatusExpired
	StatusValid
)

func (s TokenStatus) String() string {
	switch s {
	case StatusAbsent:
		return "absent"
	case StatusMalformed:
		return "malformed"
	case StatusExpired:
		return "expired"
	case StatusValid:
		return "valid"
	}
	return "unknown"
}

// VerifyResult carries the verification outcome. Claims is set only
// when Status is StatusValid.
type VerifyResult struct {
	Status TokenStatus
	Claims *Claims
}

// Valid reports whether the token verified successfully
func (r VerifyResult) Valid() bool {
	return r.Status == StatusValid
}

// TokenService signs and verifies session tokens with a shared HS256 secret
type TokenService struct {
	signingKey      []byte
	tokenExpiration int
	issuer          string
	logger          Logger
}

// NewTokenService creates a new TokenService instance
func NewTokenService(cfg Config) *TokenService {
	return &TokenService{
		signingKey:      []byte(cfg.GetSigningKey()),
		tokenExpiration: cfg.GetTokenExpiration(),
		issuer:          cfg.GetIssuer(),
		logger:          defLogger{},
	}
}

func (ts *TokenService) WithLogger(logger Logger) *TokenService {
	if logger != nil {
		ts.logger = logger
	}
	return ts
}

// Sign mints a session token for the given subject
func (ts *TokenService) Sign(subject, username, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(ts.tokenExpiration) * time.Hour)),
		},
		UID:      subject,
		Uname:    username,
		UserRole: role,
	}

	return ts.SignClaims(claims)
}

// SignClaims signs arbitrary claims using the configured signing key.
func (ts *TokenService) SignClaims(claims *Claims) (string, error) {
	if claims == nil {
		return "", errors.New("claims must not be nil", errors.CategoryInternal)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedString, err := token.SignedString(ts.signingKey)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to sign session token")
	}

	return signedString, nil
}

// Verify decodes a raw token into an explicit four way result. An empty
// token is StatusAbsent, not an error: the caller decides what absence
// means for its own surface.
func (ts *TokenService) Verify(raw string) VerifyResult {
	if raw == "" {
		return VerifyResult{Status: StatusAbsent}
	}

	parserOptions := make([]jwt.ParserOption, 0, 1)
	if ts.issuer != "" {
		parserOptions = append(parserOptions, jwt.WithIssuer(ts.issuer))
	}

	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			ts.logger.Error("TokenService verify encountered unexpected signing method", "alg", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	}, parserOptions...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			ts.logger.Debug("TokenService verify: token expired")
			return VerifyResult{Status: StatusExpired}
		}
		ts.logger.Debug("TokenService verify: %s", err)
		return VerifyResult{Status: StatusMalformed}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		ts.logger.Error("TokenService verify could not decode claims")
		return VerifyResult{Status: StatusMalformed}
	}

	return VerifyResult{Status: StatusValid, Claims: claims}
}
