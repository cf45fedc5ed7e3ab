package auth

import (
	"context"

	"github.com/goliatone/go-errors"
	"golang.org/x/crypto/bcrypt"
)

// LocalUser is a credential entry for the in-process authority
type LocalUser struct {
	Username     string
	PasswordHash string
	Role         string
}

// LocalAuthority verifies credentials against an in-memory table and mints
// tokens itself. It lets the binary run without a remote auth authority,
// mostly in development.
type LocalAuthority struct {
	users  map[string]LocalUser
	tokens *TokenService
	logger Logger
}

// NewLocalAuthority builds a local exchanger from a set of users
func NewLocalAuthority(tokens *TokenService, users []LocalUser) *LocalAuthority {
	table := make(map[string]LocalUser, len(users))
	for _, u := range users {
		table[u.Username] = u
	}
	return &LocalAuthority{
		users:  table,
		tokens: tokens,
		logger: defLogger{},
	}
}

func (a *LocalAuthority) WithLogger(logger Logger) *LocalAuthority {
	if logger != nil {
		a.logger = logger
	}
	return a
}

// Exchange verifies the credential pair and mints a session token.
// Unknown users and bad passwords are indistinguishable to the caller.
func (a *LocalAuthority) Exchange(ctx context.Context, username, password string) (string, error) {
	user, ok := a.users[username]
	if !ok {
		a.logger.Info("Exchange unknown user", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		a.logger.Info("Exchange password mismatch", "username", username)
		return "", ErrInvalidCredentials
	}

	role := user.Role
	if role == "" {
		role = "admin"
	}

	return a.tokens.Sign(user.Username, user.Username, role)
}

// HashPassword will generate a password hash
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty", errors.CategoryBadInput)
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(h), err
}

// ComparePasswordAndHash will validate the given cleartext
// password matches the hashed password
func ComparePasswordAndHash(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatchedHashAndPassword
		}
		return err
	}
	return nil
}
