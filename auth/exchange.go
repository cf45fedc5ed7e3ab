package auth

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type authorityResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"access_token"`
	Message     string `json:"message"`
}

func (r authorityResponse) token() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}

// RemoteAuthority exchanges credentials against the upstream auth authority.
type RemoteAuthority struct {
	rest   *resty.Client
	logger Logger
}

// NewRemoteAuthority returns an exchanger bound to the authority base URL
func NewRemoteAuthority(baseURL string) *RemoteAuthority {
	return &RemoteAuthority{
		rest:   resty.New().SetBaseURL(baseURL),
		logger: defLogger{},
	}
}

func (a *RemoteAuthority) WithLogger(logger Logger) *RemoteAuthority {
	if logger != nil {
		a.logger = logger
	}
	return a
}

// Exchange forwards the credential pair and returns the signed session token.
// A rejection by the authority and a transport failure are different errors:
// the first surfaces the authority message, the second a generic failure.
func (a *RemoteAuthority) Exchange(ctx context.Context, username, password string) (string, error) {
	var body authorityResponse

	resp, err := a.rest.NewRequest().
		SetContext(ctx).
		SetHeader(requestIDHeader, uuid.NewString()).
		SetBody(map[string]string{"username": username, "password": password}).
		SetResult(&body).
		SetError(&body).
		Post("/api/auth/login")

	if err != nil {
		a.logger.Error("Exchange transport failure", "error", err)
		return "", errors.Wrap(err, ErrAuthorityUnreachable.Category, ErrAuthorityUnreachable.Message).
			WithTextCode(ErrAuthorityUnreachable.TextCode).
			WithCode(errors.CodeInternal)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		a.logger.Info("Exchange rejected by authority", "status", resp.StatusCode())
		if body.Message != "" {
			return "", errors.New(body.Message, errors.CategoryAuth).
				WithTextCode(TextCodeInvalidCredentials).
				WithCode(errors.CodeUnauthorized)
		}
		return "", ErrInvalidCredentials
	}

	token := body.token()
	if token == "" {
		a.logger.Error("Exchange got 2xx with no token field")
		return "", ErrNoToken
	}

	return token, nil
}
