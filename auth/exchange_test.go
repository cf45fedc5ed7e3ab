package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-blog/auth"
)

func TestRemoteAuthority_Exchange(t *testing.T) {
	t.Run("forwards credentials and returns the token", func(t *testing.T) {
		var got map[string]string
		authority := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/auth/login", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

			json.NewEncoder(w).Encode(map[string]string{"token": "signed-token"})
		}))
		defer authority.Close()

		exchanger := auth.NewRemoteAuthority(authority.URL)
		token, err := exchanger.Exchange(context.Background(), "admin", "secret")

		require.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, "admin", got["username"])
		assert.Equal(t, "secret", got["password"])
	})

	t.Run("accepts access_token field", func(t *testing.T) {
		authority := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"access_token": "signed-token"})
		}))
		defer authority.Close()

		exchanger := auth.NewRemoteAuthority(authority.URL)
		token, err := exchanger.Exchange(context.Background(), "admin", "secret")

		require.NoError(t, err)
		assert.Equal(t, "signed-token", token)
	})

	t.Run("authority rejection surfaces its message", func(t *testing.T) {
		authority := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Bad credentials"})
		}))
		defer authority.Close()

		exchanger := auth.NewRemoteAuthority(authority.URL)
		token, err := exchanger.Exchange(context.Background(), "admin", "wrongpass")

		assert.Empty(t, token)
		var richErr *errors.Error
		require.ErrorAs(t, err, &richErr)
		assert.Equal(t, errors.CategoryAuth, richErr.Category)
		assert.Equal(t, "Bad credentials", richErr.Message)
	})

	t.Run("rejection without message falls back to invalid credentials", func(t *testing.T) {
		authority := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer authority.Close()

		exchanger := auth.NewRemoteAuthority(authority.URL)
		_, err := exchanger.Exchange(context.Background(), "admin", "wrongpass")

		var richErr *errors.Error
		require.ErrorAs(t, err, &richErr)
		assert.Equal(t, "Invalid credentials", richErr.Message)
	})

	t.Run("success with no token field is an error", func(t *testing.T) {
		authority := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{})
		}))
		defer authority.Close()

		exchanger := auth.NewRemoteAuthority(authority.URL)
		_, err := exchanger.Exchange(context.Background(), "admin", "secret")

		var richErr *errors.Error
		require.ErrorAs(t, err, &richErr)
		assert.Equal(t, auth.TextCodeNoToken, richErr.TextCode)
	})

	t.Run("unreachable authority is an operation failure", func(t *testing.T) {
		authority := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		authority.Close() // closed before use

		exchanger := auth.NewRemoteAuthority(authority.URL)
		token, err := exchanger.Exchange(context.Background(), "admin", "secret")

		assert.Empty(t, token)
		var richErr *errors.Error
		require.ErrorAs(t, err, &richErr)
		assert.Equal(t, errors.CategoryOperation, richErr.Category)
	})
}
