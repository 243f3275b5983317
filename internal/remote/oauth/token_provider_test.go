package oauth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"procura/internal/config"
	"procura/internal/domain"
	"procura/internal/remote/oauth"
	"procura/mocks"
)

func tokenEndpoint(t *testing.T, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
		assert.Equal(t, "stored-refresh", r.Form.Get("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"fresh-token","token_type":"Bearer","expires_in":3600}`))
	}))
}

func TestTokenProvider_RefreshesAndCaches(t *testing.T) {
	var calls atomic.Int32
	server := tokenEndpoint(t, &calls)
	defer server.Close()

	creds := new(mocks.MockCredentialRepo)
	creds.On("GetRefreshToken", mock.Anything).Return("stored-refresh", nil).Once()

	provider := oauth.NewTokenProvider(creds, &config.DriveConfig{
		ClientID:     "cid",
		ClientSecret: "secret",
		TokenURL:     server.URL,
	})

	tok, err := provider.GetAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", tok)

	// Second call serves from cache: no new credential read, no new exchange.
	tok, err = provider.GetAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", tok)
	assert.Equal(t, int32(1), calls.Load())
	creds.AssertExpectations(t)
}

func TestTokenProvider_NotConnected(t *testing.T) {
	creds := new(mocks.MockCredentialRepo)
	creds.On("GetRefreshToken", mock.Anything).Return("", domain.ErrNotConnected)

	provider := oauth.NewTokenProvider(creds, &config.DriveConfig{TokenURL: "http://unused.invalid"})

	_, err := provider.GetAccessToken(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotConnected)
}

func TestTokenProvider_RefreshRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	creds := new(mocks.MockCredentialRepo)
	creds.On("GetRefreshToken", mock.Anything).Return("revoked", nil)

	provider := oauth.NewTokenProvider(creds, &config.DriveConfig{TokenURL: server.URL})

	_, err := provider.GetAccessToken(context.Background())
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
