package oauth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"procura/internal/config"
	"procura/internal/domain"
	"procura/internal/port"
)

// TokenProvider exchanges the stored long-lived refresh token for short-lived
// bearer tokens, caching each token until shortly before it expires. The
// refresh token itself is written by the external consent flow; this provider
// only reads it.
type TokenProvider struct {
	creds port.CredentialRepository
	conf  *oauth2.Config

	mu      sync.Mutex
	current *oauth2.Token
}

// NewTokenProvider creates a TokenProvider backed by the stored credential.
func NewTokenProvider(creds port.CredentialRepository, cfg *config.DriveConfig) *TokenProvider {
	return &TokenProvider{
		creds: creds,
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     oauth2.Endpoint{TokenURL: cfg.TokenURL},
		},
	}
}

// GetAccessToken returns a valid bearer token, refreshing if the cached one
// has expired. A missing credential surfaces domain.ErrNotConnected; a
// rejected refresh surfaces domain.ErrTokenInvalid.
func (p *TokenProvider) GetAccessToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil && p.current.Valid() {
		return p.current.AccessToken, nil
	}

	refreshToken, err := p.creds.GetRefreshToken(ctx)
	if err != nil {
		return "", err
	}
	if refreshToken == "" {
		return "", domain.ErrNotConnected
	}

	src := p.conf.TokenSource(ctx, &oauth2.Token{
		RefreshToken: refreshToken,
		Expiry:       time.Now().Add(-time.Minute), // force a refresh
	})
	tok, err := src.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}

	p.current = tok
	return tok.AccessToken, nil
}
