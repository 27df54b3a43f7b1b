package amadeus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	tokenPath     = "/v1/security/oauth2/token" //nolint:gosec // not a credential
	refreshBuffer = 60 * time.Second
)

// OAuthTokenProvider implements TokenProvider using the Amadeus OAuth2
// client credentials flow. Tokens are cached and refreshed when expired or
// within refreshBuffer of expiry. Thread-safe via mutex.
type OAuthTokenProvider struct {
	cfg    clientcredentials.Config
	client *http.Client

	mu      sync.Mutex
	token   *oauth2.Token
	nowFunc func() time.Time // for testing
}

// OAuthOption configures the OAuthTokenProvider.
type OAuthOption func(*OAuthTokenProvider)

// WithTokenURL overrides the token endpoint.
func WithTokenURL(u string) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.cfg.TokenURL = u
	}
}

// WithTokenHTTPClient overrides the HTTP client used for token requests.
func WithTokenHTTPClient(c *http.Client) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.client = c
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.nowFunc = f
	}
}

// NewOAuthTokenProvider creates a token provider for the given API key and
// secret. Amadeus expects the credentials in the form body rather than a
// Basic auth header.
func NewOAuthTokenProvider(apiKey, apiSecret string, opts ...OAuthOption) *OAuthTokenProvider {
	p := &OAuthTokenProvider{
		cfg: clientcredentials.Config{
			ClientID:     apiKey,
			ClientSecret: apiSecret,
			TokenURL:     defaultBaseURL + tokenPath,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		client:  &http.Client{Timeout: 10 * time.Second},
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Token returns a valid access token, refreshing if necessary.
func (p *OAuthTokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != nil && p.token.AccessToken != "" &&
		p.nowFunc().Before(p.token.Expiry.Add(-refreshBuffer)) {
		return p.token.AccessToken, nil
	}

	return p.refreshLocked(ctx)
}

func (p *OAuthTokenProvider) refreshLocked(ctx context.Context) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)

	tok, err := p.cfg.Token(ctx)
	if err != nil {
		var rErr *oauth2.RetrieveError
		if errors.As(err, &rErr) && rErr.Response != nil {
			return "", fmt.Errorf(
				"token request failed (status %d): %s - %s",
				rErr.Response.StatusCode,
				rErr.ErrorCode,
				rErr.ErrorDescription,
			)
		}
		return "", fmt.Errorf("fetching token: %w", err)
	}

	// Expiry from oauth2 is computed against the wall clock; rebase it on
	// nowFunc so cache checks stay consistent under test clocks.
	if !tok.Expiry.IsZero() {
		tok.Expiry = p.nowFunc().Add(time.Until(tok.Expiry))
	} else {
		tok.Expiry = p.nowFunc().Add(refreshBuffer * 2)
	}

	p.token = tok
	return tok.AccessToken, nil
}
