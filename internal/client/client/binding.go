package client

import (
	"net/http"
	"sync/atomic"
	"time"

	"golang.org/x/oauth2"
)

// TokenBinding attaches the currently bound bearer token to every request
// passing through it. A later Bind overwrites the previous credential.
type TokenBinding struct {
	base  http.RoundTripper
	token atomic.Pointer[string]
}

var _ http.RoundTripper = (*TokenBinding)(nil)

// NewTokenBinding wraps base; nil means http.DefaultTransport.
func NewTokenBinding(base http.RoundTripper) *TokenBinding {
	if base == nil {
		base = http.DefaultTransport
	}
	return &TokenBinding{base: base}
}

// Bind makes token the credential of every later request. The empty string
// leaves requests without an Authorization header.
func (b *TokenBinding) Bind(token string) {
	b.token.Store(&token)
}

// Token returns the bound credential, or "" when none is bound.
func (b *TokenBinding) Token() string {
	if p := b.token.Load(); p != nil {
		return *p
	}
	return ""
}

func (b *TokenBinding) RoundTrip(req *http.Request) (*http.Response, error) {
	token := b.Token()
	if token == "" {
		return b.base.RoundTrip(req)
	}

	t := &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
		Base:   b.base,
	}
	return t.RoundTrip(req)
}

// HTTPClient returns the shared client whose requests carry the binding.
func (b *TokenBinding) HTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Transport: b, Timeout: timeout}
}
