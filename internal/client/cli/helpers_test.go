package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/client/config"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// fakeVaultAPI serves the auth endpoints for a single account.
type fakeVaultAPI struct {
	mu       sync.Mutex
	token    string
	meStatus int
	meCalls  int
}

func newFakeVaultAPI(t *testing.T) (*fakeVaultAPI, *httptest.Server) {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)),
	}).SignedString([]byte("server-secret"))
	require.NoError(t, err)

	f := &fakeVaultAPI{token: tok, meStatus: http.StatusOK}
	mux := http.NewServeMux()

	auth := func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "secret1" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
			return
		}
		name := body["name"]
		if name == "" {
			name = "Ann"
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": f.token,
			"user":  map[string]string{"id": "u1", "name": name, "email": body["email"]},
		})
	}
	mux.HandleFunc("POST /v1/auth/login", auth)
	mux.HandleFunc("POST /v1/auth/register", auth)
	mux.HandleFunc("GET /v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.meCalls++
		status := f.meStatus
		f.mu.Unlock()

		if status != http.StatusOK || r.Header.Get("Authorization") != "Bearer "+f.token {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Token expired"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"u1","name":"Ann","email":"ann@example.com"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return f, srv
}

type fakeClipboard struct{ text string }

func (c *fakeClipboard) WriteAll(s string) error {
	c.text = s
	return nil
}

func testConfig(t *testing.T, serverURL string, demo bool) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.ServerURL = serverURL
	cfg.Database = ":memory:"
	cfg.RequestTimeout = 5 * time.Second
	cfg.Demo = demo
	return cfg
}

func newTestApp(t *testing.T, serverURL string, demo bool, input ...string) (*App, *bytes.Buffer, *fakeClipboard) {
	t.Helper()
	var out bytes.Buffer
	clip := &fakeClipboard{}

	app, err := NewApp(context.Background(), testConfig(t, serverURL, demo), logging.Discard(),
		WithInput(strings.NewReader(strings.Join(input, "\n")+"\n")),
		WithOutput(&out),
		WithClipboard(clip),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app, &out, clip
}
