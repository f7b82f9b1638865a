package client

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func authHeaderServer(t *testing.T, seen *[]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = append(*seen, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTokenBinding_AttachesAndReplacesBearer(t *testing.T) {
	var seen []string
	srv := authHeaderServer(t, &seen)

	b := NewTokenBinding(nil)
	hc := b.HTTPClient(5 * time.Second)

	get := func() {
		t.Helper()
		resp, err := hc.Get(srv.URL)
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	get()
	b.Bind("first")
	get()
	b.Bind("second")
	get()
	b.Bind("")
	get()

	require.Equal(t, []string{"", "Bearer first", "Bearer second", ""}, seen)
}

func TestTokenBinding_Token(t *testing.T) {
	b := NewTokenBinding(http.DefaultTransport)
	require.Equal(t, "", b.Token())

	b.Bind("abc")
	require.Equal(t, "abc", b.Token())
}

func TestTokenBinding_DoesNotMutateCallerRequest(t *testing.T) {
	var seen []string
	srv := authHeaderServer(t, &seen)

	b := NewTokenBinding(nil)
	b.Bind("tok")

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := b.HTTPClient(time.Second).Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	require.Equal(t, []string{"Bearer tok"}, seen)
	require.Empty(t, req.Header.Get("Authorization"))
}
