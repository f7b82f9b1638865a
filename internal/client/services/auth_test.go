package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/gophvault/internal/client/apierr"
	"github.com/dmitrijs2005/gophvault/internal/client/client"
	"github.com/dmitrijs2005/gophvault/internal/client/models"
	"github.com/dmitrijs2005/gophvault/internal/client/session"
	"github.com/dmitrijs2005/gophvault/internal/client/validation"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	api      *fakeAuthAPI
	store    *session.Store
	tokens   *fakeTokens
	binder   *fakeBinder
	notifier *recordingNotifier
	svc      *AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	f := &authFixture{
		api: &fakeAuthAPI{resp: &client.AuthResponse{
			Token: "tok",
			User:  models.User{ID: "u1", Name: "Ann", Email: "ann@example.com"},
		}},
		store:    session.NewStore(logging.Discard()),
		tokens:   &fakeTokens{},
		binder:   &fakeBinder{},
		notifier: &recordingNotifier{},
	}
	session.NewEffects(f.binder, f.tokens, logging.Discard()).Attach(f.store)
	f.svc = NewAuthService(f.api, f.store, f.tokens, validation.New(), f.notifier, logging.Discard())
	return f
}

func TestAuthService_LoginSuccess(t *testing.T) {
	f := newAuthFixture(t)

	err := f.svc.Login(context.Background(), validation.LoginForm{Email: " ann@example.com ", Password: "pw"})
	require.NoError(t, err)

	st := f.store.State()
	assert.True(t, st.IsAuthenticated)
	assert.Equal(t, "tok", st.AuthToken)
	assert.Equal(t, "Ann", st.User.Name)
	assert.Equal(t, "tok", f.tokens.token)
	assert.Equal(t, "tok", f.binder.token)
	assert.Equal(t, "ann@example.com", f.api.lastLogin.Email)
	assert.Equal(t, []string{"Logged in successfully"}, f.notifier.successes)
	assert.Empty(t, f.notifier.errors)
}

func TestAuthService_RegisterSuccess(t *testing.T) {
	f := newAuthFixture(t)

	err := f.svc.Register(context.Background(), validation.RegisterForm{Name: "Ann", Email: "ann@example.com", Password: "secret1"})
	require.NoError(t, err)

	assert.Equal(t, 1, f.api.registerCalls)
	assert.Equal(t, "Ann", f.api.lastRegister.Name)
	assert.True(t, f.store.State().IsAuthenticated)
	assert.Equal(t, []string{"Account created successfully"}, f.notifier.successes)
}

func TestAuthService_ValidationErrorStopsSubmission(t *testing.T) {
	f := newAuthFixture(t)

	err := f.svc.Register(context.Background(), validation.RegisterForm{Name: "A", Email: "bad", Password: "1"})

	var ve *validation.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Zero(t, f.api.registerCalls)
	assert.Equal(t, []string{"Name must be at least 2 characters"}, f.notifier.errors)
	assert.Equal(t, session.Initial(), f.store.State())
	assert.False(t, f.tokens.has)
}

func TestAuthService_APIErrorSurfacesServerMessage(t *testing.T) {
	f := newAuthFixture(t)
	f.api.err = &client.APIError{StatusCode: http.StatusUnauthorized, Status: "401 Unauthorized", Message: "Invalid credentials"}

	err := f.svc.Login(context.Background(), validation.LoginForm{Email: "ann@example.com", Password: "wrong"})

	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Equal(t, []string{"Invalid credentials"}, f.notifier.errors)
	assert.Equal(t, session.Initial(), f.store.State())
	assert.False(t, f.tokens.has)
}

func TestAuthService_UnavailableServer(t *testing.T) {
	f := newAuthFixture(t)
	f.api.err = errors.Join(client.ErrUnavailable, errors.New("connection refused"))

	err := f.svc.Login(context.Background(), validation.LoginForm{Email: "ann@example.com", Password: "pw"})

	require.ErrorIs(t, err, client.ErrUnavailable)
	require.Len(t, f.notifier.errors, 1)
	assert.Equal(t, apierr.Unavailable, f.notifier.errors[0])
}

func TestAuthService_UnexpectedErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *authFixture)
	}{
		{"non-api error", func(f *authFixture) { f.api.err = errors.New("decoder exploded") }},
		{"empty token", func(f *authFixture) { f.api.resp = &client.AuthResponse{} }},
		{"token persistence", func(f *authFixture) { f.tokens.setErr = errors.New("read-only fs") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			tt.setup(f)

			err := f.svc.Login(context.Background(), validation.LoginForm{Email: "ann@example.com", Password: "pw"})

			require.ErrorIs(t, err, ErrUnexpected)
			assert.Equal(t, []string{UnexpectedMessage}, f.notifier.errors)
			assert.Equal(t, session.Initial(), f.store.State())
		})
	}
}

func TestAuthService_AlreadyLoggedIn(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.svc.Login(context.Background(), validation.LoginForm{Email: "ann@example.com", Password: "pw"}))

	err := f.svc.Login(context.Background(), validation.LoginForm{Email: "ann@example.com", Password: "pw"})

	require.ErrorIs(t, err, ErrAlreadyLoggedIn)
	assert.Equal(t, 1, f.api.loginCalls)
}

func TestAuthService_LoginThenLogoutResetsEverything(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	require.NoError(t, f.svc.Login(ctx, validation.LoginForm{Email: "ann@example.com", Password: "pw"}))

	require.NoError(t, f.svc.Logout(ctx))

	assert.Equal(t, session.Initial(), f.store.State())
	assert.False(t, f.tokens.has)
	assert.Empty(t, f.binder.token)
	assert.Equal(t, []string{"Logged in successfully", "Logged out"}, f.notifier.successes)
}
