package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/client/apierr"
	"github.com/dmitrijs2005/gophvault/internal/client/client"
	"github.com/dmitrijs2005/gophvault/internal/client/notify"
	"github.com/dmitrijs2005/gophvault/internal/client/session"
	"github.com/dmitrijs2005/gophvault/internal/client/tokenstore"
	"github.com/dmitrijs2005/gophvault/internal/client/validation"
	"github.com/dmitrijs2005/gophvault/internal/logging"
)

// AuthAPI is the part of the API client used by AuthService.
type AuthAPI interface {
	Register(ctx context.Context, req client.RegisterRequest) (*client.AuthResponse, error)
	Login(ctx context.Context, req client.LoginRequest) (*client.AuthResponse, error)
}

// AuthService runs the register, login and logout flows.
//
// A successful register or login persists the issued token and then
// dispatches session.Authenticate. On any failure the session is left as
// it was.
type AuthService struct {
	api       AuthAPI
	store     *session.Store
	tokens    tokenstore.TokenStore
	validator *validation.Validator
	notifier  notify.Notifier
	log       logging.Logger
}

func NewAuthService(
	api AuthAPI,
	store *session.Store,
	tokens tokenstore.TokenStore,
	validator *validation.Validator,
	notifier notify.Notifier,
	log logging.Logger,
) *AuthService {
	return &AuthService{
		api:       api,
		store:     store,
		tokens:    tokens,
		validator: validator,
		notifier:  notifier,
		log:       log.With("component", "auth"),
	}
}

// Register validates form, creates the account and signs in.
func (s *AuthService) Register(ctx context.Context, form validation.RegisterForm) error {
	form.Normalize()
	return s.authenticate(ctx, "register", form, "Account created successfully", func() (*client.AuthResponse, error) {
		return s.api.Register(ctx, client.RegisterRequest{Name: form.Name, Email: form.Email, Password: form.Password})
	})
}

// Login validates form and signs in.
func (s *AuthService) Login(ctx context.Context, form validation.LoginForm) error {
	form.Normalize()
	return s.authenticate(ctx, "login", form, "Logged in successfully", func() (*client.AuthResponse, error) {
		return s.api.Login(ctx, client.LoginRequest{Email: form.Email, Password: form.Password})
	})
}

func (s *AuthService) authenticate(ctx context.Context, op string, form any, okMsg string, call func() (*client.AuthResponse, error)) error {
	if s.store.State().IsAuthenticated {
		s.notifier.Error("You are already logged in")
		return ErrAlreadyLoggedIn
	}

	if err := s.validator.Struct(form); err != nil {
		var ve *validation.ValidationError
		if errors.As(err, &ve) {
			s.notifier.Error(ve.First())
			return ve
		}
		return s.unexpected(ctx, op, err)
	}

	resp, err := call()
	if err != nil {
		if isAPIFailure(err) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			s.log.Warn(ctx, op+" rejected", "error", err)
			s.notifier.Error(apierr.Message(err))
			return err
		}
		return s.unexpected(ctx, op, err)
	}
	if resp.Token == "" {
		return s.unexpected(ctx, op, ErrEmptyToken)
	}

	if err := s.tokens.Set(ctx, resp.Token); err != nil {
		return s.unexpected(ctx, op, fmt.Errorf("persist token: %w", err))
	}

	if _, err := s.store.Dispatch(ctx, session.Authenticate{User: resp.User, Token: resp.Token}); err != nil {
		return s.unexpected(ctx, op, err)
	}

	s.log.Info(ctx, op+" succeeded", "user_id", resp.User.ID)
	s.notifier.Success(okMsg)
	return nil
}

// Logout ends the session and removes the persisted token. Logging out
// while logged out is a no-op transition.
func (s *AuthService) Logout(ctx context.Context) error {
	if _, err := s.store.Dispatch(ctx, session.Logout{}); err != nil {
		return s.unexpected(ctx, "logout", err)
	}
	s.notifier.Success("Logged out")
	return nil
}

func (s *AuthService) unexpected(ctx context.Context, op string, err error) error {
	s.log.Error(ctx, op+" failed", "error", err)
	s.notifier.Error(UnexpectedMessage)
	return fmt.Errorf("%w: %s: %w", ErrUnexpected, op, err)
}
