package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/dmitrijs2005/gophvault/internal/client/models"
	"github.com/dmitrijs2005/gophvault/internal/client/notify"
	"github.com/dmitrijs2005/gophvault/internal/client/repositories/entries"
	"github.com/dmitrijs2005/gophvault/internal/client/validation"
	"github.com/dmitrijs2005/gophvault/internal/client/vault"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/logging"
)

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// SystemClipboard is backed by atotto/clipboard.
var SystemClipboard Clipboard = systemClipboard{}

// CopyFields lists the entry fields that can be copied, keyed by the name
// accepted on the command line.
var CopyFields = map[string]string{
	"username": "Username",
	"password": "Password",
	"url":      "URL",
	"email":    "Email",
}

// EntryService manages vault entries and keeps the query engine in sync
// with the repository.
type EntryService struct {
	repo      entries.Repository
	engine    *vault.Engine
	validator *validation.Validator
	notifier  notify.Notifier
	clip      Clipboard
	log       logging.Logger
}

func NewEntryService(
	repo entries.Repository,
	engine *vault.Engine,
	validator *validation.Validator,
	notifier notify.Notifier,
	clip Clipboard,
	log logging.Logger,
) *EntryService {
	return &EntryService{
		repo:      repo,
		engine:    engine,
		validator: validator,
		notifier:  notifier,
		clip:      clip,
		log:       log.With("component", "entries"),
	}
}

// Refresh reloads the engine from the repository.
func (s *EntryService) Refresh(ctx context.Context) error {
	if err := s.engine.Reload(ctx); err != nil {
		s.notifier.Error("Could not load your vault")
		return err
	}
	return nil
}

// Add validates form and stores a new entry.
func (s *EntryService) Add(ctx context.Context, form validation.EntryForm) (models.Entry, error) {
	form.Normalize()
	if err := s.validate(form); err != nil {
		return models.Entry{}, err
	}

	created, err := s.repo.Create(ctx, form.Entry())
	if err != nil {
		return models.Entry{}, s.fail(ctx, "add entry", err)
	}
	if err := s.Refresh(ctx); err != nil {
		return created, err
	}
	s.notifier.Success(fmt.Sprintf("%s added", created.Name))
	return created, nil
}

// Update validates form and replaces the entry with id.
func (s *EntryService) Update(ctx context.Context, id string, form validation.EntryForm) (models.Entry, error) {
	form.Normalize()
	if err := s.validate(form); err != nil {
		return models.Entry{}, err
	}

	e := form.Entry()
	e.ID = id
	updated, err := s.repo.Update(ctx, e)
	if err != nil {
		return models.Entry{}, s.fail(ctx, "update entry", err)
	}
	if err := s.Refresh(ctx); err != nil {
		return updated, err
	}
	s.notifier.Success(fmt.Sprintf("%s updated", updated.Name))
	return updated, nil
}

// Delete removes the entry with id.
func (s *EntryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(ctx, "delete entry", err)
	}
	if err := s.Refresh(ctx); err != nil {
		return err
	}
	s.notifier.Success("Entry deleted")
	return nil
}

// Get returns the entry with id.
func (s *EntryService) Get(ctx context.Context, id string) (models.Entry, error) {
	e, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Entry{}, s.fail(ctx, "get entry", err)
	}
	return e, nil
}

// Copy puts one field of the entry with id on the clipboard.
func (s *EntryService) Copy(ctx context.Context, id, field string) error {
	label, ok := CopyFields[strings.ToLower(field)]
	if !ok {
		s.notifier.Error(fmt.Sprintf("Cannot copy %q, choose one of username, password, url, email", field))
		return fmt.Errorf("%w: %s", ErrUnknownCopyField, field)
	}

	e, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	var value string
	switch label {
	case "Username":
		value = e.Username
	case "Password":
		value = e.Password
	case "URL":
		value = e.URL
	case "Email":
		value = e.Email
	}
	if value == "" {
		s.notifier.Error(fmt.Sprintf("%s is empty for %s", label, e.Name))
		return fmt.Errorf("%w: %s", ErrNothingToCopy, label)
	}

	if err := s.clip.WriteAll(value); err != nil {
		return s.fail(ctx, "copy to clipboard", err)
	}
	s.notifier.Success(label + " copied to clipboard!")
	return nil
}

func (s *EntryService) validate(form validation.EntryForm) error {
	err := s.validator.Struct(form)
	if err == nil {
		return nil
	}
	var ve *validation.ValidationError
	if errors.As(err, &ve) {
		s.notifier.Error(ve.First())
		return ve
	}
	s.notifier.Error(UnexpectedMessage)
	return fmt.Errorf("%w: %w", ErrUnexpected, err)
}

func (s *EntryService) fail(ctx context.Context, op string, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		s.notifier.Error("Entry not found")
		return err
	}
	s.log.Error(ctx, op+" failed", "error", err)
	s.notifier.Error(UnexpectedMessage)
	return fmt.Errorf("%w: %s: %w", ErrUnexpected, op, err)
}
