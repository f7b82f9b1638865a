package validation

import (
	"strings"

	"github.com/dmitrijs2005/gophvault/internal/client/models"
)

// RegisterForm is submitted to create an account.
type RegisterForm struct {
	Name     string `label:"Name" validate:"required,min=2"`
	Email    string `label:"Email" validate:"required,email"`
	Password string `label:"Password" validate:"required,min=6"`
}

// LoginForm is submitted to sign in.
type LoginForm struct {
	Email    string `label:"Email" validate:"required,email"`
	Password string `label:"Password" validate:"required"`
}

// EntryForm is submitted to add or edit a vault entry.
type EntryForm struct {
	Name     string `label:"Name" validate:"required"`
	Username string `label:"Username" validate:"required"`
	Password string `label:"Password" validate:"required"`
	URL      string `label:"URL" validate:"omitempty,url"`
	Email    string `label:"Email" validate:"omitempty,email"`
	Category string `label:"Category" validate:"omitempty,category"`
	Notes    string `label:"Notes"`
}

// Normalize trims surrounding whitespace from every field except the
// password.
func (f *RegisterForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
}

func (f *LoginForm) Normalize() {
	f.Email = strings.TrimSpace(f.Email)
}

func (f *EntryForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Username = strings.TrimSpace(f.Username)
	f.URL = strings.TrimSpace(f.URL)
	f.Email = strings.TrimSpace(f.Email)
	f.Category = strings.TrimSpace(f.Category)
	f.Notes = strings.TrimSpace(f.Notes)
}

// Entry copies the form into a new entry without id or timestamps.
func (f EntryForm) Entry() models.Entry {
	return models.Entry{
		Name:     f.Name,
		Username: f.Username,
		Password: f.Password,
		URL:      f.URL,
		Email:    f.Email,
		Category: f.Category,
		Notes:    f.Notes,
	}
}
