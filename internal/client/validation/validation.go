// Package validation checks submitted forms and reports failures keyed by
// field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/dmitrijs2005/gophvault/internal/client/models"
	"github.com/go-playground/validator/v10"
)

// ValidationError is returned when a form fails its schema. Fields maps a
// field name to its message; Order lists the failing fields in form order.
type ValidationError struct {
	Fields map[string]string
	Order  []string
}

func (e *ValidationError) Error() string {
	return e.First()
}

// First returns the message of the first failing field.
func (e *ValidationError) First() string {
	if len(e.Order) == 0 {
		return ""
	}
	return e.Fields[e.Order[0]]
}

// Field returns the message recorded for name, or "".
func (e *ValidationError) Field(name string) string {
	return e.Fields[name]
}

func (e *ValidationError) add(field, msg string) {
	if _, ok := e.Fields[field]; ok {
		return
	}
	e.Fields[field] = msg
	e.Order = append(e.Order, field)
}

// Validator validates forms declared with `validate` and `label` tags.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.Categories, fl.Field().String())
	})
	return &Validator{v: v}
}

// Struct validates form. It returns *ValidationError when a rule fails and a
// plain error when form is not a struct.
func (v *Validator) Struct(form any) error {
	err := v.v.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate form: %w", err)
	}

	out := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.add(fe.Field(), message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	label := fe.Field()
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "email":
		return "Invalid email address"
	case "url":
		return "Invalid URL"
	case "category":
		return "Category must be one of " + strings.Join(models.Categories, ", ")
	default:
		return label + " is invalid"
	}
}
