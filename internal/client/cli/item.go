package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/client/models"
	"github.com/dmitrijs2005/gophvault/internal/client/validation"
)

var getMultiline = GetMultiline

const maskedPassword = "********"

// Show prints one entry. The password is masked; use copy to retrieve it.
func (a *App) Show(ctx context.Context, id string) error {
	e, err := a.entries.Get(ctx, id)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	row := func(k, v string) {
		if v != "" {
			fmt.Fprintf(tw, "%s:\t%s\n", k, v)
		}
	}
	row("ID", e.ID)
	row("Name", e.Name)
	row("Username", e.Username)
	row("Email", e.Email)
	row("Password", maskedPassword)
	row("URL", e.URL)
	row("Category", e.Category)
	row("Created", e.CreatedAt.Local().Format(time.DateTime))
	row("Updated", e.UpdatedAt.Local().Format(time.DateTime))
	if err := tw.Flush(); err != nil {
		return err
	}
	if e.Notes != "" {
		fmt.Fprintf(a.out, "Notes:\n%s\n", e.Notes)
	}
	return nil
}

// inputEntry prompts for every entry field. Empty answers keep the values
// of current, so the same prompts serve add and edit.
func (a *App) inputEntry(current models.Entry) (validation.EntryForm, error) {
	var (
		f   validation.EntryForm
		err error
	)
	if f.Name, err = GetWithDefault(a.reader, "Name", current.Name, a.out); err != nil {
		return f, err
	}
	if f.Username, err = GetWithDefault(a.reader, "Username", current.Username, a.out); err != nil {
		return f, err
	}

	prompt := "Password"
	if current.Password != "" {
		prompt += " (empty keeps the current one)"
	}
	if f.Password, err = getPassword(a.reader, a.in, prompt, a.out); err != nil {
		return f, err
	}
	if f.Password == "" {
		f.Password = current.Password
	}

	if f.URL, err = GetWithDefault(a.reader, "URL (optional)", current.URL, a.out); err != nil {
		return f, err
	}
	if f.Email, err = GetWithDefault(a.reader, "Email (optional)", current.Email, a.out); err != nil {
		return f, err
	}
	categoryPrompt := "Category (optional: " + strings.Join(models.Categories, ", ") + ")"
	if f.Category, err = GetWithDefault(a.reader, categoryPrompt, current.Category, a.out); err != nil {
		return f, err
	}
	f.Category = canonicalCategory(f.Category)

	notesPrompt := "Notes (optional)"
	if current.Notes != "" {
		notesPrompt += ", empty keeps the current notes"
	}
	if f.Notes, err = getMultiline(a.reader, notesPrompt, a.out); err != nil {
		return f, err
	}
	if f.Notes == "" {
		f.Notes = current.Notes
	}
	return f, nil
}

func canonicalCategory(s string) string {
	for _, c := range models.Categories {
		if strings.EqualFold(c, strings.TrimSpace(s)) {
			return c
		}
	}
	return s
}

// Add prompts for a new entry and stores it.
func (a *App) Add(ctx context.Context) error {
	form, err := a.inputEntry(models.Entry{})
	if err != nil {
		return err
	}
	_, err = a.entries.Add(ctx, form)
	return err
}

// Edit prompts for new values of the entry with id.
func (a *App) Edit(ctx context.Context, id string) error {
	current, err := a.entries.Get(ctx, id)
	if err != nil {
		return err
	}
	form, err := a.inputEntry(current)
	if err != nil {
		return err
	}
	_, err = a.entries.Update(ctx, id, form)
	return err
}

// Delete asks for confirmation and removes the entry with id.
func (a *App) Delete(ctx context.Context, id string) error {
	e, err := a.entries.Get(ctx, id)
	if err != nil {
		return err
	}
	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete %q? (y/N)", e.Name), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	return a.entries.Delete(ctx, id)
}

// Copy puts a field of the entry with id on the clipboard.
func (a *App) Copy(ctx context.Context, id, field string) error {
	return a.entries.Copy(ctx, id, field)
}
