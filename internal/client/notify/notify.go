// Package notify delivers one-line success and failure notices to the user.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Notifier is the error channel of the client: every surfaced error and
// success notice passes through it exactly once.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
)

// Terminal writes styled notices to w.
type Terminal struct {
	mu sync.Mutex
	w  io.Writer
}

var _ Notifier = (*Terminal)(nil)

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

func (t *Terminal) Success(msg string) {
	t.write(successStyle.Render("✓") + " " + msg)
}

func (t *Terminal) Error(msg string) {
	t.write(errorStyle.Render("✗") + " " + msg)
}

// Info writes a muted status line such as a loading indicator.
func (t *Terminal) Info(msg string) {
	t.write(infoStyle.Render(msg))
}

func (t *Terminal) write(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintln(t.w, line)
}
