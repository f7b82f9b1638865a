package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Category(ctx context.Context, name string) error
	Page(ctx context.Context, n string) error
	PageSize(ctx context.Context, n string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Copy(ctx context.Context, id, field string) error
}

const (
	guestHelp = "Available commands: register, login, status, help, exit"
	userHelp  = "Available commands: list, search <text>, category <name|all>, page <n>, pagesize <n>, " +
		"next, prev, show <id>, add, edit <id>, delete <id>, copy <id> <field>, status, logout, help, exit"
)

// vaultCommands need an authenticated session.
var vaultCommands = map[string]bool{
	"l": true, "list": true, "search": true, "category": true, "page": true, "pagesize": true,
	"next": true, "prev": true, "show": true, "add": true, "edit": true, "delete": true, "copy": true,
}

// runREPL starts a simple read–eval–print loop for the vault client.
//
// It reads a line from reader, writes prompts and messages to w, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF, when ctx is done, or
// when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures through the notifier.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	say := func(args ...any) { fmt.Fprintln(w, args...) }

	for ctx.Err() == nil {
		say(fmt.Sprintf("gv (%s)> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if vaultCommands[cmd] && !a.isLoggedIn() {
			say("Please log in first")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				say(userHelp)
			} else {
				say(guestHelp)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "status", "whoami":
			_ = a.Status(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "category":
			if len(args) == 0 {
				say("Usage: category <name|all>")
				continue
			}
			_ = a.Category(ctx, strings.Join(args, " "))

		case "page":
			if len(args) != 1 {
				say("Usage: page <n>")
				continue
			}
			_ = a.Page(ctx, args[0])

		case "pagesize":
			if len(args) != 1 {
				say("Usage: pagesize <n>")
				continue
			}
			_ = a.PageSize(ctx, args[0])

		case "next":
			_ = a.Next(ctx)

		case "prev":
			_ = a.Prev(ctx)

		case "show":
			if len(args) != 1 {
				say("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "add":
			_ = a.Add(ctx)

		case "edit":
			if len(args) != 1 {
				say("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "delete":
			if len(args) != 1 {
				say("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "copy":
			if len(args) != 2 {
				say("Usage: copy <id> <username|password|url|email>")
				continue
			}
			_ = a.Copy(ctx, args[0], args[1])

		case "exit", "quit":
			say("Bye!")
			return

		default:
			say("Unknown command:", cmd)
		}

		if errors.Is(err, io.EOF) {
			return
		}
	}
}
