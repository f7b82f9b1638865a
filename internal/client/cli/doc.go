// Package cli provides the interactive vault command-line client.
//
// It wires configuration, the local SQLite database, the token store, the
// shared HTTP client and the session store, restores the previous session
// and then runs a REPL until the user exits.
//
// Key features:
//   - Register / Login / Logout / Status
//   - List the vault with search, category filter and pagination
//   - Show / Add / Edit / Delete entries
//   - Copy a field of an entry to the clipboard
//
// Execute builds the root command; App.Run blocks until the user exits.
package cli
