// Package config loads runtime configuration for the vault client.
//
// Sources & precedence
//
//  1. Optional TOML file selected with --config / -c.
//  2. Environment variables prefixed with GOPHVAULT_; a double underscore
//     nests keys (GOPHVAULT_TOKEN__STORAGE sets token.storage).
//  3. Command-line flags; a double dash nests keys (--token--storage).
//  4. Built-in defaults for every field still unset (see ApplyDefaults).
//
// The result is checked with Validate before use.
//
// # TOML example
//
//	server_url      = "https://vault.example.com"
//	request_timeout = "10s"
//	page_size       = 20
//
//	[token]
//	storage = "keyring"
package config
