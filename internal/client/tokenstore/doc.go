// Package tokenstore persists the single bearer token of the client so that
// it survives a restart.
//
// Every backend stores the token under the fixed key common.AuthTokenKey:
//   - DBStore: the metadata table of the local SQLite database (default)
//   - FileStore: a 0600 file written atomically (temp file + rename)
//   - KeyringStore: the OS credential store (Keychain, Credential Manager, Secret Service)
//
// No expiry is managed here; whatever the backend keeps is returned as is.
package tokenstore
