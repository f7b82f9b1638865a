package common

// AuthTokenKey is the fixed storage key under which the bearer token is
// persisted. Every token store backend uses it.
const AuthTokenKey = "auth_token"

// AppName names the command, its config directory and keyring service.
const AppName = "gophvault"
