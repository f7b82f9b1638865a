// Package client talks to the vault HTTP API.
//
// # Overview
//
// The package provides:
//  1. TokenBinding, an http.RoundTripper shared by every outbound request of
//     the process. Bind replaces the bearer credential attached to later
//     requests; binding the empty string stops sending one.
//  2. APIClient, a JSON client for the auth endpoints:
//     POST /v1/auth/register, POST /v1/auth/login and GET /v1/auth/me.
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError carrying the status and the
// "message"/"error" fields of the body. 401 and 403 also match
// ErrUnauthorized with errors.Is; transport failures match ErrUnavailable.
package client
