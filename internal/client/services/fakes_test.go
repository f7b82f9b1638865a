package services

import (
	"context"

	"github.com/dmitrijs2005/gophvault/internal/client/client"
)

type fakeAuthAPI struct {
	resp *client.AuthResponse
	err  error

	registerCalls int
	loginCalls    int
	lastRegister  client.RegisterRequest
	lastLogin     client.LoginRequest
}

func (f *fakeAuthAPI) Register(_ context.Context, req client.RegisterRequest) (*client.AuthResponse, error) {
	f.registerCalls++
	f.lastRegister = req
	return f.resp, f.err
}

func (f *fakeAuthAPI) Login(_ context.Context, req client.LoginRequest) (*client.AuthResponse, error) {
	f.loginCalls++
	f.lastLogin = req
	return f.resp, f.err
}

type fakeTokens struct {
	token  string
	has    bool
	setErr error
}

func (f *fakeTokens) Get(context.Context) (string, bool, error) { return f.token, f.has, nil }

func (f *fakeTokens) Set(_ context.Context, token string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.token, f.has = token, true
	return nil
}

func (f *fakeTokens) Remove(context.Context) error {
	f.token, f.has = "", false
	return nil
}

type fakeBinder struct{ token string }

func (f *fakeBinder) Bind(token string) { f.token = token }

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (r *recordingNotifier) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recordingNotifier) Error(msg string)   { r.errors = append(r.errors, msg) }

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}
