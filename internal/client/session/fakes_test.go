package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophvault/internal/client/models"
)

type fakeTokens struct {
	token     string
	has       bool
	getErr    error
	removeErr error

	removeCalls int
}

func (f *fakeTokens) Get(context.Context) (string, bool, error) {
	return f.token, f.has, f.getErr
}

func (f *fakeTokens) Set(_ context.Context, token string) error {
	f.token, f.has = token, true
	return nil
}

func (f *fakeTokens) Remove(context.Context) error {
	f.removeCalls++
	if f.removeErr != nil {
		return f.removeErr
	}
	f.token, f.has = "", false
	return nil
}

type fakeBinder struct {
	mu    sync.Mutex
	binds []string
}

func (f *fakeBinder) Bind(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.binds = append(f.binds, token)
}

func (f *fakeBinder) last() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.binds) == 0 {
		return "", false
	}
	return f.binds[len(f.binds)-1], true
}

type fakeFetcher struct {
	user  models.User
	err   error
	calls int
	hook  func(ctx context.Context)
}

func (f *fakeFetcher) Me(ctx context.Context) (models.User, error) {
	f.calls++
	if f.hook != nil {
		f.hook(ctx)
	}
	return f.user, f.err
}

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (r *recordingNotifier) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recordingNotifier) Error(msg string)   { r.errors = append(r.errors, msg) }
