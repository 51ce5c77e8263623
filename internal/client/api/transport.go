package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/dmitrijs2005/recruit/internal/logging"
	"github.com/google/uuid"
)

const (
	AuthorizationHeader = "Authorization"
	RequestIDHeader     = "X-Request-ID"
)

// Credentials is the durable session as seen by the HTTP pipeline: the token
// is read on every request and the whole session is cleared on a 401.
type Credentials interface {
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// bearerTransport attaches the stored bearer token and a request id.
type bearerTransport struct {
	next  http.RoundTripper
	creds Credentials
	log   logging.Logger
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	out := req.Clone(ctx)
	out.Header.Del(AuthorizationHeader)

	token, err := t.creds.Token(ctx)
	if err != nil {
		t.log.Warn(ctx, "sending request unauthenticated: token unreadable", "error", err)
		token = ""
	}
	if token != "" {
		out.Header.Set(AuthorizationHeader, "Bearer "+token)
	}
	if out.Header.Get(RequestIDHeader) == "" {
		out.Header.Set(RequestIDHeader, uuid.NewString())
	}

	return t.next.RoundTrip(out)
}

// expiryTransport treats every 401 as an invalid session.
type expiryTransport struct {
	next  http.RoundTripper
	creds Credentials
	log   logging.Logger

	mu             sync.RWMutex
	onUnauthorized func(ctx context.Context)
}

func (t *expiryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		t.expire(req)
	}
	return resp, nil
}

func (t *expiryTransport) expire(req *http.Request) {
	// The caller may already be cancelling; the session must still go.
	ctx := context.WithoutCancel(req.Context())

	t.log.Warn(ctx, "session rejected by backend, logging out",
		"method", req.Method, "path", req.URL.Path, "request_id", req.Header.Get(RequestIDHeader))

	if err := t.creds.Clear(ctx); err != nil {
		t.log.Error(ctx, "failed to clear stored session", "error", err)
	}

	t.mu.RLock()
	hook := t.onUnauthorized
	t.mu.RUnlock()
	if hook != nil {
		hook(ctx)
	}
}

func (t *expiryTransport) setHook(fn func(ctx context.Context)) {
	t.mu.Lock()
	t.onUnauthorized = fn
	t.mu.Unlock()
}
