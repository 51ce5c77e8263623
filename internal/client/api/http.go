package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/recruit/internal/logging"
)

// maxErrorBody bounds how much of a non-JSON error body is kept as message.
const maxErrorBody = 512

// Options tune the HTTP pipeline. The zero value is valid.
type Options struct {
	// Timeout bounds a whole request. Zero leaves it to the transport.
	Timeout time.Duration
	// Transport is the base transport; nil means http.DefaultTransport.
	Transport http.RoundTripper
	Logger    logging.Logger
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
	expiry  *expiryTransport
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the backend rooted at baseURL.
func NewHTTPClient(baseURL string, creds Credentials, opts Options) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}

	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	expiry := &expiryTransport{next: base, creds: creds, log: log}
	return &HTTPClient{
		baseURL: u.String(),
		http: &http.Client{
			Transport: &bearerTransport{next: expiry, creds: creds, log: log},
			Timeout:   opts.Timeout,
		},
		expiry: expiry,
		log:    log,
	}, nil
}

// OnUnauthorized registers the hook run after a 401 has cleared the stored
// session. It replaces any previous hook.
func (c *HTTPClient) OnUnauthorized(fn func(ctx context.Context)) {
	c.expiry.setHook(fn)
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    T      `json:"data"`
}

// endpoint expects path segments to be escaped already.
func (c *HTTPClient) endpoint(path string, query url.Values) string {
	s := c.baseURL + path
	if len(query) > 0 {
		s += "?" + query.Encode()
	}
	return s
}

func (c *HTTPClient) newJSONRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), r)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// call sends a JSON request and decodes the envelope's data into T.
func call[T any](ctx context.Context, c *HTTPClient, method, path string, query url.Values, body any) (T, error) {
	var zero T
	req, err := c.newJSONRequest(ctx, method, path, query, body)
	if err != nil {
		return zero, err
	}
	return send[T](c, req)
}

func send[T any](c *HTTPClient, req *http.Request) (T, error) {
	var zero T
	ctx := req.Context()
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, c.mapTransportError(ctx, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "api call", "method", req.Method, "path", req.URL.Path,
		"status", resp.StatusCode, "elapsed", time.Since(started))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, c.mapTransportError(ctx, err)
	}

	if resp.StatusCode < 300 && len(bytes.TrimSpace(raw)) == 0 {
		return zero, nil
	}

	var env envelope[T]
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= 300 {
		msg := ""
		if decodeErr == nil {
			msg = firstNonEmpty(env.Message, env.Error)
		} else if !looksLikeHTML(raw) {
			msg = truncate(strings.TrimSpace(string(raw)), maxErrorBody)
		}
		return zero, &Error{Status: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return zero, fmt.Errorf("%w: %v", ErrBadResponse, decodeErr)
	}
	if !env.Success {
		return zero, &Error{Status: resp.StatusCode, Message: firstNonEmpty(env.Message, env.Error)}
	}
	return env.Data, nil
}

func (c *HTTPClient) mapTransportError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	c.log.Warn(ctx, "backend unreachable", "error", err)
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func looksLikeHTML(b []byte) bool {
	t := bytes.TrimSpace(b)
	return bytes.HasPrefix(t, []byte("<"))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// IsTransport reports whether err means the backend was never reached.
func IsTransport(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
