// Package api is the client for the recruiting backend's REST surface.
//
// # Overview
//
// HTTPClient dispatches JSON (and one multipart) request per operation and
// decodes the backend envelope
//
//	{"success": bool, "message": string, "data": ...}
//
// Two cross-cutting behaviours are layered over the transport as
// http.RoundTripper wrappers:
//
//   - bearerTransport reads the token from durable storage before every
//     request and sets "Authorization: Bearer <token>" when one exists.
//   - expiryTransport reacts to any 401 response by clearing the stored
//     session and calling the OnUnauthorized hook, whichever endpoint
//     produced it. There is no opt-out and no refresh attempt.
//
// # Errors
//
// Backend rejections are returned as *Error carrying the status and the
// backend message; errors.Is matches ErrUnauthorized, ErrForbidden and
// ErrNotFound against it. Transport failures wrap ErrUnavailable.
package api
