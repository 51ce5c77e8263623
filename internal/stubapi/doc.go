// Package stubapi is an in-memory development backend for the recruit
// client. It implements the REST surface the client talks to closely enough
// for local runs and end-to-end tests.
//
// It does not parse resumes or score candidates: the "parsed" draft is
// derived from the submitted email with a fixed confidence of 0.5, and every
// application gets the same placeholder score. Registration sessions are
// single-use; a second confirm answers 410 Gone.
//
// All responses use the {success, message, data} envelope. Routes live under
// /api. Passwords are hashed with bcrypt and tokens are HS256 JWTs.
package stubapi
