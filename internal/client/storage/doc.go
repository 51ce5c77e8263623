// Package storage is the client's durable session mirror.
//
// The authenticated session lives under two keys of the local metadata
// table:
//
//	recruit_auth_token  raw bearer token
//	recruit_user        user JSON as the backend sent it, patched locally
//
// Both keys are always written together and removed together, each inside a
// single SQLite transaction, so no persisted state ever holds one without the
// other. SessionStorage is read once at startup by the session store, read
// per request by the HTTP client (token only), and cleared by either on
// logout or authorization failure.
package storage
