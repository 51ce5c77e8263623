// Package session owns "who is logged in" for the recruit client.
//
// Store is the single source of truth for the authenticated user and bearer
// token and the only writer of the durable session (apart from the HTTP
// client clearing it on a 401). It is constructed explicitly and started
// with Init, which rehydrates the session from storage:
//
//	store := session.NewStore(apiClient, storage.NewSessionStorage(db), logger)
//	store.Init(ctx)
//	if err := store.Login(ctx, email, password); err != nil {
//	    fmt.Println(err) // backend message or a generic fallback
//	}
//
// # Concurrency
//
// Each session-changing call takes a generation ticket when it starts. Only
// the most recent ticket may commit; an older call whose response arrives
// late returns ErrSuperseded and leaves the session untouched. Logout and
// Expire advance the generation too, so an in-flight login cannot bring a
// cleared session back. A call whose context is done by the time the
// response arrives does not commit either.
//
// Durable writes happen only after the backend response is accepted, and in
// one transaction, so an interrupted call leaves the previous state intact.
package session
