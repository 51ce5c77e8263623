// Package cli provides the interactive recruit command-line client.
//
// It wires configuration, the local session database, the HTTP API client
// and the session store, then runs a REPL. Every command is a page with a
// route; protected pages go through guard.Check before they run, and each
// page runs under its own context that is cancelled when the user navigates
// away or presses Ctrl-C.
//
// Pages:
//   - public: login, register, register-resume, jobs, job, home
//   - any signed-in user: whoami, logout, settings
//   - candidates: apply, applications, profile, profile-edit, scores
//   - employers: post-job, edit-job, delete-job, candidates, set-status,
//     export-candidates
//
// A 401 from any request ends the session and moves the REPL to /login.
package cli
