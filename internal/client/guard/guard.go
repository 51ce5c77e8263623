// Package guard decides whether a protected page may be shown.
package guard

import (
	"slices"

	"github.com/dmitrijs2005/recruit/internal/client/models"
)

const (
	RouteLogin = "/login"
	RouteRoot  = "/"
)

type Outcome int

const (
	// Pending means the session is still loading; show a placeholder.
	Pending Outcome = iota
	// Redirect means navigate to Decision.Target instead of rendering.
	Redirect
	// Allow means render the page.
	Allow
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Redirect:
		return "redirect"
	case Allow:
		return "allow"
	default:
		return "unknown"
	}
}

type Decision struct {
	Outcome Outcome
	Target  string
}

// State is what the guard needs to know about the session.
type State struct {
	Loading       bool
	Authenticated bool
	Role          models.Role
}

// Check applies the rules in order: loading waits, anonymous users go to the
// login page, users whose role is not allowed go to the root page. An empty
// allowed set admits any authenticated user.
func Check(st State, allowed ...models.Role) Decision {
	switch {
	case st.Loading:
		return Decision{Outcome: Pending}
	case !st.Authenticated:
		return Decision{Outcome: Redirect, Target: RouteLogin}
	case len(allowed) > 0 && !slices.Contains(allowed, st.Role):
		return Decision{Outcome: Redirect, Target: RouteRoot}
	default:
		return Decision{Outcome: Allow}
	}
}
