package cli

import (
	"context"
	"sync"
)

// navigator tracks the current route and the context of the page shown on
// it. Entering a page cancels the previous page's context.
type navigator struct {
	mu      sync.Mutex
	route   string
	cancel  context.CancelFunc
	pending string
	notice  string
}

func newNavigator(start string) *navigator {
	return &navigator{route: start}
}

func (n *navigator) enter(parent context.Context, route string) context.Context {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.cancel != nil {
		n.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	n.cancel = cancel
	n.route = route
	return ctx
}

// redirect schedules navigation to route. It is safe to call from inside a
// running page (the 401 hook does); the move happens on settle.
func (n *navigator) redirect(route, notice string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = route
	if notice != "" {
		n.notice = notice
	}
}

// settle applies a scheduled redirect, cancelling the page that was left,
// and returns the notice to show, if any.
func (n *navigator) settle() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.pending == "" {
		return ""
	}
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
	n.route = n.pending
	notice := n.notice
	n.pending, n.notice = "", ""
	return notice
}

func (n *navigator) leave() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
}

func (n *navigator) current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.route
}
