package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/recruit/internal/client/api"
	"github.com/dmitrijs2005/recruit/internal/client/guard"
	"github.com/dmitrijs2005/recruit/internal/client/models"
	"github.com/dmitrijs2005/recruit/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_AnonymousIsSentToLogin(t *testing.T) {
	be := &fakeBackend{}
	a, out := newTestApp(t, &fakeStore{}, be, "")

	require.NoError(t, a.execute(context.Background(), "applications", nil))

	assert.Equal(t, guard.RouteLogin, a.nav.current())
	assert.Contains(t, out.String(), "Please log in to use applications.")
}

func TestExecute_WrongRoleIsSentToRoot(t *testing.T) {
	st := &fakeStore{}
	st.signIn(models.User{ID: "1", Role: models.RoleCandidate}, "tok")
	a, out := newTestApp(t, st, &fakeBackend{}, "")
	a.nav.enter(context.Background(), "/jobs")

	require.NoError(t, a.execute(context.Background(), "post-job", nil))

	assert.Equal(t, guard.RouteRoot, a.nav.current())
	assert.Contains(t, out.String(), "post-job is not available for your account.")
}

func TestExecute_PendingWhileLoading(t *testing.T) {
	st := &fakeStore{}
	a, out := newTestApp(t, st, &fakeBackend{}, "")
	st.initialized = false

	require.NoError(t, a.execute(context.Background(), "whoami", nil))

	assert.Equal(t, guard.RouteRoot, a.nav.current())
	assert.Contains(t, out.String(), "still loading")
}

func TestExecute_AllowedRunsOnItsRoute(t *testing.T) {
	st := &fakeStore{}
	st.signIn(models.User{ID: "1", Role: models.RoleCandidate}, "tok")
	score := 0.75
	be := &fakeBackend{apps: []models.Application{{ID: "a1", JobTitle: "Go Dev", Status: models.ApplicationShortlisted, Score: &score}}}
	a, out := newTestApp(t, st, be, "")

	require.NoError(t, a.execute(context.Background(), "applications", nil))

	assert.Equal(t, "/candidate/applications", a.nav.current())
	assert.Contains(t, out.String(), "Go Dev")
	assert.Contains(t, out.String(), "shortlisted")
	assert.Contains(t, out.String(), "0.8")
}

func TestExecute_UnknownCommand(t *testing.T) {
	a, _ := newTestApp(t, &fakeStore{}, &fakeBackend{}, "")

	err := a.execute(context.Background(), "fly", nil)
	require.ErrorIs(t, err, errUnknownCommand)
	assert.Equal(t, "Unknown command: fly", describeError(err))
}

func TestExecute_NavigationCancelsPreviousPage(t *testing.T) {
	var pageCtx context.Context
	be := &fakeBackend{onRequest: func(ctx context.Context) {
		if pageCtx == nil {
			pageCtx = ctx
		}
	}}
	a, _ := newTestApp(t, &fakeStore{}, be, "")

	require.NoError(t, a.execute(context.Background(), "jobs", nil))
	require.NotNil(t, pageCtx)
	assert.NoError(t, pageCtx.Err())

	require.NoError(t, a.execute(context.Background(), "home", nil))
	assert.ErrorIs(t, pageCtx.Err(), context.Canceled)
}

func TestSessionExpired_MovesToLogin(t *testing.T) {
	st := &fakeStore{}
	st.signIn(models.User{ID: "1", Role: models.RoleCandidate}, "tok")
	be := &fakeBackend{err: &api.Error{Status: 401, Message: "Token expired"}}
	a, out := newTestApp(t, st, be, "")
	// What the HTTP client does on a 401.
	be.onRequest = func(ctx context.Context) { a.sessionExpired(ctx) }

	err := a.execute(context.Background(), "scores", nil)
	require.Error(t, err)

	assert.Equal(t, 1, st.expires)
	assert.Equal(t, guard.RouteLogin, a.nav.current())
	assert.Contains(t, out.String(), "Your session has ended. Please log in again.")
	assert.Equal(t, "Token expired", describeError(err))
}

func TestSessionExpired_RejectedLoginShowsNoNotice(t *testing.T) {
	stubPassword(t, "wrong")
	st := &fakeStore{loginErr: &api.Error{Status: 401, Message: "Invalid email or password"}}
	a, out := newTestApp(t, st, &fakeBackend{}, "")
	st.onLogin = func(ctx context.Context) { a.sessionExpired(ctx) }

	err := a.execute(context.Background(), "login", []string{"a@b.com"})
	require.Error(t, err)

	assert.Equal(t, 1, st.expires)
	assert.Equal(t, guard.RouteLogin, a.nav.current())
	assert.NotContains(t, out.String(), "Your session has ended")
	assert.Equal(t, "Invalid email or password", describeError(err))
}

func TestHelpLines_FollowRole(t *testing.T) {
	st := &fakeStore{}
	a, _ := newTestApp(t, st, &fakeBackend{}, "")

	anon := fmt.Sprint(a.helpLines())
	assert.Contains(t, anon, "login")
	assert.NotContains(t, anon, "whoami")

	st.signIn(models.User{ID: "1", Role: models.RoleEmployer}, "tok")
	emp := fmt.Sprint(a.helpLines())
	assert.Contains(t, emp, "post-job")
	assert.Contains(t, emp, "whoami")
	assert.NotContains(t, emp, "profile-edit")
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&session.Error{Message: "Invalid credentials"}, "Invalid credentials"},
		{&usageError{usage: "job <id>"}, "Usage: job <id>"},
		{context.Canceled, "Cancelled."},
		{fmt.Errorf("x: %w", context.DeadlineExceeded), "The request timed out."},
		{fmt.Errorf("%w: dial tcp", api.ErrUnavailable), "Server unavailable, please try again later."},
		{&api.Error{Status: 401}, "Not authorized."},
		{&api.Error{Status: 404, Message: "Job not found"}, "Job not found"},
		{errors.New("disk on fire"), "Error: disk on fire"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describeError(tt.err))
	}
}
