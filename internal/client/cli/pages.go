package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recruit/internal/client/api"
	"github.com/dmitrijs2005/recruit/internal/client/guard"
	"github.com/dmitrijs2005/recruit/internal/client/models"
	"github.com/dmitrijs2005/recruit/internal/client/session"
)

var errUnknownCommand = errors.New("unknown command")

// usageError asks the REPL to print the page's usage line.
type usageError struct {
	usage string
}

func (e *usageError) Error() string { return "usage: " + e.usage }

type page struct {
	name    string
	route   string
	usage   string
	summary string
	// protected pages require a session; roles narrows them further.
	protected bool
	roles     []models.Role
	run       func(ctx context.Context, args []string) error
}

var (
	candidateOnly = []models.Role{models.RoleCandidate}
	employerOnly  = []models.Role{models.RoleEmployer}
)

func (a *App) registerPages() {
	pages := []page{
		{name: "home", route: guard.RouteRoot, usage: "home", summary: "show where to go next", run: a.home},
		{name: "login", route: guard.RouteLogin, usage: "login [email]", summary: "sign in", run: a.login},
		{name: "register", route: "/register", usage: "register", summary: "create an account", run: a.register},
		{name: "register-resume", route: "/register/resume", usage: "register-resume [file]", summary: "create a candidate account from a resume", run: a.registerResume},
		{name: "jobs", route: "/jobs", usage: "jobs [-location L] [-type T] [search words]", summary: "browse open jobs", run: a.jobs},
		{name: "job", route: "/jobs/view", usage: "job <id>", summary: "show one job", run: a.job},

		{name: "whoami", route: "/account", usage: "whoami", summary: "show the signed-in user", protected: true, run: a.whoami},
		{name: "logout", route: "/account", usage: "logout", summary: "sign out", protected: true, run: a.logout},
		{name: "settings", route: "/settings", usage: "settings", summary: "edit the user stored on this device", protected: true, run: a.settings},

		{name: "apply", route: "/candidate/apply", usage: "apply <job id>", summary: "apply to a job", protected: true, roles: candidateOnly, run: a.apply},
		{name: "applications", route: "/candidate/applications", usage: "applications", summary: "list your applications", protected: true, roles: candidateOnly, run: a.applications},
		{name: "profile", route: "/candidate/profile", usage: "profile", summary: "show your profile", protected: true, roles: candidateOnly, run: a.profile},
		{name: "profile-edit", route: "/candidate/profile/edit", usage: "profile-edit", summary: "edit your profile", protected: true, roles: candidateOnly, run: a.profileEdit},
		{name: "scores", route: "/candidate/scores", usage: "scores", summary: "show your assessment scores", protected: true, roles: candidateOnly, run: a.scores},

		{name: "post-job", route: "/employer/jobs/new", usage: "post-job", summary: "publish a job", protected: true, roles: employerOnly, run: a.postJob},
		{name: "edit-job", route: "/employer/jobs/edit", usage: "edit-job <id>", summary: "edit a job", protected: true, roles: employerOnly, run: a.editJob},
		{name: "delete-job", route: "/employer/jobs/delete", usage: "delete-job <id>", summary: "delete a job", protected: true, roles: employerOnly, run: a.deleteJob},
		{name: "candidates", route: "/employer/candidates", usage: "candidates [job id]", summary: "list applicants", protected: true, roles: employerOnly, run: a.candidates},
		{name: "set-status", route: "/employer/candidates/status", usage: "set-status <application id> <status>", summary: "move an application along", protected: true, roles: employerOnly, run: a.setStatus},
		{name: "export-candidates", route: "/employer/candidates/export", usage: "export-candidates <file.csv|->", summary: "export applicants as CSV", protected: true, roles: employerOnly, run: a.exportCandidates},
	}

	a.pages = make(map[string]page, len(pages))
	a.order = make([]string, 0, len(pages))
	for _, p := range pages {
		a.pages[p.name] = p
		a.order = append(a.order, p.name)
	}
}

// helpLines lists the pages the current user may open.
func (a *App) helpLines() []string {
	st := a.guardState()
	lines := []string{"Available commands:"}
	for _, name := range a.order {
		p := a.pages[name]
		if p.protected && guard.Check(st, p.roles...).Outcome != guard.Allow {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %-40s %s", p.usage, p.summary))
	}
	lines = append(lines, fmt.Sprintf("  %-40s %s", "help", "show this list"), fmt.Sprintf("  %-40s %s", "exit | quit", "leave the program"))
	return lines
}

// execute runs a page through the guard. Guard redirects are not errors.
func (a *App) execute(ctx context.Context, name string, args []string) error {
	p, ok := a.pages[name]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownCommand, name)
	}

	if p.protected {
		d := guard.Check(a.guardState(), p.roles...)
		switch d.Outcome {
		case guard.Pending:
			a.println("The session is still loading, try again in a moment.")
			return nil
		case guard.Redirect:
			a.log.Debug(ctx, "guard redirect", "page", p.name, "target", d.Target)
			if d.Target == guard.RouteLogin {
				a.nav.redirect(d.Target, fmt.Sprintf("Please log in to use %s.", p.name))
			} else {
				a.nav.redirect(d.Target, fmt.Sprintf("%s is not available for your account.", p.name))
			}
			a.showNotice()
			return nil
		}
	}

	pctx := a.nav.enter(ctx, p.route)
	err := p.run(pctx, args)
	a.showNotice()
	return err
}

func (a *App) showNotice() {
	if notice := a.nav.settle(); notice != "" {
		a.println(notice)
	}
}

// describeError turns a page error into the line shown to the user.
func describeError(err error) string {
	var (
		serr *session.Error
		ue   *usageError
	)
	switch {
	case errors.As(err, &serr):
		return serr.Error()
	case errors.As(err, &ue):
		return "Usage: " + ue.usage
	case errors.Is(err, errUnknownCommand):
		_, name, _ := strings.Cut(err.Error(), ": ")
		return "Unknown command: " + name
	case errors.Is(err, context.Canceled):
		return "Cancelled."
	case errors.Is(err, context.DeadlineExceeded):
		return "The request timed out."
	case api.IsTransport(err):
		return "Server unavailable, please try again later."
	case api.Message(err) != "":
		return api.Message(err)
	case errors.Is(err, api.ErrUnauthorized):
		return "Not authorized."
	default:
		return "Error: " + err.Error()
	}
}

// usage is the error a page returns when its arguments are wrong.
func (a *App) usage(name string) error {
	return &usageError{usage: a.pages[name].usage}
}
