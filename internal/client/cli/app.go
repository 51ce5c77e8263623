package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/recruit/internal/client/api"
	"github.com/dmitrijs2005/recruit/internal/client/config"
	"github.com/dmitrijs2005/recruit/internal/client/guard"
	"github.com/dmitrijs2005/recruit/internal/client/models"
	"github.com/dmitrijs2005/recruit/internal/client/session"
	"github.com/dmitrijs2005/recruit/internal/client/storage"
	"github.com/dmitrijs2005/recruit/internal/filex"
	"github.com/dmitrijs2005/recruit/internal/logging"
)

// sessionStore is the part of session.Store the pages use.
type sessionStore interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, req models.RegisterRequest) error
	UploadResumeAndParse(ctx context.Context, in models.ResumeUpload) (models.RegistrationDraft, error)
	ConfirmRegistration(ctx context.Context, sessionID string, data models.ParsedResume) error
	Logout(ctx context.Context) error
	Expire(ctx context.Context)
	UpdateUser(ctx context.Context, patch models.UserPatch) error
	User() (models.User, bool)
	Token() string
	State() session.State
}

// backend is the non-auth part of the API.
type backend interface {
	api.JobsClient
	api.ApplicationsClient
	api.CandidatesClient
}

type App struct {
	store  sessionStore
	api    backend
	log    logging.Logger
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
	nav    *navigator
	pages  map[string]page
	order  []string
	close  func() error
}

// NewApp opens the session database, builds the API client and restores any
// stored session. A session that cannot be read is logged and the app starts
// signed out.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if err := filex.EnsureParentDir(cfg.DatabasePath); err != nil {
		return nil, err
	}
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	ss := storage.NewSessionStorage(db)

	client, err := api.NewHTTPClient(cfg.APIBaseURL, ss, api.Options{
		Timeout: cfg.RequestTimeout,
		Logger:  log,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := session.NewStore(client, ss, log)
	a := newApp(store, client, log, os.Stdin, os.Stdout)
	a.close = db.Close
	client.OnUnauthorized(a.sessionExpired)

	if err := store.Init(ctx); err != nil {
		log.Warn(ctx, "starting signed out", "error", err)
	}
	return a, nil
}

func newApp(store sessionStore, be backend, log logging.Logger, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.Discard()
	}
	a := &App{
		store:  store,
		api:    be,
		log:    log,
		in:     in,
		reader: bufio.NewReader(in),
		out:    out,
		nav:    newNavigator(guard.RouteRoot),
	}
	a.registerPages()
	return a
}

// Run blocks in the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	stop := context.AfterFunc(ctx, func() {
		// Unblocks a pending read so the loop can see the cancellation.
		if c, ok := a.in.(io.Closer); ok {
			_ = c.Close()
		}
	})
	defer stop()
	defer a.nav.leave()

	fmt.Fprintln(a.out, "Welcome to the recruit CLI (type 'help' for commands)")
	if u, ok := a.store.User(); ok {
		fmt.Fprintf(a.out, "Signed in as %s (%s)\n", u.DisplayName(), u.Role)
	}
	runREPL(ctx, a, a.status, a.reader)
}

// Close releases the session database.
func (a *App) Close() error {
	if a.close == nil {
		return nil
	}
	return a.close()
}

// sessionExpired runs after the HTTP client has cleared a rejected session.
// sessionExpired runs on every 401. A rejected login has no session to end,
// so the notice is only shown when one was active.
func (a *App) sessionExpired(ctx context.Context) {
	_, had := a.store.User()
	a.store.Expire(ctx)
	notice := ""
	if had {
		notice = "Your session has ended. Please log in again."
	}
	a.nav.redirect(guard.RouteLogin, notice)
}

func (a *App) status() string {
	s := a.nav.current()
	if u, ok := a.store.User(); ok {
		s = fmt.Sprintf("%s (%s, %s)", s, u.Email, u.Role)
	}
	return s
}

func (a *App) guardState() guard.State {
	st := a.store.State()
	return guard.State{
		Loading:       !st.Initialized,
		Authenticated: st.Authenticated,
		Role:          st.Role,
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
