package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/recruit/internal/client/models"
	"github.com/dmitrijs2005/recruit/internal/client/session"
)

type fakeStore struct {
	user        *models.User
	token       string
	initialized bool

	loginEmail, loginPassword string
	loginErr                  error
	onLogin                   func(ctx context.Context)
	registered                models.RegisterRequest
	uploaded                  models.ResumeUpload
	uploadedBody              string
	draft                     models.RegistrationDraft
	confirmedID               string
	confirmed                 models.ParsedResume
	patches                   []models.UserPatch
	logouts, expires          int
}

func (f *fakeStore) signIn(u models.User, token string) {
	f.user, f.token = &u, token
}

func (f *fakeStore) Login(ctx context.Context, email, password string) error {
	f.loginEmail, f.loginPassword = email, password
	if f.onLogin != nil {
		f.onLogin(ctx)
	}
	if f.loginErr != nil {
		return f.loginErr
	}
	f.signIn(models.User{ID: "1", Email: email, Role: models.RoleCandidate}, "tok")
	return nil
}

func (f *fakeStore) Register(_ context.Context, req models.RegisterRequest) error {
	f.registered = req
	f.signIn(models.User{ID: "2", Email: req.Email, Role: req.Role}, "tok")
	return nil
}

func (f *fakeStore) UploadResumeAndParse(_ context.Context, in models.ResumeUpload) (models.RegistrationDraft, error) {
	f.uploaded = in
	b, _ := io.ReadAll(in.File)
	f.uploadedBody = string(b)
	return f.draft, nil
}

func (f *fakeStore) ConfirmRegistration(_ context.Context, id string, data models.ParsedResume) error {
	f.confirmedID, f.confirmed = id, data
	f.signIn(models.User{ID: "3", Email: data.Email, Role: models.RoleCandidate}, "tok")
	return nil
}

func (f *fakeStore) Logout(context.Context) error {
	f.logouts++
	f.user, f.token = nil, ""
	return nil
}

func (f *fakeStore) Expire(context.Context) {
	f.expires++
	f.user, f.token = nil, ""
}

func (f *fakeStore) UpdateUser(_ context.Context, p models.UserPatch) error {
	f.patches = append(f.patches, p)
	if f.user != nil {
		u := f.user.Apply(p)
		f.user = &u
	}
	return nil
}

func (f *fakeStore) User() (models.User, bool) {
	if f.user == nil {
		return models.User{}, false
	}
	return *f.user, true
}

func (f *fakeStore) Token() string { return f.token }

func (f *fakeStore) State() session.State {
	st := session.State{Initialized: f.initialized, Authenticated: f.user != nil && f.token != ""}
	if f.user != nil {
		st.Role = f.user.Role
	}
	return st
}

type fakeBackend struct {
	jobs      []models.Job
	filter    models.JobFilter
	created   models.JobInput
	updatedID string
	updated   models.JobInput
	deleted   []string
	applied   models.ApplyRequest
	apps      []models.Application
	statusID  string
	status    models.ApplicationStatus
	profile   models.CandidateProfile
	savedProf models.CandidateProfile
	scores    []models.AssessmentScore
	err       error
	onRequest func(ctx context.Context)
}

func (f *fakeBackend) hit(ctx context.Context) error {
	if f.onRequest != nil {
		f.onRequest(ctx)
	}
	return f.err
}

func (f *fakeBackend) ListJobs(ctx context.Context, filter models.JobFilter) ([]models.Job, error) {
	f.filter = filter
	return f.jobs, f.hit(ctx)
}

func (f *fakeBackend) GetJob(ctx context.Context, id string) (models.Job, error) {
	for _, j := range f.jobs {
		if j.ID == id {
			return j, f.hit(ctx)
		}
	}
	return models.Job{}, f.hit(ctx)
}

func (f *fakeBackend) CreateJob(ctx context.Context, in models.JobInput) (models.Job, error) {
	f.created = in
	return models.Job{ID: "new-1", Title: in.Title}, f.hit(ctx)
}

func (f *fakeBackend) UpdateJob(ctx context.Context, id string, in models.JobInput) (models.Job, error) {
	f.updatedID, f.updated = id, in
	return models.Job{ID: id, Title: in.Title}, f.hit(ctx)
}

func (f *fakeBackend) DeleteJob(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.hit(ctx)
}

func (f *fakeBackend) Apply(ctx context.Context, req models.ApplyRequest) (models.Application, error) {
	f.applied = req
	return models.Application{ID: "app-1", JobID: req.JobID, JobTitle: "Go Developer", Status: models.ApplicationPending}, f.hit(ctx)
}

func (f *fakeBackend) CandidateApplications(ctx context.Context) ([]models.Application, error) {
	return f.apps, f.hit(ctx)
}

func (f *fakeBackend) CompanyApplications(ctx context.Context) ([]models.Application, error) {
	return append([]models.Application(nil), f.apps...), f.hit(ctx)
}

func (f *fakeBackend) UpdateApplicationStatus(ctx context.Context, id string, st models.ApplicationStatus) (models.Application, error) {
	f.statusID, f.status = id, st
	return models.Application{ID: id, Status: st}, f.hit(ctx)
}

func (f *fakeBackend) CandidateProfile(ctx context.Context) (models.CandidateProfile, error) {
	return f.profile, f.hit(ctx)
}

func (f *fakeBackend) UpdateCandidateProfile(ctx context.Context, p models.CandidateProfile) (models.CandidateProfile, error) {
	f.savedProf = p
	return p, f.hit(ctx)
}

func (f *fakeBackend) AssessmentScores(ctx context.Context) ([]models.AssessmentScore, error) {
	return f.scores, f.hit(ctx)
}

// newTestApp builds an App reading input from lines and writing to the
// returned buffer. Passwords come from password.
func newTestApp(t *testing.T, st *fakeStore, be *fakeBackend, input string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	st.initialized = true
	a := newApp(st, be, nil, strings.NewReader(input), &out)
	return a, &out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

// capturePrintln redirects REPL output into a buffer for the test.
func capturePrintln(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) { return fmt.Fprintln(&buf, a...) }
	t.Cleanup(func() { printlnFn = orig })
	return &buf
}
