package stubapi

import (
	"slices"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/recruit/internal/client/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLen = 6
	// bcrypt rejects longer passwords.
	maxPasswordLen = 72
	// parseConfidence is reported for every draft; nothing is parsed.
	parseConfidence = 0.5
	// placeholderScore is given to every application; nothing is scored.
	placeholderScore = 50.0
	registrationTTL  = 30 * time.Minute
)

type account struct {
	user models.User
	hash []byte
}

type registration struct {
	email   string
	hash    []byte
	created time.Time
	used    bool
}

// Data is the backend's in-memory state. All methods are safe for
// concurrent use.
type Data struct {
	mu       sync.RWMutex
	accounts map[string]*account
	byEmail  map[string]string
	jobs     map[string]*models.Job
	jobOrder []string
	apps     map[string]*models.Application
	appOrder []string
	regs     map[string]*registration

	now        func() time.Time
	bcryptCost int
}

func NewData() *Data {
	return &Data{
		accounts:   make(map[string]*account),
		byEmail:    make(map[string]string),
		jobs:       make(map[string]*models.Job),
		apps:       make(map[string]*models.Application),
		regs:       make(map[string]*registration),
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
	}
}

func normEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (d *Data) hashPassword(email, password string) ([]byte, error) {
	if !strings.Contains(email, "@") {
		return nil, failure(ErrInvalid, "A valid email is required")
	}
	if len(password) < minPasswordLen || len(password) > maxPasswordLen {
		return nil, failure(ErrInvalid, "Password must be %d to %d characters", minPasswordLen, maxPasswordLen)
	}
	return bcrypt.GenerateFromPassword([]byte(password), d.bcryptCost)
}

// CreateAccount registers a user. The caller supplies whichever profile
// fits the role.
func (d *Data) CreateAccount(req models.RegisterRequest) (models.User, error) {
	role, err := models.ParseRole(string(req.Role))
	if err != nil {
		return models.User{}, failure(ErrInvalid, "Role must be candidate or employer")
	}
	email := normEmail(req.Email)
	hash, err := d.hashPassword(email, req.Password)
	if err != nil {
		return models.User{}, err
	}

	u := models.User{Email: email, Role: role}
	switch role {
	case models.RoleCandidate:
		u.CandidateProfile = &models.CandidateProfile{FirstName: req.FirstName, LastName: req.LastName}
	case models.RoleEmployer:
		u.CompanyProfile = &models.CompanyProfile{CompanyName: req.CompanyName}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.addAccountLocked(u, hash)
}

func (d *Data) addAccountLocked(u models.User, hash []byte) (models.User, error) {
	if _, taken := d.byEmail[u.Email]; taken {
		return models.User{}, failure(ErrConflict, "An account with this email already exists")
	}
	u.ID = uuid.NewString()
	d.accounts[u.ID] = &account{user: u, hash: hash}
	d.byEmail[u.Email] = u.ID
	return u.Clone(), nil
}

// Authenticate checks email and password.
func (d *Data) Authenticate(email, password string) (models.User, error) {
	d.mu.RLock()
	acc, ok := d.accounts[d.byEmail[normEmail(email)]]
	d.mu.RUnlock()

	if !ok || bcrypt.CompareHashAndPassword(acc.hash, []byte(password)) != nil {
		return models.User{}, failure(ErrUnauthorized, "Invalid email or password")
	}
	return acc.user.Clone(), nil
}

func (d *Data) User(id string) (models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	acc, ok := d.accounts[id]
	if !ok {
		return models.User{}, failure(ErrUnauthorized, "Account no longer exists")
	}
	return acc.user.Clone(), nil
}

// StartRegistration opens a registration session for a resume upload and
// returns a draft derived from the email address.
func (d *Data) StartRegistration(email, password string) (models.RegistrationDraft, error) {
	email = normEmail(email)
	hash, err := d.hashPassword(email, password)
	if err != nil {
		return models.RegistrationDraft{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, taken := d.byEmail[email]; taken {
		return models.RegistrationDraft{}, failure(ErrConflict, "An account with this email already exists")
	}

	id := uuid.NewString()
	d.regs[id] = &registration{email: email, hash: hash, created: d.now()}

	first, last := namesFromEmail(email)
	return models.RegistrationDraft{
		SessionID: id,
		ParsedData: models.ParsedResume{
			FirstName:  first,
			LastName:   last,
			Email:      email,
			Confidence: parseConfidence,
		},
	}, nil
}

// ConfirmRegistration consumes a registration session and creates the
// candidate account from the reviewed data.
func (d *Data) ConfirmRegistration(sessionID string, data models.ParsedResume) (models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	reg, ok := d.regs[sessionID]
	switch {
	case !ok:
		return models.User{}, failure(ErrNotFound, "Registration session not found")
	case reg.used:
		return models.User{}, failure(ErrGone, "Registration session has already been used")
	case d.now().Sub(reg.created) > registrationTTL:
		return models.User{}, failure(ErrGone, "Registration session has expired")
	}

	email := reg.email
	if e := normEmail(data.Email); e != "" {
		if !strings.Contains(e, "@") {
			return models.User{}, failure(ErrInvalid, "A valid email is required")
		}
		email = e
	}

	u, err := d.addAccountLocked(models.User{
		Email: email,
		Role:  models.RoleCandidate,
		CandidateProfile: &models.CandidateProfile{
			FirstName:       data.FirstName,
			LastName:        data.LastName,
			CurrentPosition: data.CurrentPosition,
			Education:       data.Education,
		},
	}, reg.hash)
	if err != nil {
		return models.User{}, err
	}
	reg.used = true
	return u, nil
}

// namesFromEmail turns "ann.lee@x.io" into ("Ann", "Lee").
func namesFromEmail(email string) (string, string) {
	local, _, _ := strings.Cut(email, "@")
	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+' || unicode.IsDigit(r)
	})
	for i, p := range parts {
		r, size := utf8.DecodeRuneInString(p)
		parts[i] = string(unicode.ToUpper(r)) + p[size:]
	}
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

func (d *Data) ListJobs(f models.JobFilter) []models.Job {
	d.mu.RLock()
	defer d.mu.RUnlock()

	search := strings.ToLower(f.Search)
	out := make([]models.Job, 0)
	for _, id := range slices.Backward(d.jobOrder) {
		j := d.jobs[id]
		if j.Status != models.JobStatusOpen {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(j.Title+" "+j.Description+" "+j.CompanyName), search) {
			continue
		}
		if f.Location != "" && !strings.Contains(strings.ToLower(j.Location), strings.ToLower(f.Location)) {
			continue
		}
		if f.EmploymentType != "" && !strings.EqualFold(j.EmploymentType, f.EmploymentType) {
			continue
		}
		out = append(out, *j)
	}
	return out
}

func (d *Data) GetJob(id string) (models.Job, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	j, ok := d.jobs[id]
	if !ok {
		return models.Job{}, failure(ErrNotFound, "Job not found")
	}
	return *j, nil
}

func validateJob(in models.JobInput) (models.JobInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return in, failure(ErrInvalid, "Title is required")
	}
	if in.SalaryMin < 0 || in.SalaryMax < 0 || (in.SalaryMax > 0 && in.SalaryMin > in.SalaryMax) {
		return in, failure(ErrInvalid, "Salary range is invalid")
	}
	switch in.Status {
	case "":
		in.Status = models.JobStatusOpen
	case models.JobStatusOpen, models.JobStatusClosed, models.JobStatusDraft:
	default:
		return in, failure(ErrInvalid, "Unknown job status %q", in.Status)
	}
	return in, nil
}

func (d *Data) CreateJob(owner models.User, in models.JobInput) (models.Job, error) {
	in, err := validateJob(in)
	if err != nil {
		return models.Job{}, err
	}

	j := models.Job{
		ID:        uuid.NewString(),
		CompanyID: owner.ID,
		CreatedAt: d.now().UTC(),
	}
	if owner.CompanyProfile != nil {
		j.CompanyName = owner.CompanyProfile.CompanyName
	}
	applyJobInput(&j, in)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.jobs[j.ID] = &j
	d.jobOrder = append(d.jobOrder, j.ID)
	return j, nil
}

func applyJobInput(j *models.Job, in models.JobInput) {
	j.Title = in.Title
	j.Description = in.Description
	j.Requirements = slices.Clone(in.Requirements)
	j.Location = in.Location
	j.EmploymentType = in.EmploymentType
	j.SalaryMin = in.SalaryMin
	j.SalaryMax = in.SalaryMax
	j.Status = in.Status
}

// ownedJobLocked returns the job if ownerID posted it.
func (d *Data) ownedJobLocked(ownerID, id string) (*models.Job, error) {
	j, ok := d.jobs[id]
	if !ok {
		return nil, failure(ErrNotFound, "Job not found")
	}
	if j.CompanyID != ownerID {
		return nil, failure(ErrForbidden, "You can only manage your own jobs")
	}
	return j, nil
}

func (d *Data) UpdateJob(ownerID, id string, in models.JobInput) (models.Job, error) {
	in, err := validateJob(in)
	if err != nil {
		return models.Job{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	j, err := d.ownedJobLocked(ownerID, id)
	if err != nil {
		return models.Job{}, err
	}
	applyJobInput(j, in)
	return *j, nil
}

// DeleteJob removes the job and every application to it.
func (d *Data) DeleteJob(ownerID, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, err := d.ownedJobLocked(ownerID, id); err != nil {
		return err
	}
	delete(d.jobs, id)
	d.jobOrder = slices.DeleteFunc(d.jobOrder, func(v string) bool { return v == id })
	d.appOrder = slices.DeleteFunc(d.appOrder, func(v string) bool {
		if d.apps[v].JobID == id {
			delete(d.apps, v)
			return true
		}
		return false
	})
	return nil
}

func (d *Data) Apply(candidateID string, req models.ApplyRequest) (models.Application, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	j, ok := d.jobs[req.JobID]
	if !ok {
		return models.Application{}, failure(ErrNotFound, "Job not found")
	}
	if j.Status != models.JobStatusOpen {
		return models.Application{}, failure(ErrConflict, "This job is not accepting applications")
	}
	for _, id := range d.appOrder {
		if a := d.apps[id]; a.JobID == req.JobID && a.CandidateID == candidateID {
			return models.Application{}, failure(ErrConflict, "You have already applied to this job")
		}
	}

	score := placeholderScore
	a := &models.Application{
		ID:          uuid.NewString(),
		JobID:       req.JobID,
		CandidateID: candidateID,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationPending,
		Score:       &score,
		AppliedAt:   d.now().UTC(),
	}
	d.apps[a.ID] = a
	d.appOrder = append(d.appOrder, a.ID)
	return d.viewLocked(a), nil
}

// viewLocked fills the denormalised fields from current data.
func (d *Data) viewLocked(a *models.Application) models.Application {
	out := *a
	if a.Score != nil {
		s := *a.Score
		out.Score = &s
	}
	if j, ok := d.jobs[a.JobID]; ok {
		out.JobTitle = j.Title
	}
	if acc, ok := d.accounts[a.CandidateID]; ok {
		out.CandidateEmail = acc.user.Email
		out.CandidateName = acc.user.DisplayName()
	}
	return out
}

func (d *Data) applications(keep func(*models.Application) bool) []models.Application {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.Application, 0)
	for _, id := range slices.Backward(d.appOrder) {
		if a := d.apps[id]; keep(a) {
			out = append(out, d.viewLocked(a))
		}
	}
	return out
}

func (d *Data) CandidateApplications(candidateID string) []models.Application {
	return d.applications(func(a *models.Application) bool { return a.CandidateID == candidateID })
}

// CompanyApplications lists applications to jobs posted by ownerID.
func (d *Data) CompanyApplications(ownerID string) []models.Application {
	return d.applications(func(a *models.Application) bool {
		j, ok := d.jobs[a.JobID]
		return ok && j.CompanyID == ownerID
	})
}

func (d *Data) SetApplicationStatus(ownerID, id string, status models.ApplicationStatus) (models.Application, error) {
	if _, err := models.ParseApplicationStatus(string(status)); err != nil {
		return models.Application{}, failure(ErrInvalid, "Unknown application status %q", status)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	a, ok := d.apps[id]
	if !ok {
		return models.Application{}, failure(ErrNotFound, "Application not found")
	}
	if _, err := d.ownedJobLocked(ownerID, a.JobID); err != nil {
		return models.Application{}, err
	}
	a.Status = status
	return d.viewLocked(a), nil
}

func (d *Data) CandidateProfile(id string) (models.CandidateProfile, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	acc, ok := d.accounts[id]
	if !ok || acc.user.CandidateProfile == nil {
		return models.CandidateProfile{}, failure(ErrNotFound, "Profile not found")
	}
	return *acc.user.Clone().CandidateProfile, nil
}

func (d *Data) UpdateCandidateProfile(id string, p models.CandidateProfile) (models.CandidateProfile, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	acc, ok := d.accounts[id]
	if !ok {
		return models.CandidateProfile{}, failure(ErrNotFound, "Profile not found")
	}
	acc.user = acc.user.Apply(models.UserPatch{CandidateProfile: &p})
	return *acc.user.Clone().CandidateProfile, nil
}

// AssessmentScores reports the placeholder score of every application the
// candidate has made.
func (d *Data) AssessmentScores(candidateID string) []models.AssessmentScore {
	apps := d.CandidateApplications(candidateID)
	out := make([]models.AssessmentScore, 0, len(apps))
	for _, a := range apps {
		out = append(out, models.AssessmentScore{
			JobID:    a.JobID,
			JobTitle: a.JobTitle,
			Score:    *a.Score,
			Summary:  "placeholder score from the development backend",
			ScoredAt: a.AppliedAt,
		})
	}
	return out
}
