package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/recruit/internal/client/api"
	"github.com/dmitrijs2005/recruit/internal/client/models"
	"github.com/dmitrijs2005/recruit/internal/client/storage"
	"github.com/dmitrijs2005/recruit/internal/logging"
)

// Storage is the durable mirror of the session.
type Storage interface {
	Load(ctx context.Context) (storage.Snapshot, error)
	Save(ctx context.Context, token string, user []byte) error
	SaveUser(ctx context.Context, user []byte) error
	Clear(ctx context.Context) error
}

// State is a consistent view of the store for route decisions and prompts.
type State struct {
	Initialized   bool
	Busy          bool
	Authenticated bool
	Role          models.Role
}

type Store struct {
	api     api.AuthClient
	storage Storage
	log     logging.Logger

	mu          sync.RWMutex
	user        *models.User
	// raw is the stored user JSON; it may carry fields user does not model.
	raw         []byte
	token       string
	initialized bool
	gen         uint64
	inflight    int
}

func NewStore(client api.AuthClient, st Storage, log logging.Logger) *Store {
	if log == nil {
		log = logging.Discard()
	}
	return &Store{api: client, storage: st, log: log.With("component", "session")}
}

// Init rehydrates the session from storage. It runs once; later calls are
// no-ops. A corrupted or half-written stored session is discarded and the
// store starts unauthenticated. The returned error only reports that storage
// could not be read; the store is initialized either way.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	defer func() { s.initialized = true }()

	snap, err := s.storage.Load(ctx)
	if err != nil {
		s.log.Error(ctx, "cannot read stored session", "error", err)
		return err
	}
	if snap.Empty() {
		return nil
	}

	user, err := decodeSnapshot(snap)
	if err != nil {
		s.log.Warn(ctx, "discarding stored session", "reason", err)
		if err := s.storage.Clear(ctx); err != nil {
			s.log.Error(ctx, "cannot clear stored session", "error", err)
		}
		return nil
	}

	s.user = &user
	s.raw = snap.User
	s.token = string(snap.Token)
	s.log.Debug(ctx, "session restored", "user_id", user.ID, "role", user.Role)
	return nil
}

func decodeSnapshot(snap storage.Snapshot) (models.User, error) {
	if !snap.Complete() {
		return models.User{}, errors.New("incomplete session")
	}
	if len(snap.Token) == 0 {
		return models.User{}, errors.New("empty token")
	}
	var u *models.User
	if err := json.Unmarshal(snap.User, &u); err != nil {
		return models.User{}, fmt.Errorf("malformed user: %w", err)
	}
	if u == nil {
		return models.User{}, errors.New("null user")
	}
	return *u, nil
}

// Login authenticates with email and password and persists the session.
// On failure the previous session is left as it was.
func (s *Store) Login(ctx context.Context, email, password string) error {
	ticket := s.begin()
	defer s.end()

	data, err := s.api.Login(ctx, email, password)
	if err != nil {
		return newError("login", msgLoginFailed, err)
	}
	if err := s.commit(ctx, ticket, data); err != nil {
		return newError("login", msgLoginFailed, err)
	}
	s.log.Info(ctx, "logged in", "user_id", data.User.ID, "role", data.User.Role)
	return nil
}

// Register creates an account and logs into it.
func (s *Store) Register(ctx context.Context, req models.RegisterRequest) error {
	ticket := s.begin()
	defer s.end()

	data, err := s.api.Register(ctx, req)
	if err != nil {
		return newError("register", msgRegisterFailed, err)
	}
	if err := s.commit(ctx, ticket, data); err != nil {
		return newError("register", msgRegisterFailed, err)
	}
	s.log.Info(ctx, "registered", "user_id", data.User.ID, "role", data.User.Role)
	return nil
}

// UploadResumeAndParse is step one of the resume-assisted registration. It
// never touches the session: nobody is logged in until ConfirmRegistration.
func (s *Store) UploadResumeAndParse(ctx context.Context, in models.ResumeUpload) (models.RegistrationDraft, error) {
	s.track()
	defer s.end()

	draft, err := s.api.UploadResume(ctx, in)
	if err != nil {
		return models.RegistrationDraft{}, newError("upload resume", msgUploadFailed, err)
	}
	s.log.Debug(ctx, "resume parsed", "session_id", draft.SessionID, "confidence", draft.ParsedData.Confidence)
	return draft, nil
}

// ConfirmRegistration is step two: it submits the reviewed draft and, on
// success, logs in exactly like Login.
func (s *Store) ConfirmRegistration(ctx context.Context, sessionID string, data models.ParsedResume) error {
	ticket := s.begin()
	defer s.end()

	auth, err := s.api.ConfirmRegistration(ctx, models.ConfirmRequest{SessionID: sessionID, ParsedData: data})
	if err != nil {
		return newError("confirm registration", msgConfirmFailed, err)
	}
	if err := s.commit(ctx, ticket, auth); err != nil {
		return newError("confirm registration", msgConfirmFailed, err)
	}
	s.log.Info(ctx, "registration confirmed", "user_id", auth.User.ID, "session_id", sessionID)
	return nil
}

// Logout clears the session in memory and in storage. It makes no network
// call and is idempotent. Memory is cleared even if storage fails.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.user = nil
	s.raw = nil
	s.token = ""

	if err := s.storage.Clear(context.WithoutCancel(ctx)); err != nil {
		s.log.Error(ctx, "cannot clear stored session", "error", err)
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Expire ends the session after the backend rejected the token. Storage is
// cleared again under the store lock so a commit that raced with the HTTP
// client's own clear cannot leave a token behind.
func (s *Store) Expire(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	if s.user != nil {
		s.log.Info(ctx, "session expired", "user_id", s.user.ID)
	}
	s.user = nil
	s.raw = nil
	s.token = ""

	if err := s.storage.Clear(context.WithoutCancel(ctx)); err != nil {
		s.log.Error(ctx, "cannot clear stored session", "error", err)
	}
}

// UpdateUser merges patch into the current user and re-persists it. With no
// user logged in it does nothing. The backend is not contacted.
func (s *Store) UpdateUser(ctx context.Context, patch models.UserPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil || patch.IsEmpty() {
		return nil
	}

	merged := s.user.Apply(patch)
	blob, err := patchBlob(s.raw, merged, patch)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.storage.SaveUser(ctx, blob); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	s.user = &merged
	s.raw = blob
	return nil
}

// patchBlob replaces the patched keys of the stored user object and keeps
// every other key as it was.
func patchBlob(raw []byte, merged models.User, p models.UserPatch) ([]byte, error) {
	var obj map[string]json.RawMessage
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, err
		}
	}
	if len(obj) == 0 {
		return json.Marshal(merged)
	}

	set := func(key string, v any) error {
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		obj[key] = b
		return nil
	}
	if p.Email != nil {
		if err := set("email", merged.Email); err != nil {
			return nil, err
		}
	}
	if p.CandidateProfile != nil {
		if err := set("candidateProfile", merged.CandidateProfile); err != nil {
			return nil, err
		}
	}
	if p.CompanyProfile != nil {
		if err := set("companyProfile", merged.CompanyProfile); err != nil {
			return nil, err
		}
	}
	return json.Marshal(obj)
}

func (s *Store) commit(ctx context.Context, ticket uint64, data models.AuthData) error {
	if data.Token == "" {
		return fmt.Errorf("%w: no token in auth response", api.ErrBadResponse)
	}
	blob := []byte(data.RawUser)
	if len(blob) == 0 {
		var err error
		if blob, err = json.Marshal(data.User); err != nil {
			return fmt.Errorf("encode user: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket != s.gen {
		return ErrSuperseded
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.storage.Save(ctx, data.Token, blob); err != nil {
		return err
	}

	u := data.User.Clone()
	s.user = &u
	s.raw = blob
	s.token = data.Token
	return nil
}

func (s *Store) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.inflight++
	return s.gen
}

func (s *Store) track() {
	s.mu.Lock()
	s.inflight++
	s.mu.Unlock()
}

func (s *Store) end() {
	s.mu.Lock()
	s.inflight--
	s.mu.Unlock()
}

// User returns a copy of the logged-in user.
func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return s.user.Clone(), true
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated is true exactly when both a user and a token are held.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated()
}

func (s *Store) authenticated() bool {
	return s.user != nil && s.token != ""
}

func (s *Store) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

// Busy reports whether any store operation is waiting on the backend.
func (s *Store) Busy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inflight > 0
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := State{
		Initialized:   s.initialized,
		Busy:          s.inflight > 0,
		Authenticated: s.authenticated(),
	}
	if s.user != nil {
		st.Role = s.user.Role
	}
	return st
}
