package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/recruit/internal/client/models"
	"github.com/dmitrijs2005/recruit/internal/client/storage"
)

type fakeAuth struct {
	login    func(ctx context.Context, email, password string) (models.AuthData, error)
	register func(ctx context.Context, req models.RegisterRequest) (models.AuthData, error)
	upload   func(ctx context.Context, in models.ResumeUpload) (models.RegistrationDraft, error)
	confirm  func(ctx context.Context, req models.ConfirmRequest) (models.AuthData, error)

	mu    sync.Mutex
	calls int
}

func (f *fakeAuth) hit() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func (f *fakeAuth) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (models.AuthData, error) {
	f.hit()
	return f.login(ctx, email, password)
}

func (f *fakeAuth) Register(ctx context.Context, req models.RegisterRequest) (models.AuthData, error) {
	f.hit()
	return f.register(ctx, req)
}

func (f *fakeAuth) UploadResume(ctx context.Context, in models.ResumeUpload) (models.RegistrationDraft, error) {
	f.hit()
	return f.upload(ctx, in)
}

func (f *fakeAuth) ConfirmRegistration(ctx context.Context, req models.ConfirmRequest) (models.AuthData, error) {
	f.hit()
	return f.confirm(ctx, req)
}

// memStorage keeps the two keys in memory and counts writes.
type memStorage struct {
	mu      sync.Mutex
	token   []byte
	user    []byte
	loadErr error
	saveErr error
	saves   int
	clears  int
}

func (m *memStorage) Load(context.Context) (storage.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return storage.Snapshot{}, m.loadErr
	}
	return storage.Snapshot{Token: m.token, User: m.user}, nil
}

func (m *memStorage) Save(_ context.Context, token string, user []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.token, m.user = []byte(token), user
	return nil
}

func (m *memStorage) SaveUser(_ context.Context, user []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.user = user
	return nil
}

func (m *memStorage) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clears++
	m.token, m.user = nil, nil
	return nil
}

func (m *memStorage) snapshot() storage.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return storage.Snapshot{Token: m.token, User: m.user}
}

func (m *memStorage) counts() (saves, clears int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves, m.clears
}

func authData(id, email string, role models.Role, token string) models.AuthData {
	return models.AuthData{
		User:  models.User{ID: id, Email: email, Role: role},
		Token: token,
	}
}
