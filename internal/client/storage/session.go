package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/recruit/internal/client/repositories/metadata"
)

const (
	TokenKey = "recruit_auth_token"
	UserKey  = "recruit_user"
)

// Snapshot is the raw persisted session. Nil fields mean the key is absent.
type Snapshot struct {
	Token []byte
	User  []byte
}

// Complete reports whether both keys are present.
func (s Snapshot) Complete() bool {
	return s.Token != nil && s.User != nil
}

// Empty reports whether neither key is present.
func (s Snapshot) Empty() bool {
	return s.Token == nil && s.User == nil
}

type SessionStorage struct {
	db *sql.DB
}

func NewSessionStorage(db *sql.DB) *SessionStorage {
	return &SessionStorage{db: db}
}

// Load reads both keys in one read transaction.
func (s *SessionStorage) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	err := s.inTx(ctx, nil, func(repo metadata.Repository) error {
		token, err := repo.Get(ctx, TokenKey)
		if err != nil {
			return err
		}
		user, err := repo.Get(ctx, UserKey)
		if err != nil {
			return err
		}
		snap = Snapshot{Token: token, User: user}
		return nil
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("load session: %w", err)
	}
	return snap, nil
}

// Token returns the persisted bearer token, or "" when none is stored.
func (s *SessionStorage) Token(ctx context.Context) (string, error) {
	v, err := metadata.NewSQLiteRepository(s.db).Get(ctx, TokenKey)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return string(v), nil
}

// Save writes token and user atomically.
func (s *SessionStorage) Save(ctx context.Context, token string, user []byte) error {
	err := s.inTx(ctx, nil, func(repo metadata.Repository) error {
		if err := repo.Set(ctx, TokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, UserKey, user)
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// SaveUser replaces the stored user, keeping the stored token. It refuses to
// create a user key when no token is stored, keeping the pair invariant.
func (s *SessionStorage) SaveUser(ctx context.Context, user []byte) error {
	err := s.inTx(ctx, nil, func(repo metadata.Repository) error {
		token, err := repo.Get(ctx, TokenKey)
		if err != nil {
			return err
		}
		if token == nil {
			return ErrNoSession
		}
		return repo.Set(ctx, UserKey, user)
	})
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// Clear removes both keys atomically. It is idempotent.
func (s *SessionStorage) Clear(ctx context.Context) error {
	err := s.inTx(ctx, nil, func(repo metadata.Repository) error {
		if _, err := repo.Delete(ctx, TokenKey); err != nil {
			return err
		}
		_, err := repo.Delete(ctx, UserKey)
		return err
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *SessionStorage) inTx(ctx context.Context, opts *sql.TxOptions, fn func(repo metadata.Repository) error) (err error) {
	tx, err := s.db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	return fn(metadata.NewSQLiteRepository(tx))
}
