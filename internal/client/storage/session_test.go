package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "recruit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countKeys(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM metadata WHERE key IN (?, ?)`, TokenKey, UserKey).Scan(&n))
	return n
}

func TestOpen_AppliesMigrationsIdempotently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recruit.db")

	db, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(context.Background(), path)
	require.NoError(t, err)
	defer db.Close()

	var name string
	require.NoError(t, db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='metadata'`).Scan(&name))
	assert.Equal(t, "metadata", name)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := NewSessionStorage(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tok123", []byte(`{"id":"1"}`)))

	snap, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, snap.Complete())
	assert.Equal(t, "tok123", string(snap.Token))
	assert.JSONEq(t, `{"id":"1"}`, string(snap.User))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)
}

func TestLoad_Empty(t *testing.T) {
	s := NewSessionStorage(openTestDB(t))

	snap, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, snap.Empty())
	assert.False(t, snap.Complete())

	token, err := s.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestClear_RemovesBothKeysAndIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	s := NewSessionStorage(db)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tok", []byte(`{}`)))
	require.Equal(t, 2, countKeys(t, db))

	require.NoError(t, s.Clear(ctx))
	assert.Equal(t, 0, countKeys(t, db))

	require.NoError(t, s.Clear(ctx))
	assert.Equal(t, 0, countKeys(t, db))
}

func TestClear_LeavesUnrelatedKeys(t *testing.T) {
	db := openTestDB(t)
	s := NewSessionStorage(db)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO metadata(key, value) VALUES ('other', x'01')`)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "tok", []byte(`{}`)))
	require.NoError(t, s.Clear(ctx))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM metadata`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestSaveUser_RequiresToken(t *testing.T) {
	db := openTestDB(t)
	s := NewSessionStorage(db)
	ctx := context.Background()

	err := s.SaveUser(ctx, []byte(`{"id":"1"}`))
	require.ErrorIs(t, err, ErrNoSession)
	assert.Equal(t, 0, countKeys(t, db))

	require.NoError(t, s.Save(ctx, "tok", []byte(`{"id":"1"}`)))
	require.NoError(t, s.SaveUser(ctx, []byte(`{"id":"1","email":"x@y"}`)))

	snap, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", string(snap.Token))
	assert.JSONEq(t, `{"id":"1","email":"x@y"}`, string(snap.User))
}

func TestSave_ClosedDB(t *testing.T) {
	db := openTestDB(t)
	s := NewSessionStorage(db)
	require.NoError(t, db.Close())

	require.ErrorContains(t, s.Save(context.Background(), "t", []byte(`{}`)), "save session")
	require.ErrorContains(t, s.Clear(context.Background()), "clear session")
	_, err := s.Load(context.Background())
	require.ErrorContains(t, err, "load session")
}
