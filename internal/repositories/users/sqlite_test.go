package users

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passvault-app/passvault/internal/common"
	"github.com/passvault-app/passvault/internal/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL UNIQUE,
  password TEXT NOT NULL,
  password_hint TEXT NOT NULL DEFAULT ''
);
CREATE TABLE credentials (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  owner_user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  site TEXT NOT NULL,
  username TEXT NOT NULL DEFAULT '',
  password TEXT NOT NULL DEFAULT ''
);
`)
	require.NoError(t, err)

	return db
}

func TestCreate_AssignsID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	u, err := r.Create(ctx, &models.User{Username: "alice", Password: "Secr3t!pw", PasswordHint: "the usual"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	got, err := r.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "Secr3t!pw", got.Password)
	assert.Equal(t, "the usual", got.PasswordHint)
}

func TestCreate_DuplicateUsername(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.Create(ctx, &models.User{Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	_, err = r.Create(ctx, &models.User{Username: "alice", Password: "pw2"})
	require.ErrorIs(t, err, common.ErrDuplicateUsername)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users WHERE username='alice'`).Scan(&n))
	assert.Equal(t, 1, n, "store must still contain exactly one alice")
}

func TestGetByUsername_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.GetByUsername(context.Background(), "nobody")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	u, err := r.Create(ctx, &models.User{Username: "bob", Password: "pw"})
	require.NoError(t, err)

	got, err := r.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)

	_, err = r.GetByID(ctx, 999)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestAuthenticate(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.Create(ctx, &models.User{Username: "alice", Password: "Secr3t!pw"})
	require.NoError(t, err)

	// exact match
	u, err := r.Authenticate(ctx, "alice", "Secr3t!pw")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "alice", u.Username)

	// wrong password: no user, no error
	u, err = r.Authenticate(ctx, "alice", "wrong")
	require.NoError(t, err)
	assert.Nil(t, u)

	// unknown user
	u, err = r.Authenticate(ctx, "mallory", "Secr3t!pw")
	require.NoError(t, err)
	assert.Nil(t, u)

	// username comparison is case-sensitive
	u, err = r.Authenticate(ctx, "Alice", "Secr3t!pw")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUpdateProfile(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	u, err := r.Create(ctx, &models.User{Username: "alice", Password: "old", PasswordHint: "old hint"})
	require.NoError(t, err)

	require.NoError(t, r.UpdateProfile(ctx, u.ID, "new hint", "NewPassw0rd!"))

	got, err := r.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "new hint", got.PasswordHint)
	assert.Equal(t, "NewPassw0rd!", got.Password)
	assert.Equal(t, "alice", got.Username, "username is immutable")

	require.ErrorIs(t, r.UpdateProfile(ctx, 999, "h", "p"), common.ErrNotFound)
}

func TestDelete_CascadesToCredentials(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	u, err := r.Create(ctx, &models.User{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	for _, site := range []string{"a.com", "b.com", "c.com"} {
		_, err = db.Exec(`INSERT INTO credentials(owner_user_id, site) VALUES (?, ?)`, u.ID, site)
		require.NoError(t, err)
	}

	require.NoError(t, r.Delete(ctx, u.ID))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM credentials WHERE owner_user_id=?`, u.ID).Scan(&n))
	assert.Equal(t, 0, n, "cascade must remove owned credentials")

	_, err = r.GetByID(ctx, u.ID)
	require.ErrorIs(t, err, common.ErrNotFound)

	require.ErrorIs(t, r.Delete(ctx, u.ID), common.ErrNotFound)
}
