package credentials

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:credrepo?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestLoad_EmptyStoreReturnsNil(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	creds, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, creds)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	in := &Credentials{Token: "tok-1", UserID: "u-1", Email: "alice@example.org", Username: "alice"}
	require.NoError(t, repo.Save(ctx, in))

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestSave_ReplacesWholesale(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &Credentials{Token: "tok-1", UserID: "u-1", Email: "a@b.c", Username: "alice"}))
	require.NoError(t, repo.Save(ctx, &Credentials{Token: "tok-2", UserID: "u-2", Email: "b@b.c", Username: "bob"}))

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-2", out.Token)
	require.Equal(t, "u-2", out.UserID)
	require.Equal(t, "bob", out.Username)
}

func TestClear_WipesCredentials(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &Credentials{Token: "tok-1", UserID: "u-1"}))
	require.NoError(t, repo.Clear(ctx))

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, out)

	// Clearing again is fine.
	require.NoError(t, repo.Clear(ctx))
}
