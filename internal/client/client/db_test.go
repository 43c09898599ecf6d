package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestInitDatabase_AppliesMigrations(t *testing.T) {
	db, err := InitDatabase(context.Background(), "file:initdbtest?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// The credentials table must exist after migrations.
	_, err = db.Exec(`INSERT INTO credentials(key, value) VALUES('token', 'tok-1')`)
	require.NoError(t, err)

	var value []byte
	require.NoError(t, db.QueryRow(`SELECT value FROM credentials WHERE key='token'`).Scan(&value))
	require.Equal(t, []byte("tok-1"), value)
}
