package credentials

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avasiljevs/accountkeeper/internal/dbx"
)

const (
	keyToken    = "token"
	keyUserID   = "user_id"
	keyEmail    = "email"
	keyUsername = "username"
)

// SQLiteRepository stores credentials as key/value rows in the local
// credentials table.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func get(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context) (*Credentials, error) {
	token, err := get(ctx, r.db, keyToken)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	creds := &Credentials{Token: token}
	if creds.UserID, err = get(ctx, r.db, keyUserID); err != nil {
		return nil, err
	}
	if creds.Email, err = get(ctx, r.db, keyEmail); err != nil {
		return nil, err
	}
	if creds.Username, err = get(ctx, r.db, keyUsername); err != nil {
		return nil, err
	}
	return creds, nil
}

// Save writes every field in a single transaction so a crash mid-write can
// never leave a token paired with another user's identity.
func (r *SQLiteRepository) Save(ctx context.Context, creds *Credentials) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyToken, creds.Token); err != nil {
			return err
		}
		if err := set(ctx, tx, keyUserID, creds.UserID); err != nil {
			return err
		}
		if err := set(ctx, tx, keyEmail, creds.Email); err != nil {
			return err
		}
		return set(ctx, tx, keyUsername, creds.Username)
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM credentials`)
	if err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}
