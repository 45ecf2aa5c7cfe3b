package credstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const keyCSRFToken = "csrf_token"

// SQLiteStore persists the token in a local sqlite database so it survives
// CLI restarts.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, keyCSRFToken).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credential[%s]: %w", keyCSRFToken, err)
	}
	return value, nil
}

func (s *SQLiteStore) SetToken(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, keyCSRFToken, token)
	if err != nil {
		return fmt.Errorf("failed to set credential[%s]: %w", keyCSRFToken, err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, keyCSRFToken)
	if err != nil {
		return fmt.Errorf("failed to clear credential[%s]: %w", keyCSRFToken, err)
	}
	return nil
}
