// Package session persists the bearer credential between runs and resolves
// the signed-in identity against the backend at startup.
package session

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	appErrors "memento/internal/errors"

	_ "modernc.org/sqlite" // Pure Go SQLite driver, WAL-friendly
)

// Credentials is the stored bearer credential plus the account it belongs to.
type Credentials struct {
	Token   string
	Email   string
	SavedAt string
}

// Store keeps a single credential row in a local SQLite database.
type Store struct {
	dbPath string
	dsn    string
}

// NewStore constructs a credential store at the given database path.
// The parent directory is created on first Save.
func NewStore(dbPath string) (*Store, error) {
	trimmed := strings.TrimSpace(dbPath)
	if trimmed == "" {
		return nil, appErrors.New(appErrors.CodeCredentialStore, "session store requires a database path", nil)
	}
	return &Store{
		dbPath: trimmed,
		dsn:    buildStoreDSN(trimmed),
	}, nil
}

// buildStoreDSN creates a read-write WAL DSN for the given path.
func buildStoreDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "3000")
	u.RawQuery = q.Encode()
	return u.String()
}

func (s *Store) openDB(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.dsn)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeCredentialStore, "open credential db", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, appErrors.New(appErrors.CodeCredentialStore, "ping credential db", err)
	}
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS credentials (
			id       INTEGER PRIMARY KEY CHECK (id = 1),
			token    TEXT NOT NULL,
			email    TEXT NOT NULL DEFAULT '',
			saved_at TEXT NOT NULL
		)`); err != nil {
		_ = db.Close()
		return nil, appErrors.New(appErrors.CodeCredentialStore, "create credentials table", err)
	}
	return db, nil
}

// Load returns the stored credential, reporting false when none is saved.
func (s *Store) Load(ctx context.Context) (Credentials, bool, error) {
	if _, err := os.Stat(s.dbPath); errors.Is(err, os.ErrNotExist) {
		return Credentials{}, false, nil
	}

	db, err := s.openDB(ctx)
	if err != nil {
		return Credentials{}, false, err
	}
	defer func() {
		_ = db.Close()
	}()

	var creds Credentials
	row := db.QueryRowContext(ctx, `SELECT token, email, saved_at FROM credentials WHERE id = 1`)
	if err := row.Scan(&creds.Token, &creds.Email, &creds.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Credentials{}, false, nil
		}
		return Credentials{}, false, appErrors.New(appErrors.CodeCredentialStore, "read credentials", err)
	}
	if strings.TrimSpace(creds.Token) == "" {
		return Credentials{}, false, nil
	}
	return creds, true, nil
}

// Save writes the credential, replacing any previous one.
func (s *Store) Save(ctx context.Context, creds Credentials) error {
	if strings.TrimSpace(creds.Token) == "" {
		return appErrors.New(appErrors.CodeCredentialStore, "refusing to save empty token", nil)
	}

	//nolint:gosec // G301: User data directory needs standard permissions
	if err := os.MkdirAll(filepath.Dir(s.dbPath), 0755); err != nil {
		return appErrors.New(appErrors.CodeCredentialStore, "create credential directory", err)
	}

	db, err := s.openDB(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	savedAt := creds.SavedAt
	if savedAt == "" {
		savedAt = time.Now().UTC().Format(time.RFC3339)
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO credentials (id, token, email, saved_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			token = excluded.token,
			email = excluded.email,
			saved_at = excluded.saved_at`,
		creds.Token, creds.Email, savedAt)
	if err != nil {
		return appErrors.New(appErrors.CodeCredentialStore, "save credentials", err)
	}
	return nil
}

// Clear removes any stored credential. Clearing an empty store is not an error.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := os.Stat(s.dbPath); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	db, err := s.openDB(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	if _, err := db.ExecContext(ctx, `DELETE FROM credentials WHERE id = 1`); err != nil {
		return appErrors.New(appErrors.CodeCredentialStore, "clear credentials", err)
	}
	return nil
}
