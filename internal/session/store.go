package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("session not found")

// Session is the one durable artifact this service owns: a cached platform
// bearer token keyed by an opaque session ID.
type Session struct {
	ID         string
	Token      string
	Email      string
	CreatedAt  time.Time
	LastSeenAt time.Time
}

type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id           TEXT PRIMARY KEY,
	token        TEXT NOT NULL,
	email        TEXT NOT NULL,
	created_at   INTEGER NOT NULL,
	last_seen_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_last_seen ON sessions(last_seen_at);
`

// OpenStore opens (and bootstraps) the session database. Use ":memory:" in
// tests.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping session db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("bootstrap session schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Create persists a freshly issued platform token and returns the session.
func (s *Store) Create(ctx context.Context, token, email string) (*Session, error) {
	now := time.Now().UTC()
	sess := &Session{
		ID:         uuid.NewString(),
		Token:      token,
		Email:      email,
		CreatedAt:  now,
		LastSeenAt: now,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, token, email, created_at, last_seen_at) VALUES (?, ?, ?, ?, ?)`,
		sess.ID, sess.Token, sess.Email, now.Unix(), now.Unix())
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	var (
		sess     Session
		created  int64
		lastSeen int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, token, email, created_at, last_seen_at FROM sessions WHERE id = ?`, id).
		Scan(&sess.ID, &sess.Token, &sess.Email, &created, &lastSeen)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	sess.CreatedAt = time.Unix(created, 0).UTC()
	sess.LastSeenAt = time.Unix(lastSeen, 0).UTC()
	return &sess, nil
}

// Touch bumps last_seen_at so idle cleanup spares active sessions.
func (s *Store) Touch(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET last_seen_at = ? WHERE id = ?`, time.Now().UTC().Unix(), id)
	return err
}

// Delete drops the session. Invoked on sign-out and on any failed profile
// probe: the credential is treated as invalid regardless of cause.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	return err
}

// DeleteIdle removes sessions not seen within ttl and returns how many.
func (s *Store) DeleteIdle(ctx context.Context, ttl time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-ttl).Unix()
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE last_seen_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete idle sessions: %w", err)
	}
	return res.RowsAffected()
}
