// Package inbox keeps an optional local archive of contact submissions.
package inbox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danishanwar/portfolio/internal/contact"
	"github.com/danishanwar/portfolio/internal/db"
)

// timeLayout sorts lexically in chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// ErrNotFound is returned by Get for an unknown ID.
var ErrNotFound = errors.New("submission not found")

// Entry is one archived submission.
type Entry struct {
	ID         string
	ReceivedAt time.Time
	Name       string
	Email      string
	Message    string
	RemoteAddr string
}

// Store archives submissions in SQLite.
type Store struct {
	db  *db.DB
	now func() time.Time
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database, now: time.Now}
}

// Record archives an accepted submission under a new UUID.
func (s *Store) Record(ctx context.Context, sub contact.Submission) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_submissions (id, received_at, name, email, message, remote_addr)
		VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.New().String(),
		s.now().UTC().Format(timeLayout),
		sub.Name,
		sub.Email,
		sub.Message,
		contact.RemoteAddr(ctx),
	)
	if err != nil {
		return fmt.Errorf("inserting submission: %w", err)
	}
	return nil
}

// Get retrieves a single submission.
func (s *Store) Get(ctx context.Context, id string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, received_at, name, email, message, remote_addr
		FROM contact_submissions WHERE id = ?`, id)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

// List returns the newest submissions first. A non-positive limit returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT id, received_at, name, email, message, remote_addr
		FROM contact_submissions ORDER BY received_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying submissions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// Count returns the number of archived submissions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_submissions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting submissions: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (*Entry, error) {
	var (
		e          Entry
		receivedAt string
	)
	if err := sc.Scan(&e.ID, &receivedAt, &e.Name, &e.Email, &e.Message, &e.RemoteAddr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning submission: %w", err)
	}
	t, err := time.Parse(timeLayout, receivedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing received_at %q: %w", receivedAt, err)
	}
	e.ReceivedAt = t
	return &e, nil
}
