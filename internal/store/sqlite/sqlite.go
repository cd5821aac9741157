package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/model"
	"github.com/Zachkp/portfolio/internal/store"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := applySchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// migrations run in order, each exactly once, tracked by schema_version.
var migrations = []string{
	// 1: comments
	`
CREATE TABLE IF NOT EXISTS comments (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	mood REAL NOT NULL,
	message TEXT NOT NULL DEFAULT '',
	timestamp INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_comments_timestamp ON comments(timestamp DESC);
`,
	// 2: author hash for moderation
	`ALTER TABLE comments ADD COLUMN author_hash TEXT NOT NULL DEFAULT ''`,
}

func applySchema(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		)
	`); err != nil {
		return err
	}

	var currentVersion int
	row := db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_version`)
	if err := row.Scan(&currentVersion); err != nil {
		return err
	}

	for i := currentVersion; i < len(migrations); i++ {
		if _, err := db.Exec(migrations[i]); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
		if _, err := db.Exec(`INSERT INTO schema_version (version) VALUES (?)`, i+1); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", i+1, err)
		}
	}

	return nil
}

// CreateComment assigns an id and, if unset, the current time.
func (s *Store) CreateComment(ctx context.Context, comment *model.Comment) (string, error) {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	if comment.Timestamp == 0 {
		comment.Timestamp = time.Now().UnixMilli()
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO comments (id, name, mood, message, timestamp, author_hash)
VALUES (?, ?, ?, ?, ?, ?)
`, comment.ID, comment.Name, comment.Mood, comment.Text, comment.Timestamp, comment.AuthorHash)
	if err != nil {
		return "", err
	}
	return comment.ID, nil
}

func (s *Store) GetComment(ctx context.Context, id string) (model.Comment, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, name, mood, message, timestamp, author_hash
FROM comments
WHERE id = ?
`, id)
	return scanComment(row)
}

func (s *Store) ListComments(ctx context.Context, limit int) ([]model.Comment, error) {
	// LIMIT -1 is unbounded in sqlite.
	if limit < 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, name, mood, message, timestamp, author_hash
FROM comments
ORDER BY timestamp DESC, rowid DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (s *Store) DeleteComment(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteAllComments(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM comments`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanComment(scanner interface{ Scan(dest ...any) error }) (model.Comment, error) {
	var c model.Comment
	err := scanner.Scan(&c.ID, &c.Name, &c.Mood, &c.Text, &c.Timestamp, &c.AuthorHash)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Comment{}, store.ErrNotFound
	}
	return c, err
}
