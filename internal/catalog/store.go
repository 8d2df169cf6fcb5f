package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"vidcat/internal/config"
)

// ErrDuplicatePath is returned when inserting a record whose path already exists.
var ErrDuplicatePath = errors.New("record path already exists")

// ErrNotFound is returned when a lookup by path matches no record.
var ErrNotFound = errors.New("record not found")

// Store manages catalog persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the catalog database and verifies the schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the catalog database file location.
func (s *Store) Path() string {
	return s.path
}

const recordColumns = "path, name, thumbnail_path, preview_path, codec, width, height, fps, tags"

// InsertIfAbsent persists the record unless its path is already cataloged.
// The check and insert are a single statement, so concurrent ingestion of
// overlapping path sets cannot double-insert. The first return value reports
// whether a row was written.
func (s *Store) InsertIfAbsent(ctx context.Context, rec Record) (bool, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO records (`+recordColumns+`, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(path) DO NOTHING`,
		rec.Path, rec.Name, rec.ThumbnailPath, rec.PreviewPath, rec.Codec,
		rec.Width, rec.Height, rec.FPS, rec.Tags,
		timestamp, timestamp,
	)
	if err != nil {
		return false, fmt.Errorf("insert record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// Insert persists a new record and fails loudly on a duplicate path.
func (s *Store) Insert(ctx context.Context, rec Record) error {
	inserted, err := s.InsertIfAbsent(ctx, rec)
	if err != nil {
		return err
	}
	if !inserted {
		return fmt.Errorf("%w: %s", ErrDuplicatePath, rec.Path)
	}
	return nil
}

// Exists reports whether a record with the path is already cataloged.
func (s *Store) Exists(ctx context.Context, path string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM records WHERE path = ?`, path).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check record exists: %w", err)
	}
	return true, nil
}

// GetByPath fetches a single record.
func (s *Store) GetByPath(ctx context.Context, path string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM records WHERE path = ?`, path)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	return &rec, nil
}

// GetAll returns every record ordered by path.
func (s *Store) GetAll(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+recordColumns+` FROM records ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("scan records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// UpdateTags rewrites the tags field for the record with the path. Tags are
// the only field mutated after creation.
func (s *Store) UpdateTags(ctx context.Context, path, tags string) error {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(ctx,
		`UPDATE records SET tags = ?, updated_at = ? WHERE path = ?`,
		strings.TrimSpace(tags), timestamp, path,
	)
	if err != nil {
		return fmt.Errorf("update tags: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return nil
}

// Remove deletes a record by path. Deletion policy lives with the caller.
func (s *Store) Remove(ctx context.Context, path string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE path = ?`, path)
	if err != nil {
		return fmt.Errorf("remove record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	err := row.Scan(
		&rec.Path, &rec.Name, &rec.ThumbnailPath, &rec.PreviewPath,
		&rec.Codec, &rec.Width, &rec.Height, &rec.FPS, &rec.Tags,
	)
	return rec, err
}
