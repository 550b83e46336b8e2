package toolstore

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tirithen/cnccoder/internal/geom"
	"github.com/tirithen/cnccoder/internal/tool"
)

//go:embed schema.sql
var schemaSQL string

// ErrNotFound is returned when the catalog has no tool under the
// requested name.
var ErrNotFound = errors.New("tool not found")

// Entry is one named tool in the catalog.
type Entry struct {
	Name string
	Tool tool.Tool
}

// Store is a SQLite backed tool catalog.
type Store struct {
	db *sql.DB
}

// Open creates or opens a catalog database at the given path. The
// path ":memory:" opens a throwaway in-memory catalog.
//
// The database is configured with WAL mode, NORMAL synchronous mode
// and a 5-second busy timeout. Opening is idempotent.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to catalog: %w", err)
	}

	// SQLite allows a single writer, keep one connection to avoid
	// SQLITE_BUSY and to keep :memory: catalogs on one database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("execute %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply catalog schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the catalog database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Put stores the tool under the given name, replacing any previous
// tool with that name.
func (s *Store) Put(ctx context.Context, name string, t tool.Tool) error {
	if name == "" {
		return errors.New("tool name must not be empty")
	}
	if err := validate(t); err != nil {
		return fmt.Errorf("tool %q: %w", name, err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tools (name, shape, units, length, diameter, angle, direction, spindle_speed, feed_rate, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			shape = excluded.shape,
			units = excluded.units,
			length = excluded.length,
			diameter = excluded.diameter,
			angle = excluded.angle,
			direction = excluded.direction,
			spindle_speed = excluded.spindle_speed,
			feed_rate = excluded.feed_rate,
			updated_at = excluded.updated_at`,
		name, string(t.Shape), string(t.Units), t.Length, t.Diameter, t.Angle,
		string(t.Direction), t.SpindleSpeed, t.FeedRate,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("store tool %q: %w", name, err)
	}
	return nil
}

// Get returns the tool stored under the given name. ErrNotFound is
// returned when the name is unknown.
func (s *Store) Get(ctx context.Context, name string) (tool.Tool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT shape, units, length, diameter, angle, direction, spindle_speed, feed_rate
		FROM tools WHERE name = ?`, name)

	t, err := scanTool(row)
	if errors.Is(err, sql.ErrNoRows) {
		return tool.Tool{}, fmt.Errorf("tool %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return tool.Tool{}, fmt.Errorf("load tool %q: %w", name, err)
	}
	return t, nil
}

// List returns every catalog entry sorted by name.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, shape, units, length, diameter, angle, direction, spindle_speed, feed_rate
		FROM tools ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var shape, units, direction string
		err := rows.Scan(&entry.Name, &shape, &units, &entry.Tool.Length, &entry.Tool.Diameter,
			&entry.Tool.Angle, &direction, &entry.Tool.SpindleSpeed, &entry.Tool.FeedRate)
		if err != nil {
			return nil, fmt.Errorf("scan tool row: %w", err)
		}
		entry.Tool.Shape = tool.Shape(shape)
		entry.Tool.Units = geom.Units(units)
		entry.Tool.Direction = geom.Direction(direction)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	return entries, nil
}

// Delete removes the tool stored under the given name. ErrNotFound
// is returned when the name is unknown.
func (s *Store) Delete(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tools WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete tool %q: %w", name, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete tool %q: %w", name, err)
	}
	if affected == 0 {
		return fmt.Errorf("tool %q: %w", name, ErrNotFound)
	}
	return nil
}

func scanTool(row *sql.Row) (tool.Tool, error) {
	var t tool.Tool
	var shape, units, direction string
	err := row.Scan(&shape, &units, &t.Length, &t.Diameter, &t.Angle,
		&direction, &t.SpindleSpeed, &t.FeedRate)
	if err != nil {
		return tool.Tool{}, err
	}
	t.Shape = tool.Shape(shape)
	t.Units = geom.Units(units)
	t.Direction = geom.Direction(direction)
	return t, nil
}

func validate(t tool.Tool) error {
	if !t.Shape.Valid() {
		return fmt.Errorf("unknown shape %q", t.Shape)
	}
	if !t.Units.Valid() {
		return fmt.Errorf("unknown units %q", t.Units)
	}
	if !t.Direction.Valid() {
		return fmt.Errorf("unknown direction %q", t.Direction)
	}
	if t.Diameter <= 0 {
		return errors.New("diameter must be positive")
	}
	if t.Length <= 0 {
		return errors.New("length must be positive")
	}
	return nil
}
