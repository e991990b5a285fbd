package tables

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ErrTableNotFound is returned by Store.Load for unknown table names.
var ErrTableNotFound = errors.New("table not found")

// Store keeps state tables in a SQL database.
type Store struct {
	db *sql.DB
}

// OpenStore opens the sqlite database named by cfg.
func OpenStore(cfg Config) (*Store, error) {
	db, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		return nil, err
	}
	s, err := NewStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewStore uses an already opened database.
func NewStore(db *sql.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS state_tables (
			id TEXT PRIMARY KEY,
			name TEXT UNIQUE
		);`,
		`CREATE TABLE IF NOT EXISTS state_indexes (
			table_id TEXT,
			key TEXT,
			col INTEGER
		);`,
		`CREATE TABLE IF NOT EXISTS state_rows (
			table_id TEXT,
			position INTEGER,
			temperature REAL,
			pressure REAL,
			volume_liquid REAL,
			volume_vapor REAL,
			energy_liquid REAL,
			energy_vaporization REAL,
			energy_vapor REAL,
			enthalpy_liquid REAL,
			enthalpy_vaporization REAL,
			enthalpy_vapor REAL,
			entropy_liquid REAL,
			entropy_vaporization REAL,
			entropy_vapor REAL
		);`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// Save stores t under its name, replacing a previously stored table of the
// same name.
func (s *Store) Save(ctx context.Context, t *Table) (uuid.UUID, error) {
	id := uuid.New()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer tx.Rollback()

	if err := deleteTable(ctx, tx, t.name); err != nil {
		return uuid.Nil, err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO state_tables (id, name) VALUES (?, ?)`, id.String(), t.name); err != nil {
		return uuid.Nil, err
	}
	for _, k := range t.Keys() {
		c, _ := t.Index(k)
		if _, err := tx.ExecContext(ctx, `INSERT INTO state_indexes (table_id, key, col) VALUES (?, ?, ?)`, id.String(), string(k), int(c)); err != nil {
			return uuid.Nil, err
		}
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO state_rows (table_id, position, temperature, pressure,
		volume_liquid, volume_vapor, energy_liquid, energy_vaporization, energy_vapor,
		enthalpy_liquid, enthalpy_vaporization, enthalpy_vapor,
		entropy_liquid, entropy_vaporization, entropy_vapor)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return uuid.Nil, err
	}
	defer stmt.Close()
	for i, r := range t.rows {
		args := []any{id.String(), i}
		for _, v := range r {
			args = append(args, v)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return uuid.Nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return uuid.Nil, err
	}
	log.Info("stored table {{table}} as {{id}}", "table", t.name, "id", id, "rows", len(t.rows))
	return id, nil
}

func deleteTable(ctx context.Context, tx *sql.Tx, name string) error {
	var id string
	err := tx.QueryRowContext(ctx, `SELECT id FROM state_tables WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, q := range []string{
		`DELETE FROM state_rows WHERE table_id = ?`,
		`DELETE FROM state_indexes WHERE table_id = ?`,
		`DELETE FROM state_tables WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the table stored under name.
func (s *Store) Load(ctx context.Context, name string) (*Table, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM state_tables WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrTableNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	opts, err := s.loadIndexes(ctx, id)
	if err != nil {
		return nil, err
	}
	rows, err := s.loadRows(ctx, id)
	if err != nil {
		return nil, err
	}
	log.Debug("loaded table {{table}}", "table", name, "rows", len(rows))
	return New(name, rows, opts...)
}

func (s *Store) loadIndexes(ctx context.Context, id string) ([]Option, error) {
	rs, err := s.db.QueryContext(ctx, `SELECT key, col FROM state_indexes WHERE table_id = ?`, id)
	if err != nil {
		return nil, err
	}
	defer rs.Close()
	var opts []Option
	for rs.Next() {
		var key string
		var col int
		if err := rs.Scan(&key, &col); err != nil {
			return nil, err
		}
		opts = append(opts, WithIndex(Key(key), Column(col)))
	}
	return opts, rs.Err()
}

func (s *Store) loadRows(ctx context.Context, id string) ([]Row, error) {
	rs, err := s.db.QueryContext(ctx, `SELECT temperature, pressure,
		volume_liquid, volume_vapor, energy_liquid, energy_vaporization, energy_vapor,
		enthalpy_liquid, enthalpy_vaporization, enthalpy_vapor,
		entropy_liquid, entropy_vaporization, entropy_vapor
		FROM state_rows WHERE table_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rs.Close()
	var rows []Row
	for rs.Next() {
		var r Row
		dest := make([]any, len(r))
		for i := range r {
			dest[i] = &r[i]
		}
		if err := rs.Scan(dest...); err != nil {
			return nil, err
		}
		rows = append(rows, r)
	}
	return rows, rs.Err()
}
