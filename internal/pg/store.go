package pg

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
)

// Store mirrors engine state into Postgres: one table per entity holding
// the record id, creation time and the payload as jsonb.
type Store struct {
	db *sql.DB
}

// Open connects and pings. The pool tuning is modest; wooridb mirrors
// synchronously from a single server process.
func Open(url string) (*Store, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, err
	}
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// EnsureEntity creates the entity's table (and the wooridb schema) if
// missing. Safe to call repeatedly; duplicate-object errors from racing
// creators are tolerated.
func (s *Store) EnsureEntity(name string) error {
	return s.applyDDL(entityDDL(name))
}

// InsertRecord writes one mirrored row.
func (s *Store) InsertRecord(entity, id string, createdAt time.Time, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("payload encode failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stmt := fmt.Sprintf(
		`INSERT INTO %s (id, created_at, payload) VALUES ($1, $2, $3)`,
		tableIdent(entity),
	)
	if _, err := s.db.ExecContext(ctx, stmt, id, createdAt, body); err != nil {
		return fmt.Errorf("mirror insert into %s failed: %w", entity, err)
	}
	return nil
}

// duplicate-object SQLSTATEs: schema, table, generic object
var duplicateCodes = map[string]struct{}{
	"42P06": {}, "42P07": {}, "42710": {},
}

func (s *Store) applyDDL(stmts []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				if _, dup := duplicateCodes[pgErr.Code]; dup {
					continue
				}
			}
			return fmt.Errorf("DDL apply failed: %w", err)
		}
	}
	return nil
}
