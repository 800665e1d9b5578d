// Package store persists generated islands in sqlite: one row per island
// holding the generation inputs, a few summary statistics and the serialized
// graph document. The schema is owned by the migrations under
// internal/db/migrations.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// ErrNotFound reports that no stored island matches the requested id.
var ErrNotFound = errors.New("island not found")

// Record is one stored island: identity, the inputs it was generated from,
// summary statistics and the serialized graph document.
type Record struct {
	ID          string
	Seed        int64
	Template    string
	Config      []byte
	Graph       []byte
	RegionCount int
	LandRatio   float64
	CreatedAt   time.Time
}

// Summary is the listing view of a stored island: everything but the config
// and the graph document.
type Summary struct {
	ID          string    `json:"id"`
	Seed        int64     `json:"seed"`
	Template    string    `json:"template"`
	RegionCount int       `json:"region_count"`
	LandRatio   float64   `json:"land_ratio"`
	CreatedAt   time.Time `json:"created_at"`
}

// SaveParams carries a freshly generated island into Save. The store assigns
// the id and the creation timestamp.
type SaveParams struct {
	Seed        int64
	Template    string
	Config      []byte
	Graph       []byte
	RegionCount int
	LandRatio   float64
}

// Store reads and writes islands through an open sqlite handle. It holds no
// state of its own, so a single Store is safe for concurrent use wherever
// the underlying *sql.DB is.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Save inserts a generated island and returns its summary.
func (s *Store) Save(ctx context.Context, params SaveParams) (*Summary, error) {
	id := uuid.NewString()
	createdAt := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO islands (island_id, seed, template, config, graph, region_count, land_ratio, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, params.Seed, params.Template, params.Config, params.Graph,
		params.RegionCount, params.LandRatio, createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save island: %w", err)
	}

	log.Debug("saved island", "island_id", id, "seed", params.Seed, "template", params.Template, "region_count", params.RegionCount)

	return &Summary{
		ID:          id,
		Seed:        params.Seed,
		Template:    params.Template,
		RegionCount: params.RegionCount,
		LandRatio:   params.LandRatio,
		CreatedAt:   createdAt,
	}, nil
}

// Get loads a full island record, graph document included.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT island_id, seed, template, config, graph, region_count, land_ratio, created_at
		FROM islands WHERE island_id = ?`, id)

	var rec Record
	err := row.Scan(&rec.ID, &rec.Seed, &rec.Template, &rec.Config, &rec.Graph,
		&rec.RegionCount, &rec.LandRatio, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load island: %w", err)
	}
	return &rec, nil
}

// List returns summaries of every stored island, newest first. Ties on the
// timestamp order by id so the listing stays stable.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT island_id, seed, template, region_count, land_ratio, created_at
		FROM islands ORDER BY created_at DESC, island_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list islands: %w", err)
	}
	defer rows.Close()

	summaries := make([]Summary, 0)
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Seed, &s.Template, &s.RegionCount, &s.LandRatio, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan island summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list islands: %w", err)
	}
	return summaries, nil
}

// Delete removes a stored island. Deleting an unknown id returns
// ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM islands WHERE island_id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete island: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete island: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	log.Debug("deleted island", "island_id", id)
	return nil
}

// Count returns the number of stored islands.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM islands`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count islands: %w", err)
	}
	return n, nil
}
