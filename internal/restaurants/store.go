// Package restaurants persists restaurant payloads and exposes the
// editor's REST API over them.
package restaurants

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/menusmith/menusmith/internal/db"
	"github.com/menusmith/menusmith/internal/menu"
)

// Store manages persistence of restaurants.
type Store struct {
	db *db.DB
}

// NewStore creates a new restaurant store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record is a stored restaurant with its row metadata.
type Record struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Restaurant *menu.Restaurant `json:"restaurant"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// Create stores a new restaurant. A missing id gets a fresh uuid — ids
// are allocated here, never derived from the clock, so persisted data
// stays reproducible.
func (s *Store) Create(ctx context.Context, r *menu.Restaurant) (*Record, error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	menu.Normalize(r)

	payload, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encoding restaurant: %w", err)
	}

	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO restaurants (id, name, payload, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.Info.Name, string(payload), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting restaurant: %w", err)
	}

	return &Record{ID: r.ID, Name: r.Info.Name, Restaurant: r, CreatedAt: now, UpdatedAt: now}, nil
}

// GetByID retrieves a restaurant by id. Returns (nil, nil) when absent.
func (s *Store) GetByID(ctx context.Context, id string) (*Record, error) {
	var rec Record
	var payload string

	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, payload, created_at, updated_at FROM restaurants WHERE id = ?`, id,
	).Scan(&rec.ID, &rec.Name, &payload, &rec.CreatedAt, &rec.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting restaurant: %w", err)
	}

	var r menu.Restaurant
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return nil, fmt.Errorf("decoding restaurant %s: %w", id, err)
	}
	// Older payloads may predate newer settings blocks.
	menu.Normalize(&r)
	rec.Restaurant = &r
	return &rec, nil
}

// List returns all restaurants, newest first, without payloads decoded.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM restaurants ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing restaurants: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning restaurant: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Update replaces a restaurant's payload. The id in the payload is
// forced to the row id; ids are immutable once allocated.
func (s *Store) Update(ctx context.Context, id string, r *menu.Restaurant) (*Record, error) {
	r.ID = id
	menu.Normalize(r)

	payload, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encoding restaurant: %w", err)
	}

	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`UPDATE restaurants SET name = ?, payload = ?, updated_at = ? WHERE id = ?`,
		r.Info.Name, string(payload), now, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating restaurant: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return nil, nil
	}

	return &Record{ID: id, Name: r.Info.Name, Restaurant: r, UpdatedAt: now}, nil
}

// Delete removes a restaurant and, via the foreign key, its export log.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM restaurants WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting restaurant: %w", err)
	}
	return nil
}

// RecordExport logs one export of a restaurant's document.
func (s *Store) RecordExport(ctx context.Context, restaurantID string, size int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO exports (id, restaurant_id, bytes) VALUES (?, ?, ?)`,
		uuid.New().String(), restaurantID, size,
	)
	if err != nil {
		return fmt.Errorf("recording export: %w", err)
	}
	return nil
}

// ExportCount returns how many times a restaurant has been exported.
func (s *Store) ExportCount(ctx context.Context, restaurantID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM exports WHERE restaurant_id = ?`, restaurantID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting exports: %w", err)
	}
	return n, nil
}
