package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voyago/trip-service/internal/trip"
)

// ErrDuplicateID is returned when inserting a trip whose id already exists.
var ErrDuplicateID = errors.New("trip id already exists")

// uniqueViolation is the Postgres error code for unique constraint failures.
const uniqueViolation = "23505"

// Querier abstracts the subset of pgxpool.Pool used by Repository.
// This allows injection of a mock in tests.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository provides database access for saved trips.
type Repository struct {
	q Querier
}

// NewRepository constructs a Repository backed by the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

// InsertTrip saves a trip. Returns ErrDuplicateID when the id is taken.
func (r *Repository) InsertTrip(ctx context.Context, t trip.Trip) error {
	const q = `
		INSERT INTO trips (id, origin, destination, cost, duration, type, display_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if _, err := r.q.Exec(ctx, q, t.ID, t.Origin, t.Destination, t.Cost, t.Duration, t.Type, t.DisplayName); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateID
		}
		return fmt.Errorf("inserting trip %s: %w", t.ID, err)
	}

	return nil
}

// CountTrips returns the number of saved trips.
func (r *Repository) CountTrips(ctx context.Context) (int, error) {
	var count int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM trips`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting trips: %w", err)
	}
	return count, nil
}

// ListTrips returns up to limit saved trips starting at offset, in
// insertion order.
func (r *Repository) ListTrips(ctx context.Context, offset, limit int) ([]trip.Trip, error) {
	const q = `
		SELECT id, origin, destination, cost, duration, type, display_name
		FROM trips
		ORDER BY created_at, id
		OFFSET $1 LIMIT $2
	`

	rows, err := r.q.Query(ctx, q, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("querying trips: %w", err)
	}
	defer rows.Close()

	trips := []trip.Trip{}
	for rows.Next() {
		var t trip.Trip
		if err := rows.Scan(
			&t.ID,
			&t.Origin,
			&t.Destination,
			&t.Cost,
			&t.Duration,
			&t.Type,
			&t.DisplayName,
		); err != nil {
			return nil, fmt.Errorf("scanning trip row: %w", err)
		}
		trips = append(trips, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trip rows: %w", err)
	}

	return trips, nil
}

// DeleteTrip removes a saved trip by id. The bool reports whether a row
// was actually deleted.
func (r *Repository) DeleteTrip(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("deleting trip %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
