package trip

import (
	"context"
	"fmt"
)

// Store defines the persistent saved-trip reads the listing pipeline needs.
type Store interface {
	CountTrips(ctx context.Context) (int, error)
	ListTrips(ctx context.Context, offset, limit int) ([]Trip, error)
}

// Lister returns pages of saved trips with pagination metadata that never
// points past the last page.
type Lister struct {
	store Store
}

// NewLister constructs a Lister backed by the given store.
func NewLister(store Store) *Lister {
	return &Lister{store: store}
}

// List returns the requested page of saved trips in insertion order.
// Sub-1 page or limit values fall back to the defaults. A page beyond the
// end is clamped to the last page. An empty store yields an empty trip
// list with totalPages = 1 and currentPage = 1. Store failures propagate
// to the caller unmasked.
func (l *Lister) List(ctx context.Context, page, limit int) (ListResult, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	total, err := l.store.CountTrips(ctx)
	if err != nil {
		return ListResult{}, fmt.Errorf("counting trips: %w", err)
	}

	totalPages := 1
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	current := page
	if current > totalPages {
		current = totalPages
	}

	trips := []Trip{}
	if total > 0 {
		offset := (current - 1) * limit
		trips, err = l.store.ListTrips(ctx, offset, limit)
		if err != nil {
			return ListResult{}, fmt.Errorf("listing trips: %w", err)
		}
	}

	return ListResult{
		Trips: trips,
		Pagination: Pagination{
			TotalTrips:  total,
			CurrentPage: current,
			TotalPages:  totalPages,
			Limit:       limit,
		},
	}, nil
}
