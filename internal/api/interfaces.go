package api

import (
	"context"

	"github.com/voyago/trip-service/internal/trip"
)

// TripSearcher defines the search pipeline needed by handlers.
type TripSearcher interface {
	Search(ctx context.Context, params trip.SearchParams) ([]trip.Trip, error)
}

// TripLister defines the listing pipeline needed by handlers.
type TripLister interface {
	List(ctx context.Context, page, limit int) (trip.ListResult, error)
}

// TripStore defines the storage writes needed by handlers.
type TripStore interface {
	InsertTrip(ctx context.Context, t trip.Trip) error
	DeleteTrip(ctx context.Context, id string) (bool, error)
}
