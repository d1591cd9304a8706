package trip

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
)

// Cache defines the expiring key/value store the search pipeline reads
// through. Get returns nil, nil on a miss.
type Cache interface {
	Get(ctx context.Context, origin, destination, sortBy string) ([]Trip, error)
	Set(ctx context.Context, origin, destination, sortBy string, trips []Trip) error
}

// Provider defines the upstream trip offer source.
type Provider interface {
	FetchTrips(ctx context.Context, origin, destination, sortBy string) ([]Trip, error)
}

// Searcher orchestrates one trip search: validation, cache lookup, provider
// fetch, cache fill, route filter, and sort.
type Searcher struct {
	cache    Cache
	provider Provider
	log      *slog.Logger
}

// NewSearcher constructs a Searcher with all required dependencies.
func NewSearcher(cache Cache, provider Provider, log *slog.Logger) *Searcher {
	return &Searcher{cache: cache, provider: provider, log: log}
}

// Search returns trip offers for the given parameters, filtered to exact
// route matches and sorted by the requested criterion. Validation runs
// before any cache or network access. The raw provider response is cached;
// filtering and sorting happen on every request.
func (s *Searcher) Search(ctx context.Context, params SearchParams) ([]Trip, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	candidates, err := s.cache.Get(ctx, params.Origin, params.Destination, params.SortBy)
	if err != nil {
		// A broken cache degrades to an upstream fetch.
		s.log.Error("cache get failed", "origin", params.Origin, "destination", params.Destination, "err", err)
		candidates = nil
	}

	if candidates == nil {
		s.log.Info("cache miss, fetching from provider", "origin", params.Origin, "destination", params.Destination)

		fetched, err := s.provider.FetchTrips(ctx, params.Origin, params.Destination, params.SortBy)
		if err != nil {
			var te *Error
			if errors.As(err, &te) {
				s.log.Error("provider returned failure", "status", te.Status, "err", err)
				return nil, te
			}
			s.log.Error("provider fetch failed", "origin", params.Origin, "destination", params.Destination, "err", err)
			return nil, E(KindInternal, "internal server error")
		}

		if err := s.cache.Set(ctx, params.Origin, params.Destination, params.SortBy, fetched); err != nil {
			s.log.Warn("cache set failed", "origin", params.Origin, "destination", params.Destination, "err", err)
		}
		candidates = fetched
	} else {
		s.log.Info("serving trips from cache", "origin", params.Origin, "destination", params.Destination)
	}

	filtered := filterByRoute(candidates, params.Origin, params.Destination)
	return SortTrips(filtered, params.SortBy), nil
}

// filterByRoute keeps only trips whose origin and destination exactly match
// the requested route. Comparison is against the uppercased request values,
// guarding against providers returning extra entries.
func filterByRoute(trips []Trip, origin, destination string) []Trip {
	origin = strings.ToUpper(origin)
	destination = strings.ToUpper(destination)

	filtered := make([]Trip, 0, len(trips))
	for _, t := range trips {
		if t.Origin == origin && t.Destination == destination {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// SortTrips orders trips by the given criterion: fastest sorts ascending by
// duration, cheapest ascending by cost. Any other value leaves the order
// untouched. The sort is stable so equal-key trips keep their relative order.
func SortTrips(trips []Trip, sortBy string) []Trip {
	switch sortBy {
	case SortFastest:
		sort.SliceStable(trips, func(i, j int) bool {
			return trips[i].Duration < trips[j].Duration
		})
	case SortCheapest:
		sort.SliceStable(trips, func(i, j int) bool {
			return trips[i].Cost < trips[j].Cost
		})
	}
	return trips
}
