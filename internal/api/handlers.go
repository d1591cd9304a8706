package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/voyago/trip-service/internal/storage"
	"github.com/voyago/trip-service/internal/trip"
)

// Success messages returned alongside response data.
const (
	msgTripsFetched = "Trips fetched successfully"
	msgTripSaved    = "Trip saved successfully"
	msgTripDeleted  = "Trip deleted successfully"
)

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	searcher TripSearcher
	lister   TripLister
	store    TripStore
	log      *slog.Logger
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(searcher TripSearcher, lister TripLister, store TripStore, log *slog.Logger) *Handlers {
	return &Handlers{
		searcher: searcher,
		lister:   lister,
		store:    store,
		log:      log,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError translates a pipeline failure into a response. Domain errors
// carry their own status and a client-safe message; anything else becomes a
// generic 500 with the detail kept server-side.
func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	var te *trip.Error
	if errors.As(err, &te) {
		writeJSON(w, te.HTTPStatus(), map[string]string{"error": te.Message})
		return
	}
	h.log.Error("request failed", "err", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

// SearchTrips handles GET /api/v1/search-trips.
func (h *Handlers) SearchTrips(w http.ResponseWriter, r *http.Request) {
	params := trip.SearchParams{
		Origin:      r.URL.Query().Get("origin"),
		Destination: r.URL.Query().Get("destination"),
		SortBy:      r.URL.Query().Get("sort_by"),
	}

	trips, err := h.searcher.Search(r.Context(), params)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": msgTripsFetched, "data": trips})
}

// SaveTrip handles POST /api/v1/trips.
func (h *Handlers) SaveTrip(w http.ResponseWriter, r *http.Request) {
	var t trip.Trip
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := t.ValidateForSave(); err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.store.InsertTrip(r.Context(), t); err != nil {
		if errors.Is(err, storage.ErrDuplicateID) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "trip with this id already exists"})
			return
		}
		h.log.Error("insert trip failed", "id", t.ID, "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"message": msgTripSaved, "data": t})
}

// ListTrips handles GET /api/v1/trips. Non-numeric or sub-1 page/limit
// values fall back to the listing defaults.
func (h *Handlers) ListTrips(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.lister.List(r.Context(), page, limit)
	if err != nil {
		h.log.Error("list trips failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":    msgTripsFetched,
		"data":       result.Trips,
		"pagination": result.Pagination,
	})
}

// DeleteTrip handles DELETE /api/v1/trips/{id}.
func (h *Handlers) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.store.DeleteTrip(r.Context(), id)
	if err != nil {
		h.log.Error("delete trip failed", "id", id, "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Trip not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": msgTripDeleted})
}

type dbPinger interface {
	Ping(ctx context.Context) error
}

type redisPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlerFunc returns an http.HandlerFunc that checks db and redis connectivity.
func HealthHandlerFunc(db dbPinger, redis redisPinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		dbStatus := "ok"
		redisStatus := "ok"

		if err := db.Ping(ctx); err != nil {
			log.Error("health check: db ping failed", "err", err)
			dbStatus = "error"
			status = http.StatusServiceUnavailable
		}

		if err := redis.Ping(ctx); err != nil {
			log.Error("health check: redis ping failed", "err", err)
			redisStatus = "error"
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, map[string]string{
			"status": func() string {
				if status == http.StatusOK {
					return "ok"
				}
				return "degraded"
			}(),
			"db":    dbStatus,
			"redis": redisStatus,
		})
	}
}
