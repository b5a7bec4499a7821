// Package state holds the single authoritative application state: the synced
// catalog, user-submitted reviews and reservations, the active filter
// selection, and last-sync metadata. All mutations go through the Store,
// which persists the full snapshot after every committed change.
package state

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"stagefront/internal/domain"
)

// State is one immutable view of the application state. Snapshot returns a
// copy; readers never observe a half-applied mutation.
type State struct {
	Artists        []domain.Artist
	Events         []domain.Event
	Reviews        []domain.Review
	Reservations   []domain.Reservation
	Filters        domain.Filters
	LastSyncSource string
	LastSyncAt     *time.Time
}

// SeedState returns the initial state used when no persisted snapshot exists:
// the static seed catalog plus empty reviews, reservations, and default filters.
func SeedState() State {
	return State{
		Artists:      domain.SeedArtists(),
		Events:       domain.SeedEvents(),
		Reviews:      []domain.Review{},
		Reservations: []domain.Reservation{},
		Filters:      domain.DefaultFilters(),
	}
}

// LoadInitialState rehydrates the application state from the snapshot
// repository. A missing snapshot, a decode failure, or an unknown envelope
// version all fall back to SeedState.
func LoadInitialState(ctx context.Context, snapshots domain.SnapshotRepository, logger *slog.Logger) State {
	data, err := snapshots.Load(ctx, SnapshotKey)
	if err != nil {
		if err != domain.ErrNotFound {
			logger.Warn("failed to load snapshot, falling back to seed data", "err", err)
		}
		return SeedState()
	}

	var env snapshotEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		logger.Warn("failed to decode snapshot, falling back to seed data", "err", err)
		return SeedState()
	}
	if env.Version != snapshotVersion {
		logger.Warn("snapshot version mismatch, falling back to seed data",
			"got", env.Version, "want", snapshotVersion)
		return SeedState()
	}
	return stateFromEnvelope(env)
}

// Store is the process-wide mutable state holder. It is owned by the
// composition root and injected into consumers; there is no ambient
// singleton.
type Store struct {
	mu        sync.RWMutex
	state     State
	snapshots domain.SnapshotRepository
	logger    *slog.Logger

	now   func() time.Time
	newID func() string
}

// New builds a Store starting from initial. Every committed mutation is
// serialized and saved to snapshots under SnapshotKey.
func New(initial State, snapshots domain.SnapshotRepository, logger *slog.Logger) *Store {
	return &Store{
		state:     initial,
		snapshots: snapshots,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

// Snapshot returns a copy of the current state. The contained slices are
// copied so callers cannot mutate the store through them.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyStateLocked()
}

// EventByID looks the event up in the current catalog.
func (s *Store) EventByID(id string) (domain.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ev := range s.state.Events {
		if ev.ID == id {
			return ev, true
		}
	}
	return domain.Event{}, false
}

// SetCatalog atomically replaces both catalog collections and stamps the
// sync metadata. Input is trusted: validation and dedup are the normalizer's
// responsibility.
func (s *Store) SetCatalog(ctx context.Context, artists []domain.Artist, events []domain.Event, source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.state.Artists = artists
	s.state.Events = events
	s.state.LastSyncSource = source
	s.state.LastSyncAt = &now
	s.persistLocked(ctx)
}

// SetFilters shallow-merges the patch into the current filter selection.
func (s *Store) SetFilters(ctx context.Context, patch domain.FilterPatch) domain.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Filters = patch.Apply(s.state.Filters)
	s.persistLocked(ctx)
	return s.state.Filters
}

// AddReview appends a new review with a generated id and creation timestamp.
// Fields are taken as given; range checks happen at the submission boundary.
func (s *Store) AddReview(ctx context.Context, in domain.ReviewInput) domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	review := domain.Review{
		ID:         s.newID(),
		TargetType: in.TargetType,
		TargetID:   in.TargetID,
		Rating:     in.Rating,
		Author:     in.Author,
		Comment:    in.Comment,
		CreatedAt:  s.now(),
	}
	s.state.Reviews = append(s.state.Reviews, review)
	s.persistLocked(ctx)
	return review
}

// AddReservation appends a new reservation, same discipline as AddReview.
func (s *Store) AddReservation(ctx context.Context, in domain.ReservationInput) domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	reservation := domain.Reservation{
		ID:        s.newID(),
		EventID:   in.EventID,
		Name:      in.Name,
		Email:     in.Email,
		Qty:       in.Qty,
		CreatedAt: s.now(),
	}
	s.state.Reservations = append(s.state.Reservations, reservation)
	s.persistLocked(ctx)
	return reservation
}

// persistLocked serializes the full state and saves it under SnapshotKey.
// A save failure is logged but never rolls back the in-memory commit.
func (s *Store) persistLocked(ctx context.Context) {
	if s.snapshots == nil {
		return
	}
	data, err := json.Marshal(envelopeFromState(s.copyStateLocked()))
	if err != nil {
		s.logger.Error("failed to serialize state snapshot", "err", err)
		return
	}
	if err := s.snapshots.Save(ctx, SnapshotKey, data); err != nil {
		s.logger.Error("failed to persist state snapshot", "err", err)
	}
}

func (s *Store) copyStateLocked() State {
	out := s.state
	out.Artists = append([]domain.Artist(nil), s.state.Artists...)
	out.Events = append([]domain.Event(nil), s.state.Events...)
	out.Reviews = append([]domain.Review(nil), s.state.Reviews...)
	out.Reservations = append([]domain.Reservation(nil), s.state.Reservations...)
	return out
}

// String implements fmt.Stringer for debug logging.
func (s *State) String() string {
	return fmt.Sprintf("state{artists=%d events=%d reviews=%d reservations=%d}",
		len(s.Artists), len(s.Events), len(s.Reviews), len(s.Reservations))
}
