package state

import (
	"time"

	"stagefront/internal/domain"
)

// SnapshotKey is the fixed blob-store key the full application state is
// persisted under.
const SnapshotKey = "stagefront-state"

// snapshotVersion is the current snapshot envelope version. A loaded
// envelope with a different version is treated as absent, so an
// incompatible future shape falls back to seed data instead of corrupting
// rehydration.
const snapshotVersion = 1

// snapshotEnvelope is the serialized form of the full application state.
type snapshotEnvelope struct {
	Version        int                  `json:"version"`
	Artists        []domain.Artist      `json:"artists"`
	Events         []domain.Event       `json:"events"`
	Reviews        []domain.Review      `json:"reviews"`
	Reservations   []domain.Reservation `json:"reservations"`
	Filters        domain.Filters       `json:"filters"`
	LastSyncSource string               `json:"last_sync_source,omitempty"`
	LastSyncAt     *time.Time           `json:"last_sync_at,omitempty"`
}

func envelopeFromState(s State) snapshotEnvelope {
	return snapshotEnvelope{
		Version:        snapshotVersion,
		Artists:        s.Artists,
		Events:         s.Events,
		Reviews:        s.Reviews,
		Reservations:   s.Reservations,
		Filters:        s.Filters,
		LastSyncSource: s.LastSyncSource,
		LastSyncAt:     s.LastSyncAt,
	}
}

func stateFromEnvelope(env snapshotEnvelope) State {
	s := State{
		Artists:        env.Artists,
		Events:         env.Events,
		Reviews:        env.Reviews,
		Reservations:   env.Reservations,
		Filters:        env.Filters,
		LastSyncSource: env.LastSyncSource,
		LastSyncAt:     env.LastSyncAt,
	}
	if s.Filters.TypeFilter == "" {
		s.Filters = domain.DefaultFilters()
	}
	return s
}
