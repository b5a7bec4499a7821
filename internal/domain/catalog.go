package domain

import "context"

// SyncSourceTicketmaster names the Ticketmaster Discovery API as a catalog
// sync source.
const SyncSourceTicketmaster = "ticketmaster"

// Catalog bundles the two collections replaced together on every sync.
type Catalog struct {
	Artists []Artist `json:"artists"`
	Events  []Event  `json:"events"`
}

// DedupeByID removes entries whose id was already seen, keeping first-seen
// order. Later duplicates are dropped in full, never merged. The operation
// is idempotent.
func DedupeByID[T any](items []T, id func(T) string) []T {
	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		key := id(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

// SnapshotRepository is the opaque key-value blob store the state store
// persists its snapshot into. Load returns ErrNotFound when no blob exists
// under key.
type SnapshotRepository interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}
