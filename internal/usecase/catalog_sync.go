package usecase

import (
	"context"
	"log/slog"
	"time"

	"stagefront/internal/domain"
)

// CatalogStore is the slice of the state store a sync commits into.
type CatalogStore interface {
	SetCatalog(ctx context.Context, artists []domain.Artist, events []domain.Event, source string)
}

// SyncResult summarizes a completed catalog sync.
// swagger:model SyncResult
type SyncResult struct {
	ArtistCount int       `json:"artist_count"`
	EventCount  int       `json:"event_count"`
	Source      string    `json:"source"`
	SyncedAt    time.Time `json:"synced_at"`
}

// CatalogSyncUseCase runs a fetch-and-replace cycle against the external
// catalog source.
type CatalogSyncUseCase interface {
	Sync(ctx context.Context, params SearchParams) (*SyncResult, error)
}

type catalogSyncUseCase struct {
	fetcher        DiscoveryFetcher
	store          CatalogStore
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewCatalogSyncUseCase wires the fetcher to the state store.
func NewCatalogSyncUseCase(fetcher DiscoveryFetcher, store CatalogStore, logger *slog.Logger, timeout time.Duration) CatalogSyncUseCase {
	return &catalogSyncUseCase{
		fetcher:        fetcher,
		store:          store,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// Sync fetches, normalizes, and atomically commits the catalog. On any error
// nothing is committed; concurrent syncs are not coordinated, the last commit
// wins.
func (uc *catalogSyncUseCase) Sync(ctx context.Context, params SearchParams) (*SyncResult, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.contextTimeout)
	defer cancel()

	resp, err := uc.fetcher.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	artists, events := NormalizeDiscovery(resp, now)
	uc.store.SetCatalog(ctx, artists, events, domain.SyncSourceTicketmaster)

	uc.logger.Info("catalog synced",
		"source", domain.SyncSourceTicketmaster,
		"artists", len(artists),
		"events", len(events),
	)
	return &SyncResult{
		ArtistCount: len(artists),
		EventCount:  len(events),
		Source:      domain.SyncSourceTicketmaster,
		SyncedAt:    now,
	}, nil
}
