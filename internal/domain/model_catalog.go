package domain

import (
	"context"
	"slices"
	"time"
)

// ModelCatalogSnapshot is the locally cached list of model ids offered by the provider.
type ModelCatalogSnapshot struct {
	Models      []string
	LastUpdated time.Time
}

// IsEmpty reports whether the snapshot holds no models.
func (s ModelCatalogSnapshot) IsEmpty() bool {
	return len(s.Models) == 0
}

// IsStale reports whether the snapshot is older than maxAge at the given time.
// A snapshot without a timestamp is always stale.
func (s ModelCatalogSnapshot) IsStale(now time.Time, maxAge time.Duration) bool {
	if s.LastUpdated.IsZero() {
		return true
	}
	return now.Sub(s.LastUpdated) > maxAge
}

// Contains reports whether the model id is listed in the snapshot.
func (s ModelCatalogSnapshot) Contains(modelID string) bool {
	return slices.Contains(s.Models, modelID)
}

// ModelCatalogStore persists the model catalog snapshot.
type ModelCatalogStore interface {
	// Load reads the persisted snapshot. It returns a *NotFoundErr when nothing usable is stored,
	// which covers a missing file as well as a corrupt one.
	Load(ctx context.Context) (ModelCatalogSnapshot, error)

	// Save replaces the persisted snapshot.
	Save(ctx context.Context, snapshot ModelCatalogSnapshot) error
}

// ModelLister retrieves the ids of models offered by the provider.
type ModelLister interface {
	ListModels(ctx context.Context, credential string) ([]string, error)
}
