package usecases

import (
	"context"
	"errors"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/telemetry"
)

// ModelCatalog gates which model identifiers are accepted by the operations.
type ModelCatalog interface {
	// List returns the cached model ids, refreshing them first when the cache is missing or stale.
	// A stale list is still served when the refresh fails.
	List(ctx context.Context, credential string) []string

	// Refresh fetches the model ids from the provider and replaces the cache.
	// Failures are logged and yield an empty list.
	Refresh(ctx context.Context, credential string) []string

	// Confirm reports whether the model id is known, refreshing once when it is not.
	Confirm(ctx context.Context, modelID, credential string) bool
}

// ModelCatalogImpl implements the ModelCatalog use case.
type ModelCatalogImpl struct {
	store        domain.ModelCatalogStore
	lister       domain.ModelLister
	timeProvider domain.CurrentTimeProvider
	maxAge       time.Duration
	logger       *log.Logger

	// refreshMu serializes refreshes so the store and the snapshot are written in the same order.
	refreshMu sync.Mutex
	mu        sync.RWMutex
	loaded    bool
	snapshot  domain.ModelCatalogSnapshot
}

// NewModelCatalogImpl creates a new ModelCatalogImpl instance.
func NewModelCatalogImpl(
	store domain.ModelCatalogStore,
	lister domain.ModelLister,
	timeProvider domain.CurrentTimeProvider,
	maxAge time.Duration,
	logger *log.Logger,
) *ModelCatalogImpl {
	return &ModelCatalogImpl{
		store:        store,
		lister:       lister,
		timeProvider: timeProvider,
		maxAge:       maxAge,
		logger:       logger,
	}
}

// List returns the cached model ids, refreshing them first when needed.
func (mc *ModelCatalogImpl) List(ctx context.Context, credential string) []string {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	models, _ := mc.list(spanCtx, credential)
	return models
}

// Refresh fetches the model ids from the provider, sorts and persists them.
func (mc *ModelCatalogImpl) Refresh(ctx context.Context, credential string) []string {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	models, err := mc.refresh(spanCtx, credential)
	telemetry.RecordErrorAndStatus(span, err)
	return models
}

// Confirm reports whether the model id is known.
// When it is absent from the cached list a single refresh is forced before answering.
func (mc *ModelCatalogImpl) Confirm(ctx context.Context, modelID, credential string) bool {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	models, refreshed := mc.list(spanCtx, credential)
	if slices.Contains(models, modelID) {
		return true
	}
	if refreshed {
		return false
	}

	models, err := mc.refresh(spanCtx, credential)
	telemetry.RecordErrorAndStatus(span, err)
	return slices.Contains(models, modelID)
}

// list returns the usable model ids and whether a refresh was performed to obtain them.
func (mc *ModelCatalogImpl) list(ctx context.Context, credential string) ([]string, bool) {
	snapshot := mc.current(ctx)
	if !snapshot.IsEmpty() && !snapshot.IsStale(mc.timeProvider.Now(), mc.maxAge) {
		return slices.Clone(snapshot.Models), false
	}

	if credential == "" && !snapshot.IsEmpty() {
		mc.logger.Printf("ModelCatalog: cache is stale and no credential is available, serving %d cached models", len(snapshot.Models))
		return slices.Clone(snapshot.Models), false
	}

	models, err := mc.refresh(ctx, credential)
	if err != nil && !snapshot.IsEmpty() {
		mc.logger.Printf("ModelCatalog: refresh failed, serving %d stale cached models", len(snapshot.Models))
		return slices.Clone(snapshot.Models), true
	}
	return models, true
}

// current returns the in-memory snapshot, loading it from the store on first use.
func (mc *ModelCatalogImpl) current(ctx context.Context) domain.ModelCatalogSnapshot {
	mc.mu.RLock()
	if mc.loaded {
		defer mc.mu.RUnlock()
		return mc.snapshot
	}
	mc.mu.RUnlock()

	mc.mu.Lock()
	defer mc.mu.Unlock()
	if mc.loaded {
		return mc.snapshot
	}

	snapshot, err := mc.store.Load(ctx)
	if err != nil {
		var notFound *domain.NotFoundErr
		if !errors.As(err, &notFound) {
			mc.logger.Printf("ModelCatalog: failed to load cache: %v", err)
		}
		snapshot = domain.ModelCatalogSnapshot{}
	}
	mc.snapshot = snapshot
	mc.loaded = true
	return mc.snapshot
}

func (mc *ModelCatalogImpl) refresh(ctx context.Context, credential string) ([]string, error) {
	if credential == "" {
		err := domain.NewValidationErr("no credential available to refresh the model catalog")
		mc.logger.Printf("ModelCatalog: %v", err)
		return []string{}, err
	}

	mc.refreshMu.Lock()
	defer mc.refreshMu.Unlock()

	ids, err := mc.lister.ListModels(ctx, credential)
	if err != nil {
		mc.logger.Printf("ModelCatalog: failed to refresh models: %v", err)
		return []string{}, err
	}

	models := slices.Clone(ids)
	slices.Sort(models)
	models = slices.Compact(models)

	snapshot := domain.ModelCatalogSnapshot{
		Models:      models,
		LastUpdated: mc.timeProvider.Now().UTC(),
	}

	if err := mc.store.Save(ctx, snapshot); err != nil {
		mc.logger.Printf("ModelCatalog: failed to persist models: %v", err)
	}

	mc.mu.Lock()
	mc.snapshot = snapshot
	mc.loaded = true
	mc.mu.Unlock()

	return slices.Clone(models), nil
}

// InitModelCatalog initializes the ModelCatalog use case.
type InitModelCatalog struct {
	Store        domain.ModelCatalogStore   `resolve:""`
	Lister       domain.ModelLister         `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
	MaxAge       time.Duration              `config:"MODEL_CACHE_MAX_AGE" default:"168h"`
}

// Initialize registers the ModelCatalog use case in the dependency container.
func (i InitModelCatalog) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ModelCatalog](NewModelCatalogImpl(
		i.Store,
		i.Lister,
		i.TimeProvider,
		i.MaxAge,
		i.Logger,
	))
	return ctx, nil
}
