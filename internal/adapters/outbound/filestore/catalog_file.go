package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/gofrs/flock"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/telemetry"
)

const (
	lockRetryDelay = 100 * time.Millisecond
	lockTimeout    = 5 * time.Second
)

// catalogDocument is the on-disk shape of the catalog cache.
// Fields are decoded loosely so malformed content can be told apart from a missing file.
type catalogDocument struct {
	Models      json.RawMessage `json:"models"`
	LastUpdated json.RawMessage `json:"last_updated"`
}

type catalogRecord struct {
	Models      []string `json:"models"`
	LastUpdated string   `json:"last_updated"`
}

// CatalogFile is a JSON file implementation of domain.ModelCatalogStore.
type CatalogFile struct {
	path string
}

// NewCatalogFile creates a CatalogFile stored at path.
func NewCatalogFile(path string) CatalogFile {
	return CatalogFile{path: path}
}

// Load implements domain.ModelCatalogStore.Load.
// Absent, unparsable and empty files all report a *domain.NotFoundErr.
func (c CatalogFile) Load(ctx context.Context) (domain.ModelCatalogSnapshot, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.ModelCatalogSnapshot{}, domain.NewNotFoundErr("model catalog cache not found")
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ModelCatalogSnapshot{}, fmt.Errorf("read model catalog cache: %w", err)
	}

	snapshot, ok := decodeCatalog(data)
	if !ok {
		return domain.ModelCatalogSnapshot{}, domain.NewNotFoundErr("model catalog cache is empty or corrupt")
	}
	return snapshot, nil
}

// Save implements domain.ModelCatalogStore.Save.
// The file is replaced atomically while holding an advisory lock next to it.
func (c CatalogFile) Save(ctx context.Context, snapshot domain.ModelCatalogSnapshot) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	models := slices.Clone(snapshot.Models)
	if models == nil {
		models = []string{}
	}
	slices.Sort(models)

	data, err := json.MarshalIndent(catalogRecord{
		Models:      models,
		LastUpdated: domain.FormatTimestamp(snapshot.LastUpdated),
	}, "", "  ")
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("marshal model catalog: %w", err)
	}

	err = withFileLock(spanCtx, c.path, func() error {
		return writeFileAtomic(c.path, data, 0o644)
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// decodeCatalog parses the cache content. It reports false when no usable model list is present.
// An unparsable timestamp yields a zero LastUpdated, which is always stale.
func decodeCatalog(data []byte) (domain.ModelCatalogSnapshot, bool) {
	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.ModelCatalogSnapshot{}, false
	}

	var models []string
	if err := json.Unmarshal(doc.Models, &models); err != nil || len(models) == 0 {
		return domain.ModelCatalogSnapshot{}, false
	}

	snapshot := domain.ModelCatalogSnapshot{Models: models}

	var ts string
	if err := json.Unmarshal(doc.LastUpdated, &ts); err == nil {
		if parsed, ok := domain.ParseTimestamp(ts); ok {
			snapshot.LastUpdated = parsed
		}
	}
	return snapshot, true
}

// withFileLock runs fn while holding the advisory lock <path>.lock.
func withFileLock(ctx context.Context, path string, fn func() error) error {
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	fileLock := flock.New(path + ".lock")
	locked, err := fileLock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("acquire lock on %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("could not acquire lock on %s", path)
	}
	defer fileLock.Unlock() //nolint:errcheck

	return fn()
}

// InitCatalogFile initializes the model catalog cache file dependency
type InitCatalogFile struct {
	Path string `config:"MODEL_CACHE_FILE" default:"model_config.json"`
}

// Initialize registers the CatalogFile as domain.ModelCatalogStore
func (i InitCatalogFile) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ModelCatalogStore](NewCatalogFile(i.Path))
	return ctx, nil
}
