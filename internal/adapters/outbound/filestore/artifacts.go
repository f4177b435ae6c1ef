package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
)

// ArtifactWriter is a file system implementation of domain.ArtifactStore.
type ArtifactWriter struct{}

// WriteText implements domain.ArtifactStore.WriteText.
func (ArtifactWriter) WriteText(_ context.Context, path, text string) error {
	return writeFileAtomic(path, []byte(text), 0o644)
}

// WriteJSON implements domain.ArtifactStore.WriteJSON. The document is indented.
func (ArtifactWriter) WriteJSON(_ context.Context, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal artifact: %w", err)
	}
	return writeFileAtomic(path, data, 0o644)
}

// ReadText implements domain.ArtifactStore.ReadText.
func (ArtifactWriter) ReadText(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// InitArtifactStore initializes the artifact store dependency
type InitArtifactStore struct{}

// Initialize registers the ArtifactWriter as domain.ArtifactStore
func (InitArtifactStore) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ArtifactStore](ArtifactWriter{})
	return ctx, nil
}
