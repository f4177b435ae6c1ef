package domain

import "context"

// ArtifactStore persists operation outputs to local files.
type ArtifactStore interface {
	// WriteText writes text to path, creating parent directories as needed.
	WriteText(ctx context.Context, path, text string) error

	// WriteJSON writes v as indented JSON to path, creating parent directories as needed.
	WriteJSON(ctx context.Context, path string, v any) error

	// ReadText reads the whole file at path.
	ReadText(ctx context.Context, path string) (string, error)
}
