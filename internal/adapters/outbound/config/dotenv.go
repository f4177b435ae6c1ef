package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// InitDotEnv loads environment variables from a dotenv file before the other initializers read their configuration.
// Variables already present in the environment are never overridden. A missing file is ignored.
type InitDotEnv struct {
	Files []string
}

// Initialize loads the configured dotenv files, defaulting to ".env".
func (ide InitDotEnv) Initialize(ctx context.Context) (context.Context, error) {
	files := ide.Files
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		err := godotenv.Load(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return ctx, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return ctx, nil
}
