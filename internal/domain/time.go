package domain

import (
	"context"
	"time"
)

// CurrentTimeProvider provides the current time.
type CurrentTimeProvider interface {
	Now() time.Time
}

// Sleeper waits for a duration or until the context is done.
type Sleeper interface {
	// Sleep blocks for d. It returns the context error if ctx is done first.
	Sleep(ctx context.Context, d time.Duration) error
}
