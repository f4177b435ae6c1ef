package workers

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont"
	"github.com/stretchr/testify/assert"
)

// run starts the runnable and returns a cancel function and done channel.
func run(
	t *testing.T,
	ctx context.Context,
	runnable symbiont.Runnable,
) (context.CancelFunc, chan struct{}) {
	t.Helper()

	runCtx, cancel := context.WithCancel(ctx)
	doneChan := make(chan struct{}, 1)

	go func() {
		err := runnable.Run(runCtx)
		assert.NoError(t, err)
		doneChan <- struct{}{}
	}()

	return cancel, doneChan
}

// waitRunnableStop waits until the runnable goroutine exits.
func waitRunnableStop(t *testing.T, doneChan chan struct{}) {
	t.Helper()

	select {
	case <-doneChan:
	case <-time.After(1 * time.Second):
		t.Fatal("runnable did not shut down in time")
	}
}

// waitForSignals waits for the expected number of execution signals or timeout.
func waitForSignals(t *testing.T, signalChan chan struct{}, expected int, timeout time.Duration) int {
	t.Helper()
	received := 0

	for received < expected {
		select {
		case <-signalChan:
			received++
		case <-time.After(timeout):
			t.Fatalf("timeout waiting for worker executions; got %d, expected %d", received, expected)
		}
	}
	return received
}
