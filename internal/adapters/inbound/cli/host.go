package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cleitonmarx/symbiont"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/usecases"
)

const shutdownTimeout = 10 * time.Second

// commandResult records the outcome of a one-shot command runnable.
type commandResult struct {
	done chan struct{}
	err  error
}

func newCommandResult() commandResult {
	return commandResult{done: make(chan struct{})}
}

func (r *commandResult) finish(err error) {
	r.err = err
	close(r.done)
}

// Done is closed once the command has finished.
func (r *commandResult) Done() <-chan struct{} {
	return r.done
}

// Err returns the command error. Valid after Done is closed.
func (r *commandResult) Err() error {
	return r.err
}

type hostedCommand interface {
	symbiont.Runnable
	Done() <-chan struct{}
	Err() error
}

// runHosted runs cmd inside a freshly built app and waits for it to finish.
// The app is shut down as soon as the command returns.
func runHosted(ctx context.Context, newApp AppFactory, cmd hostedCommand, initializers ...symbiont.Initializer) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	shutdownCh := newApp([]symbiont.Runnable{cmd}, initializers...).RunAsync(runCtx)

	select {
	case <-cmd.Done():
		cancel()
		select {
		case <-shutdownCh:
		case <-time.After(shutdownTimeout):
		}
		return cmd.Err()
	case err := <-shutdownCh:
		select {
		case <-cmd.Done():
			return cmd.Err()
		default:
		}
		if err != nil {
			return err
		}
		return ctx.Err()
	}
}

// credential returns the flag value when set, otherwise the configured key.
func credential(flagValue, configured string) string {
	if flagValue != "" {
		return flagValue
	}
	if configured == "-" {
		return ""
	}
	return configured
}

// printDuration reports the wall-clock time spent on a request.
func printDuration(w io.Writer, tp domain.CurrentTimeProvider, start time.Time) {
	fmt.Fprintf(w, "Duration: %.2fs\n", tp.Now().Sub(start).Seconds()) //nolint:errcheck
}

// confirmModel checks the model against the catalog and reports an unknown model on w.
func confirmModel(ctx context.Context, w io.Writer, catalog usecases.ModelCatalog, model, cred string) error {
	if catalog.Confirm(ctx, model, cred) {
		return nil
	}
	fmt.Fprintf(w, "Error: Model '%s' not recognized by OpenAI.\n", model) //nolint:errcheck
	return fmt.Errorf("%w: %s", ErrModelNotRecognized, model)
}
