package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/telemetry"
	"github.com/toon-format/toon-go"
	"golang.org/x/time/rate"
)

// Dispatcher executes provider operations with retry and recovery handling.
type Dispatcher interface {
	Execute(ctx context.Context, req domain.DispatchRequest) (domain.DispatchResult, error)
}

// DispatcherImpl implements the Dispatcher use case.
type DispatcherImpl struct {
	provider domain.Provider
	decider  domain.RecoveryDecider
	sleeper  domain.Sleeper
	limiter  *rate.Limiter
	retries  int
	delay    time.Duration
	logger   *log.Logger
}

// NewDispatcherImpl creates a new DispatcherImpl instance.
// A nil limiter disables request rate limiting.
func NewDispatcherImpl(
	provider domain.Provider,
	decider domain.RecoveryDecider,
	sleeper domain.Sleeper,
	limiter *rate.Limiter,
	retries int,
	delay time.Duration,
	logger *log.Logger,
) DispatcherImpl {
	return DispatcherImpl{
		provider: provider,
		decider:  decider,
		sleeper:  sleeper,
		limiter:  limiter,
		retries:  max(retries, 0),
		delay:    delay,
		logger:   logger,
	}
}

// Execute runs the operation, making at most retries+1 attempts for transient failures.
// Malformed-request failures are resolved by the recovery decider and do not consume attempts.
func (d DispatcherImpl) Execute(ctx context.Context, req domain.DispatchRequest) (domain.DispatchResult, error) {
	if req.TaskID == "" {
		req.TaskID = uuid.NewString()
	}
	spanCtx, span := telemetry.Start(ctx, telemetry.WithOperation(req.Operation.String(), req.TaskID))
	defer span.End()

	res, err := d.execute(spanCtx, req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return res, err
	}
	span.SetAttributes(
		telemetry.AttemptsKey.Int(res.Attempts),
		telemetry.SkippedKey.Bool(res.Skipped),
	)
	return res, nil
}

func (d DispatcherImpl) execute(ctx context.Context, req domain.DispatchRequest) (domain.DispatchResult, error) {
	if !req.Operation.IsValid() {
		return domain.DispatchResult{}, domain.NewUnknownOperationErr(req.Operation.String())
	}
	retries := d.retries
	if req.Retries != nil {
		retries = max(*req.Retries, 0)
	}

	var (
		attempts int
		failures int
	)
	for {
		attempts++
		d.audit(req, attempts)

		if d.limiter != nil {
			if err := d.limiter.Wait(ctx); err != nil {
				return domain.DispatchResult{Attempts: attempts}, err
			}
		}

		RecordDispatchAttempt(ctx, req.Operation)
		payload, err := d.provider.Invoke(ctx, req.Operation, req.Credential, req.Params)
		if err == nil {
			return domain.DispatchResult{Payload: payload, Attempts: attempts}, nil
		}
		if ctx.Err() != nil {
			return domain.DispatchResult{Attempts: attempts}, err
		}

		var providerErr *domain.ProviderErr
		if !errors.As(err, &providerErr) {
			return domain.DispatchResult{Attempts: attempts}, err
		}

		switch providerErr.Kind {
		case domain.ProviderErrKind_BadRequest:
			action := d.decider.Decide(ctx, req, providerErr)
			d.logger.Printf("Dispatcher: task=%s operation=%s rejected as malformed (%v), action=%s", req.TaskID, req.Operation, providerErr, action)
			switch action {
			case domain.RecoveryAction_Retry:
				failures = 0
				if err := d.sleeper.Sleep(ctx, d.delay); err != nil {
					return domain.DispatchResult{Attempts: attempts}, err
				}
				continue
			case domain.RecoveryAction_Skip:
				return domain.DispatchResult{Skipped: true, Attempts: attempts}, nil
			default:
				return domain.DispatchResult{Attempts: attempts}, err
			}

		case domain.ProviderErrKind_Transient:
			if failures >= retries {
				return domain.DispatchResult{Attempts: attempts}, fmt.Errorf("%s failed after %d attempts: %w", req.Operation, attempts, err)
			}
			failures++
			d.logger.Printf("Dispatcher: task=%s operation=%s attempt %d failed: %v; retrying in %s", req.TaskID, req.Operation, attempts, providerErr, d.delay)
			if err := d.sleeper.Sleep(ctx, d.delay); err != nil {
				return domain.DispatchResult{Attempts: attempts}, err
			}

		default:
			// auth and unclassified failures repeat identically, so they are not retried.
			return domain.DispatchResult{Attempts: attempts}, err
		}
	}
}

// audit logs the attempt with the parameters rendered without secrets.
func (d DispatcherImpl) audit(req domain.DispatchRequest, attempt int) {
	credential := ""
	if req.Credential != "" {
		credential = domain.RedactedValue
	}
	params := auditParams(req.Params)
	d.logger.Printf("Dispatcher: task=%s operation=%s attempt=%d credential=%q params=%s",
		req.TaskID, req.Operation, attempt, credential, params)
}

// auditParams renders the redacted parameters as a single-line TOON document.
func auditParams(params domain.Params) string {
	if len(params) == 0 {
		return "{}"
	}
	redacted := params.Redacted()
	out, err := toon.MarshalString(map[string]any(redacted), toon.WithLengthMarkers(true))
	if err != nil {
		pairs := make([]string, 0, len(redacted))
		for _, name := range redacted.Names() {
			pairs = append(pairs, fmt.Sprintf("%s=%v", name, redacted[name]))
		}
		return strings.Join(pairs, " ")
	}
	return strings.ReplaceAll(strings.TrimSpace(out), "\n", "; ")
}

// InitDispatcher initializes the Dispatcher use case.
type InitDispatcher struct {
	Provider           domain.Provider        `resolve:""`
	Decider            domain.RecoveryDecider `resolve:""`
	Sleeper            domain.Sleeper         `resolve:""`
	Logger             *log.Logger            `resolve:""`
	Retries            int                    `config:"DISPATCH_RETRIES" default:"3"`
	RetryDelay         time.Duration          `config:"DISPATCH_RETRY_DELAY" default:"2s"`
	RateLimitPerMinute int                    `config:"DISPATCH_RATE_LIMIT_PER_MINUTE" default:"0"`
}

// Initialize registers the Dispatcher use case in the dependency container.
func (i InitDispatcher) Initialize(ctx context.Context) (context.Context, error) {
	var limiter *rate.Limiter
	if i.RateLimitPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(i.RateLimitPerMinute)), 1)
	}
	depend.Register[Dispatcher](NewDispatcherImpl(
		i.Provider,
		i.Decider,
		i.Sleeper,
		limiter,
		i.Retries,
		i.RetryDelay,
		i.Logger,
	))
	return ctx, nil
}
