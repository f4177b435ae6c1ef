package usecases

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/telemetry"
)

// AssistantRunInput holds the parameters of an assistant run.
type AssistantRunInput struct {
	Prompt      string
	AssistantID string
	Credential  string
	TaskID      string
}

// AssistantRunResult is the outcome of an assistant run.
// Text carries the assistant answer, or a marker when the run failed or timed out.
type AssistantRunResult struct {
	Text     string
	Status   domain.RunStatus
	ThreadID string
	RunID    string
	Polls    int
	Skipped  bool
}

// RunAssistant defines the use case for running an assistant on a new thread.
type RunAssistant interface {
	Execute(ctx context.Context, in AssistantRunInput) (AssistantRunResult, error)
}

// RunAssistantImpl implements the RunAssistant use case.
type RunAssistantImpl struct {
	dispatcher      Dispatcher
	sleeper         domain.Sleeper
	timeProvider    domain.CurrentTimeProvider
	pollInterval    time.Duration
	pollTimeout     time.Duration
	pollMaxAttempts int
	logger          *log.Logger
}

// NewRunAssistantImpl creates a new RunAssistantImpl instance.
func NewRunAssistantImpl(
	dispatcher Dispatcher,
	sleeper domain.Sleeper,
	timeProvider domain.CurrentTimeProvider,
	pollInterval time.Duration,
	pollTimeout time.Duration,
	pollMaxAttempts int,
	logger *log.Logger,
) RunAssistantImpl {
	return RunAssistantImpl{
		dispatcher:      dispatcher,
		sleeper:         sleeper,
		timeProvider:    timeProvider,
		pollInterval:    pollInterval,
		pollTimeout:     pollTimeout,
		pollMaxAttempts: pollMaxAttempts,
		logger:          logger,
	}
}

// Execute creates a thread, posts the prompt, starts a run and polls it until it ends.
func (ra RunAssistantImpl) Execute(ctx context.Context, in AssistantRunInput) (AssistantRunResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	res, err := ra.execute(spanCtx, in)
	if telemetry.RecordErrorAndStatus(span, err) {
		return AssistantRunResult{}, err
	}
	return res, nil
}

func (ra RunAssistantImpl) execute(ctx context.Context, in AssistantRunInput) (AssistantRunResult, error) {
	if strings.TrimSpace(in.Prompt) == "" {
		return AssistantRunResult{}, domain.NewValidationErr("prompt cannot be empty")
	}
	if in.AssistantID == "" {
		return AssistantRunResult{}, domain.NewValidationErr("assistant_id cannot be empty")
	}

	start := ra.timeProvider.Now()
	defer func() {
		RecordOperationDuration(ctx, "assistant.run", ra.timeProvider.Now().Sub(start))
	}()

	thread, skipped, err := dispatchAs[domain.AssistantThread](ctx, ra.dispatcher, in.Credential, in.TaskID,
		domain.OperationID_ThreadsCreate, domain.Params{})
	if err != nil || skipped {
		return AssistantRunResult{Skipped: skipped}, err
	}

	_, skipped, err = dispatchAs[domain.ThreadMessage](ctx, ra.dispatcher, in.Credential, in.TaskID,
		domain.OperationID_ThreadMessagesCreate, domain.Params{
			domain.Param_ThreadID: thread.ID,
			domain.Param_Role:     string(domain.ChatRole_User),
			domain.Param_Content:  in.Prompt,
		})
	if err != nil || skipped {
		return AssistantRunResult{ThreadID: thread.ID, Skipped: skipped}, err
	}

	run, skipped, err := dispatchAs[domain.AssistantRun](ctx, ra.dispatcher, in.Credential, in.TaskID,
		domain.OperationID_ThreadRunsCreate, domain.Params{
			domain.Param_ThreadID:    thread.ID,
			domain.Param_AssistantID: in.AssistantID,
		})
	if err != nil || skipped {
		return AssistantRunResult{ThreadID: thread.ID, Skipped: skipped}, err
	}

	tracked := domain.NewAssistantRun(thread.ID, run.RunID)
	if err := tracked.Transition(run.Status); err != nil {
		return AssistantRunResult{}, err
	}

	polls, skipped, err := ra.poll(ctx, in, &tracked, start)
	result := AssistantRunResult{
		Status:   tracked.Status,
		ThreadID: tracked.ThreadID,
		RunID:    tracked.RunID,
		Polls:    polls,
		Skipped:  skipped,
	}
	if err != nil || skipped {
		return result, err
	}

	switch tracked.Status {
	case domain.RunStatus_TimedOut:
		ra.logger.Printf("RunAssistant: run %s on thread %s timed out after %d polls", tracked.RunID, tracked.ThreadID, polls)
		result.Text = domain.RunTimedOutMarker
		return result, nil
	case domain.RunStatus_Failed:
		ra.logger.Printf("RunAssistant: run %s on thread %s failed", tracked.RunID, tracked.ThreadID)
		result.Text = domain.RunFailedMarker
		return result, nil
	}

	messages, skipped, err := dispatchAs[[]domain.ThreadMessage](ctx, ra.dispatcher, in.Credential, in.TaskID,
		domain.OperationID_ThreadMessagesList, domain.Params{
			domain.Param_ThreadID: thread.ID,
		})
	if err != nil || skipped {
		result.Skipped = skipped
		return result, err
	}
	if len(messages) == 0 || len(messages[0].Texts) == 0 {
		ra.logger.Printf("RunAssistant: run %s completed without messages", tracked.RunID)
		result.Status = domain.RunStatus_Failed
		result.Text = domain.RunFailedMarker
		return result, nil
	}

	result.Text = messages[0].FirstText()
	return result, nil
}

// poll waits and re-fetches the run until it reaches a terminal status or the polling bounds are hit.
func (ra RunAssistantImpl) poll(ctx context.Context, in AssistantRunInput, run *domain.AssistantRun, start time.Time) (int, bool, error) {
	deadline := start.Add(ra.pollTimeout)
	polls := 0
	for !run.Status.IsTerminal() {
		if ra.pollMaxAttempts > 0 && polls >= ra.pollMaxAttempts {
			return polls, false, run.Transition(domain.RunStatus_TimedOut)
		}
		if ra.pollTimeout > 0 && !ra.timeProvider.Now().Before(deadline) {
			return polls, false, run.Transition(domain.RunStatus_TimedOut)
		}

		if err := ra.sleeper.Sleep(ctx, ra.pollInterval); err != nil {
			return polls, false, err
		}
		polls++

		current, skipped, err := dispatchAs[domain.AssistantRun](ctx, ra.dispatcher, in.Credential, in.TaskID,
			domain.OperationID_ThreadRunsRetrieve, domain.Params{
				domain.Param_ThreadID: run.ThreadID,
				domain.Param_RunID:    run.RunID,
			})
		if err != nil || skipped {
			return polls, skipped, err
		}
		if err := run.Transition(current.Status); err != nil {
			return polls, false, err
		}
	}
	return polls, false, nil
}

// dispatchAs executes the operation and asserts the payload type.
func dispatchAs[T any](
	ctx context.Context,
	dispatcher Dispatcher,
	credential, taskID string,
	op domain.OperationID,
	params domain.Params,
) (T, bool, error) {
	var zero T
	res, err := dispatcher.Execute(ctx, domain.DispatchRequest{
		Operation:  op,
		TaskID:     taskID,
		Credential: credential,
		Params:     params,
	})
	if err != nil {
		return zero, false, err
	}
	if res.Skipped {
		return zero, true, nil
	}
	payload, ok := res.Payload.(T)
	if !ok {
		return zero, false, fmt.Errorf("unexpected %s payload %T", op, res.Payload)
	}
	return payload, false, nil
}

// InitRunAssistant initializes the RunAssistant use case.
type InitRunAssistant struct {
	Dispatcher      Dispatcher                 `resolve:""`
	Sleeper         domain.Sleeper             `resolve:""`
	TimeProvider    domain.CurrentTimeProvider `resolve:""`
	Logger          *log.Logger                `resolve:""`
	PollInterval    time.Duration              `config:"RUN_POLL_INTERVAL" default:"1s"`
	PollTimeout     time.Duration              `config:"RUN_POLL_TIMEOUT" default:"10m"`
	PollMaxAttempts int                        `config:"RUN_POLL_MAX_ATTEMPTS" default:"600"`
}

// Initialize registers the RunAssistant use case in the dependency container.
func (i InitRunAssistant) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RunAssistant](NewRunAssistantImpl(
		i.Dispatcher,
		i.Sleeper,
		i.TimeProvider,
		i.PollInterval,
		i.PollTimeout,
		i.PollMaxAttempts,
		i.Logger,
	))
	return ctx, nil
}
