package usecases

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/telemetry"
)

// ChatInput holds the parameters of a chat completion.
type ChatInput struct {
	Prompt     string
	Model      string
	Stream     bool
	Credential string
	TaskID     string
}

// ChatResult is the outcome of a chat completion.
type ChatResult struct {
	Text    string
	Skipped bool
}

// FragmentObserver receives streamed text fragments in arrival order.
type FragmentObserver func(fragment string)

// CompleteChat defines the use case for single-prompt chat completions.
type CompleteChat interface {
	Execute(ctx context.Context, in ChatInput, onFragment FragmentObserver) (ChatResult, error)
}

// CompleteChatImpl implements the CompleteChat use case.
type CompleteChatImpl struct {
	dispatcher   Dispatcher
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
}

// NewCompleteChatImpl creates a new CompleteChatImpl instance.
func NewCompleteChatImpl(dispatcher Dispatcher, timeProvider domain.CurrentTimeProvider, logger *log.Logger) CompleteChatImpl {
	return CompleteChatImpl{
		dispatcher:   dispatcher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute sends the prompt as a single user message and returns the assistant text.
// In streaming mode each fragment is passed to onFragment before being appended to the result.
func (cc CompleteChatImpl) Execute(ctx context.Context, in ChatInput, onFragment FragmentObserver) (ChatResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := validateChatInput(in); telemetry.RecordErrorAndStatus(span, err) {
		return ChatResult{}, err
	}

	op := domain.OperationID_ChatCreate
	if in.Stream {
		op = domain.OperationID_ChatStream
	}

	start := cc.timeProvider.Now()
	res, err := cc.dispatcher.Execute(spanCtx, domain.DispatchRequest{
		Operation:  op,
		TaskID:     in.TaskID,
		Credential: in.Credential,
		Params: domain.Params{
			domain.Param_Model: in.Model,
			domain.Param_Messages: []domain.ChatMessage{
				{Role: domain.ChatRole_User, Content: in.Prompt},
			},
		},
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return ChatResult{}, err
	}
	if res.Skipped {
		return ChatResult{Skipped: true}, nil
	}

	var (
		text  string
		usage *domain.TokenUsage
	)
	switch payload := res.Payload.(type) {
	case domain.ChatCompletion:
		text = payload.FirstChoice()
		usage = &payload.Usage
	case domain.ChatStream:
		text, usage, err = domain.CollectChatStream(payload, func(f domain.ChatFragment) {
			if onFragment != nil {
				onFragment(f.Text)
			}
		})
		if telemetry.RecordErrorAndStatus(span, err) {
			return ChatResult{}, fmt.Errorf("failed to read chat stream: %w", err)
		}
	default:
		err = fmt.Errorf("unexpected %s payload %T", op, res.Payload)
		telemetry.RecordErrorAndStatus(span, err)
		return ChatResult{}, err
	}

	elapsed := cc.timeProvider.Now().Sub(start)
	RecordOperationDuration(spanCtx, op.String(), elapsed)
	if usage != nil {
		RecordLLMTokensUsed(spanCtx, usage.PromptTokens, usage.CompletionTokens)
		cc.logger.Printf("CompleteChat: model=%s duration=%.2fs prompt_tokens=%d completion_tokens=%d total_tokens=%d",
			in.Model, elapsed.Seconds(), usage.PromptTokens, usage.CompletionTokens, usage.TotalTokens)
	} else {
		cc.logger.Printf("CompleteChat: model=%s duration=%.2fs", in.Model, elapsed.Seconds())
	}

	return ChatResult{Text: text}, nil
}

func validateChatInput(in ChatInput) error {
	if strings.TrimSpace(in.Prompt) == "" {
		return domain.NewValidationErr("prompt cannot be empty")
	}
	if in.Model == "" {
		return domain.NewValidationErr("model cannot be empty")
	}
	return nil
}

// InitCompleteChat initializes the CompleteChat use case.
type InitCompleteChat struct {
	Dispatcher   Dispatcher                 `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
}

// Initialize registers the CompleteChat use case in the dependency container.
func (i InitCompleteChat) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CompleteChat](NewCompleteChatImpl(i.Dispatcher, i.TimeProvider, i.Logger))
	return ctx, nil
}
