package usecases

import (
	"context"
	"time"

	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter             = otel.Meter("usecases")
	LLMTokensUsed     metric.Int64Counter
	DispatchAttempts  metric.Int64Counter
	OperationDuration metric.Float64Histogram
)

func init() {
	var err error
	// Tokens consumed by chat completions (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	DispatchAttempts, err = meter.Int64Counter(
		"dispatch_attempts_total",
		metric.WithDescription("Total provider call attempts made by the dispatcher"),
	)
	if err != nil {
		panic(err)
	}

	OperationDuration, err = meter.Float64Histogram(
		"operation_duration_seconds",
		metric.WithDescription("Wall-clock duration of an operation"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordDispatchAttempt records one provider call attempt for the operation.
func RecordDispatchAttempt(ctx context.Context, op domain.OperationID) {
	DispatchAttempts.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", op.String()),
	))
}

// RecordOperationDuration records how long an operation took.
func RecordOperationDuration(ctx context.Context, operation string, d time.Duration) {
	OperationDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("operation", operation),
	))
}
