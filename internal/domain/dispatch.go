package domain

import (
	"context"
	"fmt"
	"strings"
)

// DispatchRequest describes one provider operation to be executed with retry handling.
type DispatchRequest struct {
	Operation  OperationID
	TaskID     string
	Credential string
	Params     Params
	// Retries overrides the configured retry count when not nil.
	Retries *int
}

// DispatchResult is the outcome of a dispatched operation.
// Skipped is set when the operation was abandoned after a malformed request; Payload is nil then.
type DispatchResult struct {
	Payload  any
	Skipped  bool
	Attempts int
}

// RecoveryAction is the decision taken after the provider rejected a request as malformed.
type RecoveryAction string

const (
	RecoveryAction_Retry RecoveryAction = "retry"
	RecoveryAction_Skip  RecoveryAction = "skip"
	RecoveryAction_Abort RecoveryAction = "abort"
)

// ParseRecoveryAction converts a user or configuration answer into a RecoveryAction.
// Single-letter answers are accepted.
func ParseRecoveryAction(s string) (RecoveryAction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "r", "retry":
		return RecoveryAction_Retry, nil
	case "s", "skip":
		return RecoveryAction_Skip, nil
	case "a", "abort":
		return RecoveryAction_Abort, nil
	}
	return "", NewValidationErr(fmt.Sprintf("invalid recovery action %q", s))
}

// RecoveryDecider chooses how to continue after a malformed-request failure.
type RecoveryDecider interface {
	Decide(ctx context.Context, req DispatchRequest, cause *ProviderErr) RecoveryAction
}

// Provider invokes remote capabilities by operation id.
// Implementations return *ProviderErr for failures reported by the remote side.
type Provider interface {
	Invoke(ctx context.Context, op OperationID, credential string, params Params) (any, error)
}
