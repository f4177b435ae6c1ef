package usecases

import (
	"context"
	"strings"

	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
)

// FixedRecovery always answers with the same recovery action.
type FixedRecovery struct {
	Action domain.RecoveryAction
}

// Decide returns the configured action.
func (f FixedRecovery) Decide(context.Context, domain.DispatchRequest, *domain.ProviderErr) domain.RecoveryAction {
	return f.Action
}

// NewRecoveryDecider returns a FixedRecovery for the configured mode.
// An empty or unset ("-") mode selects the fallback decider.
func NewRecoveryDecider(mode string, fallback domain.RecoveryDecider) (domain.RecoveryDecider, error) {
	mode = strings.TrimSpace(mode)
	if mode == "" || mode == "-" {
		return fallback, nil
	}
	action, err := domain.ParseRecoveryAction(mode)
	if err != nil {
		return nil, err
	}
	return FixedRecovery{Action: action}, nil
}
