package http

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/usecases"
)

// InitGatewayRecovery registers the non-interactive recovery decider used while serving.
type InitGatewayRecovery struct {
	Mode string `config:"DISPATCH_RECOVERY_MODE" default:"abort"`
}

// Initialize registers the domain.RecoveryDecider
func (i InitGatewayRecovery) Initialize(ctx context.Context) (context.Context, error) {
	decider, err := usecases.NewRecoveryDecider(i.Mode, usecases.FixedRecovery{Action: domain.RecoveryAction_Abort})
	if err != nil {
		return ctx, err
	}
	depend.Register[domain.RecoveryDecider](decider)
	return ctx, nil
}
