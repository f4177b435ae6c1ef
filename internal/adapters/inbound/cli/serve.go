package cli

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/adapters/inbound/http"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/adapters/inbound/workers"
	"github.com/spf13/cobra"
)

func newServeCommand(newApp AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP gateway and the model catalog refresher",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := newApp(
				[]symbiont.Runnable{
					&http.GatewayServer{},
					&workers.CatalogRefresher{},
				},
				&http.InitGatewayRecovery{},
			)
			return <-app.RunAsync(cmd.Context())
		},
	}
}
