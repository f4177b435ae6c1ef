package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rionhunter/OpenAI-API-Wrapper/internal/usecases"
	"github.com/spf13/cobra"
)

type modelsAction string

const (
	modelsAction_List    modelsAction = "list"
	modelsAction_Refresh modelsAction = "refresh"
	modelsAction_Confirm modelsAction = "confirm"
)

// ModelsCommand inspects and maintains the local model catalog.
type ModelsCommand struct {
	Catalog usecases.ModelCatalog `resolve:""`
	APIKey  string                `config:"OPENAI_API_KEY" default:"-"`
	action  modelsAction
	model   string
	apiKey  string
	stdout  io.Writer
	stderr  io.Writer
	commandResult
}

// Run executes the command once and records its outcome.
func (c *ModelsCommand) Run(ctx context.Context) error {
	c.finish(c.execute(ctx))
	return nil
}

func (c *ModelsCommand) execute(ctx context.Context) error {
	cred := credential(c.apiKey, c.APIKey)

	switch c.action {
	case modelsAction_Confirm:
		if err := confirmModel(ctx, c.stderr, c.Catalog, c.model, cred); err != nil {
			return err
		}
		fmt.Fprintf(c.stdout, "Model '%s' is available.\n", c.model) //nolint:errcheck
		return nil
	case modelsAction_Refresh:
		c.print(c.Catalog.Refresh(ctx, cred))
		return nil
	default:
		c.print(c.Catalog.List(ctx, cred))
		return nil
	}
}

func (c *ModelsCommand) print(models []string) {
	if len(models) == 0 {
		fmt.Fprintln(c.stderr, "No models available.") //nolint:errcheck
		return
	}
	for _, m := range models {
		fmt.Fprintln(c.stdout, m) //nolint:errcheck
	}
}

func newModelsCommand(newApp AppFactory) *cobra.Command {
	var apiKey string
	run := func(cmd *cobra.Command, action modelsAction, model string) error {
		models := &ModelsCommand{
			action:        action,
			model:         model,
			apiKey:        apiKey,
			stdout:        cmd.OutOrStdout(),
			stderr:        cmd.ErrOrStderr(),
			commandResult: newCommandResult(),
		}
		return runHosted(cmd.Context(), newApp, models, &InitConsoleRecovery{In: cmd.InOrStdin(), Out: cmd.ErrOrStderr()})
	}

	cmd := &cobra.Command{
		Use:   "models",
		Short: "Inspect the cached model catalog",
	}
	cmd.PersistentFlags().StringVar(&apiKey, "api_key", "", "OpenAI API key (overrides OPENAI_API_KEY)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List known models, refreshing the cache when it is stale",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd, modelsAction_List, "")
			},
		},
		&cobra.Command{
			Use:   "refresh",
			Short: "Fetch the model list from the provider and rewrite the cache",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd, modelsAction_Refresh, "")
			},
		},
		&cobra.Command{
			Use:   "confirm <model>",
			Short: "Exit with status 0 when the model is available",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, modelsAction_Confirm, args[0])
			},
		},
	)
	return cmd
}
