// Package cli exposes the wrapper's use cases as cobra commands.
// Every command runs inside a symbiont app as a hosted runnable.
package cli

import (
	"errors"
	"io"

	"github.com/cleitonmarx/symbiont"
	"github.com/spf13/cobra"
)

// ErrModelNotRecognized is returned when the requested model is not in the model catalog.
var ErrModelNotRecognized = errors.New("model not recognized")

// AppFactory builds the application that hosts the given runnables.
type AppFactory func(runnables []symbiont.Runnable, initializers ...symbiont.Initializer) *symbiont.App

// commonOptions are the flags shared by every request command.
type commonOptions struct {
	Model  string
	APIKey string
}

func (o *commonOptions) bind(cmd *cobra.Command, defaultModel string) {
	cmd.Flags().StringVar(&o.Model, "model", defaultModel, "Model to use")
	cmd.Flags().StringVar(&o.APIKey, "api_key", "", "OpenAI API key (overrides OPENAI_API_KEY)")
}

// NewRootCommand creates the root command with all subcommands attached.
func NewRootCommand(newApp AppFactory, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "openai-wrapper",
		Short:         "Resilient command line client for the OpenAI API",
		Long:          "openai-wrapper sends chat, assistant, image and audio requests to the OpenAI API with retries, recovery and a cached model catalog.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(
		newGPTCommand(newApp),
		newDalleCommand(newApp),
		newWhisperCommand(newApp),
		newModelsCommand(newApp),
		newServeCommand(newApp),
	)
	return root
}
