package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/usecases"
	"github.com/spf13/cobra"
)

const (
	agentChat      = "chat"
	agentAssistant = "assistant"
)

type gptOptions struct {
	commonOptions
	Prompt      string
	PromptFile  string
	Stream      bool
	Agent       string
	AssistantID string
	JSONOutput  bool
	OutputFile  string
}

// responseEnvelope is the --json_output rendering of a gpt response.
type responseEnvelope struct {
	Timestamp string `json:"timestamp"`
	Model     string `json:"model"`
	Mode      string `json:"mode"`
	Response  string `json:"response"`
}

// GPTCommand sends a prompt to the chat or assistant capability.
type GPTCommand struct {
	Logger       *log.Logger                `resolve:""`
	Catalog      usecases.ModelCatalog      `resolve:""`
	CompleteChat usecases.CompleteChat      `resolve:""`
	RunAssistant usecases.RunAssistant      `resolve:""`
	Artifacts    domain.ArtifactStore       `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	APIKey       string                     `config:"OPENAI_API_KEY" default:"-"`
	opts         gptOptions
	stdout       io.Writer
	stderr       io.Writer
	commandResult
}

// Run executes the command once and records its outcome.
func (c *GPTCommand) Run(ctx context.Context) error {
	c.finish(c.execute(ctx))
	return nil
}

func (c *GPTCommand) execute(ctx context.Context) error {
	cred := credential(c.opts.APIKey, c.APIKey)
	if err := confirmModel(ctx, c.stderr, c.Catalog, c.opts.Model, cred); err != nil {
		return err
	}

	prompt, err := c.loadPrompt(ctx)
	if err != nil {
		return err
	}

	start := c.TimeProvider.Now()
	var (
		text    string
		skipped bool
	)
	if c.opts.Agent == agentAssistant {
		res, err := c.RunAssistant.Execute(ctx, usecases.AssistantRunInput{
			Prompt:      prompt,
			AssistantID: c.opts.AssistantID,
			Credential:  cred,
		})
		if err != nil {
			return err
		}
		text, skipped = res.Text, res.Skipped
	} else {
		var observer usecases.FragmentObserver
		if c.opts.Stream && !c.opts.JSONOutput {
			fmt.Fprintln(c.stdout, "Streaming Response:") //nolint:errcheck
			observer = func(fragment string) {
				fmt.Fprint(c.stdout, fragment) //nolint:errcheck
			}
		}
		res, err := c.CompleteChat.Execute(ctx, usecases.ChatInput{
			Prompt:     prompt,
			Model:      c.opts.Model,
			Stream:     c.opts.Stream,
			Credential: cred,
		}, observer)
		if observer != nil {
			fmt.Fprintln(c.stdout) //nolint:errcheck
		}
		if err != nil {
			return err
		}
		text, skipped = res.Text, res.Skipped
	}
	printDuration(c.stderr, c.TimeProvider, start)

	if skipped {
		fmt.Fprintln(c.stderr, "Request skipped.") //nolint:errcheck
		return nil
	}

	output := text
	if c.opts.JSONOutput {
		output, err = c.renderEnvelope(text)
		if err != nil {
			return err
		}
	}
	if !c.opts.Stream || c.opts.JSONOutput || c.opts.Agent == agentAssistant {
		fmt.Fprintln(c.stdout, output) //nolint:errcheck
	}

	if c.opts.OutputFile != "" && text != "" {
		if err := c.Artifacts.WriteText(ctx, c.opts.OutputFile, output); err != nil {
			return err
		}
		fmt.Fprintf(c.stderr, "Response saved to %s\n", c.opts.OutputFile) //nolint:errcheck
	}
	return nil
}

func (c *GPTCommand) loadPrompt(ctx context.Context) (string, error) {
	if c.opts.PromptFile != "" {
		return c.Artifacts.ReadText(ctx, c.opts.PromptFile)
	}
	return c.opts.Prompt, nil
}

func (c *GPTCommand) renderEnvelope(text string) (string, error) {
	b, err := json.MarshalIndent(responseEnvelope{
		Timestamp: domain.FormatTimestamp(c.TimeProvider.Now()),
		Model:     c.opts.Model,
		Mode:      "gpt",
		Response:  text,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal response envelope: %w", err)
	}
	return string(b), nil
}

func (o *gptOptions) validate() error {
	if o.Model == "" {
		return errors.New("--model is required")
	}
	if o.Prompt == "" && o.PromptFile == "" {
		return errors.New("must provide either --prompt or --prompt_file")
	}
	if o.AssistantID != "" && o.Agent == "" {
		o.Agent = agentAssistant
	}
	if o.Agent == "" {
		o.Agent = agentChat
	}
	switch o.Agent {
	case agentChat:
	case agentAssistant:
		if o.AssistantID == "" {
			return errors.New("--assistant_id is required for agent type 'assistant'")
		}
	default:
		return fmt.Errorf("invalid --agent %q: expected chat or assistant", o.Agent)
	}
	return nil
}

func newGPTCommand(newApp AppFactory) *cobra.Command {
	var opts gptOptions
	cmd := &cobra.Command{
		Use:   "gpt",
		Short: "Send a prompt to a chat model or an assistant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			gpt := &GPTCommand{
				opts:          opts,
				stdout:        cmd.OutOrStdout(),
				stderr:        cmd.ErrOrStderr(),
				commandResult: newCommandResult(),
			}
			return runHosted(cmd.Context(), newApp, gpt, &InitConsoleRecovery{In: cmd.InOrStdin(), Out: cmd.ErrOrStderr()})
		},
	}
	opts.bind(cmd, "")
	cmd.Flags().StringVar(&opts.Prompt, "prompt", "", "Prompt to send to the model")
	cmd.Flags().StringVar(&opts.PromptFile, "prompt_file", "", "File path to a prompt text file")
	cmd.Flags().BoolVar(&opts.Stream, "stream", false, "Stream the response (chat agent only)")
	cmd.Flags().StringVar(&opts.Agent, "agent", "", "Agent type: chat or assistant")
	cmd.Flags().StringVar(&opts.AssistantID, "assistant_id", "", "Assistant id, implies --agent assistant")
	cmd.Flags().BoolVar(&opts.JSONOutput, "json_output", false, "Wrap the response in a JSON envelope")
	cmd.Flags().StringVar(&opts.OutputFile, "output_file", "", "File path to save the response")
	return cmd
}
