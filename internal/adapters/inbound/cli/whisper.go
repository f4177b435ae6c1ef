package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/usecases"
	"github.com/spf13/cobra"
)

type whisperOptions struct {
	commonOptions
	File       string
	Language   string
	Translate  bool
	Format     string
	OutputFile string
}

// WhisperCommand transcribes or translates an audio file.
type WhisperCommand struct {
	Logger          *log.Logger                `resolve:""`
	Catalog         usecases.ModelCatalog      `resolve:""`
	TranscribeAudio usecases.TranscribeAudio   `resolve:""`
	TimeProvider    domain.CurrentTimeProvider `resolve:""`
	APIKey          string                     `config:"OPENAI_API_KEY" default:"-"`
	opts            whisperOptions
	stdout          io.Writer
	stderr          io.Writer
	commandResult
}

// Run executes the command once and records its outcome.
func (c *WhisperCommand) Run(ctx context.Context) error {
	c.finish(c.execute(ctx))
	return nil
}

func (c *WhisperCommand) execute(ctx context.Context) error {
	cred := credential(c.opts.APIKey, c.APIKey)
	if err := confirmModel(ctx, c.stderr, c.Catalog, c.opts.Model, cred); err != nil {
		return err
	}

	start := c.TimeProvider.Now()
	res, err := c.TranscribeAudio.Execute(ctx, usecases.TranscriptionInput{
		FilePath:   c.opts.File,
		Model:      c.opts.Model,
		Language:   c.opts.Language,
		Translate:  c.opts.Translate,
		Format:     domain.TranscriptFormat(c.opts.Format),
		Credential: cred,
		OutputFile: c.opts.OutputFile,
	})
	if err != nil {
		return err
	}
	printDuration(c.stderr, c.TimeProvider, start)

	switch {
	case res.Skipped:
		fmt.Fprintln(c.stderr, "Request skipped.") //nolint:errcheck
	case res.OutputFile != "":
		fmt.Fprintf(c.stderr, "Transcription saved to %s\n", res.OutputFile) //nolint:errcheck
	default:
		fmt.Fprintln(c.stdout, res.Text) //nolint:errcheck
	}
	return nil
}

func (o whisperOptions) validate() error {
	if o.File == "" {
		return errors.New("--file is required")
	}
	if !domain.TranscriptFormat(o.Format).IsValid() {
		return fmt.Errorf("invalid --format %q: expected json, text, srt, vtt or verbose_json", o.Format)
	}
	return nil
}

func newWhisperCommand(newApp AppFactory) *cobra.Command {
	var opts whisperOptions
	cmd := &cobra.Command{
		Use:   "whisper",
		Short: "Transcribe or translate an audio file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			whisper := &WhisperCommand{
				opts:          opts,
				stdout:        cmd.OutOrStdout(),
				stderr:        cmd.ErrOrStderr(),
				commandResult: newCommandResult(),
			}
			return runHosted(cmd.Context(), newApp, whisper, &InitConsoleRecovery{In: cmd.InOrStdin(), Out: cmd.ErrOrStderr()})
		},
	}
	opts.bind(cmd, "whisper-1")
	cmd.Flags().StringVar(&opts.File, "file", "", "Path to the audio file")
	cmd.Flags().StringVar(&opts.Language, "language", "", "Optional language code (e.g. en, es, fr)")
	cmd.Flags().BoolVar(&opts.Translate, "translate", false, "Translate to English instead of transcribing")
	cmd.Flags().StringVar(&opts.Format, "format", string(domain.TranscriptFormat_JSON), "Output format: json, text, srt, vtt or verbose_json")
	cmd.Flags().StringVar(&opts.OutputFile, "output_file", "", "File to save the result")
	return cmd
}
