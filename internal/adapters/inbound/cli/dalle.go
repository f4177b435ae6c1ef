package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"

	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/usecases"
	"github.com/spf13/cobra"
)

var (
	imageSizes     = []string{"256x256", "512x512", "1024x1024"}
	imageQualities = []string{"standard", "hd"}
	imageStyles    = []string{"vivid", "natural"}
)

type dalleOptions struct {
	commonOptions
	Prompt    string
	Size      string
	Quality   string
	Style     string
	N         int
	OutputDir string
}

// DalleCommand generates images and saves one artifact per image.
type DalleCommand struct {
	Logger         *log.Logger                `resolve:""`
	Catalog        usecases.ModelCatalog      `resolve:""`
	GenerateImages usecases.GenerateImages    `resolve:""`
	TimeProvider   domain.CurrentTimeProvider `resolve:""`
	APIKey         string                     `config:"OPENAI_API_KEY" default:"-"`
	opts           dalleOptions
	stdout         io.Writer
	stderr         io.Writer
	commandResult
}

// Run executes the command once and records its outcome.
func (c *DalleCommand) Run(ctx context.Context) error {
	c.finish(c.execute(ctx))
	return nil
}

func (c *DalleCommand) execute(ctx context.Context) error {
	cred := credential(c.opts.APIKey, c.APIKey)
	if err := confirmModel(ctx, c.stderr, c.Catalog, c.opts.Model, cred); err != nil {
		return err
	}

	start := c.TimeProvider.Now()
	res, err := c.GenerateImages.Execute(ctx, usecases.ImageInput{
		Prompt:     c.opts.Prompt,
		Model:      c.opts.Model,
		Size:       c.opts.Size,
		N:          c.opts.N,
		Quality:    c.opts.Quality,
		Style:      c.opts.Style,
		Credential: cred,
		OutputDir:  c.opts.OutputDir,
	})
	if err != nil {
		return err
	}
	printDuration(c.stderr, c.TimeProvider, start)

	if res.Skipped {
		fmt.Fprintln(c.stderr, "Request skipped.") //nolint:errcheck
		return nil
	}
	for _, img := range res.Images {
		fmt.Fprintf(c.stdout, "Saved URL to %s: %s\n", img.Path, img.URL) //nolint:errcheck
	}
	return nil
}

func (o dalleOptions) validate() error {
	if o.Model == "" {
		return errors.New("--model is required")
	}
	if o.Prompt == "" {
		return errors.New("--prompt is required")
	}
	if !slices.Contains(imageSizes, o.Size) {
		return fmt.Errorf("invalid --size %q: expected one of %v", o.Size, imageSizes)
	}
	if !slices.Contains(imageQualities, o.Quality) {
		return fmt.Errorf("invalid --quality %q: expected one of %v", o.Quality, imageQualities)
	}
	if o.Style != "" && !slices.Contains(imageStyles, o.Style) {
		return fmt.Errorf("invalid --style %q: expected one of %v", o.Style, imageStyles)
	}
	if o.N < 1 {
		return errors.New("--n must be at least 1")
	}
	return nil
}

func newDalleCommand(newApp AppFactory) *cobra.Command {
	var opts dalleOptions
	cmd := &cobra.Command{
		Use:   "dalle",
		Short: "Generate images from a prompt",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			dalle := &DalleCommand{
				opts:          opts,
				stdout:        cmd.OutOrStdout(),
				stderr:        cmd.ErrOrStderr(),
				commandResult: newCommandResult(),
			}
			return runHosted(cmd.Context(), newApp, dalle, &InitConsoleRecovery{In: cmd.InOrStdin(), Out: cmd.ErrOrStderr()})
		},
	}
	opts.bind(cmd, "")
	cmd.Flags().StringVar(&opts.Prompt, "prompt", "", "Text prompt to generate an image")
	cmd.Flags().StringVar(&opts.Size, "size", "1024x1024", "Image resolution: 256x256, 512x512 or 1024x1024")
	cmd.Flags().StringVar(&opts.Quality, "quality", "standard", "Image quality: standard or hd")
	cmd.Flags().StringVar(&opts.Style, "style", "", "Image style: vivid or natural")
	cmd.Flags().IntVar(&opts.N, "n", 1, "Number of images to generate")
	cmd.Flags().StringVar(&opts.OutputDir, "output_dir", "images", "Directory to save generated image records")
	return cmd
}
