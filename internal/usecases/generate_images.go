package usecases

import (
	"context"
	"embed"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/telemetry"
	"go.yaml.in/yaml/v3"
)

const (
	defaultImageSize      = "1024x1024"
	defaultImageOutputDir = "images"
)

// ImageInput holds the parameters of an image generation.
type ImageInput struct {
	Prompt     string
	Model      string
	Size       string
	N          int
	Quality    string
	Style      string
	Credential string
	OutputDir  string
	TaskID     string
}

// SavedImage is a generated image and the artifact recording it.
type SavedImage struct {
	URL  string
	Path string
}

// ImageResult is the outcome of an image generation.
type ImageResult struct {
	Images  []SavedImage
	Skipped bool
}

// GenerateImages defines the use case for generating images from a prompt.
type GenerateImages interface {
	Execute(ctx context.Context, in ImageInput) (ImageResult, error)
}

// GenerateImagesImpl implements the GenerateImages use case.
type GenerateImagesImpl struct {
	dispatcher   Dispatcher
	artifacts    domain.ArtifactStore
	timeProvider domain.CurrentTimeProvider
	rules        domain.ImageModelRules
	logger       *log.Logger
}

// NewGenerateImagesImpl creates a new GenerateImagesImpl instance.
func NewGenerateImagesImpl(
	dispatcher Dispatcher,
	artifacts domain.ArtifactStore,
	timeProvider domain.CurrentTimeProvider,
	rules domain.ImageModelRules,
	logger *log.Logger,
) GenerateImagesImpl {
	return GenerateImagesImpl{
		dispatcher:   dispatcher,
		artifacts:    artifacts,
		timeProvider: timeProvider,
		rules:        rules,
		logger:       logger,
	}
}

// Execute generates the images and persists one JSON artifact per image.
func (gi GenerateImagesImpl) Execute(ctx context.Context, in ImageInput) (ImageResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	res, err := gi.execute(spanCtx, in)
	if telemetry.RecordErrorAndStatus(span, err) {
		return ImageResult{}, err
	}
	return res, nil
}

func (gi GenerateImagesImpl) execute(ctx context.Context, in ImageInput) (ImageResult, error) {
	if strings.TrimSpace(in.Prompt) == "" {
		return ImageResult{}, domain.NewValidationErr("prompt cannot be empty")
	}
	if in.Model == "" {
		return ImageResult{}, domain.NewValidationErr("model cannot be empty")
	}
	if in.N < 0 {
		return ImageResult{}, domain.NewValidationErr("n must be a positive number")
	}

	start := gi.timeProvider.Now()
	res, err := gi.dispatcher.Execute(ctx, domain.DispatchRequest{
		Operation:  domain.OperationID_ImagesGenerate,
		TaskID:     in.TaskID,
		Credential: in.Credential,
		Params:     gi.buildParams(in),
	})
	if err != nil {
		return ImageResult{}, err
	}
	if res.Skipped {
		return ImageResult{Skipped: true}, nil
	}

	images, ok := res.Payload.([]domain.GeneratedImage)
	if !ok {
		return ImageResult{}, fmt.Errorf("unexpected %s payload %T", domain.OperationID_ImagesGenerate, res.Payload)
	}

	outputDir := in.OutputDir
	if outputDir == "" {
		outputDir = defaultImageOutputDir
	}
	stamp := domain.ArtifactTimestamp(gi.timeProvider.Now())

	saved := make([]SavedImage, 0, len(images))
	for i, img := range images {
		path := filepath.Join(outputDir, fmt.Sprintf("dalle_%s_%d.json", stamp, i+1))
		err := gi.artifacts.WriteJSON(ctx, path, domain.ImageArtifact{
			URL:    img.URL,
			Prompt: in.Prompt,
		})
		if err != nil {
			return ImageResult{}, fmt.Errorf("failed to save image %d: %w", i+1, err)
		}
		saved = append(saved, SavedImage{URL: img.URL, Path: path})
	}

	elapsed := gi.timeProvider.Now().Sub(start)
	RecordOperationDuration(ctx, domain.OperationID_ImagesGenerate.String(), elapsed)
	gi.logger.Printf("GenerateImages: model=%s images=%d duration=%.2fs", in.Model, len(saved), elapsed.Seconds())

	return ImageResult{Images: saved}, nil
}

// buildParams shapes the request for the model family.
// Quality and style are only sent to models whose rule accepts them.
func (gi GenerateImagesImpl) buildParams(in ImageInput) domain.Params {
	size := in.Size
	if size == "" {
		size = defaultImageSize
	}
	n := in.N
	if n == 0 {
		n = 1
	}

	params := domain.Params{
		domain.Param_Model:          in.Model,
		domain.Param_Prompt:         in.Prompt,
		domain.Param_Size:           size,
		domain.Param_N:              n,
		domain.Param_ResponseFormat: "url",
	}

	rule := gi.rules.Lookup(in.Model)
	if rule.SupportsQuality && in.Quality != "" {
		params[domain.Param_Quality] = in.Quality
	}
	if rule.SupportsStyle && in.Style != "" {
		params[domain.Param_Style] = in.Style
	}
	return params
}

//go:embed config/image_models.yml
var defaultImageModelRules embed.FS

// loadImageModelRules reads the model family rules from path, or the embedded defaults when path is unset.
func loadImageModelRules(ctx context.Context, artifacts domain.ArtifactStore, path string) (domain.ImageModelRules, error) {
	var content []byte
	if path == "" || path == "-" {
		data, err := defaultImageModelRules.ReadFile("config/image_models.yml")
		if err != nil {
			return domain.ImageModelRules{}, fmt.Errorf("failed to open image model rules: %w", err)
		}
		content = data
	} else {
		text, err := artifacts.ReadText(ctx, path)
		if err != nil {
			return domain.ImageModelRules{}, fmt.Errorf("failed to read image model rules: %w", err)
		}
		content = []byte(text)
	}

	rules := domain.ImageModelRules{}
	if err := yaml.Unmarshal(content, &rules); err != nil {
		return domain.ImageModelRules{}, fmt.Errorf("failed to decode image model rules: %w", err)
	}
	return rules, nil
}

// InitGenerateImages initializes the GenerateImages use case.
type InitGenerateImages struct {
	Dispatcher   Dispatcher                 `resolve:""`
	Artifacts    domain.ArtifactStore       `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
	RulesFile    string                     `config:"IMAGE_MODEL_RULES_FILE" default:"-"`
}

// Initialize registers the GenerateImages use case in the dependency container.
func (i InitGenerateImages) Initialize(ctx context.Context) (context.Context, error) {
	rules, err := loadImageModelRules(ctx, i.Artifacts, i.RulesFile)
	if err != nil {
		return ctx, err
	}
	depend.Register[GenerateImages](NewGenerateImagesImpl(
		i.Dispatcher,
		i.Artifacts,
		i.TimeProvider,
		rules,
		i.Logger,
	))
	return ctx, nil
}
