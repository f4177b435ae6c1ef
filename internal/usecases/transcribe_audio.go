package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/telemetry"
)

const defaultTranscriptionModel = "whisper-1"

// TranscriptionInput holds the parameters of an audio transcription or translation.
type TranscriptionInput struct {
	FilePath   string
	Model      string
	Language   string
	Translate  bool
	Format     domain.TranscriptFormat
	Credential string
	OutputFile string
	TaskID     string
}

// TranscriptionResult is the outcome of an audio transcription or translation.
type TranscriptionResult struct {
	Text       string
	OutputFile string
	Skipped    bool
}

// TranscribeAudio defines the use case for transcribing or translating an audio file.
type TranscribeAudio interface {
	Execute(ctx context.Context, in TranscriptionInput) (TranscriptionResult, error)
}

// TranscribeAudioImpl implements the TranscribeAudio use case.
type TranscribeAudioImpl struct {
	dispatcher   Dispatcher
	artifacts    domain.ArtifactStore
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
}

// NewTranscribeAudioImpl creates a new TranscribeAudioImpl instance.
func NewTranscribeAudioImpl(
	dispatcher Dispatcher,
	artifacts domain.ArtifactStore,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) TranscribeAudioImpl {
	return TranscribeAudioImpl{
		dispatcher:   dispatcher,
		artifacts:    artifacts,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute sends the audio file to the transcription or translation capability.
// Structured answers are rendered as indented JSON, text formats are kept verbatim.
func (ta TranscribeAudioImpl) Execute(ctx context.Context, in TranscriptionInput) (TranscriptionResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	res, err := ta.execute(spanCtx, in)
	if telemetry.RecordErrorAndStatus(span, err) {
		return TranscriptionResult{}, err
	}
	return res, nil
}

func (ta TranscribeAudioImpl) execute(ctx context.Context, in TranscriptionInput) (TranscriptionResult, error) {
	if strings.TrimSpace(in.FilePath) == "" {
		return TranscriptionResult{}, domain.NewValidationErr("file cannot be empty")
	}
	format := in.Format
	if format == "" {
		format = domain.TranscriptFormat_JSON
	}
	if !format.IsValid() {
		return TranscriptionResult{}, domain.NewValidationErr(fmt.Sprintf("unsupported format %q", in.Format))
	}
	model := in.Model
	if model == "" {
		model = defaultTranscriptionModel
	}

	op := domain.OperationID_AudioTranscribe
	params := domain.Params{
		domain.Param_Model:          model,
		domain.Param_File:           in.FilePath,
		domain.Param_ResponseFormat: string(format),
	}
	if in.Translate {
		op = domain.OperationID_AudioTranslate
	} else if in.Language != "" {
		params[domain.Param_Language] = in.Language
	}

	start := ta.timeProvider.Now()
	res, err := ta.dispatcher.Execute(ctx, domain.DispatchRequest{
		Operation:  op,
		TaskID:     in.TaskID,
		Credential: in.Credential,
		Params:     params,
	})
	if err != nil {
		return TranscriptionResult{}, err
	}
	if res.Skipped {
		return TranscriptionResult{Skipped: true}, nil
	}

	transcript, ok := res.Payload.(domain.Transcript)
	if !ok {
		return TranscriptionResult{}, fmt.Errorf("unexpected %s payload %T", op, res.Payload)
	}

	text, err := renderTranscript(transcript)
	if err != nil {
		return TranscriptionResult{}, err
	}

	if in.OutputFile != "" {
		if err := ta.artifacts.WriteText(ctx, in.OutputFile, text); err != nil {
			return TranscriptionResult{}, fmt.Errorf("failed to save transcript: %w", err)
		}
	}

	elapsed := ta.timeProvider.Now().Sub(start)
	RecordOperationDuration(ctx, op.String(), elapsed)
	ta.logger.Printf("TranscribeAudio: operation=%s model=%s duration=%.2fs", op, model, elapsed.Seconds())

	return TranscriptionResult{Text: text, OutputFile: in.OutputFile}, nil
}

func renderTranscript(t domain.Transcript) (string, error) {
	if !t.Format.IsStructured() || t.Document == nil {
		return t.Raw, nil
	}
	out, err := json.MarshalIndent(t.Document, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render transcript: %w", err)
	}
	return string(out), nil
}

// InitTranscribeAudio initializes the TranscribeAudio use case.
type InitTranscribeAudio struct {
	Dispatcher   Dispatcher                 `resolve:""`
	Artifacts    domain.ArtifactStore       `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
}

// Initialize registers the TranscribeAudio use case in the dependency container.
func (i InitTranscribeAudio) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[TranscribeAudio](NewTranscribeAudioImpl(
		i.Dispatcher,
		i.Artifacts,
		i.TimeProvider,
		i.Logger,
	))
	return ctx, nil
}
