package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/telemetry"
)

type handlerFunc func(ctx context.Context, credential string, params domain.Params) (any, error)

// Provider adapts APIClient to the domain.Provider and domain.ModelLister interfaces.
// Operations are routed through a fixed table keyed by operation id.
type Provider struct {
	client   APIClient
	handlers map[domain.OperationID]handlerFunc
}

// NewProvider creates a new provider backed by the given client
func NewProvider(client APIClient) Provider {
	p := Provider{client: client}
	p.handlers = map[domain.OperationID]handlerFunc{
		domain.OperationID_ChatCreate:           p.chatCreate,
		domain.OperationID_ChatStream:           p.chatStream,
		domain.OperationID_ThreadsCreate:        p.threadsCreate,
		domain.OperationID_ThreadMessagesCreate: p.threadMessagesCreate,
		domain.OperationID_ThreadMessagesList:   p.threadMessagesList,
		domain.OperationID_ThreadRunsCreate:     p.threadRunsCreate,
		domain.OperationID_ThreadRunsRetrieve:   p.threadRunsRetrieve,
		domain.OperationID_ImagesGenerate:       p.imagesGenerate,
		domain.OperationID_AudioTranscribe:      p.audioTranscribe,
		domain.OperationID_AudioTranslate:       p.audioTranslate,
		domain.OperationID_ModelsList:           p.modelsList,
	}
	return p
}

// Invoke implements domain.Provider.Invoke
func (p Provider) Invoke(ctx context.Context, op domain.OperationID, credential string, params domain.Params) (any, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithOperation(op.String(), ""))
	defer span.End()

	handler, ok := p.handlers[op]
	if !ok {
		err := domain.NewUnknownOperationErr(op.String())
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	payload, err := handler(spanCtx, credential, params)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return payload, nil
}

// ListModels implements domain.ModelLister.ListModels
func (p Provider) ListModels(ctx context.Context, credential string) ([]string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	ids, err := p.listModelIDs(spanCtx, credential)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return ids, nil
}

func (p Provider) chatCreate(ctx context.Context, credential string, params domain.Params) (any, error) {
	req, err := toChatRequest(params)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Chat(ctx, credential, req)
	if err != nil {
		return nil, err
	}

	completion := domain.ChatCompletion{
		ID:      resp.ID,
		Model:   resp.Model,
		Choices: make([]string, 0, len(resp.Choices)),
	}
	for _, choice := range resp.Choices {
		completion.Choices = append(completion.Choices, choice.Message.Content)
	}
	if resp.Usage != nil {
		completion.Usage = domain.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return completion, nil
}

// chatStream opens the connection eagerly so connection failures surface to the dispatcher.
func (p Provider) chatStream(ctx context.Context, credential string, params domain.Params) (any, error) {
	req, err := toChatRequest(params)
	if err != nil {
		return nil, err
	}
	body, err := p.client.ChatStream(ctx, credential, req)
	if err != nil {
		return nil, err
	}
	return newChatStream(body), nil
}

func (p Provider) threadsCreate(ctx context.Context, credential string, _ domain.Params) (any, error) {
	thread, err := p.client.CreateThread(ctx, credential)
	if err != nil {
		return nil, err
	}
	return domain.AssistantThread{ID: thread.ID}, nil
}

func (p Provider) threadMessagesCreate(ctx context.Context, credential string, params domain.Params) (any, error) {
	if err := requireParams(params, domain.Param_ThreadID, domain.Param_Content); err != nil {
		return nil, err
	}
	role := params.String(domain.Param_Role)
	if role == "" {
		role = string(domain.ChatRole_User)
	}
	msg, err := p.client.CreateMessage(ctx, credential, params.String(domain.Param_ThreadID), MessageRequest{
		Role:    role,
		Content: params.String(domain.Param_Content),
	})
	if err != nil {
		return nil, err
	}
	return toThreadMessage(*msg), nil
}

func (p Provider) threadMessagesList(ctx context.Context, credential string, params domain.Params) (any, error) {
	if err := requireParams(params, domain.Param_ThreadID); err != nil {
		return nil, err
	}
	list, err := p.client.ListMessages(ctx, credential, params.String(domain.Param_ThreadID))
	if err != nil {
		return nil, err
	}
	messages := make([]domain.ThreadMessage, 0, len(list.Data))
	for _, m := range list.Data {
		messages = append(messages, toThreadMessage(m))
	}
	return messages, nil
}

func (p Provider) threadRunsCreate(ctx context.Context, credential string, params domain.Params) (any, error) {
	if err := requireParams(params, domain.Param_ThreadID, domain.Param_AssistantID); err != nil {
		return nil, err
	}
	run, err := p.client.CreateRun(ctx, credential, params.String(domain.Param_ThreadID), RunRequest{
		AssistantID: params.String(domain.Param_AssistantID),
	})
	if err != nil {
		return nil, err
	}
	return toAssistantRun(*run, params.String(domain.Param_ThreadID)), nil
}

func (p Provider) threadRunsRetrieve(ctx context.Context, credential string, params domain.Params) (any, error) {
	if err := requireParams(params, domain.Param_ThreadID, domain.Param_RunID); err != nil {
		return nil, err
	}
	run, err := p.client.RetrieveRun(ctx, credential, params.String(domain.Param_ThreadID), params.String(domain.Param_RunID))
	if err != nil {
		return nil, err
	}
	return toAssistantRun(*run, params.String(domain.Param_ThreadID)), nil
}

func (p Provider) imagesGenerate(ctx context.Context, credential string, params domain.Params) (any, error) {
	if err := requireParams(params, domain.Param_Model, domain.Param_Prompt); err != nil {
		return nil, err
	}
	req := ImageRequest{
		Model:          params.String(domain.Param_Model),
		Prompt:         params.String(domain.Param_Prompt),
		Size:           params.String(domain.Param_Size),
		Quality:        params.String(domain.Param_Quality),
		Style:          params.String(domain.Param_Style),
		ResponseFormat: params.String(domain.Param_ResponseFormat),
	}
	if n, ok := params.Int(domain.Param_N); ok {
		req.N = n
	}

	resp, err := p.client.GenerateImages(ctx, credential, req)
	if err != nil {
		return nil, err
	}
	images := make([]domain.GeneratedImage, 0, len(resp.Data))
	for _, d := range resp.Data {
		images = append(images, domain.GeneratedImage{URL: d.URL, RevisedPrompt: d.RevisedPrompt})
	}
	return images, nil
}

func (p Provider) audioTranscribe(ctx context.Context, credential string, params domain.Params) (any, error) {
	return p.audio(ctx, credential, params, false)
}

func (p Provider) audioTranslate(ctx context.Context, credential string, params domain.Params) (any, error) {
	return p.audio(ctx, credential, params, true)
}

func (p Provider) audio(ctx context.Context, credential string, params domain.Params, translate bool) (any, error) {
	if err := requireParams(params, domain.Param_File, domain.Param_Model); err != nil {
		return nil, err
	}
	format := domain.TranscriptFormat(params.String(domain.Param_ResponseFormat))
	if format == "" {
		format = domain.TranscriptFormat_JSON
	}

	body, err := p.client.Transcribe(ctx, credential, AudioRequest{
		FilePath:       params.String(domain.Param_File),
		Model:          params.String(domain.Param_Model),
		Language:       params.String(domain.Param_Language),
		ResponseFormat: string(format),
	}, translate)
	if err != nil {
		return nil, err
	}

	transcript := domain.Transcript{Format: format, Raw: string(body)}
	if format.IsStructured() {
		if err := json.Unmarshal(body, &transcript.Document); err != nil {
			return nil, fmt.Errorf("unmarshal transcript: %w", err)
		}
	}
	return transcript, nil
}

func (p Provider) modelsList(ctx context.Context, credential string, _ domain.Params) (any, error) {
	return p.listModelIDs(ctx, credential)
}

func (p Provider) listModelIDs(ctx context.Context, credential string) ([]string, error) {
	list, err := p.client.ListModels(ctx, credential)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(list.Data))
	for _, m := range list.Data {
		if m.ID != "" {
			ids = append(ids, m.ID)
		}
	}
	slices.Sort(ids)
	return slices.Compact(ids), nil
}

func toChatRequest(params domain.Params) (ChatRequest, error) {
	if err := requireParams(params, domain.Param_Model); err != nil {
		return ChatRequest{}, err
	}
	msgs := params.Messages()
	if len(msgs) == 0 {
		return ChatRequest{}, domain.NewValidationErr("messages parameter is required")
	}
	req := ChatRequest{
		Model:    params.String(domain.Param_Model),
		Messages: make([]ChatMessage, len(msgs)),
	}
	for i, msg := range msgs {
		req.Messages[i] = ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}
	return req, nil
}

func toThreadMessage(m ThreadMessage) domain.ThreadMessage {
	msg := domain.ThreadMessage{
		ID:   m.ID,
		Role: domain.ChatRole(m.Role),
	}
	for _, c := range m.Content {
		if c.Type == "text" && c.Text != nil {
			msg.Texts = append(msg.Texts, c.Text.Value)
		}
	}
	return msg
}

func toAssistantRun(r Run, threadID string) domain.AssistantRun {
	if r.ThreadID != "" {
		threadID = r.ThreadID
	}
	return domain.AssistantRun{
		ThreadID: threadID,
		RunID:    r.ID,
		Status:   MapRunStatus(r.Status),
	}
}

// MapRunStatus collapses the provider's run statuses into domain run statuses.
// Unknown statuses are treated as still pending.
func MapRunStatus(status string) domain.RunStatus {
	switch status {
	case "completed":
		return domain.RunStatus_Completed
	case "failed", "cancelled", "expired", "incomplete":
		return domain.RunStatus_Failed
	default:
		return domain.RunStatus_Pending
	}
}

func requireParams(params domain.Params, names ...string) error {
	var missing []string
	for _, name := range names {
		if !params.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return domain.NewValidationErr(fmt.Sprintf("missing required parameters: %s", strings.Join(missing, ", ")))
	}
	return nil
}

// InitProvider initializes the OpenAI provider dependency
type InitProvider struct {
	HttpClient *http.Client `resolve:""`
	BaseURL    string       `config:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
}

// Initialize registers the Provider as domain.Provider and domain.ModelLister
func (i InitProvider) Initialize(ctx context.Context) (context.Context, error) {
	provider := NewProvider(NewAPIClient(i.BaseURL, i.HttpClient))
	depend.Register[domain.Provider](provider)
	depend.Register[domain.ModelLister](provider)
	return ctx, nil
}
