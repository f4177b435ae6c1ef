package openai

// ChatRequest is an OpenAI-compatible chat completions request
type ChatRequest struct {
	Model         string         `json:"model"`
	Messages      []ChatMessage  `json:"messages"`
	Stream        bool           `json:"stream,omitempty"`
	StreamOptions *StreamOptions `json:"stream_options,omitempty"`
}

// StreamOptions represents options for streaming responses
type StreamOptions struct {
	IncludeUsage bool `json:"include_usage,omitempty"`
}

// ChatMessage is an OpenAI-compatible message
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResponse is an OpenAI-compatible response
type ChatResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   *Usage   `json:"usage"`
}

// Choice represents a completion choice
type Choice struct {
	Index        int     `json:"index"`
	FinishReason string  `json:"finish_reason"`
	Message      Message `json:"message"`
}

// Message represents the assistant message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content,omitempty"`
}

// StreamChunk represents a streaming response chunk
type StreamChunk struct {
	ID      string              `json:"id"`
	Object  string              `json:"object"`
	Created int64               `json:"created"`
	Model   string              `json:"model"`
	Choices []StreamChunkChoice `json:"choices"`
	Usage   *Usage              `json:"usage,omitempty"`
}

// StreamChunkChoice represents a choice in a streaming chunk
type StreamChunkChoice struct {
	Index        int              `json:"index"`
	FinishReason *string          `json:"finish_reason"`
	Delta        StreamChunkDelta `json:"delta"`
}

// StreamChunkDelta represents the delta content
type StreamChunkDelta struct {
	Role    *string `json:"role,omitempty"`
	Content string  `json:"content,omitempty"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Model is one entry of the models list
type Model struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}

// ModelList is the response of the models endpoint
type ModelList struct {
	Object string  `json:"object"`
	Data   []Model `json:"data"`
}

// Thread is an assistants API thread
type Thread struct {
	ID        string `json:"id"`
	Object    string `json:"object"`
	CreatedAt int64  `json:"created_at"`
}

// MessageRequest creates a message on a thread
type MessageRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ThreadMessage is a message stored on a thread
type ThreadMessage struct {
	ID       string           `json:"id"`
	Object   string           `json:"object"`
	ThreadID string           `json:"thread_id"`
	Role     string           `json:"role"`
	Content  []MessageContent `json:"content"`
}

// MessageContent is one content block of a thread message
type MessageContent struct {
	Type string       `json:"type"`
	Text *MessageText `json:"text,omitempty"`
}

// MessageText is the text payload of a content block
type MessageText struct {
	Value string `json:"value"`
}

// MessageList is the response of the list messages endpoint
type MessageList struct {
	Object  string          `json:"object"`
	Data    []ThreadMessage `json:"data"`
	HasMore bool            `json:"has_more"`
}

// RunRequest starts a run of an assistant on a thread
type RunRequest struct {
	AssistantID string `json:"assistant_id"`
}

// Run is an assistants API run
type Run struct {
	ID          string    `json:"id"`
	Object      string    `json:"object"`
	ThreadID    string    `json:"thread_id"`
	AssistantID string    `json:"assistant_id"`
	Status      string    `json:"status"`
	LastError   *APIError `json:"last_error,omitempty"`
}

// ImageRequest is an image generation request
type ImageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n,omitempty"`
	Size           string `json:"size,omitempty"`
	Quality        string `json:"quality,omitempty"`
	Style          string `json:"style,omitempty"`
	ResponseFormat string `json:"response_format,omitempty"`
}

// ImageData describes one generated image
type ImageData struct {
	URL           string `json:"url"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

// ImageResponse is the response of the image generation endpoint
type ImageResponse struct {
	Created int64       `json:"created"`
	Data    []ImageData `json:"data"`
}

// AudioRequest holds the form fields of a transcription or translation upload
type AudioRequest struct {
	FilePath       string
	Model          string
	Language       string
	ResponseFormat string
}

// APIError is the error object returned by the API
type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    any    `json:"code,omitempty"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error *APIError `json:"error"`
}
