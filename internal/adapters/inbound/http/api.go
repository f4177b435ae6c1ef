package http

// ErrorCode identifies the class of a gateway error
type ErrorCode string

const (
	BADREQUEST    ErrorCode = "BAD_REQUEST"
	UNAUTHORIZED  ErrorCode = "UNAUTHORIZED"
	NOTFOUND      ErrorCode = "NOT_FOUND"
	UPSTREAMERROR ErrorCode = "UPSTREAM_ERROR"
	INTERNALERROR ErrorCode = "INTERNAL_ERROR"
)

// Error describes a failed request
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp is the body of every non-2xx response
type ErrorResp struct {
	Error Error `json:"error"`
}

// ChatRequest is the body of POST /v1/chat
type ChatRequest struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model"`
	Stream bool   `json:"stream"`
}

// ChatResp is the body of a non-streaming chat response
type ChatResp struct {
	Text    string `json:"text"`
	Skipped bool   `json:"skipped,omitempty"`
}

// ChatDelta is the data of a streamed "delta" event
type ChatDelta struct {
	Text string `json:"text"`
}

// AssistantRunRequest is the body of POST /v1/assistant-runs
type AssistantRunRequest struct {
	Prompt      string `json:"prompt"`
	AssistantID string `json:"assistant_id"`
}

// AssistantRunResp is the outcome of an assistant run
type AssistantRunResp struct {
	Text     string `json:"text"`
	Status   string `json:"status"`
	ThreadID string `json:"thread_id,omitempty"`
	RunID    string `json:"run_id,omitempty"`
	Polls    int    `json:"polls"`
	Skipped  bool   `json:"skipped,omitempty"`
}

// ImageRequest is the body of POST /v1/images
type ImageRequest struct {
	Prompt  string `json:"prompt"`
	Model   string `json:"model"`
	Size    string `json:"size,omitempty"`
	N       int    `json:"n,omitempty"`
	Quality string `json:"quality,omitempty"`
	Style   string `json:"style,omitempty"`
	// OutputDir is a relative subdirectory of the gateway's artifact root.
	OutputDir string `json:"output_dir,omitempty"`
}

// SavedImage describes one persisted image record
type SavedImage struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// ImagesResp lists the images produced by a request
type ImagesResp struct {
	Images  []SavedImage `json:"images"`
	Skipped bool         `json:"skipped,omitempty"`
}

// TranscriptionResp is the rendered transcript
type TranscriptionResp struct {
	Text    string `json:"text"`
	Format  string `json:"format"`
	Skipped bool   `json:"skipped,omitempty"`
}

// ModelListResp lists the known model ids
type ModelListResp struct {
	Models []string `json:"models"`
}
