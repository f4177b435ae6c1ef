// Package openai provides a thin client for the OpenAI REST API and the
// provider adapter that routes dispatcher operations to it.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
)

// DefaultBaseURL is the public OpenAI API endpoint.
const DefaultBaseURL = "https://api.openai.com/v1"

const assistantsBetaHeader = "assistants=v2"

// APIClient is a thin client for the OpenAI REST API.
// The credential is supplied per call.
type APIClient struct {
	baseURL string
	http    *http.Client
}

// NewAPIClient creates a new client
func NewAPIClient(baseURL string, httpClient *http.Client) APIClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return APIClient{
		baseURL: baseURL,
		http:    httpClient,
	}
}

// Chat sends a non-streaming chat completions request
func (c APIClient) Chat(ctx context.Context, apiKey string, req ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		return nil, errors.New("model is required")
	}
	if len(req.Messages) == 0 {
		return nil, errors.New("messages are required")
	}
	req.Stream = false

	var out ChatResponse
	if err := c.doJSON(ctx, http.MethodPost, "/chat/completions", apiKey, req, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChatStream opens a streaming chat completions request.
// The returned body yields SSE data packets and must be closed by the caller.
func (c APIClient) ChatStream(ctx context.Context, apiKey string, req ChatRequest) (io.ReadCloser, error) {
	if req.Model == "" {
		return nil, errors.New("model is required")
	}
	if len(req.Messages) == 0 {
		return nil, errors.New("messages are required")
	}
	req.Stream = true
	req.StreamOptions = &StreamOptions{IncludeUsage: true}

	httpReq, err := c.newJSONRequest(ctx, http.MethodPost, "/chat/completions", apiKey, req, false)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, newTransportErr(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close() //nolint:errcheck
		b, _ := io.ReadAll(resp.Body)
		return nil, newStatusErr(resp, b)
	}
	return resp.Body, nil
}

// ListModels retrieves the models available to the credential
func (c APIClient) ListModels(ctx context.Context, apiKey string) (*ModelList, error) {
	var out ModelList
	if err := c.doJSON(ctx, http.MethodGet, "/models", apiKey, nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateThread creates an empty assistants thread
func (c APIClient) CreateThread(ctx context.Context, apiKey string) (*Thread, error) {
	var out Thread
	if err := c.doJSON(ctx, http.MethodPost, "/threads", apiKey, struct{}{}, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateMessage posts a message to a thread
func (c APIClient) CreateMessage(ctx context.Context, apiKey, threadID string, req MessageRequest) (*ThreadMessage, error) {
	if threadID == "" {
		return nil, errors.New("thread id is required")
	}
	var out ThreadMessage
	if err := c.doJSON(ctx, http.MethodPost, "/threads/"+url.PathEscape(threadID)+"/messages", apiKey, req, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMessages lists the messages of a thread, newest first
func (c APIClient) ListMessages(ctx context.Context, apiKey, threadID string) (*MessageList, error) {
	if threadID == "" {
		return nil, errors.New("thread id is required")
	}
	var out MessageList
	if err := c.doJSON(ctx, http.MethodGet, "/threads/"+url.PathEscape(threadID)+"/messages", apiKey, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRun starts an assistant run on a thread
func (c APIClient) CreateRun(ctx context.Context, apiKey, threadID string, req RunRequest) (*Run, error) {
	if threadID == "" {
		return nil, errors.New("thread id is required")
	}
	var out Run
	if err := c.doJSON(ctx, http.MethodPost, "/threads/"+url.PathEscape(threadID)+"/runs", apiKey, req, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// RetrieveRun fetches the current state of a run
func (c APIClient) RetrieveRun(ctx context.Context, apiKey, threadID, runID string) (*Run, error) {
	if threadID == "" || runID == "" {
		return nil, errors.New("thread id and run id are required")
	}
	var out Run
	path := "/threads/" + url.PathEscape(threadID) + "/runs/" + url.PathEscape(runID)
	if err := c.doJSON(ctx, http.MethodGet, path, apiKey, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateImages requests images for a prompt
func (c APIClient) GenerateImages(ctx context.Context, apiKey string, req ImageRequest) (*ImageResponse, error) {
	if req.Prompt == "" {
		return nil, errors.New("prompt is required")
	}
	var out ImageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/images/generations", apiKey, req, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// Transcribe uploads an audio file to the transcription endpoint, or the translation endpoint when translate is set.
// The raw response body is returned since its shape depends on the requested format.
func (c APIClient) Transcribe(ctx context.Context, apiKey string, req AudioRequest, translate bool) ([]byte, error) {
	if req.FilePath == "" {
		return nil, errors.New("file is required")
	}
	path := "/audio/transcriptions"
	if translate {
		path = "/audio/translations"
	}

	body, contentType, err := buildAudioForm(req, translate)
	if err != nil {
		return nil, err
	}

	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	setAuth(httpReq, apiKey)

	return c.do(httpReq)
}

// buildAudioForm renders the multipart form for an audio upload.
func buildAudioForm(req AudioRequest, translate bool) ([]byte, string, error) {
	f, err := os.Open(req.FilePath)
	if err != nil {
		return nil, "", fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filepath.Base(req.FilePath))
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("copy audio file: %w", err)
	}

	fields := map[string]string{
		"model":           req.Model,
		"response_format": req.ResponseFormat,
	}
	if !translate {
		fields["language"] = req.Language
	}
	for _, name := range []string{"model", "response_format", "language"} {
		if fields[name] == "" {
			continue
		}
		if err := w.WriteField(name, fields[name]); err != nil {
			return nil, "", fmt.Errorf("write form field %s: %w", name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close form: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func (c APIClient) doJSON(ctx context.Context, method, path, apiKey string, body, out any, beta bool) error {
	httpReq, err := c.newJSONRequest(ctx, method, path, apiKey, body, beta)
	if err != nil {
		return err
	}

	respBody, err := c.do(httpReq)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// do executes the request and returns the body of a 2xx response.
func (c APIClient) do(httpReq *http.Request) ([]byte, error) {
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, newTransportErr(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newTransportErr(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newStatusErr(resp, respBody)
	}
	return respBody, nil
}

func (c APIClient) newJSONRequest(ctx context.Context, method, path, apiKey string, body any, beta bool) (*http.Request, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if beta {
		req.Header.Set("OpenAI-Beta", assistantsBetaHeader)
	}
	setAuth(req, apiKey)
	return req, nil
}

func setAuth(req *http.Request, apiKey string) {
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
}
