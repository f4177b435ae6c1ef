package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createStreamingServer creates a test server that sends OpenAI-style streaming chunks
func createStreamingServer(chunks []StreamChunk) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)

		flusher := w.(http.Flusher)
		for _, chunk := range chunks {
			data, _ := json.Marshal(chunk)
			fmt.Fprintf(w, "data: %s\n\n", data) //nolint:errcheck
			flusher.Flush()
		}
		fmt.Fprintf(w, "data: [DONE]\n\n") //nolint:errcheck
		flusher.Flush()
	}))
}

// createJSONServer creates a test server that answers every request with the given status and body
func createJSONServer(t *testing.T, status int, body string, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClassifyStatus(t *testing.T) {
	tests := map[string]struct {
		code int
		want domain.ProviderErrKind
	}{
		"bad-request":       {code: http.StatusBadRequest, want: domain.ProviderErrKind_BadRequest},
		"not-found":         {code: http.StatusNotFound, want: domain.ProviderErrKind_BadRequest},
		"unprocessable":     {code: http.StatusUnprocessableEntity, want: domain.ProviderErrKind_BadRequest},
		"unauthorized":      {code: http.StatusUnauthorized, want: domain.ProviderErrKind_Auth},
		"forbidden":         {code: http.StatusForbidden, want: domain.ProviderErrKind_Auth},
		"rate-limited":      {code: http.StatusTooManyRequests, want: domain.ProviderErrKind_Transient},
		"request-timeout":   {code: http.StatusRequestTimeout, want: domain.ProviderErrKind_Transient},
		"internal-error":    {code: http.StatusInternalServerError, want: domain.ProviderErrKind_Transient},
		"bad-gateway":       {code: http.StatusBadGateway, want: domain.ProviderErrKind_Transient},
		"other-client-side": {code: http.StatusPaymentRequired, want: domain.ProviderErrKind_BadRequest},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStatus(tt.code))
		})
	}
}

func TestAPIClient_Chat(t *testing.T) {
	tests := map[string]struct {
		status      int
		body        string
		req         ChatRequest
		expectKind  domain.ProviderErrKind
		expectErr   bool
		expectReply string
	}{
		"success": {
			status:      http.StatusOK,
			body:        `{"id":"c1","model":"gpt-4o","choices":[{"message":{"role":"assistant","content":"hi"}}]}`,
			req:         ChatRequest{Model: "gpt-4o", Messages: []ChatMessage{{Role: "user", Content: "hello"}}},
			expectReply: "hi",
		},
		"missing-model": {
			status:    http.StatusOK,
			req:       ChatRequest{Messages: []ChatMessage{{Role: "user", Content: "hello"}}},
			expectErr: true,
		},
		"server-error-is-transient": {
			status:     http.StatusInternalServerError,
			body:       `{"error":{"message":"boom"}}`,
			req:        ChatRequest{Model: "gpt-4o", Messages: []ChatMessage{{Role: "user", Content: "hello"}}},
			expectErr:  true,
			expectKind: domain.ProviderErrKind_Transient,
		},
		"invalid-key-is-auth": {
			status:     http.StatusUnauthorized,
			body:       `{"error":{"message":"Incorrect API key provided"}}`,
			req:        ChatRequest{Model: "gpt-4o", Messages: []ChatMessage{{Role: "user", Content: "hello"}}},
			expectErr:  true,
			expectKind: domain.ProviderErrKind_Auth,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := createJSONServer(t, tt.status, tt.body, func(r *http.Request) {
				assert.Equal(t, "/v1/chat/completions", r.URL.Path)
				assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
			})
			client := NewAPIClient(srv.URL+"/v1", srv.Client())

			resp, err := client.Chat(context.Background(), "sk-test", tt.req)
			if tt.expectErr {
				require.Error(t, err)
				if tt.expectKind != "" {
					var perr *domain.ProviderErr
					require.True(t, errors.As(err, &perr))
					assert.Equal(t, tt.expectKind, perr.Kind)
					assert.Equal(t, tt.status, perr.StatusCode)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectReply, resp.Choices[0].Message.Content)
		})
	}
}

func TestAPIClient_ErrorMessage(t *testing.T) {
	srv := createJSONServer(t, http.StatusBadRequest, `{"error":{"message":"bad size"}}`, nil)
	client := NewAPIClient(srv.URL, srv.Client())

	_, err := client.GenerateImages(context.Background(), "k", ImageRequest{Model: "dall-e-3", Prompt: "cat"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-2xx response: 400 Bad Request: bad size")
}

func TestAPIClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewAPIClient(url, http.DefaultClient)
	_, err := client.ListModels(context.Background(), "k")

	var perr *domain.ProviderErr
	require.True(t, errors.As(err, &perr))
	assert.True(t, perr.IsTransient())
}

func TestAPIClient_AssistantsHeader(t *testing.T) {
	srv := createJSONServer(t, http.StatusOK, `{"id":"thread_1","object":"thread"}`, func(r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/threads", r.URL.Path)
		assert.Equal(t, "assistants=v2", r.Header.Get("OpenAI-Beta"))
	})
	client := NewAPIClient(srv.URL, srv.Client())

	thread, err := client.CreateThread(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "thread_1", thread.ID)
}

func TestAPIClient_ChatStream(t *testing.T) {
	srv := createStreamingServer([]StreamChunk{
		{Choices: []StreamChunkChoice{{Delta: StreamChunkDelta{Content: "Hello"}}}},
		{Choices: []StreamChunkChoice{{Delta: StreamChunkDelta{Content: ""}}}},
		{Choices: []StreamChunkChoice{{Delta: StreamChunkDelta{Content: " world"}}}},
		{Usage: &Usage{PromptTokens: 3, CompletionTokens: 2, TotalTokens: 5}},
	})
	defer srv.Close()
	client := NewAPIClient(srv.URL, srv.Client())

	body, err := client.ChatStream(context.Background(), "k", ChatRequest{
		Model:    "gpt-4o",
		Messages: []ChatMessage{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)

	var texts []string
	var usage *domain.TokenUsage
	for fragment, err := range newChatStream(body) {
		require.NoError(t, err)
		if fragment.Text != "" {
			texts = append(texts, fragment.Text)
		}
		if fragment.Usage != nil {
			usage = fragment.Usage
		}
	}
	assert.Equal(t, []string{"Hello", " world"}, texts)
	require.NotNil(t, usage)
	assert.Equal(t, 5, usage.TotalTokens)
}

func TestAPIClient_ChatStream_Error(t *testing.T) {
	srv := createJSONServer(t, http.StatusTooManyRequests, `{"error":{"message":"slow down"}}`, nil)
	client := NewAPIClient(srv.URL, srv.Client())

	_, err := client.ChatStream(context.Background(), "k", ChatRequest{
		Model:    "gpt-4o",
		Messages: []ChatMessage{{Role: "user", Content: "hi"}},
	})
	var perr *domain.ProviderErr
	require.True(t, errors.As(err, &perr))
	assert.True(t, perr.IsTransient())
}

func TestChatStream_SingleUse(t *testing.T) {
	srv := createStreamingServer([]StreamChunk{
		{Choices: []StreamChunkChoice{{Delta: StreamChunkDelta{Content: "once"}}}},
	})
	defer srv.Close()
	client := NewAPIClient(srv.URL, srv.Client())

	body, err := client.ChatStream(context.Background(), "k", ChatRequest{
		Model:    "gpt-4o",
		Messages: []ChatMessage{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)

	stream := newChatStream(body)
	text, _, err := domain.CollectChatStream(stream, nil)
	require.NoError(t, err)
	assert.Equal(t, "once", text)

	_, _, err = domain.CollectChatStream(stream, nil)
	assert.ErrorIs(t, err, errStreamConsumed)
}

func TestAPIClient_Transcribe(t *testing.T) {
	dir := t.TempDir()
	audio := filepath.Join(dir, "clip.mp3")
	require.NoError(t, os.WriteFile(audio, []byte("fake-audio"), 0o600))

	tests := map[string]struct {
		translate      bool
		expectPath     string
		expectLanguage string
	}{
		"transcription": {
			expectPath:     "/audio/transcriptions",
			expectLanguage: "en",
		},
		"translation-drops-language": {
			translate:      true,
			expectPath:     "/audio/translations",
			expectLanguage: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := createJSONServer(t, http.StatusOK, `{"text":"hello"}`, func(r *http.Request) {
				assert.Equal(t, tt.expectPath, r.URL.Path)
				require.NoError(t, r.ParseMultipartForm(1<<20))
				assert.Equal(t, "whisper-1", r.FormValue("model"))
				assert.Equal(t, "json", r.FormValue("response_format"))
				assert.Equal(t, tt.expectLanguage, r.FormValue("language"))

				f, header, err := r.FormFile("file")
				require.NoError(t, err)
				defer f.Close() //nolint:errcheck
				assert.Equal(t, "clip.mp3", header.Filename)
				content, _ := io.ReadAll(f)
				assert.Equal(t, "fake-audio", string(content))
			})
			client := NewAPIClient(srv.URL, srv.Client())

			body, err := client.Transcribe(context.Background(), "k", AudioRequest{
				FilePath:       audio,
				Model:          "whisper-1",
				Language:       "en",
				ResponseFormat: "json",
			}, tt.translate)
			require.NoError(t, err)
			assert.JSONEq(t, `{"text":"hello"}`, string(body))
		})
	}
}

func TestAPIClient_Transcribe_MissingFile(t *testing.T) {
	client := NewAPIClient("http://localhost", http.DefaultClient)
	_, err := client.Transcribe(context.Background(), "k", AudioRequest{
		FilePath: filepath.Join(t.TempDir(), "missing.mp3"),
		Model:    "whisper-1",
	}, false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
