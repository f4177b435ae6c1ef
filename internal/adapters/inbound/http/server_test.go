package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/usecases"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type gatewayMocks struct {
	catalog    *mocks.MockModelCatalog
	chat       *mocks.MockCompleteChat
	assistant  *mocks.MockRunAssistant
	images     *mocks.MockGenerateImages
	transcribe *mocks.MockTranscribeAudio
}

func newTestGateway(t *testing.T) (GatewayServer, gatewayMocks) {
	t.Helper()
	m := gatewayMocks{
		catalog:    mocks.NewMockModelCatalog(t),
		chat:       mocks.NewMockCompleteChat(t),
		assistant:  mocks.NewMockRunAssistant(t),
		images:     mocks.NewMockGenerateImages(t),
		transcribe: mocks.NewMockTranscribeAudio(t),
	}
	return GatewayServer{
		Host:                   "127.0.0.1",
		Port:                   8080,
		AllowedOrigins:         "-",
		APIKey:                 "sk-configured",
		ShareServerKey:         true,
		ArtifactRoot:           "images",
		MaxUploadBytes:         1 << 20,
		Logger:                 log.New(io.Discard, "", 0),
		ModelCatalog:           m.catalog,
		CompleteChatUseCase:    m.chat,
		RunAssistantUseCase:    m.assistant,
		GenerateImagesUseCase:  m.images,
		TranscribeAudioUseCase: m.transcribe,
	}, m
}

func serializeJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func decodeError(t *testing.T, body []byte) ErrorResp {
	t.Helper()
	var resp ErrorResp
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestGatewayServer_Chat(t *testing.T) {
	tests := map[string]struct {
		requestBody     []byte
		authorization   string
		setExpectations func(m gatewayMocks)
		expectedStatus  int
		expectedBody    *ChatResp
		expectedError   *Error
	}{
		"success": {
			requestBody: serializeJSON(t, ChatRequest{Prompt: "hi", Model: "gpt-4o"}),
			setExpectations: func(m gatewayMocks) {
				m.catalog.EXPECT().Confirm(mock.Anything, "gpt-4o", "sk-configured").Return(true)
				m.chat.EXPECT().
					Execute(mock.Anything, usecases.ChatInput{Prompt: "hi", Model: "gpt-4o", Credential: "sk-configured"}, mock.Anything).
					Return(usecases.ChatResult{Text: "hello"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &ChatResp{Text: "hello"},
		},
		"bearer-token-overrides-configured-key": {
			requestBody:   serializeJSON(t, ChatRequest{Prompt: "hi", Model: "gpt-4o"}),
			authorization: "Bearer sk-caller",
			setExpectations: func(m gatewayMocks) {
				m.catalog.EXPECT().Confirm(mock.Anything, "gpt-4o", "sk-caller").Return(true)
				m.chat.EXPECT().
					Execute(mock.Anything, usecases.ChatInput{Prompt: "hi", Model: "gpt-4o", Credential: "sk-caller"}, mock.Anything).
					Return(usecases.ChatResult{Text: "hello"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &ChatResp{Text: "hello"},
		},
		"skipped": {
			requestBody: serializeJSON(t, ChatRequest{Prompt: "hi", Model: "gpt-4o"}),
			setExpectations: func(m gatewayMocks) {
				m.catalog.EXPECT().Confirm(mock.Anything, "gpt-4o", "sk-configured").Return(true)
				m.chat.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
					Return(usecases.ChatResult{Skipped: true}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &ChatResp{Skipped: true},
		},
		"model-not-recognized": {
			requestBody: serializeJSON(t, ChatRequest{Prompt: "hi", Model: "gpt-99"}),
			setExpectations: func(m gatewayMocks) {
				m.catalog.EXPECT().Confirm(mock.Anything, "gpt-99", "sk-configured").Return(false)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  &Error{Code: BADREQUEST, Message: "model not recognized: gpt-99"},
		},
		"missing-model": {
			requestBody:     serializeJSON(t, ChatRequest{Prompt: "hi"}),
			setExpectations: func(m gatewayMocks) {},
			expectedStatus:  http.StatusBadRequest,
			expectedError:   &Error{Code: BADREQUEST, Message: "model is required"},
		},
		"invalid-json-body": {
			requestBody:     []byte(`{"prompt": `),
			setExpectations: func(m gatewayMocks) {},
			expectedStatus:  http.StatusBadRequest,
			expectedError:   &Error{Code: BADREQUEST, Message: "invalid request body"},
		},
		"validation-error": {
			requestBody: serializeJSON(t, ChatRequest{Model: "gpt-4o"}),
			setExpectations: func(m gatewayMocks) {
				m.catalog.EXPECT().Confirm(mock.Anything, "gpt-4o", "sk-configured").Return(true)
				m.chat.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
					Return(usecases.ChatResult{}, domain.NewValidationErr("prompt is required"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  &Error{Code: BADREQUEST, Message: "prompt is required"},
		},
		"provider-error": {
			requestBody: serializeJSON(t, ChatRequest{Prompt: "hi", Model: "gpt-4o"}),
			setExpectations: func(m gatewayMocks) {
				m.catalog.EXPECT().Confirm(mock.Anything, "gpt-4o", "sk-configured").Return(true)
				m.chat.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
					Return(usecases.ChatResult{}, domain.NewProviderErr(domain.ProviderErrKind_Auth, http.StatusUnauthorized, "invalid key", nil))
			},
			expectedStatus: http.StatusBadGateway,
			expectedError:  &Error{Code: UPSTREAMERROR, Message: "provider auth error (status 401): invalid key"},
		},
		"internal-error": {
			requestBody: serializeJSON(t, ChatRequest{Prompt: "hi", Model: "gpt-4o"}),
			setExpectations: func(m gatewayMocks) {
				m.catalog.EXPECT().Confirm(mock.Anything, "gpt-4o", "sk-configured").Return(true)
				m.chat.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
					Return(usecases.ChatResult{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &Error{Code: INTERNALERROR, Message: "internal server error"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server, m := newTestGateway(t)
			tt.setExpectations(m)

			req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			w := httptest.NewRecorder()

			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var resp ChatResp
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, *tt.expectedBody, resp)
			}
			if tt.expectedError != nil {
				assert.Equal(t, *tt.expectedError, decodeError(t, w.Body.Bytes()).Error)
			}
		})
	}
}

func TestGatewayServer_Chat_Stream(t *testing.T) {
	server, m := newTestGateway(t)
	m.catalog.EXPECT().Confirm(mock.Anything, "gpt-4o", "sk-configured").Return(true)
	m.chat.EXPECT().
		Execute(mock.Anything, usecases.ChatInput{Prompt: "hi", Model: "gpt-4o", Stream: true, Credential: "sk-configured"}, mock.Anything).
		RunAndReturn(func(_ context.Context, _ usecases.ChatInput, onFragment usecases.FragmentObserver) (usecases.ChatResult, error) {
			onFragment("Hel")
			onFragment("lo")
			return usecases.ChatResult{Text: "Hello"}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewReader(serializeJSON(t, ChatRequest{Prompt: "hi", Model: "gpt-4o", Stream: true})))
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal(t,
		"event: delta\ndata: {\"text\":\"Hel\"}\n\n"+
			"event: delta\ndata: {\"text\":\"lo\"}\n\n"+
			"event: done\ndata: {\"text\":\"Hello\"}\n\n",
		w.Body.String(),
	)
}

func TestGatewayServer_Chat_StreamFailsMidway(t *testing.T) {
	server, m := newTestGateway(t)
	m.catalog.EXPECT().Confirm(mock.Anything, "gpt-4o", "sk-configured").Return(true)
	m.chat.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ usecases.ChatInput, onFragment usecases.FragmentObserver) (usecases.ChatResult, error) {
			onFragment("partial")
			return usecases.ChatResult{}, domain.NewProviderErr(domain.ProviderErrKind_Transient, 0, "connection reset", nil)
		})

	req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewReader(serializeJSON(t, ChatRequest{Prompt: "hi", Model: "gpt-4o", Stream: true})))
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "event: delta\ndata: {\"text\":\"partial\"}\n\n")
	assert.Contains(t, body, "event: error\n")
	assert.Contains(t, body, `"code":"UPSTREAM_ERROR"`)
}

func TestGatewayServer_CreateAssistantRun(t *testing.T) {
	tests := map[string]struct {
		requestBody     []byte
		setExpectations func(m gatewayMocks)
		expectedStatus  int
		expectedBody    *AssistantRunResp
		expectedError   *Error
	}{
		"completed": {
			requestBody: serializeJSON(t, AssistantRunRequest{Prompt: "question", AssistantID: "asst_1"}),
			setExpectations: func(m gatewayMocks) {
				m.assistant.EXPECT().
					Execute(mock.Anything, usecases.AssistantRunInput{Prompt: "question", AssistantID: "asst_1", Credential: "sk-configured"}).
					Return(usecases.AssistantRunResult{
						Text:     "answer",
						Status:   domain.RunStatus_Completed,
						ThreadID: "thread_1",
						RunID:    "run_1",
						Polls:    2,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &AssistantRunResp{
				Text:     "answer",
				Status:   "completed",
				ThreadID: "thread_1",
				RunID:    "run_1",
				Polls:    2,
			},
		},
		"timed-out-is-data": {
			requestBody: serializeJSON(t, AssistantRunRequest{Prompt: "question", AssistantID: "asst_1"}),
			setExpectations: func(m gatewayMocks) {
				m.assistant.EXPECT().Execute(mock.Anything, mock.Anything).
					Return(usecases.AssistantRunResult{Text: domain.RunTimedOutMarker, Status: domain.RunStatus_TimedOut, Polls: 600}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &AssistantRunResp{Text: "Run timed out.", Status: "timed_out", Polls: 600},
		},
		"missing-assistant": {
			requestBody: serializeJSON(t, AssistantRunRequest{Prompt: "question"}),
			setExpectations: func(m gatewayMocks) {
				m.assistant.EXPECT().Execute(mock.Anything, mock.Anything).
					Return(usecases.AssistantRunResult{}, domain.NewValidationErr("assistant id is required"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  &Error{Code: BADREQUEST, Message: "assistant id is required"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server, m := newTestGateway(t)
			tt.setExpectations(m)

			req := httptest.NewRequest(http.MethodPost, "/v1/assistant-runs", bytes.NewReader(tt.requestBody))
			w := httptest.NewRecorder()

			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var resp AssistantRunResp
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, *tt.expectedBody, resp)
			}
			if tt.expectedError != nil {
				assert.Equal(t, *tt.expectedError, decodeError(t, w.Body.Bytes()).Error)
			}
		})
	}
}

func TestGatewayServer_GenerateImages(t *testing.T) {
	server, m := newTestGateway(t)
	m.catalog.EXPECT().Confirm(mock.Anything, "dall-e-3", "sk-configured").Return(true)
	m.images.EXPECT().
		Execute(mock.Anything, usecases.ImageInput{
			Prompt:     "a cat",
			Model:      "dall-e-3",
			Size:       "1024x1024",
			N:          1,
			Quality:    "hd",
			Credential: "sk-configured",
			OutputDir:  "images",
		}).
		Return(usecases.ImageResult{Images: []usecases.SavedImage{
			{URL: "https://img/1", Path: "images/dalle_20240715T120000_1.json"},
		}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/images", bytes.NewReader(serializeJSON(t, ImageRequest{
		Prompt:  "a cat",
		Model:   "dall-e-3",
		Size:    "1024x1024",
		N:       1,
		Quality: "hd",
	})))
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ImagesResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []SavedImage{{URL: "https://img/1", Path: "images/dalle_20240715T120000_1.json"}}, resp.Images)
}

func TestGatewayServer_GenerateImages_OutputDir(t *testing.T) {
	tests := map[string]struct {
		outputDir         string
		expectedOutputDir string
		expectedStatus    int
	}{
		"nested-relative": {
			outputDir:         "batch/cats",
			expectedOutputDir: filepath.Join("images", "batch", "cats"),
			expectedStatus:    http.StatusCreated,
		},
		"parent-escape": {
			outputDir:      "../outside",
			expectedStatus: http.StatusBadRequest,
		},
		"cleaned-escape": {
			outputDir:      "batch/../../outside",
			expectedStatus: http.StatusBadRequest,
		},
		"absolute": {
			outputDir:      "/tmp/outside",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server, m := newTestGateway(t)
			if tt.expectedStatus == http.StatusCreated {
				m.catalog.EXPECT().Confirm(mock.Anything, "dall-e-3", "sk-configured").Return(true)
				m.images.EXPECT().Execute(mock.Anything, mock.MatchedBy(func(in usecases.ImageInput) bool {
					return in.OutputDir == tt.expectedOutputDir
				})).Return(usecases.ImageResult{}, nil)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/images", bytes.NewReader(serializeJSON(t, ImageRequest{
				Prompt:    "a cat",
				Model:     "dall-e-3",
				OutputDir: tt.outputDir,
			})))
			w := httptest.NewRecorder()

			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusBadRequest {
				assert.Equal(t, BADREQUEST, decodeError(t, w.Body.Bytes()).Error.Code)
			}
		})
	}
}

func TestGatewayServer_RequiresCallerKey(t *testing.T) {
	tests := map[string]struct {
		method string
		path   string
		body   []byte
	}{
		"chat": {
			method: http.MethodPost,
			path:   "/v1/chat",
			body:   serializeJSON(t, ChatRequest{Prompt: "hi", Model: "gpt-4o"}),
		},
		"assistant-run": {
			method: http.MethodPost,
			path:   "/v1/assistant-runs",
			body:   serializeJSON(t, AssistantRunRequest{Prompt: "hi", AssistantID: "asst_1"}),
		},
		"images": {
			method: http.MethodPost,
			path:   "/v1/images",
			body:   serializeJSON(t, ImageRequest{Prompt: "a cat", Model: "dall-e-3"}),
		},
		"models-refresh": {
			method: http.MethodPost,
			path:   "/v1/models/refresh",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server, _ := newTestGateway(t)
			server.ShareServerKey = false

			req := httptest.NewRequest(tt.method, tt.path, bytes.NewReader(tt.body))
			req.Header.Set("Origin", "https://evil.example")
			w := httptest.NewRecorder()

			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, UNAUTHORIZED, decodeError(t, w.Body.Bytes()).Error.Code)
			assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestGatewayServer_Transcribe_RequiresCallerKey(t *testing.T) {
	server, _ := newTestGateway(t)
	server.ShareServerKey = false

	req := newMultipartRequest(t, map[string]string{"model": "whisper-1"}, "clip.mp3", "audio-bytes")
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGatewayServer_ListModels_WithoutCallerKey(t *testing.T) {
	server, m := newTestGateway(t)
	server.ShareServerKey = false
	m.catalog.EXPECT().List(mock.Anything, "").Return([]string{"gpt-4o"})

	req := httptest.NewRequest(http.MethodGet, "/v1/models", nil)
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"models":["gpt-4o"]}`, w.Body.String())
}

func TestGatewayServer_CORS(t *testing.T) {
	tests := map[string]struct {
		allowedOrigins string
		origin         string
		expectedACAO   string
	}{
		"no-origins-configured": {
			allowedOrigins: "-",
			origin:         "https://evil.example",
		},
		"origin-not-listed": {
			allowedOrigins: "https://app.example",
			origin:         "https://evil.example",
		},
		"origin-listed": {
			allowedOrigins: "https://other.example, https://app.example",
			origin:         "https://app.example",
			expectedACAO:   "https://app.example",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server, _ := newTestGateway(t)
			server.AllowedOrigins = tt.allowedOrigins

			req := httptest.NewRequest(http.MethodOptions, "/v1/chat", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			w := httptest.NewRecorder()

			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedACAO, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestGatewayServer_Addr(t *testing.T) {
	tests := map[string]struct {
		host     string
		port     int
		expected string
	}{
		"loopback-default": {host: "127.0.0.1", port: 8080, expected: "127.0.0.1:8080"},
		"ipv6-loopback":    {host: "::1", port: 9000, expected: "[::1]:9000"},
		"all-interfaces":   {host: "0.0.0.0", port: 8080, expected: "0.0.0.0:8080"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GatewayServer{Host: tt.host, Port: tt.port}.Addr())
		})
	}
}

func newMultipartRequest(t *testing.T, fields map[string]string, fileName, fileContent string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		part, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = io.WriteString(part, fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/transcriptions", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestGatewayServer_Transcribe(t *testing.T) {
	tests := map[string]struct {
		fields          map[string]string
		fileName        string
		setExpectations func(t *testing.T, m gatewayMocks)
		expectedStatus  int
		expectedBody    *TranscriptionResp
		expectedError   *Error
	}{
		"transcribe-defaults": {
			fields:   map[string]string{"language": "en"},
			fileName: "clip.mp3",
			setExpectations: func(t *testing.T, m gatewayMocks) {
				m.catalog.EXPECT().Confirm(mock.Anything, "whisper-1", "sk-configured").Return(true)
				m.transcribe.EXPECT().Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, in usecases.TranscriptionInput) (usecases.TranscriptionResult, error) {
						assert.True(t, strings.HasSuffix(in.FilePath, ".mp3"))
						content, err := os.ReadFile(in.FilePath)
						assert.NoError(t, err)
						assert.Equal(t, "audio-bytes", string(content))
						assert.Equal(t, "en", in.Language)
						assert.False(t, in.Translate)
						assert.Equal(t, domain.TranscriptFormat_JSON, in.Format)
						return usecases.TranscriptionResult{Text: "{\n  \"text\": \"hello\"\n}"}, nil
					})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &TranscriptionResp{Text: "{\n  \"text\": \"hello\"\n}", Format: "json"},
		},
		"translate-srt": {
			fields:   map[string]string{"translate": "true", "format": "srt", "model": "whisper-1"},
			fileName: "clip.wav",
			setExpectations: func(t *testing.T, m gatewayMocks) {
				m.catalog.EXPECT().Confirm(mock.Anything, "whisper-1", "sk-configured").Return(true)
				m.transcribe.EXPECT().Execute(mock.Anything, mock.MatchedBy(func(in usecases.TranscriptionInput) bool {
					return in.Translate && in.Format == domain.TranscriptFormat_SRT
				})).Return(usecases.TranscriptionResult{Text: "1\n00:00:00,000 --> 00:00:01,000\nhello\n"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &TranscriptionResp{Text: "1\n00:00:00,000 --> 00:00:01,000\nhello\n", Format: "srt"},
		},
		"missing-file": {
			fields: map[string]string{"model": "whisper-1"},
			setExpectations: func(t *testing.T, m gatewayMocks) {
				m.catalog.EXPECT().Confirm(mock.Anything, "whisper-1", "sk-configured").Return(true)
			},
			expectedStatus: http.StatusBadRequest,
		},
		"invalid-translate-flag": {
			fields:          map[string]string{"translate": "maybe"},
			fileName:        "clip.mp3",
			setExpectations: func(t *testing.T, m gatewayMocks) {},
			expectedStatus:  http.StatusBadRequest,
			expectedError:   &Error{Code: BADREQUEST, Message: "translate must be a boolean"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server, m := newTestGateway(t)
			tt.setExpectations(t, m)

			req := newMultipartRequest(t, tt.fields, tt.fileName, "audio-bytes")
			w := httptest.NewRecorder()

			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var resp TranscriptionResp
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, *tt.expectedBody, resp)
			}
			if tt.expectedError != nil {
				assert.Equal(t, *tt.expectedError, decodeError(t, w.Body.Bytes()).Error)
			}
		})
	}
}

func TestGatewayServer_Models(t *testing.T) {
	tests := map[string]struct {
		method          string
		path            string
		setExpectations func(m gatewayMocks)
		expected        ModelListResp
	}{
		"list": {
			method: http.MethodGet,
			path:   "/v1/models",
			setExpectations: func(m gatewayMocks) {
				m.catalog.EXPECT().List(mock.Anything, "sk-configured").Return([]string{"dall-e-3", "gpt-4o"})
			},
			expected: ModelListResp{Models: []string{"dall-e-3", "gpt-4o"}},
		},
		"list-empty": {
			method: http.MethodGet,
			path:   "/v1/models",
			setExpectations: func(m gatewayMocks) {
				m.catalog.EXPECT().List(mock.Anything, "sk-configured").Return(nil)
			},
			expected: ModelListResp{Models: []string{}},
		},
		"refresh": {
			method: http.MethodPost,
			path:   "/v1/models/refresh",
			setExpectations: func(m gatewayMocks) {
				m.catalog.EXPECT().Refresh(mock.Anything, "sk-configured").Return([]string{"gpt-4o"})
			},
			expected: ModelListResp{Models: []string{"gpt-4o"}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server, m := newTestGateway(t)
			tt.setExpectations(m)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			var resp ModelListResp
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expected, resp)
		})
	}
}

func TestGatewayServer_Healthz(t *testing.T) {
	server, _ := newTestGateway(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestInitGatewayRecovery_Initialize(t *testing.T) {
	tests := map[string]struct {
		mode      string
		expected  domain.RecoveryAction
		expectErr bool
	}{
		"default-abort": {mode: "abort", expected: domain.RecoveryAction_Abort},
		"unset-abort":   {mode: "-", expected: domain.RecoveryAction_Abort},
		"skip":          {mode: "skip", expected: domain.RecoveryAction_Skip},
		"invalid":       {mode: "maybe", expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := InitGatewayRecovery{Mode: tt.mode}.Initialize(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			decider, err := depend.Resolve[domain.RecoveryDecider]()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, decider.Decide(context.Background(), domain.DispatchRequest{}, nil))
		})
	}
}
