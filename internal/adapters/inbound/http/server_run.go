package http

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rionhunter/OpenAI-API-Wrapper/internal/telemetry"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/usecases"
	"github.com/rs/cors"
)

// GatewayServer exposes the wrapper's use cases over HTTP.
type GatewayServer struct {
	Host                   string                   `config:"HTTP_HOST" default:"127.0.0.1"`
	Port                   int                      `config:"HTTP_PORT" default:"8080"`
	AllowedOrigins         string                   `config:"HTTP_ALLOWED_ORIGINS" default:"-"`
	APIKey                 string                   `config:"OPENAI_API_KEY" default:"-"`
	ShareServerKey         bool                     `config:"HTTP_SHARE_SERVER_KEY" default:"false"`
	ArtifactRoot           string                   `config:"HTTP_ARTIFACT_ROOT" default:"images"`
	MaxUploadBytes         int64                    `config:"HTTP_MAX_UPLOAD_BYTES" default:"26214400"`
	Logger                 *log.Logger              `resolve:""`
	ModelCatalog           usecases.ModelCatalog    `resolve:""`
	CompleteChatUseCase    usecases.CompleteChat    `resolve:""`
	RunAssistantUseCase    usecases.RunAssistant    `resolve:""`
	GenerateImagesUseCase  usecases.GenerateImages  `resolve:""`
	TranscribeAudioUseCase usecases.TranscribeAudio `resolve:""`
}

// Handler builds the routed and instrumented handler of the gateway.
func (api GatewayServer) Handler() http.Handler {
	mux := http.NewServeMux()
	instrument := telemetry.Middleware("openai-wrapper-api")
	route := func(pattern string, h http.HandlerFunc) {
		// Instrumented per route so spans and metrics see the matched pattern.
		mux.Handle(pattern, instrument(h))
	}

	route("GET /healthz", api.Healthz)
	route("GET /introspect", IntrospectHandler)

	route("POST /v1/chat", api.Chat)
	route("POST /v1/assistant-runs", api.CreateAssistantRun)
	route("POST /v1/images", api.GenerateImages)
	route("POST /v1/transcriptions", api.Transcribe)
	route("GET /v1/models", api.ListModels)
	route("POST /v1/models/refresh", api.RefreshModels)

	opts := cors.Options{
		AllowedOrigins: api.allowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}
	if len(opts.AllowedOrigins) == 0 {
		// cors treats an empty list as "*".
		opts.AllowOriginVaryRequestFunc = func(*http.Request, string) (bool, []string) { return false, nil }
	}

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.New(opts).Handler(mux)
}

// allowedOrigins parses HTTP_ALLOWED_ORIGINS. An unset value allows no cross-origin callers.
func (api GatewayServer) allowedOrigins() []string {
	origins := []string{}
	if api.AllowedOrigins == "-" {
		return origins
	}
	for _, origin := range strings.Split(api.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// Addr is the listen address of the gateway.
func (api GatewayServer) Addr() string {
	return net.JoinHostPort(api.Host, strconv.Itoa(api.Port))
}

// Run starts the HTTP server for the GatewayServer.
func (api GatewayServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              api.Addr(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("GatewayServer: Listening on %s", s.Addr)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("GatewayServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("GatewayServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the GatewayServer is ready by performing a health check.
func (api GatewayServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://%s/healthz", net.JoinHostPort(api.readyHost(), strconv.Itoa(api.Port))), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

func (api GatewayServer) readyHost() string {
	if api.Host == "" || api.Host == "0.0.0.0" || api.Host == "::" {
		return "localhost"
	}
	return api.Host
}

// Healthz reports that the server is up.
func (api GatewayServer) Healthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// credential returns the bearer token of the request.
// The configured key stands in only when HTTP_SHARE_SERVER_KEY is enabled.
func (api GatewayServer) credential(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		if token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer ")); token != "" {
			return token
		}
	}
	if !api.ShareServerKey || api.APIKey == "-" {
		return ""
	}
	return api.APIKey
}

// requireCredential rejects requests that would reach the provider without a key.
func (api GatewayServer) requireCredential(w http.ResponseWriter, r *http.Request) (string, bool) {
	cred := api.credential(r)
	if cred == "" {
		respondError(w, unauthorized("a bearer token is required"))
		return "", false
	}
	return cred, true
}

// artifactDir confines a caller supplied directory to the artifact root.
func (api GatewayServer) artifactDir(dir string) (string, bool) {
	if dir == "" {
		return api.ArtifactRoot, true
	}
	if !filepath.IsLocal(dir) {
		return "", false
	}
	return filepath.Join(api.ArtifactRoot, dir), true
}

// confirmModel rejects models the catalog does not know.
func (api GatewayServer) confirmModel(w http.ResponseWriter, r *http.Request, model, cred string) bool {
	if model == "" {
		respondError(w, badRequest("model is required"))
		return false
	}
	if !api.ModelCatalog.Confirm(r.Context(), model, cred) {
		respondError(w, badRequest(fmt.Sprintf("model not recognized: %s", model)))
		return false
	}
	return true
}
