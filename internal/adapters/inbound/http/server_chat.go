package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rionhunter/OpenAI-API-Wrapper/internal/usecases"
)

// Chat answers a prompt, streaming it as server-sent events when requested.
func (api GatewayServer) Chat(w http.ResponseWriter, r *http.Request) {
	req := ChatRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest("invalid request body"))
		return
	}

	cred, ok := api.requireCredential(w, r)
	if !ok {
		return
	}
	if !api.confirmModel(w, r, req.Model, cred) {
		return
	}

	in := usecases.ChatInput{
		Prompt:     req.Prompt,
		Model:      req.Model,
		Stream:     req.Stream,
		Credential: cred,
	}
	if !req.Stream {
		res, err := api.CompleteChatUseCase.Execute(r.Context(), in, nil)
		if err != nil {
			respondError(w, toError(err))
			return
		}
		respondJSON(w, http.StatusOK, ChatResp{Text: res.Text, Skipped: res.Skipped})
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, ErrorResp{
			Error: Error{
				Code:    INTERNALERROR,
				Message: "streaming not supported",
			},
		})
		return
	}

	started := false
	startStream := func() {
		if started {
			return
		}
		started = true
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.WriteHeader(http.StatusOK)
	}

	res, err := api.CompleteChatUseCase.Execute(r.Context(), in, func(fragment string) {
		startStream()
		writeEvent(w, "delta", ChatDelta{Text: fragment}) //nolint:errcheck
		flusher.Flush()
	})
	if err != nil {
		api.Logger.Printf("GatewayServer: error during streaming: %v", err)
		if !started {
			respondError(w, toError(err))
			return
		}
		writeEvent(w, "error", toError(err).Error) //nolint:errcheck
		flusher.Flush()
		return
	}

	startStream()
	writeEvent(w, "done", ChatResp{Text: res.Text, Skipped: res.Skipped}) //nolint:errcheck
	flusher.Flush()
}

func writeEvent(w http.ResponseWriter, event string, data any) error {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\n", event); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", string(dataBytes))
	return err
}
