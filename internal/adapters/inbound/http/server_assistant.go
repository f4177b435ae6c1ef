package http

import (
	"encoding/json"
	"net/http"

	"github.com/rionhunter/OpenAI-API-Wrapper/internal/usecases"
)

// CreateAssistantRun runs an assistant on a new thread and waits for its answer.
func (api GatewayServer) CreateAssistantRun(w http.ResponseWriter, r *http.Request) {
	req := AssistantRunRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest("invalid request body"))
		return
	}

	cred, ok := api.requireCredential(w, r)
	if !ok {
		return
	}

	res, err := api.RunAssistantUseCase.Execute(r.Context(), usecases.AssistantRunInput{
		Prompt:      req.Prompt,
		AssistantID: req.AssistantID,
		Credential:  cred,
	})
	if err != nil {
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, toAssistantRunResp(res))
}
