package http

import (
	"encoding/json"
	"net/http"

	"github.com/rionhunter/OpenAI-API-Wrapper/internal/usecases"
)

// GenerateImages generates images and returns the persisted records.
func (api GatewayServer) GenerateImages(w http.ResponseWriter, r *http.Request) {
	req := ImageRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest("invalid request body"))
		return
	}

	outputDir, ok := api.artifactDir(req.OutputDir)
	if !ok {
		respondError(w, badRequest("output_dir must be a relative path inside the artifact root"))
		return
	}

	cred, ok := api.requireCredential(w, r)
	if !ok {
		return
	}
	if !api.confirmModel(w, r, req.Model, cred) {
		return
	}

	res, err := api.GenerateImagesUseCase.Execute(r.Context(), usecases.ImageInput{
		Prompt:     req.Prompt,
		Model:      req.Model,
		Size:       req.Size,
		N:          req.N,
		Quality:    req.Quality,
		Style:      req.Style,
		Credential: cred,
		OutputDir:  outputDir,
	})
	if err != nil {
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusCreated, toImagesResp(res))
}
