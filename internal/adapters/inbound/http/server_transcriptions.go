package http

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/usecases"
)

const defaultTranscriptionModel = "whisper-1"

// Transcribe accepts a multipart audio upload and returns its transcript or English translation.
func (api GatewayServer) Transcribe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, api.MaxUploadBytes)
	if err := r.ParseMultipartForm(api.MaxUploadBytes); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid multipart body: %v", err)))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	model := r.FormValue("model")
	if model == "" {
		model = defaultTranscriptionModel
	}
	format := domain.TranscriptFormat(r.FormValue("format"))
	if format == "" {
		format = domain.TranscriptFormat_JSON
	}
	translate := false
	if v := r.FormValue("translate"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			respondError(w, badRequest("translate must be a boolean"))
			return
		}
		translate = parsed
	}

	cred, ok := api.requireCredential(w, r)
	if !ok {
		return
	}
	if !api.confirmModel(w, r, model, cred) {
		return
	}

	path, cleanup, err := saveUpload(r)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}
	defer cleanup()

	res, err := api.TranscribeAudioUseCase.Execute(r.Context(), usecases.TranscriptionInput{
		FilePath:   path,
		Model:      model,
		Language:   r.FormValue("language"),
		Translate:  translate,
		Format:     format,
		Credential: cred,
	})
	if err != nil {
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, TranscriptionResp{
		Text:    res.Text,
		Format:  string(format),
		Skipped: res.Skipped,
	})
}

// saveUpload copies the "file" form part to a temp file that keeps the original extension,
// which the audio endpoint uses to detect the encoding.
func saveUpload(r *http.Request) (string, func(), error) {
	src, header, err := r.FormFile("file")
	if err != nil {
		return "", nil, fmt.Errorf("file is required: %w", err)
	}
	defer src.Close() //nolint:errcheck

	dst, err := os.CreateTemp("", "upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return "", nil, fmt.Errorf("create temp file: %w", err)
	}
	cleanup := func() {
		os.Remove(dst.Name()) //nolint:errcheck
	}
	defer dst.Close() //nolint:errcheck

	if _, err := io.Copy(dst, src); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("store upload: %w", err)
	}
	return dst.Name(), cleanup, nil
}
