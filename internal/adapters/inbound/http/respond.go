package http

import (
	"encoding/json"
	"net/http"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case BADREQUEST:
		statusCode = http.StatusBadRequest
	case UNAUTHORIZED:
		statusCode = http.StatusUnauthorized
	case NOTFOUND:
		statusCode = http.StatusNotFound
	case UPSTREAMERROR:
		statusCode = http.StatusBadGateway
	}
	respondJSON(w, statusCode, err)
}

func badRequest(message string) ErrorResp {
	return ErrorResp{Error: Error{Code: BADREQUEST, Message: message}}
}

func unauthorized(message string) ErrorResp {
	return ErrorResp{Error: Error{Code: UNAUTHORIZED, Message: message}}
}
