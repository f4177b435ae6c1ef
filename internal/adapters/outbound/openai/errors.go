package openai

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
)

// ClassifyStatus maps an HTTP status code to the kind of provider failure it represents.
func ClassifyStatus(code int) domain.ProviderErrKind {
	switch code {
	case http.StatusBadRequest,
		http.StatusNotFound,
		http.StatusConflict,
		http.StatusRequestEntityTooLarge,
		http.StatusUnsupportedMediaType,
		http.StatusUnprocessableEntity:
		return domain.ProviderErrKind_BadRequest
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ProviderErrKind_Auth
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return domain.ProviderErrKind_Transient
	}
	if code >= 500 {
		return domain.ProviderErrKind_Transient
	}
	return domain.ProviderErrKind_BadRequest
}

// newStatusErr builds a classified error from a non-2xx response.
func newStatusErr(resp *http.Response, body []byte) *domain.ProviderErr {
	return domain.NewProviderErr(
		ClassifyStatus(resp.StatusCode),
		resp.StatusCode,
		fmt.Sprintf("non-2xx response: %s: %s", resp.Status, errorMessage(body)),
		nil,
	)
}

// newTransportErr wraps a failure to reach the API.
func newTransportErr(err error) *domain.ProviderErr {
	return domain.NewProviderErr(domain.ProviderErrKind_Transient, 0, fmt.Sprintf("http do: %v", err), err)
}

// errorMessage extracts the API error message from body, falling back to the raw text.
func errorMessage(body []byte) string {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != nil && er.Error.Message != "" {
		return er.Error.Message
	}
	return strings.TrimSpace(string(body))
}
