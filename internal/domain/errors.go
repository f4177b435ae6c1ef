package domain

import "fmt"

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// UnknownOperationErr is returned when an operation name does not map to any provider capability.
// It is a programming error and is never retried.
type UnknownOperationErr struct {
	domainErr
	Operation string
}

// NewUnknownOperationErr creates a new UnknownOperationErr for the given operation name.
func NewUnknownOperationErr(operation string) *UnknownOperationErr {
	return &UnknownOperationErr{
		domainErr: domainErr{message: fmt.Sprintf("unknown operation %q", operation)},
		Operation: operation,
	}
}

// ProviderErrKind classifies a failure reported by the remote provider.
type ProviderErrKind string

const (
	// ProviderErrKind_Transient covers network failures, rate limiting and server-side errors.
	ProviderErrKind_Transient ProviderErrKind = "transient"
	// ProviderErrKind_BadRequest covers requests the provider rejected as malformed.
	ProviderErrKind_BadRequest ProviderErrKind = "bad_request"
	// ProviderErrKind_Auth covers rejected or missing credentials.
	ProviderErrKind_Auth ProviderErrKind = "auth"
)

// ProviderErr is a classified error returned by a remote provider call.
type ProviderErr struct {
	Kind       ProviderErrKind
	StatusCode int
	Message    string
	Cause      error
}

// NewProviderErr creates a new ProviderErr.
func NewProviderErr(kind ProviderErrKind, statusCode int, message string, cause error) *ProviderErr {
	return &ProviderErr{
		Kind:       kind,
		StatusCode: statusCode,
		Message:    message,
		Cause:      cause,
	}
}

// Error returns the error message.
func (e *ProviderErr) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider %s error (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider %s error: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *ProviderErr) Unwrap() error {
	return e.Cause
}

// IsTransient reports whether the error may succeed when retried unchanged.
func (e *ProviderErr) IsTransient() bool {
	return e.Kind == ProviderErrKind_Transient
}

// IsBadRequest reports whether the provider rejected the request as malformed.
func (e *ProviderErr) IsBadRequest() bool {
	return e.Kind == ProviderErrKind_BadRequest
}
