package domain

import (
	"maps"
	"slices"
	"strconv"
)

// Well-known parameter names carried by a DispatchRequest.
const (
	Param_Model          = "model"
	Param_Messages       = "messages"
	Param_Prompt         = "prompt"
	Param_Size           = "size"
	Param_Quality        = "quality"
	Param_Style          = "style"
	Param_N              = "n"
	Param_Language       = "language"
	Param_ResponseFormat = "response_format"
	Param_File           = "file"
	Param_ThreadID       = "thread_id"
	Param_RunID          = "run_id"
	Param_AssistantID    = "assistant_id"
	Param_Role           = "role"
	Param_Content        = "content"
	Param_APIKey         = "api_key"
)

// RedactedValue replaces secret values when parameters are rendered for auditing.
const RedactedValue = "***"

// Params holds the named parameters of a provider operation.
type Params map[string]any

// String returns the named parameter as a string, or "" when absent or not a string.
func (p Params) String(name string) string {
	v, ok := p[name].(string)
	if !ok {
		return ""
	}
	return v
}

// Int returns the named parameter as an int. Numeric strings are accepted.
func (p Params) Int(name string) (int, bool) {
	switch v := p[name].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// Has reports whether the named parameter is present and not an empty string.
func (p Params) Has(name string) bool {
	v, ok := p[name]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr {
		return s != ""
	}
	return true
}

// Messages returns the chat messages parameter.
func (p Params) Messages() []ChatMessage {
	msgs, _ := p[Param_Messages].([]ChatMessage)
	return msgs
}

// Names returns the parameter names in sorted order.
func (p Params) Names() []string {
	return slices.Sorted(maps.Keys(p))
}

// Redacted returns a copy of the parameters safe to write to logs.
// Credential-bearing entries are replaced by RedactedValue.
func (p Params) Redacted() Params {
	out := make(Params, len(p))
	for k, v := range p {
		if k == Param_APIKey {
			out[k] = RedactedValue
			continue
		}
		out[k] = v
	}
	return out
}
