package domain

import "strings"

// OperationID identifies one remote provider capability by its dotted name.
type OperationID string

const (
	OperationID_ChatCreate           OperationID = "chat.create"
	OperationID_ChatStream           OperationID = "chat.stream"
	OperationID_ThreadsCreate        OperationID = "threads.create"
	OperationID_ThreadMessagesCreate OperationID = "threads.messages.create"
	OperationID_ThreadMessagesList   OperationID = "threads.messages.list"
	OperationID_ThreadRunsCreate     OperationID = "threads.runs.create"
	OperationID_ThreadRunsRetrieve   OperationID = "threads.runs.retrieve"
	OperationID_ImagesGenerate       OperationID = "images.generate"
	OperationID_AudioTranscribe      OperationID = "audio.transcribe"
	OperationID_AudioTranslate       OperationID = "audio.translate"
	OperationID_ModelsList           OperationID = "models.list"
)

// KnownOperationIDs lists every operation the dispatcher can route, in a stable order.
var KnownOperationIDs = []OperationID{
	OperationID_ChatCreate,
	OperationID_ChatStream,
	OperationID_ThreadsCreate,
	OperationID_ThreadMessagesCreate,
	OperationID_ThreadMessagesList,
	OperationID_ThreadRunsCreate,
	OperationID_ThreadRunsRetrieve,
	OperationID_ImagesGenerate,
	OperationID_AudioTranscribe,
	OperationID_AudioTranslate,
	OperationID_ModelsList,
}

// IsValid reports whether the operation id is one of the known operations.
func (o OperationID) IsValid() bool {
	for _, known := range KnownOperationIDs {
		if o == known {
			return true
		}
	}
	return false
}

// String returns the dotted name of the operation.
func (o OperationID) String() string {
	return string(o)
}

// ParseOperationID converts a dotted operation name into an OperationID.
// Surrounding whitespace is ignored. Unknown names yield an *UnknownOperationErr.
func ParseOperationID(name string) (OperationID, error) {
	op := OperationID(strings.TrimSpace(name))
	if !op.IsValid() {
		return "", NewUnknownOperationErr(name)
	}
	return op, nil
}
