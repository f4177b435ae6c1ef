package domain

import "slices"

// TranscriptFormat is the response format requested from the audio capability.
type TranscriptFormat string

const (
	TranscriptFormat_JSON        TranscriptFormat = "json"
	TranscriptFormat_Text        TranscriptFormat = "text"
	TranscriptFormat_SRT         TranscriptFormat = "srt"
	TranscriptFormat_VTT         TranscriptFormat = "vtt"
	TranscriptFormat_VerboseJSON TranscriptFormat = "verbose_json"
)

// IsValid reports whether the format is supported by the audio capability.
func (f TranscriptFormat) IsValid() bool {
	return slices.Contains([]TranscriptFormat{
		TranscriptFormat_JSON,
		TranscriptFormat_Text,
		TranscriptFormat_SRT,
		TranscriptFormat_VTT,
		TranscriptFormat_VerboseJSON,
	}, f)
}

// IsStructured reports whether the provider answers this format with a JSON document.
func (f TranscriptFormat) IsStructured() bool {
	return f == TranscriptFormat_JSON || f == TranscriptFormat_VerboseJSON
}

// Transcript is the raw answer of an audio.transcribe or audio.translate operation.
// Structured formats carry the decoded document; text formats carry the body verbatim.
type Transcript struct {
	Format   TranscriptFormat
	Document map[string]any
	Raw      string
}
