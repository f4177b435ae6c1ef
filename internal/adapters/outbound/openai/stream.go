package openai

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync/atomic"

	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
)

// errStreamConsumed is returned when a chat stream is iterated a second time.
var errStreamConsumed = errors.New("chat stream already consumed")

// newChatStream turns an SSE response body into a domain.ChatStream.
// The stream can be ranged over once; the body is closed when iteration ends.
func newChatStream(body io.ReadCloser) domain.ChatStream {
	var consumed atomic.Bool
	return func(yield func(domain.ChatFragment, error) bool) {
		if consumed.Swap(true) {
			yield(domain.ChatFragment{}, errStreamConsumed)
			return
		}
		defer body.Close() //nolint:errcheck

		scanner := bufio.NewScanner(body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()

			if !strings.HasPrefix(line, "data:") {
				continue
			}

			payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if payload == "" {
				continue
			}
			if payload == "[DONE]" {
				return
			}

			var chunk StreamChunk
			if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
				continue // Skip malformed chunks
			}

			fragment := domain.ChatFragment{}
			for _, choice := range chunk.Choices {
				fragment.Text += choice.Delta.Content
			}
			if chunk.Usage != nil {
				fragment.Usage = &domain.TokenUsage{
					PromptTokens:     chunk.Usage.PromptTokens,
					CompletionTokens: chunk.Usage.CompletionTokens,
					TotalTokens:      chunk.Usage.TotalTokens,
				}
			}
			if fragment.Text == "" && fragment.Usage == nil {
				continue
			}
			if !yield(fragment, nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield(domain.ChatFragment{}, newTransportErr(err))
		}
	}
}
