package domain

import (
	"iter"
	"strings"
)

// ChatRole represents the role of a chat message
type ChatRole string

const (
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_System    ChatRole = "system"
)

// ChatMessage is one message sent to the chat completion capability.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// TokenUsage contains token usage information.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// ChatCompletion is the buffered response of a chat.create operation.
type ChatCompletion struct {
	ID      string
	Model   string
	Choices []string
	Usage   TokenUsage
}

// FirstChoice returns the text of the first choice, or "" when there is none.
func (c ChatCompletion) FirstChoice() string {
	if len(c.Choices) == 0 {
		return ""
	}
	return c.Choices[0]
}

// ChatFragment is one incremental piece of a streamed chat completion.
type ChatFragment struct {
	Text  string
	Usage *TokenUsage
}

// ChatStream yields the fragments of a streamed chat completion in arrival order.
// A stream is finite and can be consumed only once.
type ChatStream = iter.Seq2[ChatFragment, error]

// CollectChatStream drains a stream, calling onFragment for each non-empty fragment,
// and returns the concatenated text together with the last usage reported, if any.
func CollectChatStream(stream ChatStream, onFragment func(ChatFragment)) (string, *TokenUsage, error) {
	var (
		sb    strings.Builder
		usage *TokenUsage
	)
	for fragment, err := range stream {
		if err != nil {
			return sb.String(), usage, err
		}
		if fragment.Usage != nil {
			usage = fragment.Usage
		}
		if fragment.Text == "" {
			continue
		}
		sb.WriteString(fragment.Text)
		if onFragment != nil {
			onFragment(fragment)
		}
	}
	return sb.String(), usage, nil
}
