package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rionhunter/OpenAI-API-Wrapper/internal/domain"
	domain_mocks "github.com/rionhunter/OpenAI-API-Wrapper/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// instantSleeper never waits.
type instantSleeper struct{}

func (instantSleeper) Sleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

func newTestDispatcher(provider domain.Provider, recovery domain.RecoveryAction) DispatcherImpl {
	return NewDispatcherImpl(provider, FixedRecovery{Action: recovery}, instantSleeper{}, nil, 0, 0, discardLogger())
}

func fragmentStream(fragments ...string) domain.ChatStream {
	return func(yield func(domain.ChatFragment, error) bool) {
		for _, f := range fragments {
			if !yield(domain.ChatFragment{Text: f}, nil) {
				return
			}
		}
		yield(domain.ChatFragment{Usage: &domain.TokenUsage{PromptTokens: 5, CompletionTokens: 3, TotalTokens: 8}}, nil)
	}
}

func TestCompleteChatImpl_Execute(t *testing.T) {
	userMessages := []domain.ChatMessage{{Role: domain.ChatRole_User, Content: "Say hello"}}

	tests := map[string]struct {
		input             ChatInput
		recovery          domain.RecoveryAction
		setExpectations   func(provider *domain_mocks.MockProvider)
		expected          ChatResult
		expectedFragments []string
		expectErr         bool
	}{
		"buffered-completion": {
			input: ChatInput{Prompt: "Say hello", Model: "gpt-4o", Credential: "sk-test"},
			setExpectations: func(provider *domain_mocks.MockProvider) {
				provider.EXPECT().Invoke(mock.Anything, domain.OperationID_ChatCreate, "sk-test", domain.Params{
					domain.Param_Model:    "gpt-4o",
					domain.Param_Messages: userMessages,
				}).Return(domain.ChatCompletion{
					Choices: []string{"Hello!", "Hi!"},
					Usage:   domain.TokenUsage{PromptTokens: 3, CompletionTokens: 2, TotalTokens: 5},
				}, nil).Once()
			},
			expected: ChatResult{Text: "Hello!"},
		},
		"streamed-fragments-concatenated-in-order": {
			input: ChatInput{Prompt: "Say hello", Model: "gpt-4o", Stream: true, Credential: "sk-test"},
			setExpectations: func(provider *domain_mocks.MockProvider) {
				provider.EXPECT().Invoke(mock.Anything, domain.OperationID_ChatStream, "sk-test", mock.Anything).
					Return(fragmentStream("Hel", "lo, ", "world"), nil).Once()
			},
			expected:          ChatResult{Text: "Hello, world"},
			expectedFragments: []string{"Hel", "lo, ", "world"},
		},
		"stream-error": {
			input: ChatInput{Prompt: "Say hello", Model: "gpt-4o", Stream: true, Credential: "sk-test"},
			setExpectations: func(provider *domain_mocks.MockProvider) {
				var stream domain.ChatStream = func(yield func(domain.ChatFragment, error) bool) {
					if !yield(domain.ChatFragment{Text: "Hel"}, nil) {
						return
					}
					yield(domain.ChatFragment{}, assert.AnError)
				}
				provider.EXPECT().Invoke(mock.Anything, domain.OperationID_ChatStream, "sk-test", mock.Anything).
					Return(stream, nil).Once()
			},
			expectedFragments: []string{"Hel"},
			expectErr:         true,
		},
		"skipped-after-malformed-request": {
			input:    ChatInput{Prompt: "Say hello", Model: "gpt-4o", Credential: "sk-test"},
			recovery: domain.RecoveryAction_Skip,
			setExpectations: func(provider *domain_mocks.MockProvider) {
				provider.EXPECT().Invoke(mock.Anything, domain.OperationID_ChatCreate, "sk-test", mock.Anything).
					Return(nil, badRequestErr()).Once()
			},
			expected: ChatResult{Skipped: true},
		},
		"provider-error": {
			input: ChatInput{Prompt: "Say hello", Model: "gpt-4o", Credential: "sk-test"},
			setExpectations: func(provider *domain_mocks.MockProvider) {
				provider.EXPECT().Invoke(mock.Anything, domain.OperationID_ChatCreate, "sk-test", mock.Anything).
					Return(nil, transientErr()).Once()
			},
			expectErr: true,
		},
		"unexpected-payload": {
			input: ChatInput{Prompt: "Say hello", Model: "gpt-4o", Credential: "sk-test"},
			setExpectations: func(provider *domain_mocks.MockProvider) {
				provider.EXPECT().Invoke(mock.Anything, domain.OperationID_ChatCreate, "sk-test", mock.Anything).
					Return("plain text", nil).Once()
			},
			expectErr: true,
		},
		"empty-prompt": {
			input:           ChatInput{Prompt: "  ", Model: "gpt-4o"},
			setExpectations: func(provider *domain_mocks.MockProvider) {},
			expectErr:       true,
		},
		"empty-model": {
			input:           ChatInput{Prompt: "Say hello"},
			setExpectations: func(provider *domain_mocks.MockProvider) {},
			expectErr:       true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			provider := domain_mocks.NewMockProvider(t)
			tt.setExpectations(provider)

			recovery := tt.recovery
			if recovery == "" {
				recovery = domain.RecoveryAction_Abort
			}

			var fragments []string
			uc := NewCompleteChatImpl(newTestDispatcher(provider, recovery), fixedTimeProvider(t), discardLogger())
			got, err := uc.Execute(context.Background(), tt.input, func(f string) {
				fragments = append(fragments, f)
			})

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.expectedFragments, fragments)
		})
	}
}

func TestInitCompleteChat_Initialize(t *testing.T) {
	init := InitCompleteChat{
		Dispatcher:   newTestDispatcher(domain_mocks.NewMockProvider(t), domain.RecoveryAction_Abort),
		TimeProvider: domain_mocks.NewMockCurrentTimeProvider(t),
		Logger:       discardLogger(),
	}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	uc, err := depend.Resolve[CompleteChat]()
	assert.NoError(t, err)
	assert.NotNil(t, uc)
}
