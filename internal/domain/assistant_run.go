package domain

import "fmt"

// RunStatus is the lifecycle state of an assistant run.
type RunStatus string

const (
	RunStatus_Pending   RunStatus = "pending"
	RunStatus_Completed RunStatus = "completed"
	RunStatus_Failed    RunStatus = "failed"
	RunStatus_TimedOut  RunStatus = "timed_out"
)

// Markers returned in place of assistant text when a run does not complete.
const (
	RunFailedMarker   = "Run failed."
	RunTimedOutMarker = "Run timed out."
)

// IsTerminal reports whether no further transition is possible from the status.
func (s RunStatus) IsTerminal() bool {
	return s == RunStatus_Completed || s == RunStatus_Failed || s == RunStatus_TimedOut
}

// AssistantThread is a conversation container created on the provider.
type AssistantThread struct {
	ID string
}

// AssistantRun tracks one execution of an assistant on a thread.
type AssistantRun struct {
	ThreadID string
	RunID    string
	Status   RunStatus
}

// NewAssistantRun creates a pending run for the given thread and run ids.
func NewAssistantRun(threadID, runID string) AssistantRun {
	return AssistantRun{
		ThreadID: threadID,
		RunID:    runID,
		Status:   RunStatus_Pending,
	}
}

// Transition moves the run to the next status.
// Only a pending run may change status; terminal runs never move again.
func (r *AssistantRun) Transition(next RunStatus) error {
	if r.Status.IsTerminal() {
		return NewValidationErr(fmt.Sprintf("run %s is already %s", r.RunID, r.Status))
	}
	switch next {
	case RunStatus_Pending, RunStatus_Completed, RunStatus_Failed, RunStatus_TimedOut:
		r.Status = next
		return nil
	default:
		return NewValidationErr(fmt.Sprintf("invalid run status %q", next))
	}
}

// ThreadMessage is a message stored on an assistant thread.
// Texts holds the text content blocks in provider order.
type ThreadMessage struct {
	ID    string
	Role  ChatRole
	Texts []string
}

// FirstText returns the first text block of the message, or "" when it has none.
func (m ThreadMessage) FirstText() string {
	if len(m.Texts) == 0 {
		return ""
	}
	return m.Texts[0]
}
