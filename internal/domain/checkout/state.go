package checkout

import "time"

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSubmitting Phase = "submitting"
	PhaseSucceeded  Phase = "succeeded"
	PhaseFailed     Phase = "failed"
)

// MessageDisplayDuration is how long a success or failure banner stays up before the state returns to Idle.
const MessageDisplayDuration = 5000 * time.Millisecond

func (p Phase) String() string {
	return string(p)
}

func (p Phase) IsValid() bool {
	switch p {
	case PhaseIdle, PhaseSubmitting, PhaseSucceeded, PhaseFailed:
		return true
	default:
		return false
	}
}

// SubmissionState carries a message only in the Succeeded and Failed phases.
type SubmissionState struct {
	Phase   Phase  `json:"phase"`
	Message string `json:"message,omitempty"`
}

func Idle() SubmissionState {
	return SubmissionState{Phase: PhaseIdle}
}

func Submitting() SubmissionState {
	return SubmissionState{Phase: PhaseSubmitting}
}

func Succeeded(msg string) SubmissionState {
	return SubmissionState{Phase: PhaseSucceeded, Message: msg}
}

func Failed(msg string) SubmissionState {
	return SubmissionState{Phase: PhaseFailed, Message: msg}
}

func (s SubmissionState) IsSubmitting() bool {
	return s.Phase == PhaseSubmitting
}
