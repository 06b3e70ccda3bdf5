// Package dialog holds per-user conversation state for the step-wise
// conversion flow.
package dialog

// Step is the position of a user's in-progress conversion dialog.
type Step int

const (
	// StepIdle means no conversion is in progress.
	StepIdle Step = iota
	// StepAwaitFrom means the bot is waiting for the source currency.
	StepAwaitFrom
	// StepAwaitTo means the bot is waiting for the target currency.
	StepAwaitTo
	// StepAwaitAmount means the bot is waiting for the amount.
	StepAwaitAmount
)

// String returns a short name for the step, used in structured logs.
func (s Step) String() string {
	switch s {
	case StepIdle:
		return "idle"
	case StepAwaitFrom:
		return "await_from"
	case StepAwaitTo:
		return "await_to"
	case StepAwaitAmount:
		return "await_amount"
	default:
		return "unknown"
	}
}

// State is one user's conversation position. The step determines which
// currency fields are meaningful: StepAwaitTo implies From is set,
// StepAwaitAmount implies both are set. The zero value is the Idle state.
type State struct {
	Step Step
	From string
	To   string
}

// User identifies the person talking to the bot. Only ID participates in
// conversation logic; the display attributes feed the audit trail.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Username  string
}
