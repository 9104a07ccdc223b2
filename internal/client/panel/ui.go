package panel

import "context"

// NoticeKind tells success notices from error notices.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "ok"
	NoticeError   NoticeKind = "error"
)

type Notice struct {
	Kind    NoticeKind
	Message string
}

// PromptOutcome is how the user left a prompt.
type PromptOutcome int

const (
	PromptCancelled PromptOutcome = iota
	PromptEmpty
	PromptConfirmed
)

func (o PromptOutcome) String() string {
	switch o {
	case PromptConfirmed:
		return "confirmed"
	case PromptEmpty:
		return "empty"
	default:
		return "cancelled"
	}
}

// PromptResult carries the outcome of a prompt. Value is set only for
// PromptConfirmed.
type PromptResult struct {
	Outcome PromptOutcome
	Value   string
}

// Answered builds the result for text the user submitted; empty text is
// PromptEmpty.
func Answered(v string) PromptResult {
	if v == "" {
		return PromptResult{Outcome: PromptEmpty}
	}
	return PromptResult{Outcome: PromptConfirmed, Value: v}
}

// Cancelled is the result for a dismissed prompt.
func Cancelled() PromptResult {
	return PromptResult{Outcome: PromptCancelled}
}

// UI shows notifications and asks for input. Both calls block until the
// user has dealt with them.
type UI interface {
	Notify(ctx context.Context, n Notice)
	Prompt(ctx context.Context, message string) PromptResult
}

// Form names one of the two forms.
type Form string

const (
	FormSignIn Form = "sign-in"
	FormSignUp Form = "sign-up"
)

// Field names an input by its type, the way both forms identify them.
type Field string

const (
	FieldName     Field = "text"
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

// Fields returns the current value of a form input.
type Fields interface {
	Read(ctx context.Context, form Form, field Field) (string, error)
}

// Navigator opens target in a new browsing context. Nothing is passed to
// the opened context and nothing comes back.
type Navigator interface {
	Open(ctx context.Context, target string) error
}
