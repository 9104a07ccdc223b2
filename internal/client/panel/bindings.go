package panel

import "errors"

// EventID identifies a UI event such as a button click.
type EventID string

const (
	EventRegisterClick       EventID = "register.click"
	EventLoginClick          EventID = "login.click"
	EventSignUpSubmit        EventID = "sign-up.submit"
	EventSignInSubmit        EventID = "sign-in.submit"
	EventForgotPasswordClick EventID = "forgot-password.click"
)

// Action is a panel operation an event can be bound to.
type Action string

const (
	ActionShowSignUp     Action = "show-sign-up"
	ActionShowSignIn     Action = "show-sign-in"
	ActionSignUp         Action = "sign-up"
	ActionLogin          Action = "login"
	ActionForgotPassword Action = "forgot-password"
)

// Bindings is the dispatch table from UI events to panel actions.
type Bindings map[EventID]Action

// DefaultBindings wires the register/login toggles, both submit buttons and
// the "forgot password" link.
func DefaultBindings() Bindings {
	return Bindings{
		EventRegisterClick:       ActionShowSignUp,
		EventLoginClick:          ActionShowSignIn,
		EventSignUpSubmit:        ActionSignUp,
		EventSignInSubmit:        ActionLogin,
		EventForgotPasswordClick: ActionForgotPassword,
	}
}

var (
	ErrUnboundEvent  = errors.New("no action bound to event")
	ErrUnknownAction = errors.New("unknown action")
)

// Event is a UI event delivered to Dispatch.
type Event struct {
	ID EventID

	defaultPrevented bool
}

func NewEvent(id EventID) *Event {
	return &Event{ID: id}
}

// PreventDefault suppresses whatever the presentation layer would do after
// the handler, e.g. following a placeholder link.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}
