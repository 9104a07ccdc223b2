package panel

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authpanel/internal/client/models"
	"github.com/dmitrijs2005/authpanel/internal/client/repositories/storage"
	"github.com/dmitrijs2005/authpanel/internal/logging"
	"github.com/google/uuid"
)

// DefaultDashboard is opened after a successful login when Options leaves
// Dashboard empty.
const DefaultDashboard = "dashboard.html"

// Options holds the capabilities a Panel is built from. Store, UI, Fields
// and Navigator are required.
type Options struct {
	Store     storage.Store
	UI        UI
	Fields    Fields
	Navigator Navigator

	// Bindings defaults to DefaultBindings().
	Bindings Bindings
	// Dashboard defaults to DefaultDashboard.
	Dashboard string
	// Logger defaults to a discarding logger.
	Logger logging.Logger
}

type Panel struct {
	store     storage.Store
	ui        UI
	fields    Fields
	nav       Navigator
	bindings  Bindings
	dashboard string
	log       logging.Logger

	view models.ViewState
}

// New builds a panel showing the sign-in form.
func New(o Options) (*Panel, error) {
	switch {
	case o.Store == nil:
		return nil, errors.New("panel: store is required")
	case o.UI == nil:
		return nil, errors.New("panel: ui is required")
	case o.Fields == nil:
		return nil, errors.New("panel: fields reader is required")
	case o.Navigator == nil:
		return nil, errors.New("panel: navigator is required")
	}

	p := &Panel{
		store:     o.Store,
		ui:        o.UI,
		fields:    o.Fields,
		nav:       o.Navigator,
		bindings:  o.Bindings,
		dashboard: o.Dashboard,
		log:       o.Logger,
		view:      models.ViewSignIn,
	}
	if p.bindings == nil {
		p.bindings = DefaultBindings()
	}
	if p.dashboard == "" {
		p.dashboard = DefaultDashboard
	}
	if p.log == nil {
		p.log = logging.Discard()
	}
	return p, nil
}

// View returns the form currently presented.
func (p *Panel) View() models.ViewState {
	return p.view
}

// Dispatch runs the action bound to ev.ID. It returns ErrUnboundEvent for
// events with no binding.
func (p *Panel) Dispatch(ctx context.Context, ev *Event) error {
	action, ok := p.bindings[ev.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnboundEvent, ev.ID)
	}

	h := &handler{Panel: p, log: p.log.With("event_id", uuid.NewString(), "event", ev.ID, "action", action)}
	h.log.Debug(ctx, "dispatching event")

	switch action {
	case ActionShowSignUp:
		p.ToggleToSignup()
		return nil
	case ActionShowSignIn:
		p.ToggleToSignin()
		return nil
	case ActionSignUp:
		return h.signup(ctx)
	case ActionLogin:
		return h.login(ctx)
	case ActionForgotPassword:
		return h.forgotPassword(ctx, ev)
	}
	return fmt.Errorf("%w: %s", ErrUnknownAction, action)
}

func (p *Panel) ToggleToSignup() {
	p.view = models.ViewSignUp
}

func (p *Panel) ToggleToSignin() {
	p.view = models.ViewSignIn
}

// Signup stores a record for the sign-up form's email and switches to the
// sign-in form. An existing record for that email is overwritten.
func (p *Panel) Signup(ctx context.Context) error {
	return p.handler().signup(ctx)
}

// Login checks the sign-in form's credentials and opens the dashboard on a
// match.
func (p *Panel) Login(ctx context.Context) error {
	return p.handler().login(ctx)
}

// ForgotPassword prompts for a new password for the sign-in form's email.
// ev may be nil; otherwise its default action is prevented.
func (p *Panel) ForgotPassword(ctx context.Context, ev *Event) error {
	return p.handler().forgotPassword(ctx, ev)
}

func (p *Panel) handler() *handler {
	return &handler{Panel: p, log: p.log.With("event_id", uuid.NewString())}
}
