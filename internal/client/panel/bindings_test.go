package panel

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/authpanel/internal/client/models"
	"github.com/dmitrijs2005/authpanel/internal/client/repositories/storage"
	"github.com/dmitrijs2005/authpanel/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch_DefaultBindings(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.panel.Dispatch(ctx, NewEvent(EventRegisterClick)))
	assert.Equal(t, models.ViewSignUp, h.panel.View())

	h.fields.fillSignUp("Alice", "a@x.com", "p1")
	require.NoError(t, h.panel.Dispatch(ctx, NewEvent(EventSignUpSubmit)))
	assert.Equal(t, models.ViewSignIn, h.panel.View())

	h.fields.fillSignIn("a@x.com", "p1")
	require.NoError(t, h.panel.Dispatch(ctx, NewEvent(EventSignInSubmit)))
	assert.Equal(t, []string{DefaultDashboard}, h.nav.opened)

	require.NoError(t, h.panel.Dispatch(ctx, NewEvent(EventRegisterClick)))
	require.NoError(t, h.panel.Dispatch(ctx, NewEvent(EventLoginClick)))
	assert.Equal(t, models.ViewSignIn, h.panel.View())

	h.ui.answer = Answered("p2")
	ev := NewEvent(EventForgotPasswordClick)
	require.NoError(t, h.panel.Dispatch(ctx, ev))
	assert.True(t, ev.DefaultPrevented())
}

func TestDispatch_ErrorsPropagate(t *testing.T) {
	h := newHarness(t)
	h.fields.fillSignIn("nobody@x.com", "p1")

	err := h.panel.Dispatch(context.Background(), NewEvent(EventSignInSubmit))
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDispatch_UnboundEvent(t *testing.T) {
	h := newHarness(t)

	err := h.panel.Dispatch(context.Background(), NewEvent("logo.click"))
	require.ErrorIs(t, err, ErrUnboundEvent)
}

func TestDispatch_CustomBindings(t *testing.T) {
	fields := newFakeFields()
	p, err := New(Options{
		Store:     storage.NewMemoryStore(),
		UI:        &fakeUI{},
		Fields:    fields,
		Navigator: &fakeNav{},
		Bindings: Bindings{
			"enter.key":      ActionShowSignUp,
			"escape.key":     ActionShowSignIn,
			"broken.binding": Action("fly"),
		},
	})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, p.Dispatch(ctx, NewEvent("enter.key")))
	assert.Equal(t, models.ViewSignUp, p.View())
	require.NoError(t, p.Dispatch(ctx, NewEvent("escape.key")))
	assert.Equal(t, models.ViewSignIn, p.View())

	require.ErrorIs(t, p.Dispatch(ctx, NewEvent(EventRegisterClick)), ErrUnboundEvent)
	require.ErrorIs(t, p.Dispatch(ctx, NewEvent("broken.binding")), ErrUnknownAction)
}

func TestAnswered(t *testing.T) {
	assert.Equal(t, PromptResult{Outcome: PromptEmpty}, Answered(""))
	assert.Equal(t, PromptResult{Outcome: PromptConfirmed, Value: "x"}, Answered("x"))
	assert.Equal(t, PromptCancelled, Cancelled().Outcome)
}
