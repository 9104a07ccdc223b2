package panel

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authpanel/internal/client/models"
	"github.com/dmitrijs2005/authpanel/internal/common"
	"github.com/dmitrijs2005/authpanel/internal/logging"
)

// handler is one run of a panel operation with its own log context.
type handler struct {
	*Panel
	log logging.Logger
}

func (h *handler) read(ctx context.Context, form Form, field Field) (string, error) {
	v, err := h.fields.Read(ctx, form, field)
	if err != nil {
		return "", fmt.Errorf("read %s %s field: %w", form, field, err)
	}
	return v, nil
}

func (h *handler) notify(ctx context.Context, kind NoticeKind, msg string) {
	h.ui.Notify(ctx, Notice{Kind: kind, Message: msg})
}

// fail reports an unexpected error (storage, decoding, navigation).
func (h *handler) fail(ctx context.Context, op string, err error) error {
	h.log.Error(ctx, op+" failed", "error", err)
	h.notify(ctx, NoticeError, msgSomethingWrong)
	return fmt.Errorf("%s: %w", op, err)
}

func (h *handler) signup(ctx context.Context) error {
	name, err := h.read(ctx, FormSignUp, FieldName)
	if err != nil {
		return err
	}
	email, err := h.read(ctx, FormSignUp, FieldEmail)
	if err != nil {
		return err
	}
	password, err := h.read(ctx, FormSignUp, FieldPassword)
	if err != nil {
		return err
	}

	if name == "" || email == "" || password == "" {
		h.notify(ctx, NoticeError, msgFillAllFields)
		return fmt.Errorf("signup: %w: all fields are required", common.ErrorValidation)
	}

	_, err = h.store.Get(ctx, email)
	switch {
	case err == nil:
		// kept as-is: signup replaces an existing account without asking
		h.log.Warn(ctx, "signup overwrites existing account", "email", email)
	case !errors.Is(err, common.ErrorNotFound):
		h.log.Warn(ctx, "could not check for existing account", "email", email, "error", err)
	}

	value, err := models.UserRecord{Name: name, Password: password}.Encode()
	if err != nil {
		return h.fail(ctx, "signup", err)
	}
	if err := h.store.Set(ctx, email, value); err != nil {
		return h.fail(ctx, "signup", err)
	}

	h.log.Info(ctx, "account created", "email", email)
	h.notify(ctx, NoticeSuccess, msgAccountCreated)
	h.view = models.ViewSignIn
	return nil
}

func (h *handler) login(ctx context.Context) error {
	email, err := h.read(ctx, FormSignIn, FieldEmail)
	if err != nil {
		return err
	}
	password, err := h.read(ctx, FormSignIn, FieldPassword)
	if err != nil {
		return err
	}

	value, err := h.store.Get(ctx, email)
	if errors.Is(err, common.ErrorNotFound) {
		h.log.Info(ctx, "login for unknown user", "email", email)
		h.notify(ctx, NoticeError, msgUserNotFound)
		return fmt.Errorf("login %q: %w", email, common.ErrorNotFound)
	}
	if err != nil {
		return h.fail(ctx, "login", err)
	}

	rec, err := models.DecodeUserRecord(value)
	if err != nil {
		return h.fail(ctx, "login", err)
	}

	if rec.Password != password {
		h.log.Info(ctx, "login with wrong password", "email", email)
		h.notify(ctx, NoticeError, msgWrongPassword)
		return fmt.Errorf("login %q: %w", email, common.ErrorCredentialMismatch)
	}

	h.log.Info(ctx, "login successful", "email", email)
	h.notify(ctx, NoticeSuccess, msgLoginSuccessful)

	if err := h.nav.Open(ctx, h.dashboard); err != nil {
		return h.fail(ctx, "open dashboard", err)
	}
	return nil
}

func (h *handler) forgotPassword(ctx context.Context, ev *Event) error {
	if ev != nil {
		ev.PreventDefault()
	}

	email, err := h.read(ctx, FormSignIn, FieldEmail)
	if err != nil {
		return err
	}
	if email == "" {
		h.notify(ctx, NoticeError, msgEnterEmail)
		return fmt.Errorf("reset password: %w: email is required", common.ErrorValidation)
	}

	value, err := h.store.Get(ctx, email)
	if errors.Is(err, common.ErrorNotFound) {
		h.notify(ctx, NoticeError, msgEmailNotFound)
		return fmt.Errorf("reset password %q: %w", email, common.ErrorNotFound)
	}
	if err != nil {
		return h.fail(ctx, "reset password", err)
	}
	if _, err := models.DecodeUserRecord(value); err != nil {
		return h.fail(ctx, "reset password", err)
	}

	res := h.ui.Prompt(ctx, msgEnterNewPass)
	if res.Outcome != PromptConfirmed {
		h.log.Debug(ctx, "password reset abandoned", "email", email, "outcome", res.Outcome.String())
		return nil
	}

	err = h.store.Update(ctx, email, func(current string) (string, error) {
		rec, err := models.DecodeUserRecord(current)
		if err != nil {
			return "", err
		}
		rec.Password = res.Value
		return rec.Encode()
	})
	if err != nil {
		return h.fail(ctx, "reset password", err)
	}

	h.log.Info(ctx, "password reset", "email", email)
	h.notify(ctx, NoticeSuccess, msgPasswordUpdated)
	return nil
}
