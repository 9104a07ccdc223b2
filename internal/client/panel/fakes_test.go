package panel

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/authpanel/internal/client/repositories/storage"
)

type fakeUI struct {
	notices []Notice
	prompts []string
	answer  PromptResult
}

func (f *fakeUI) Notify(_ context.Context, n Notice) { f.notices = append(f.notices, n) }

func (f *fakeUI) Prompt(_ context.Context, msg string) PromptResult {
	f.prompts = append(f.prompts, msg)
	return f.answer
}

func (f *fakeUI) last() Notice {
	if len(f.notices) == 0 {
		return Notice{}
	}
	return f.notices[len(f.notices)-1]
}

// fakeFields holds what the user has typed into each form.
type fakeFields struct {
	values map[Form]map[Field]string
	err    error
}

func newFakeFields() *fakeFields {
	return &fakeFields{values: map[Form]map[Field]string{
		FormSignIn: {},
		FormSignUp: {},
	}}
}

func (f *fakeFields) Read(_ context.Context, form Form, field Field) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.values[form][field], nil
}

func (f *fakeFields) fillSignUp(name, email, password string) {
	f.values[FormSignUp] = map[Field]string{FieldName: name, FieldEmail: email, FieldPassword: password}
}

func (f *fakeFields) fillSignIn(email, password string) {
	f.values[FormSignIn] = map[Field]string{FieldEmail: email, FieldPassword: password}
}

type fakeNav struct {
	opened []string
	err    error
}

func (f *fakeNav) Open(_ context.Context, target string) error {
	f.opened = append(f.opened, target)
	return f.err
}

// brokenStore fails every call.
type brokenStore struct{ err error }

func (b brokenStore) Get(context.Context, string) (string, error) { return "", b.err }
func (b brokenStore) Set(context.Context, string, string) error   { return b.err }
func (b brokenStore) Update(context.Context, string, func(string) (string, error)) error {
	return b.err
}

type harness struct {
	panel  *Panel
	store  *storage.MemoryStore
	ui     *fakeUI
	fields *fakeFields
	nav    *fakeNav
}

func newHarness(t interface{ Fatalf(string, ...any) }) *harness {
	h := &harness{
		store:  storage.NewMemoryStore(),
		ui:     &fakeUI{},
		fields: newFakeFields(),
		nav:    &fakeNav{},
	}
	p, err := New(Options{Store: h.store, UI: h.ui, Fields: h.fields, Navigator: h.nav})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.panel = p
	return h
}

var errBoom = errors.New("boom")

// getFailStore fails lookups but stores normally.
type getFailStore struct {
	*storage.MemoryStore
	err error
}

func (g getFailStore) Get(context.Context, string) (string, error) { return "", g.err }
