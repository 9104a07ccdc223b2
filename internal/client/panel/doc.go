// Package panel implements the login/registration panel: two forms (sign-in
// and sign-up), one of which is visible at a time, backed by a local
// key-value store of plain-text user records keyed by email.
//
// The panel does not know how it is presented. Everything outside the
// logic is a capability handed to New:
//
//   - storage.Store: where records live
//   - Fields: reads a form field at the moment a handler needs it
//   - UI: blocking notifications and the new-password prompt
//   - Navigator: opens the dashboard after a successful login
//   - Bindings: which UI event triggers which panel action
//
// Handlers run one at a time; callers deliver events sequentially through
// Dispatch. Every failure is shown to the user through UI.Notify and also
// returned, so callers can match it with errors.Is against the sentinels in
// package common.
package panel
