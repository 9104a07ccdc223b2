package models

// ViewState is which of the two forms is presented.
type ViewState string

const (
	ViewSignIn ViewState = "signin-active"
	ViewSignUp ViewState = "signup-active"
)

// Label is the short name shown in the CLI prompt.
func (v ViewState) Label() string {
	if v == ViewSignUp {
		return "sign-up"
	}
	return "sign-in"
}
