// Package cli is the terminal front end of the auth panel.
//
// The two forms are rendered as prompts: a submit command asks for the
// visible form's fields one by one (passwords without echo), notifications
// are printed as "[ok]" or "[error]" lines, and the dashboard "window" is a
// printed destination. Commands are translated to panel events through a
// table and delivered with Panel.Dispatch, one at a time.
//
// Commands:
//
//	register        show the sign-up form
//	login           show the sign-in form
//	submit          submit the visible form
//	signup, signin  submit the named form
//	forgot          "forgot password?" on the sign-in form
//	help
//	exit | quit
package cli
