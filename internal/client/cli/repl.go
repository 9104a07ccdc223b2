package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/authpanel/internal/client/models"
	"github.com/dmitrijs2005/authpanel/internal/client/panel"
)

// printlnFn and printFn are test seams for user-facing output.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// dispatcher is the part of *panel.Panel the REPL drives.
type dispatcher interface {
	Dispatch(ctx context.Context, ev *panel.Event) error
	View() models.ViewState
}

// commandEvents maps REPL commands to the UI events they stand for.
var commandEvents = map[string]panel.EventID{
	"register": panel.EventRegisterClick,
	"login":    panel.EventLoginClick,
	"signup":   panel.EventSignUpSubmit,
	"signin":   panel.EventSignInSubmit,
	"forgot":   panel.EventForgotPasswordClick,
}

// submitEvent is the submit button of the visible form.
func submitEvent(v models.ViewState) panel.EventID {
	if v == models.ViewSignUp {
		return panel.EventSignUpSubmit
	}
	return panel.EventSignInSubmit
}

func helpText(v models.ViewState) string {
	if v == models.ViewSignUp {
		return "Sign-up form. Commands: submit, login (switch to sign-in), exit"
	}
	return "Sign-in form. Commands: submit, forgot, register (switch to sign-up), exit"
}

// runREPL reads commands from reader until EOF or exit/quit and delivers the
// matching events to d. Handler errors are not printed: the panel has
// already notified the user and logged them.
func runREPL(ctx context.Context, d dispatcher, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printFn(fmt.Sprintf("authpanel (%s)> ", d.View().Label()))

		line, err := readLine(reader)
		if err != nil {
			printlnFn()
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := strings.ToLower(parts[0])
		switch cmd {
		case "help":
			printlnFn(helpText(d.View()))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "submit":
			_ = d.Dispatch(ctx, panel.NewEvent(submitEvent(d.View())))
			continue
		}

		id, ok := commandEvents[cmd]
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		_ = d.Dispatch(ctx, panel.NewEvent(id))
	}
}
