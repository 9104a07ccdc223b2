package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/authpanel/internal/client/panel"
)

// getSimpleText and getPassword point at the input helpers; tests swap them.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var fieldLabels = map[panel.Field]string{
	panel.FieldName:     "Name",
	panel.FieldEmail:    "Email",
	panel.FieldPassword: "Password",
}

// TerminalUI renders the panel's capabilities on a terminal. It implements
// panel.UI, panel.Fields and panel.Navigator.
type TerminalUI struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewTerminalUI(reader *bufio.Reader, out io.Writer) *TerminalUI {
	return &TerminalUI{reader: reader, out: out}
}

func (t *TerminalUI) Notify(_ context.Context, n panel.Notice) {
	fmt.Fprintf(t.out, "[%s] %s\n", n.Kind, n.Message)
}

// Prompt asks for a secret value. End of input or a read error count as
// dismissing the prompt.
func (t *TerminalUI) Prompt(_ context.Context, message string) panel.PromptResult {
	v, err := getPassword(t.reader, message, t.out)
	if err != nil {
		return panel.Cancelled()
	}
	return panel.Answered(v)
}

// Read asks for one field of form. Password fields are read without echo.
func (t *TerminalUI) Read(_ context.Context, form panel.Form, field panel.Field) (string, error) {
	label := fmt.Sprintf("[%s] %s", form, fieldLabels[field])
	if field == panel.FieldPassword {
		return getPassword(t.reader, label, t.out)
	}
	return getSimpleText(t.reader, label, t.out)
}

// Open stands in for a new browser window: the destination is printed and
// nothing else happens.
func (t *TerminalUI) Open(_ context.Context, target string) error {
	_, err := fmt.Fprintf(t.out, "Opening %s in a new window\n", target)
	return err
}
