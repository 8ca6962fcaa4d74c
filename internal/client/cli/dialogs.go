package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Dialogs is the blocking confirm/notify capability the views use for
// destructive actions and alerts.
type Dialogs interface {
	// Confirm asks a yes/no question. Anything but an explicit yes is a no.
	Confirm(prompt string) (bool, error)
	// Notify shows a message the user should not miss.
	Notify(msg string)
}

// terminalDialogs reads answers from the same reader as the REPL.
type terminalDialogs struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewTerminalDialogs(reader *bufio.Reader, out io.Writer) Dialogs {
	return &terminalDialogs{reader: reader, out: out}
}

func (d *terminalDialogs) Confirm(prompt string) (bool, error) {
	if _, err := fmt.Fprintf(d.out, "%s [y/N]: ", prompt); err != nil {
		return false, err
	}
	answer, err := readLine(d.reader)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (d *terminalDialogs) Notify(msg string) {
	fmt.Fprintf(d.out, "! %s\n", msg)
}
