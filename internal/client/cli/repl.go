package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	status() string
	refresh(ctx context.Context)

	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	List(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: login, signup (register), help, exit"
	helpLoggedIn  = "Available commands: (l)ist, add, edit <n|id>, delete <n|id>, show <id>, search <query>, whoami, logout, help, exit"
)

// runREPL starts a simple read–eval–print loop for the cardkeeper CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Commands that need a session are refused on
// the entry view and vice versa. After every command the view is refreshed,
// so a session that ended during the command (logout, 401) lands the user on
// the entry view. The loop exits on EOF or when the user types "exit" or
// "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors to the user.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "cards%s> ", a.status())

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpLoggedOut)
			}
			continue
		}

		if a.isLoggedIn() {
			switch cmd {
			case "l", "list":
				_ = a.List(ctx)
			case "add":
				_ = a.Add(ctx)
			case "edit":
				_ = a.Edit(ctx, args)
			case "delete":
				_ = a.Delete(ctx, args)
			case "show":
				_ = a.Show(ctx, args)
			case "search":
				_ = a.Search(ctx, args)
			case "whoami":
				_ = a.WhoAmI(ctx)
			case "logout":
				_ = a.Logout(ctx)
			case "login", "signup", "register":
				fmt.Fprintln(w, "You are already logged in. Type 'logout' first.")
			default:
				fmt.Fprintln(w, "Unknown command:", cmd)
			}
		} else {
			switch cmd {
			case "login":
				_ = a.Login(ctx)
			case "signup", "register":
				_ = a.Signup(ctx)
			default:
				fmt.Fprintln(w, "Unknown command:", cmd)
				fmt.Fprintln(w, helpLoggedOut)
			}
		}

		a.refresh(ctx)
	}
}
