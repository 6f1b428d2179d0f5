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
	help() string
	Next(ctx context.Context) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Reset(ctx context.Context) error
	Back(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the onboarding client.
//
// It reads a line from reader, writes prompts and replies to w, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
// Form prompts issued by the handlers read from the same reader, so typed
// field values are never mistaken for commands.
//
// Prompt & Commands
//
// The prompt shows the current screen (from statusFn). What a command does
// depends on the screen:
//
//	Onboarding:
//	  - next           — next slide (the last one continues to login)
//	  - login          — open the login screen
//	  - register       — open the registration screen
//
//	Login / Register:
//	  - login          — submit the login form, or switch to it
//	  - register       — submit the registration form, or switch to it
//
//	Home:
//	  - logout         — end the session
//
//	Everywhere:
//	  - help           — show available commands
//	  - back           — previous screen
//	  - reset          — forget the session and the onboarding progress
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers
// report to the user and log on their own.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "gob %s> \n", statusFn())
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			fmt.Fprintln(w, a.help())

		case "n", "next":
			_ = a.Next(ctx)

		case "login":
			_ = a.Login(ctx)

		case "register", "signup":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "b", "back":
			_ = a.Back(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
