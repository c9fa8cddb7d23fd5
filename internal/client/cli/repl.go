package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Whoami(ctx context.Context) error
	Ping(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands line by line from scanner and dispatches them to a.
// The first whitespace-separated token of each line names the command, the
// prompt is rebuilt from statusFn before every read, and the loop ends on
// scanner EOF or an "exit"/"quit" command.
//
// Command handlers report their own failures to the user; the loop itself
// never aborts on a handler error.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("gk> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if stop := dispatch(ctx, a, fields[0]); stop {
			return
		}
	}
}

// dispatch runs a single REPL command and reports whether the loop should end.
func dispatch(ctx context.Context, a execIface, cmd string) bool {
	switch cmd {
	case "help":
		printlnFn("Available commands: " + helpText(a.isLoggedIn()))

	case "register":
		_ = a.Register(ctx)

	case "login":
		_ = a.Login(ctx)

	case "whoami":
		_ = a.Whoami(ctx)

	case "ping":
		_ = a.Ping(ctx)

	case "logout":
		_ = a.Logout(ctx)

	case "exit", "quit":
		printlnFn("Bye!")
		return true

	default:
		printlnFn("Unknown command:", cmd)
	}
	return false
}

// helpText lists the commands available in the current session state.
func helpText(loggedIn bool) string {
	if loggedIn {
		return "whoami, ping, logout, exit"
	}
	return "register, login, ping, exit"
}
