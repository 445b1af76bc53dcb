package cli

import (
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	NewDriver(ctx context.Context) error
	AddLicense(ctx context.Context, driverID string) error
	Show(ctx context.Context, driverID string) error
	List(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for an authenticated session.
//
// It reads a line from in, parses the first token as the command and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on input EOF, when the session context ends, or when
// the user types "exit" or "quit".
//
// Commands
//
//	help               show available commands
//	newdriver          register a driver (prompts every field and a photo)
//	addlicense [id]    add a licence to a driver
//	show <id>          show one driver with licences
//	(l)ist             list drivers
//	exit | quit        leave the program
//
// Errors returned by command handlers are ignored here; handlers report them
// to the user themselves. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *Input) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("dd %s> ", statusFn()))
		line, err := in.ReadLine(ctx)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: newdriver, addlicense [id], show <id>, (l)ist, exit")

		case "newdriver":
			_ = a.NewDriver(ctx)

		case "addlicense":
			id := ""
			if len(args) > 0 {
				id = args[0]
			}
			_ = a.AddLicense(ctx, id)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "l", "list":
			_ = a.List(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
