package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is what the REPL needs from the application. *App satisfies it;
// tests use a stub.
type execIface interface {
	helpLines() []string
	execute(ctx context.Context, name string, args []string) error
}

// runREPL reads commands line by line and dispatches them to a.
//
// "help", "exit" and "quit" are handled here; everything else goes to
// a.execute and any error it returns is printed with describeError. The loop
// ends on EOF, on exit/quit, or once ctx is cancelled.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			printlnFn("Bye!")
			return
		}
		printlnFn(fmt.Sprintf("recruit %s> ", statusFn()))

		line, readErr := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				return
			}
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			for _, l := range a.helpLines() {
				printlnFn(l)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if err := a.execute(ctx, cmd, parts[1:]); err != nil {
				printlnFn(describeError(err))
			}
		}

		if readErr != nil {
			return
		}
	}
}
