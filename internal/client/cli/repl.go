package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. args holds the
// words typed after the command name.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Status(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
}

// runREPL reads commands from reader until EOF, "exit" or "quit".
//
//	Not logged in:  help, register, login, exit
//	Logged in:      help, list [STATUS] [search], show <id>, add,
//	                status <id> <STATUS>, delete <id>, logout, exit
//
// Command handlers share reader for their own prompts. Their errors are
// reported by the handlers themselves; the loop keeps going.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("tk> %s > ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if !a.isLoggedIn() {
			switch cmd {
			case "list", "l", "show", "add", "status", "delete", "logout":
				printlnFn("Please login first")
				continue
			}
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist [STATUS] [search], show <id>, add, status <id> <OPEN|IN_PROGRESS|DONE>, delete <id>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "add":
			_ = a.Add(ctx)

		case "status":
			_ = a.Status(ctx, args)

		case "delete":
			_ = a.Delete(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
