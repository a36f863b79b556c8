package cli

import (
	"bufio"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/userdir/internal/client/directory"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it.
type execIface interface {
	state() directory.State
	signedIn() bool
	SignUp(ctx context.Context) error
	SignIn(ctx context.Context) error
	SignOut(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	List(ctx context.Context) error
	Select(ctx context.Context, refs []string) error
	SelectAll(ctx context.Context) error
	SetStatus(ctx context.Context, target directory.Status) error
	WhoAmI(ctx context.Context) error
}

var commandsByState = map[directory.State][]string{
	directory.Anonymous: {"signup", "signin"},
	directory.Blocked:   {"signin", "signup", "whoami", "signout"},
	directory.Active: {
		"list", "select", "selectall", "block", "unblock",
		"whoami", "signout", "delete",
	},
}

// offered lists the commands of state s. A session whose profile is not in
// the directory yet still composes as anonymous but may inspect or end the
// session.
func offered(s directory.State, signedIn bool) []string {
	cmds := slices.Clone(commandsByState[s])
	if s == directory.Anonymous && signedIn {
		cmds = append(cmds, "whoami", "signout")
	}
	return cmds
}

func allowed(s directory.State, signedIn bool, cmd string) bool {
	return slices.Contains(offered(s, signedIn), cmd)
}

func helpText(s directory.State, signedIn bool) string {
	cmds := append(offered(s, signedIn), "help", "exit")
	return "Available commands: " + strings.Join(cmds, ", ")
}

// runREPL reads commands from reader until EOF or "exit"/"quit" and
// dispatches them to a. A command is run only when the current view state
// offers it. Handler errors are reported by the handlers themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("userdir %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText(a.state(), a.signedIn()))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		st, signedIn := a.state(), a.signedIn()
		if _, known := commandIndex[cmd]; !known {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if !allowed(st, signedIn, cmd) {
			if st == directory.Blocked {
				printlnFn("Your account is blocked.", helpText(st, signedIn))
			} else {
				printlnFn("Command not available:", cmd)
			}
			continue
		}

		switch cmd {
		case "signup":
			_ = a.SignUp(ctx)
		case "signin":
			_ = a.SignIn(ctx)
		case "signout":
			_ = a.SignOut(ctx)
		case "delete":
			_ = a.DeleteAccount(ctx)
		case "list":
			_ = a.List(ctx)
		case "select":
			if len(args) == 0 {
				printlnFn("Usage: select <#|uid> [#|uid...]")
				continue
			}
			_ = a.Select(ctx, args)
		case "selectall":
			_ = a.SelectAll(ctx)
		case "block":
			_ = a.SetStatus(ctx, directory.StatusBlocked)
		case "unblock":
			_ = a.SetStatus(ctx, directory.StatusActive)
		case "whoami":
			_ = a.WhoAmI(ctx)
		}
	}
}

var commandIndex = func() map[string]struct{} {
	idx := map[string]struct{}{}
	for _, cmds := range commandsByState {
		for _, c := range cmds {
			idx[c] = struct{}{}
		}
	}
	return idx
}()
