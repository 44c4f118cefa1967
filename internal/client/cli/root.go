package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnknownCommand is returned by Exec for names it does not know.
var ErrUnknownCommand = errors.New("unknown command")

func (a *App) getStatus() string {
	if a.session == nil || a.session.Email == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.Email)
}

// Exec runs one command.
func (a *App) Exec(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		fmt.Fprintln(a.out, "Available commands: register, login, logout, list, add [title], done <id>, undone <id>, rm <id>, exit")
		return nil
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "logout":
		return a.Logout(ctx)
	case "list", "l":
		return a.List(ctx)
	case "add":
		return a.Add(ctx, args)
	case "done":
		return a.SetCompleted(ctx, args, true)
	case "undone":
		return a.SetCompleted(ctx, args, false)
	case "rm", "delete":
		return a.Delete(ctx, args)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

// Root runs the interactive loop until EOF or "exit".
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to TaskKeeper CLI (type 'help' for commands)")
	_, _ = a.currentSession()

	for {
		fmt.Fprintf(a.out, "tk %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		parts := strings.Fields(line)

		if len(parts) > 0 {
			cmd := parts[0]
			if cmd == "exit" || cmd == "quit" {
				fmt.Fprintln(a.out, "Bye!")
				return
			}
			if err := a.Exec(ctx, cmd, parts[1:]); err != nil {
				fmt.Fprintln(a.out, "Error:", err)
			}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintln(a.out, "Error:", err)
			}
			return
		}
	}
}
