package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Vault(ctx context.Context) error
	Collect(ctx context.Context) error
	Upgrade(ctx context.Context, args []string) error
	Attack(ctx context.Context, args []string) error
	Use(ctx context.Context, args []string) error
	Moves(ctx context.Context) error
	MoveAction(ctx context.Context, action string, args []string) error
	Artifact(ctx context.Context, equip bool, args []string) error
	Left(ctx context.Context) error
	Progress(ctx context.Context) error
	Restore(ctx context.Context, args []string) error
	Grant(ctx context.Context, args []string) error
}

// runREPL reads commands until EOF or exit. Handler errors are printed and
// the loop continues.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		if a.isLoggedIn() {
			printlnFn("siege > ")
		} else {
			printlnFn("siege (no token) > ")
		}
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: vault, collect, upgrade, attack, use, moves, unlock, mastery, reset, equip, unequip, left, progress, restore, grant, login, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}
		case "login":
			err = a.Login(ctx)
		case "vault", "v":
			err = a.Vault(ctx)
		case "collect":
			err = a.Collect(ctx)
		case "upgrade":
			err = a.Upgrade(ctx, args)
		case "attack", "a":
			err = a.Attack(ctx, args)
		case "use":
			err = a.Use(ctx, args)
		case "moves":
			err = a.Moves(ctx)
		case "unlock", "reset":
			err = a.MoveAction(ctx, cmd, args)
		case "mastery":
			err = a.MoveAction(ctx, "upgrade", args)
		case "equip":
			err = a.Artifact(ctx, true, args)
		case "unequip":
			err = a.Artifact(ctx, false, args)
		case "left":
			err = a.Left(ctx)
		case "progress":
			err = a.Progress(ctx)
		case "restore":
			err = a.Restore(ctx, args)
		case "grant":
			err = a.Grant(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn(fmt.Sprintf("error: %v", err))
		}
	}
}
