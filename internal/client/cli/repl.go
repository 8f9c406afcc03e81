package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
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
	Logout(ctx context.Context) error
	Posts(ctx context.Context, page int) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	Open(ctx context.Context, id string) error
	Comment(ctx context.Context) error
	NewPost(ctx context.Context) error
	EditPost(ctx context.Context, id string) error
	DeletePost(ctx context.Context) error
	Search(ctx context.Context, mode string, term string) error
}

// runREPL starts a simple read–eval–print loop for the BlogTalks CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always available:
//	  - help                   — show available commands
//	  - posts [page] | p       — list posts, optionally jumping to a page
//	  - next | prev            — page through the current list
//	  - open <id>              — show a post with its comments
//	  - search <mode> <term>   — search posts (mode: all, text, tag)
//	  - exit | quit            — leave the program
//
//	Not logged in:
//	  - register               — create an account
//	  - login                  — authenticate
//
//	Logged in:
//	  - new                    — compose a new post
//	  - edit <id>              — edit one of your posts
//	  - delete                 — delete the currently open post
//	  - comment                — comment on the currently open post
//	  - logout                 — log out
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bt> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: (p)osts [page], next, prev, open <id>, search <mode> <term>, exit")
			if a.isLoggedIn() {
				printlnFn("Account: new, edit <id>, delete, comment, logout")
			} else {
				printlnFn("Account: register, login")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "p", "posts":
			page := 0
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					printlnFn("Usage: posts [page]")
					continue
				}
				page = n
			}
			_ = a.Posts(ctx, page)

		case "next":
			_ = a.NextPage(ctx)

		case "prev":
			_ = a.PrevPage(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <id>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "comment":
			_ = a.Comment(ctx)

		case "new":
			_ = a.NewPost(ctx)

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.EditPost(ctx, args[0])

		case "delete":
			_ = a.DeletePost(ctx)

		case "search":
			if len(args) < 2 {
				printlnFn("Usage: search <all|text|tag> <term>")
				continue
			}
			_ = a.Search(ctx, args[0], strings.Join(args[1:], " "))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
