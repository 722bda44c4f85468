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
	Hint(ctx context.Context) error
	Add(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Generate(ctx context.Context) error
	Strength(ctx context.Context) error
	Export(ctx context.Context) error
	Import(ctx context.Context) error
	Profile(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the PassVault CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
func runREPL(ctx context.Context, scanner *bufio.Scanner, a execIface) {
	printHelp(a)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd := strings.ToLower(strings.Fields(line)[0])

		if cmd == "exit" || cmd == "quit" {
			return
		}
		if cmd == "help" {
			printHelp(a)
			continue
		}

		if err := dispatch(ctx, a, cmd); err != nil {
			printlnFn("Error:", err)
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string) error {
	if !a.isLoggedIn() {
		switch cmd {
		case "register":
			return a.Register(ctx)
		case "login":
			return a.Login(ctx)
		case "hint":
			return a.Hint(ctx)
		case "generate":
			return a.Generate(ctx)
		case "strength":
			return a.Strength(ctx)
		default:
			printlnFn("Unknown command:", cmd)
			return nil
		}
	}

	switch cmd {
	case "add":
		return a.Add(ctx)
	case "list":
		return a.List(ctx)
	case "search":
		return a.Search(ctx)
	case "edit":
		return a.Edit(ctx)
	case "delete":
		return a.Delete(ctx)
	case "generate":
		return a.Generate(ctx)
	case "strength":
		return a.Strength(ctx)
	case "export":
		return a.Export(ctx)
	case "import":
		return a.Import(ctx)
	case "profile":
		return a.Profile(ctx)
	case "deleteaccount":
		return a.DeleteAccount(ctx)
	case "logout":
		return a.Logout(ctx)
	default:
		printlnFn("Unknown command:", cmd)
		return nil
	}
}

func printHelp(a execIface) {
	if !a.isLoggedIn() {
		printlnFn(`Commands:
  register       create an account
  login          open your vault
  hint           show a password hint
  generate       generate a password
  strength       check password strength
  exit | quit    leave the program`)
		return
	}
	printlnFn(`Commands:
  add            store a site credential
  list           list stored credentials
  search         search credentials
  edit           edit a credential
  delete         delete a credential
  generate       generate a password
  strength       check password strength
  export         export credentials to a JSON file
  import         import credentials from a JSON file
  profile        change password hint and password
  deleteaccount  delete your account and all credentials
  logout         close the vault
  exit | quit    leave the program`)
}
