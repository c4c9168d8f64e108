package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/ecavus/taskboard/internal/client"
)

const usageText = `usage: taskboard [flags] <command> [args]

commands:
  register <name> <email>     create an account (prompts for password)
  login <email>               sign in (prompts for password)
  logout                      forget the stored token
  whoami                      show the signed-in profile
  list                        list todos (honors filter flags)
  add <title>                 add a todo (-category to pick one)
  toggle <id>                 flip a todo between done and active
  edit <id> <title>           rename a todo
  rm <id>                     delete a todo
  cats                        list categories
  addcat <name>               add a category
  rmcat <id>                  delete a category

flags:
`

func main() {
	server := flag.String("server", envOr("TASKBOARD_SERVER", "http://localhost:8080"), "API base URL")
	category := flag.String("category", "", "only show or assign this category")
	hideDone := flag.Bool("hide-completed", false, "hide completed todos")
	search := flag.String("search", "", "only show todos whose title contains this text")
	stats := flag.Bool("stats", false, "print the statistics panel after the list")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	api := client.New(*server)
	api.Token = readToken()
	store := client.NewStore(api)
	store.Filters.SelectedCategory = *category
	store.Filters.HideCompleted = *hideDone
	store.Filters.SearchQuery = *search
	store.Filters.ShowStats = *stats

	ctx := context.Background()
	if err := run(ctx, store, api, args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, store *client.Store, api *client.Client, args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		if len(rest) != 2 {
			return fmt.Errorf("register needs <name> <email>")
		}
		password, err := promptPassword()
		if err != nil {
			return err
		}
		user, err := api.Register(ctx, rest[0], rest[1], password, "")
		if err != nil {
			return err
		}
		fmt.Printf("registered %s <%s>, now run: taskboard login %s\n", user.Name, user.Email, user.Email)
		return nil

	case "login":
		if len(rest) != 1 {
			return fmt.Errorf("login needs <email>")
		}
		password, err := promptPassword()
		if err != nil {
			return err
		}
		if err := store.Login(ctx, rest[0], password); err != nil {
			return err
		}
		if err := writeToken(api.Token); err != nil {
			return err
		}
		fmt.Printf("signed in as %s\n", store.User().Email)
		return nil

	case "logout":
		store.Logout()
		return removeToken()

	case "whoami":
		user, err := api.GetProfile(ctx)
		if err != nil {
			return describeAuth(err)
		}
		fmt.Printf("%s <%s>\navatar: %s\n", user.Name, user.Email, user.AvatarURL)
		return nil
	}

	// Everything below works on the loaded store.
	if err := store.Load(ctx); err != nil {
		return err
	}
	if store.User() == nil {
		return fmt.Errorf("not signed in, run: taskboard login <email>")
	}

	switch cmd {
	case "list":
		for _, t := range store.VisibleTodos() {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			fmt.Printf("[%s] %-40s %-12s %s\n", mark, t.Title, t.Category, t.ID)
		}
		if store.Filters.ShowStats {
			s := store.Stats()
			fmt.Printf("\ntotal %d, completed %d, active %d\n", s.Total, s.Completed, s.Active)
		}
		return nil

	case "add":
		if len(rest) != 1 {
			return fmt.Errorf("add needs <title>")
		}
		if err := store.AddTodo(ctx, rest[0], store.Filters.SelectedCategory); err != nil {
			return storeErr(store, err)
		}
		fmt.Println("added:", store.Todos()[0].ID)
		return nil

	case "toggle":
		if len(rest) != 1 {
			return fmt.Errorf("toggle needs <id>")
		}
		return storeErr(store, store.ToggleTodo(ctx, rest[0]))

	case "edit":
		if len(rest) != 2 {
			return fmt.Errorf("edit needs <id> <title>")
		}
		category := ""
		for _, t := range store.Todos() {
			if t.ID == rest[0] {
				category = t.Category
			}
		}
		return storeErr(store, store.EditTodo(ctx, rest[0], rest[1], category))

	case "rm":
		if len(rest) != 1 {
			return fmt.Errorf("rm needs <id>")
		}
		return storeErr(store, store.RemoveTodo(ctx, rest[0]))

	case "cats":
		for _, c := range store.Categories() {
			fmt.Printf("%-20s %s\n", c.Name, c.ID)
		}
		return nil

	case "addcat":
		if len(rest) != 1 {
			return fmt.Errorf("addcat needs <name>")
		}
		return storeErr(store, store.AddCategory(ctx, rest[0]))

	case "rmcat":
		if len(rest) != 1 {
			return fmt.Errorf("rmcat needs <id>")
		}
		return storeErr(store, store.RemoveCategory(ctx, rest[0]))
	}

	return fmt.Errorf("unknown command %q", cmd)
}

func storeErr(store *client.Store, err error) error {
	if err == nil {
		return nil
	}
	if msg := store.Err(); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return err
}

func describeAuth(err error) error {
	if client.IsUnauthorized(err) {
		return fmt.Errorf("not signed in, run: taskboard login <email>")
	}
	return err
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func tokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".taskboard", "token")
}

func readToken() string {
	raw, err := os.ReadFile(tokenPath())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

func writeToken(token string) error {
	path := tokenPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

func removeToken() error {
	if err := os.Remove(tokenPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	fmt.Println("signed out")
	return nil
}
