package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/Makepad-fr/tada-remote/internal/api"
	"github.com/Makepad-fr/tada-remote/internal/auth"
	"github.com/Makepad-fr/tada-remote/internal/config"
	"github.com/Makepad-fr/tada-remote/internal/listvm"
	"github.com/Makepad-fr/tada-remote/internal/logging"
	"github.com/Makepad-fr/tada-remote/internal/model"
	"github.com/Makepad-fr/tada-remote/internal/tui"
	"github.com/Makepad-fr/tada-remote/internal/ui"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// Options carry root flag values.
type Options struct {
	ConfigFile string
	APIBaseURL string
	LogLevel   string
	Theme      string
}

// Stdin is where `auth login` reads the token from.
var Stdin io.Reader = os.Stdin

// runInteractive starts the TUI; tests swap it out.
var runInteractive = tui.Run

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	cmd, rest := "ui", []string(nil)
	if len(args) > 0 {
		cmd, rest = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0
	}

	cfg, err := config.Load(config.Overrides{
		ConfigFile: opt.ConfigFile,
		APIBaseURL: opt.APIBaseURL,
		LogLevel:   opt.LogLevel,
		Theme:      opt.Theme,
	})
	if err != nil {
		ui.Fail("config: " + err.Error())
		return 1
	}

	ui.SetTheme(cfg.Theme)

	closer, err := logging.Setup(logging.Options{Level: cfg.LogLevel, Path: cfg.LogFile})
	if err != nil {
		ui.Fail("log: " + err.Error())
		return 1
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{cfg: cfg, store: auth.NewStore(cfg.CredentialsFile, cfg.UseKeyring)}

	log.Debug("command", "name", cmd, "args", rest)

	switch cmd {
	case "ui":
		return a.doInteractive(ctx)

	case "ls":
		return a.doList(ctx)

	case "add":
		if len(rest) == 0 {
			ui.Fail("usage: tada add <title...>")
			return 2
		}
		title := strings.TrimSpace(strings.Join(rest, " "))
		if title == "" {
			ui.Fail("add: empty title")
			return 2
		}
		return a.doAdd(ctx, title)

	case "rm":
		if len(rest) != 1 {
			ui.Fail("usage: tada rm <id>")
			return 2
		}
		id, err := strconv.Atoi(rest[0])
		if err != nil {
			ui.Fail("rm: not a number: " + rest[0])
			return 2
		}
		return a.doRemove(ctx, id)

	case "auth":
		if len(rest) == 0 {
			ui.Fail("usage: tada auth <login|logout|status|whoami>")
			return 2
		}
		switch rest[0] {
		case "login":
			return a.doAuthLogin()
		case "logout":
			return a.doAuthLogout()
		case "status":
			return a.doAuthStatus()
		case "whoami":
			return a.doAuthWhoAmI()
		default:
			ui.Fail("usage: tada auth <login|logout|status|whoami>")
			return 2
		}
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(ui.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprintf(ui.Stdout, `tada - a remote to-do list client

Usage:
  tada [flags] <subcommand> [args]

Subcommands:
  ui                 Open the interactive list (default)
  ls                 Print the first %d items
  add <title...>     Create an item (title can be multiple words)
  rm <id>            Delete the item with the given id
  auth <login|logout|status|whoami>   Token authentication

Flags:
  -config <path>     Config file (default ~/.tada/config.toml)
  -api <url>         API base URL
  -log-level <lvl>   debug, info, warn or error
  -theme <name>      classic, neon or mono

Examples:
  tada auth login
  tada add "Buy milk"
  tada rm 3
`, model.PageSize)
}

// app wires configuration to the gate, the client and the view-model.
type app struct {
	cfg   *config.Config
	store *auth.Store
}

// authorize is the gate in front of every list command.
func (a *app) authorize() (*auth.Session, int) {
	session, err := auth.NewGate(a.store).Authorize()
	switch {
	case errors.Is(err, auth.ErrExpired):
		ui.Fail("token expired")
		ui.Hint("Run: tada auth login")
		return nil, 2
	case errors.Is(err, auth.ErrNotSignedIn):
		ui.Fail("not signed in")
		ui.Hint("Set " + auth.EnvToken + " or run: tada auth login")
		return nil, 2
	case err != nil:
		ui.Fail("auth: " + err.Error())
		return nil, 1
	}
	return session, 0
}

func (a *app) client() (*api.Client, error) {
	baseURL, err := a.cfg.BaseURL()
	if err != nil {
		return nil, err
	}
	return api.New(
		api.WithBaseURL(baseURL),
		api.WithHeader("User-Agent", "tada"),
		api.WithRateLimit(rate.Limit(a.cfg.RateLimit), a.cfg.RateBurst),
	), nil
}

func (a *app) viewModel() (*listvm.ViewModel, error) {
	client, err := a.client()
	if err != nil {
		return nil, err
	}
	policy, err := listvm.ParsePolicy(a.cfg.InFlightPolicy)
	if err != nil {
		return nil, err
	}
	return listvm.New(client,
		listvm.WithOwnerID(a.cfg.OwnerID),
		listvm.WithPolicy(policy),
	), nil
}

// ready authorizes, builds the view-model and runs the initial load.
func (a *app) ready(ctx context.Context) (*listvm.ViewModel, int) {
	if _, code := a.authorize(); code != 0 {
		return nil, code
	}
	vm, err := a.viewModel()
	if err != nil {
		ui.Fail(err.Error())
		return nil, 1
	}
	if err := vm.Load(ctx); err != nil {
		ui.Fail(err.Error())
		return nil, 1
	}
	return vm, 0
}
