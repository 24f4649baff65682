package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Makepad-fr/tada-remote/internal/auth"
	"github.com/Makepad-fr/tada-remote/internal/ui"
)

func (a *app) doAuthLogin() int {
	fmt.Fprint(ui.Stdout, "Paste your token: ")
	line, err := bufio.NewReader(Stdin).ReadString('\n')
	if err != nil && strings.TrimSpace(line) == "" {
		ui.Fail("read token: " + err.Error())
		return 1
	}
	src, err := a.store.Set(line)
	if err != nil {
		ui.Fail("save token: " + err.Error())
		return 1
	}
	ui.OK("logged in (" + string(src) + ")")
	return 0
}

func (a *app) doAuthLogout() int {
	ti, _ := a.store.Get()
	if ti != nil && ti.Source == auth.SourceEnv {
		ui.OK("token is provided by " + auth.EnvToken + " env var (nothing to delete)")
		return 0
	}
	if err := a.store.Delete(); err != nil {
		ui.Fail("logout: " + err.Error())
		return 1
	}
	ui.OK("logged out")
	return 0
}

func (a *app) doAuthStatus() int {
	ti, err := a.store.Get()
	if err != nil {
		ui.Fail("status: " + err.Error())
		return 1
	}
	if ti == nil {
		fmt.Fprintln(ui.Stdout, ui.Current().Muted.Render("not logged in"))
		fmt.Fprintln(ui.Stdout, "Run: tada auth login")
		return 0
	}
	fmt.Fprintf(ui.Stdout, "source: %s\n", ti.Source)
	if ti.ExpiresAt != nil {
		state := "valid"
		if ti.Expired(time.Now()) {
			state = "expired"
		}
		fmt.Fprintf(ui.Stdout, "expires: %s (%s)\n", ti.ExpiresAt.UTC().Format(time.RFC3339), state)
	} else {
		fmt.Fprintln(ui.Stdout, "expires: (unknown)")
	}
	fmt.Fprintln(ui.Stdout, "env override: "+auth.EnvToken)
	return 0
}

// whoami decodes JWT claims locally (unverified); opaque tokens print basic info.
func (a *app) doAuthWhoAmI() int {
	ti, _ := a.store.Get()
	if ti == nil {
		ui.Fail("not logged in. Run: tada auth login")
		return 2
	}
	if claims, ok := auth.Claims(ti.Token); ok {
		b, err := json.MarshalIndent(claims, "", "  ")
		if err == nil {
			fmt.Fprintln(ui.Stdout, "JWT payload:")
			fmt.Fprintln(ui.Stdout, string(b))
			return 0
		}
	}
	fmt.Fprintln(ui.Stdout, "Opaque token (cannot introspect locally).")
	fmt.Fprintln(ui.Stdout, "source:", ti.Source)
	return 0
}
