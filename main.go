package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Makepad-fr/tada-remote/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	configFile := flag.String("config", "", "config file (default ~/.tada/config.toml)")
	apiURL := flag.String("api", "", "API base URL")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	theme := flag.String("theme", "", "classic, neon or mono")
	flag.Usage = cli.PrintHelp
	flag.Parse()

	// Hand the remaining args to the CLI runner. No args opens the list.
	code := cli.Run(flag.Args(), cli.Options{
		ConfigFile: *configFile,
		APIBaseURL: *apiURL,
		LogLevel:   *logLevel,
		Theme:      *theme,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
