// Package main provides the energyx binary.
//
// Usage:
//
//	energyx [-config path] [-policy named|prefixed] <command> [args...]
//
// Commands:
//
//	convert <value> <from> <to>     - Print value converted between two units
//	units [-format text|json|yaml]  - List unit identifiers and display names
//	serve                           - Run the HTTP API and web form
//	version                         - Show version
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// Version information (set by build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

const usage = `usage: energyx [-config path] [-policy named|prefixed] <command> [args...]

commands:
  convert <value> <from> <to>     print value converted between two units
  units [-format text|json|yaml]  list unit identifiers and display names
  serve                           run the HTTP API and web form
  version                         show version
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("energyx", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }

	configPath := fs.String("config", "", "Path to config file")
	policy := fs.String("policy", "", "Unit table policy (overrides units.policy)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsageError
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return ExitUsageError
	}
	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]

	// version needs neither config nor registry
	if cmd == "version" {
		fmt.Fprintf(stdout, "energyx %s (built %s)\n", Version, BuildTime)
		return ExitSuccess
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return ExitConfigError
	}
	if *policy != "" {
		cfg.Units.Policy = *policy
	}

	logger := SetupLogger(cfg, stderr)

	a, err := newApp(cfg, logger, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return ExitConfigError
	}

	if err := a.dispatch(cmd, cmdArgs); err != nil {
		var cErr *CommandError
		if errors.As(err, &cErr) {
			fmt.Fprintf(stderr, "energyx %s: %v\n", cErr.Op, cErr.Err)
			if cErr.ExitCode == ExitUsageError {
				fs.Usage()
			}
			return cErr.ExitCode
		}
		fmt.Fprintf(stderr, "energyx: %v\n", err)
		return ExitConfigError
	}

	return ExitSuccess
}
