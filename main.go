package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"aminerkit/cli/aminerctl/internal/config"
	"aminerkit/cli/aminerctl/internal/dispatch"
	"aminerkit/cli/aminerctl/internal/sysservice"
)

func usage() {
	fmt.Fprintf(os.Stderr, `aminerctl — AECID test-suite front-end
Usage: aminerctl <subcommand> [args...]

Subcommands:
  %s
  ALL      run the full regression batch
  SHELL    open an interactive shell in the suite root

Flags:
  --dry-run   print the commands that would run without executing them
  -h, --help  show this help

Environment:
  AMINERCTL_ROOT       suite root (default %s)
  AMINERCTL_SHELL      shell program for the SHELL subcommand
  AMINERCTL_CONFIG     config file path
  AMINERCTL_DEBUG=1    echo executed commands
  AMINERCTL_LOG_LEVEL  log level (default warn)
`, strings.Join(dispatch.RouteNames(), " "), config.DefaultRoot)
}

func initLog() {
	log.SetOutput(os.Stderr)
	lvl := log.WarnLevel
	if v := strings.TrimSpace(os.Getenv("AMINERCTL_LOG_LEVEL")); v != "" {
		if parsed, err := log.ParseLevel(v); err == nil {
			lvl = parsed
		}
	}
	log.SetLevel(lvl)
}

// parseArgs splits tool flags from the subcommand and its passthrough
// arguments. Only tokens before the subcommand belong to the tool;
// everything from the first non-flag token onward is forwarded verbatim,
// even when it collides with a tool flag spelling.
func parseArgs(argv []string) (args []string, dryRun, help bool) {
	for len(argv) > 0 {
		switch argv[0] {
		case "--dry-run":
			dryRun = true
		case "-h", "--help", "help":
			help = true
		default:
			return argv, dryRun, help
		}
		argv = argv[1:]
	}
	return argv, dryRun, help
}

func main() {
	initLog()
	args, dryRun, help := parseArgs(os.Args[1:])
	if help {
		usage()
		return
	}
	fileCfg, err := config.Read()
	if err != nil {
		fmt.Fprintln(os.Stderr, "aminerctl: "+err.Error())
		os.Exit(2)
	}
	cfg := config.Resolve(fileCfg)

	// Any argument at all means a suite run is coming, so bring up the
	// services the scripts expect. Which branch matches does not matter.
	sysservice.Prepare(sysservice.SudoController{DryRun: dryRun}, cfg.Services, len(args))

	d := &dispatch.Dispatcher{
		Root:   cfg.Root,
		Shell:  cfg.Shell,
		Run:    dispatch.ExecRunner{Root: cfg.Root, DryRun: dryRun},
		DryRun: dryRun,
	}
	os.Exit(d.Dispatch(args))
}
