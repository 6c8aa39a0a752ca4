package dispatch

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"aminerkit/cli/aminerctl/internal/execx"
)

// Runner executes commands on behalf of the dispatcher. The production
// implementation shells out; tests substitute a recorder.
type Runner interface {
	// RunScript executes a route's script (".sh" appended) under the
	// suite root, forwarding args verbatim, and returns its exit status.
	RunScript(script string, args ...string) int
	// RunInteractive hands the terminal to prog until it exits.
	RunInteractive(prog string) int
}

// ExecRunner runs suite scripts as child processes under Root.
type ExecRunner struct {
	Root   string
	DryRun bool
}

func (r ExecRunner) RunScript(script string, args ...string) int {
	target := "./" + script + ".sh"
	if r.DryRun {
		fmt.Fprintln(os.Stderr, "+ "+strings.Join(append([]string{target}, args...), " "))
		return 0
	}
	return execx.RunIn(r.Root, target, args...).Code
}

func (r ExecRunner) RunInteractive(prog string) int {
	if r.DryRun {
		fmt.Fprintln(os.Stderr, "+ "+prog)
		return 0
	}
	return execx.RunIn(r.Root, prog).Code
}

// Dispatcher resolves one subcommand and relays the target's exit status.
// Root and Shell come from config; Usage receives the short usage text on
// the unrecognized branch and defaults to os.Stderr.
type Dispatcher struct {
	Root   string
	Shell  string
	Run    Runner
	DryRun bool
	Usage  io.Writer
}

// Dispatch routes args[0] and returns the process exit status: the target
// script's status for simple routes, the final step's status for ALL, 0
// for SHELL, 1 for anything unrecognized (after printing usage), and 2
// when the suite root cannot be entered. The root check runs before any
// branch, so a broken root never starts a script. Dry-run skips the check
// so the plan can be printed on hosts without the suite.
func (d *Dispatcher) Dispatch(args []string) int {
	if err := checkRoot(d.Root); err != nil && !d.DryRun {
		fmt.Fprintln(os.Stderr, "aminerctl: "+err.Error())
		return 2
	}
	cmd := ""
	if len(args) > 0 {
		cmd = args[0]
	}
	switch classify(cmd) {
	case kindRoute:
		log.WithField("script", cmd).Debug("dispatching")
		return d.Run.RunScript(cmd, args[1:]...)
	case kindAll:
		return d.runAll()
	case kindShell:
		// The shell's own exit status is deliberately not relayed.
		d.Run.RunInteractive(d.Shell)
		return 0
	default:
		d.usage()
		return 1
	}
}

// runAll executes the regression batch front to back. A failing step does
// not stop the batch; the reported status is a keep-last reduction over
// the step statuses, so only the final step decides the outcome. That has
// been the suite's contract since the shell days, and result-propagating
// rewrites tend to short-circuit it by accident.
func (d *Dispatcher) runAll() int {
	last := 0
	for _, s := range allSteps {
		last = d.Run.RunScript(s.script, s.args...)
		if last != 0 {
			log.WithFields(log.Fields{"script": s.script, "code": last}).Debug("step failed, continuing")
		}
	}
	return last
}

func (d *Dispatcher) usage() {
	w := d.Usage
	if w == nil {
		w = os.Stderr
	}
	names := append(RouteNames(), "ALL", "SHELL")
	fmt.Fprintln(w, "Usage: aminerctl <subcommand> [args...]")
	fmt.Fprintln(w, "Subcommands: "+strings.Join(names, " "))
}

func checkRoot(root string) error {
	st, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("suite root %s: %v", root, err)
	}
	if !st.IsDir() {
		return fmt.Errorf("suite root %s: not a directory", root)
	}
	return nil
}
