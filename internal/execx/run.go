package execx

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Result reports how an external command finished.
type Result struct {
	Code int
	Err  error
}

// RunIn executes name with args in dir, streaming the host's stdio to the
// child so interactive programs and test output behave as if run by hand.
// Code is the child's exit status; failures that never produced a status
// (binary missing, dir missing) map to 1.
func RunIn(dir, name string, args ...string) Result {
	if os.Getenv("AMINERCTL_DEBUG") == "1" {
		fmt.Fprintf(os.Stderr, "+ %s\n", strings.Join(append([]string{name}, args...), " "))
	}
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	code := 0
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			code = ee.ExitCode()
		} else {
			code = 1
		}
	}
	return Result{Code: code, Err: err}
}

// Run executes name with args in the current working directory.
func Run(name string, args ...string) Result {
	return RunIn("", name, args...)
}
