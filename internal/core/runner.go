package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// CommandRunner executes an external command in a working directory.
// Implementations stream the child's stdout/stderr so the operator can follow
// long build and analysis runs live.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecError is returned when an external command exits nonzero.
type ExecError struct {
	Name     string
	Args     []string
	Dir      string
	ExitCode int
	Err      error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("command '%s %s' failed with exit code %d (in %s)",
		e.Name, strings.Join(e.Args, " "), e.ExitCode, e.Dir)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// ExecRunner implements CommandRunner using os/exec with inherited stdio.
type ExecRunner struct {
	Verbose bool
}

// NewExecRunner creates an ExecRunner honoring the package Verbose flag.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Verbose: Verbose}
}

// Run executes the command, inheriting stdout and stderr.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	if r.Verbose {
		fmt.Fprintf(os.Stderr, "[DEBUG] %s %s (in %s)\n", name, strings.Join(args, " "), dir)
	}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExecError{
				Name:     name,
				Args:     args,
				Dir:      dir,
				ExitCode: exitErr.ExitCode(),
				Err:      err,
			}
		}
		return err
	}
	return nil
}

// retryFixed runs fn up to attempts times with a fixed wait between failures.
// warn is called after every failed attempt except the last. The wait happens
// between attempts only: a fail-fail-succeed sequence sleeps exactly twice.
func retryFixed(attempts int, wait time.Duration, sleep func(time.Duration), warn func(attempt int, err error), fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if attempt < attempts {
			if warn != nil {
				warn(attempt, lastErr)
			}
			sleep(wait)
		}
	}
	return fmt.Errorf("all %d attempts failed: %w", attempts, lastErr)
}
