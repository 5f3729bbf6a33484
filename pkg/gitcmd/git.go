// Package gitcmd is a thin wrapper over the system git binary. It shells out
// rather than linking a git library so the harness exercises exactly the same
// git behavior an operator would see on the command line.
package gitcmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Git runs git subcommands inside one working directory.
type Git struct {
	Dir     string // working directory
	Verbose bool   // echo commands to stderr
}

// New creates a Git instance for the given directory.
func New(dir string) *Git {
	return &Git{Dir: dir}
}

// command builds an exec.Cmd for a git invocation rooted at g.Dir, with the
// hook environment variables stripped, and echoes it when Verbose is set.
func (g *Git) command(ctx context.Context, args []string) *exec.Cmd {
	if g.Verbose {
		fmt.Fprintf(os.Stderr, "[DEBUG] git %s (in %s)\n", strings.Join(args, " "), g.Dir)
	}
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.Dir
	cmd.Env = sanitizedEnv()
	return cmd
}

// Run executes a git command and returns trimmed stdout.
func (g *Git) Run(ctx context.Context, args ...string) (string, error) {
	out, err := g.command(ctx, args).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &GitError{Args: args, Stderr: string(exitErr.Stderr), Err: err}
		}
		return "", err
	}
	return strings.TrimRight(string(out), " \t\r\n"), nil
}

// RunLines executes a git command and returns stdout split by newlines.
// Empty output yields a nil slice.
func (g *Git) RunLines(ctx context.Context, args ...string) ([]string, error) {
	out, err := g.Run(ctx, args...)
	if err != nil || out == "" {
		return nil, err
	}
	return strings.Split(out, "\n"), nil
}

// RunSilent executes a git command, discarding output on success. On error
// the combined stdout+stderr ends up in the returned GitError.
func (g *Git) RunSilent(ctx context.Context, args ...string) error {
	if output, err := g.command(ctx, args).CombinedOutput(); err != nil {
		return &GitError{Args: args, Stderr: string(output), Err: err}
	}
	return nil
}

// RunStreamed executes a git command with stdout/stderr inherited from the
// parent process. Used for long network operations (clone, fetch) where the
// operator wants to see git's own progress output.
func (g *Git) RunStreamed(ctx context.Context, args ...string) error {
	cmd := g.command(ctx, args)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return &GitError{Args: args, Err: err}
	}
	return nil
}

// IsInstalled reports whether a git binary is available on PATH.
func IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// sanitizedEnv returns the current environment with git hook variables
// removed. When the harness itself runs inside a git hook, GIT_DIR and
// GIT_INDEX_FILE point at the outer repo and override cmd.Dir, sending
// commands to the wrong repository.
func sanitizedEnv() []string {
	env := make([]string, 0, len(os.Environ()))
	for _, e := range os.Environ() {
		name, _, _ := strings.Cut(e, "=")
		switch strings.ToUpper(name) {
		case "GIT_DIR", "GIT_INDEX_FILE", "GIT_WORK_TREE",
			"GIT_OBJECT_DIRECTORY", "GIT_ALTERNATE_OBJECT_DIRECTORIES":
			continue
		}
		env = append(env, e)
	}
	return env
}
