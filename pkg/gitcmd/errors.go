package gitcmd

import (
	"errors"
	"strings"
)

// ErrNotRepo and ErrRefNotFound classify the git failures callers branch on.
var (
	ErrNotRepo     = errors.New("not a git repository")
	ErrRefNotFound = errors.New("ref not found")
)

// GitError carries the failed subcommand, whatever git wrote to stderr, and
// the underlying exec error.
type GitError struct {
	Args   []string
	Stderr string
	Err    error
}

// Error returns git's own stderr message when present, falling back to the
// exec error.
func (e *GitError) Error() string {
	if msg := strings.TrimSpace(e.Stderr); msg != "" {
		return msg
	}
	return e.Err.Error()
}

func (e *GitError) Unwrap() error { return e.Err }

// IsNotRepo reports whether err came from running git outside a repository.
func IsNotRepo(err error) bool {
	var gitErr *GitError
	return errors.As(err, &gitErr) &&
		strings.Contains(gitErr.Stderr, "not a git repository")
}
