package core

import (
	"context"

	"github.com/checkdiff/checkdiff/internal/types"
	"github.com/checkdiff/checkdiff/pkg/gitcmd"
)

// GitClient handles git command operations
type GitClient interface {
	Clone(ctx context.Context, dir, url string, opts *types.CloneOptions) error
	Fetch(ctx context.Context, dir, ref string) error
	FetchTags(ctx context.Context, dir string) error
	Checkout(ctx context.Context, dir, ref string) error
	ResetHard(ctx context.Context, dir, ref string) error
	HeadHash(ctx context.Context, dir string) (string, error)
	ResolveRef(ctx context.Context, dir, ref string) (string, error)
	TagExists(ctx context.Context, dir, name string) (bool, error)
	HeadCommit(ctx context.Context, dir string) (types.CommitInfo, error)
}

// SystemGitClient implements GitClient using system git commands
type SystemGitClient struct {
	verbose bool
}

// NewSystemGitClient creates a new SystemGitClient
func NewSystemGitClient(verbose bool) *SystemGitClient {
	return &SystemGitClient{verbose: verbose}
}

// gitFor creates a gitcmd.Git instance for the given directory. The harness
// passes dir per-call while gitcmd stores it on the struct.
func (g *SystemGitClient) gitFor(dir string) *gitcmd.Git {
	return &gitcmd.Git{Dir: dir, Verbose: g.verbose}
}

// Clone clones a repository into dir with options.
// Converts types.CloneOptions to gitcmd.CloneOpts for the plumbing layer.
func (g *SystemGitClient) Clone(ctx context.Context, dir, url string, opts *types.CloneOptions) error {
	var plumbingOpts *gitcmd.CloneOpts
	if opts != nil {
		plumbingOpts = &gitcmd.CloneOpts{
			Depth:  opts.Depth,
			Branch: opts.Branch,
		}
	}
	return g.gitFor(dir).Clone(ctx, url, plumbingOpts)
}

// Fetch fetches a single ref from origin
func (g *SystemGitClient) Fetch(ctx context.Context, dir, ref string) error {
	return g.gitFor(dir).Fetch(ctx, "origin", ref)
}

// FetchTags fetches all tags from origin
func (g *SystemGitClient) FetchTags(ctx context.Context, dir string) error {
	return g.gitFor(dir).FetchTags(ctx, "origin")
}

// Checkout checks out a git ref
func (g *SystemGitClient) Checkout(ctx context.Context, dir, ref string) error {
	return g.gitFor(dir).Checkout(ctx, ref)
}

// ResetHard resets the working tree to a ref
func (g *SystemGitClient) ResetHard(ctx context.Context, dir, ref string) error {
	return g.gitFor(dir).ResetHard(ctx, ref)
}

// HeadHash returns the current HEAD commit hash
func (g *SystemGitClient) HeadHash(ctx context.Context, dir string) (string, error) {
	return g.gitFor(dir).HEAD(ctx)
}

// ResolveRef resolves a ref name to its full SHA
func (g *SystemGitClient) ResolveRef(ctx context.Context, dir, ref string) (string, error) {
	return g.gitFor(dir).ResolveRef(ctx, ref)
}

// TagExists reports whether a local tag with the given name exists
func (g *SystemGitClient) TagExists(ctx context.Context, dir, name string) (bool, error) {
	return g.gitFor(dir).TagExists(ctx, name)
}

// HeadCommit captures the checked-out commit's metadata.
// Delegates to gitcmd.HeadCommit and converts to types.CommitInfo; the
// Branch field is left for the caller since the working tree may be detached.
func (g *SystemGitClient) HeadCommit(ctx context.Context, dir string) (types.CommitInfo, error) {
	c, err := g.gitFor(dir).HeadCommit(ctx)
	if err != nil {
		return types.CommitInfo{}, err
	}
	return types.CommitInfo{
		Hash:      c.Hash,
		Subject:   c.Subject,
		Timestamp: c.Date,
	}, nil
}

// IsGitInstalled reports whether the git binary is available on PATH
func IsGitInstalled() bool {
	return gitcmd.IsInstalled()
}
