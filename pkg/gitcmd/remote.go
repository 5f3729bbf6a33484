package gitcmd

import (
	"context"
	"fmt"
)

// CloneOpts configures a clone operation.
type CloneOpts struct {
	Depth  int    // 0 means full history
	Branch string // pin the clone to a branch or tag at clone time
}

// Clone clones a repository into this directory. Network progress is
// streamed to the operator because clones of large corpora take minutes.
func (g *Git) Clone(ctx context.Context, url string, opts *CloneOpts) error {
	args := []string{"clone"}
	if opts != nil {
		if opts.Depth > 0 {
			args = append(args, "--depth", fmt.Sprintf("%d", opts.Depth))
		}
		if opts.Branch != "" {
			args = append(args, "--branch", opts.Branch)
		}
	}
	args = append(args, url, ".")
	return g.RunStreamed(ctx, args...)
}

// Fetch fetches a single ref from a remote.
func (g *Git) Fetch(ctx context.Context, remote, ref string) error {
	return g.RunStreamed(ctx, "fetch", remote, ref)
}

// FetchTags fetches all tags from a remote.
func (g *Git) FetchTags(ctx context.Context, remote string) error {
	return g.RunStreamed(ctx, "fetch", "--tags", remote)
}
