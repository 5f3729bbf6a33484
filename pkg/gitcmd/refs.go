package gitcmd

import "context"

// HEAD returns the full SHA of the current HEAD commit.
func (g *Git) HEAD(ctx context.Context) (string, error) {
	return g.Run(ctx, "rev-parse", "HEAD")
}

// ResolveRef resolves a ref name to its full SHA.
// Returns ErrRefNotFound if the ref does not exist locally.
func (g *Git) ResolveRef(ctx context.Context, ref string) (string, error) {
	out, err := g.Run(ctx, "rev-parse", "--verify", ref+"^{commit}")
	if err != nil {
		return "", ErrRefNotFound
	}
	return out, nil
}

// Checkout checks out a ref (branch, tag, or commit hash).
func (g *Git) Checkout(ctx context.Context, ref string) error {
	return g.RunSilent(ctx, "checkout", ref)
}

// ResetHard resets the working tree to a ref, discarding local changes.
func (g *Git) ResetHard(ctx context.Context, ref string) error {
	return g.RunSilent(ctx, "reset", "--hard", ref)
}

// TagExists reports whether a tag with the given name exists locally.
func (g *Git) TagExists(ctx context.Context, name string) (bool, error) {
	out, err := g.Run(ctx, "tag", "--list", name)
	if err != nil {
		return false, err
	}
	return out != "", nil
}
