package core

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/checkdiff/checkdiff/internal/types"
)

// hashLikeRegex is the "looks like a git SHA" heuristic: 5 to 40 lowercase
// hex digits. A branch or tag name that happens to be all-hex is
// misclassified as a commit hash and skips the fetch-by-name step.
// Tightening this changes which network calls are made for such refs.
var hashLikeRegex = regexp.MustCompile(`^[0-9a-f]{5,40}$`)

// looksLikeCommitHash reports whether ref is plausibly a raw commit SHA.
func looksLikeCommitHash(ref string) bool {
	return hashLikeRegex.MatchString(ref)
}

// RepoSyncService materializes project working copies at their pinned
// references under a destination root.
type RepoSyncService struct {
	git   GitClient
	fs    FileSystem
	ui    UICallback
	sleep func(time.Duration) // between clone attempts; injectable for tests
}

// NewRepoSyncService creates a new RepoSyncService
func NewRepoSyncService(git GitClient, fs FileSystem, ui UICallback) *RepoSyncService {
	return &RepoSyncService{
		git:   git,
		fs:    fs,
		ui:    ui,
		sleep: time.Sleep,
	}
}

// Synchronize ensures a local working copy of the project exists under
// destRoot, pinned to the project's reference, and returns its path.
//
// An existing destination directory is treated as already synchronized and
// returned as-is; there is no staleness check. Delete the repositories
// directory to force a fresh clone.
func (s *RepoSyncService) Synchronize(ctx context.Context, p types.ProjectDescriptor, destRoot string, shallow bool) (string, error) {
	dest := filepath.Join(destRoot, p.Name)

	if s.fs.Exists(dest) {
		s.ui.ShowInfo(fmt.Sprintf("%s: already synchronized, skipping clone", p.Name))
		return dest, nil
	}

	switch p.SCM {
	case types.SCMLocal:
		if err := s.copyLocal(p, dest); err != nil {
			return "", err
		}
	case types.SCMGit:
		if err := s.cloneAndPin(ctx, p, dest, shallow); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf(ErrUnknownSCMMsg, p.SCM, p.Name)
	}

	return dest, nil
}

// copyLocal materializes a local-SCM project by copying the directory tree
// at its URL. No git subcommand is involved.
func (s *RepoSyncService) copyLocal(p types.ProjectDescriptor, dest string) error {
	if !s.fs.Exists(p.URL) {
		return fmt.Errorf("local project '%s': source path %s does not exist", p.Name, p.URL)
	}
	stats, err := s.fs.CopyDir(p.URL, dest)
	if err != nil {
		return fmt.Errorf("failed to copy local project '%s' from %s: %w", p.Name, p.URL, err)
	}
	s.ui.ShowInfo(fmt.Sprintf("%s: copied %d files (%s) from %s",
		p.Name, stats.FileCount, humanize.Bytes(uint64(stats.ByteCount)), p.URL))
	return nil
}

// cloneAndPin clones a git project and pins the working tree to the
// requested reference.
//
// When a shallow clone is requested and the reference is not hash-like, the
// pin happens inside the clone invocation itself (--branch takes branch or
// tag names, never raw commits). Otherwise a full clone runs first, then the
// reference is resolved, fetched if missing (tag-aware), and hard-reset to.
func (s *RepoSyncService) cloneAndPin(ctx context.Context, p types.ProjectDescriptor, dest string, shallow bool) error {
	if err := s.fs.MkdirAll(dest, 0o755); err != nil {
		return err
	}

	if shallow && p.Reference != "" && !looksLikeCommitHash(p.Reference) {
		return s.cloneWithRetry(ctx, p, dest, &types.CloneOptions{Depth: 1, Branch: p.Reference})
	}

	if err := s.cloneWithRetry(ctx, p, dest, nil); err != nil {
		return err
	}

	// Empty reference means "leave at clone default branch".
	if p.Reference == "" {
		return nil
	}

	head, err := s.git.HeadHash(ctx, dest)
	if err != nil {
		return fmt.Errorf("failed to read HEAD of '%s': %w", p.Name, err)
	}

	if !looksLikeCommitHash(p.Reference) {
		resolved, resolveErr := s.git.ResolveRef(ctx, dest, p.Reference)
		if resolveErr != nil || resolved != head {
			if err := s.fetchReference(ctx, dest, p); err != nil {
				return err
			}
		}
	}

	if err := s.git.ResetHard(ctx, dest, p.Reference); err != nil {
		return fmt.Errorf("failed to reset '%s' to %s: %w", p.Name, p.Reference, err)
	}
	return nil
}

// cloneWithRetry clones with the fixed network-retry policy. Clones are the
// only external command the harness retries; everything else fails fast.
func (s *RepoSyncService) cloneWithRetry(ctx context.Context, p types.ProjectDescriptor, dest string, opts *types.CloneOptions) error {
	err := retryFixed(CloneAttempts, CloneRetryWait, s.sleep,
		func(attempt int, err error) {
			s.ui.ShowWarning("Clone failed",
				fmt.Sprintf("%s (attempt %d/%d): %v, retrying in %s",
					p.Name, attempt, CloneAttempts, err, CloneRetryWait))
		},
		func() error {
			return s.git.Clone(ctx, dest, p.URL, opts)
		})
	if err != nil {
		return fmt.Errorf("failed to clone '%s' from %s: %w", p.Name, p.URL, err)
	}
	return nil
}

// fetchReference fetches the missing reference into an already-cloned tree.
// If the reference names an existing tag, all tags are fetched; otherwise it
// is fetched as a branch-like ref.
func (s *RepoSyncService) fetchReference(ctx context.Context, dest string, p types.ProjectDescriptor) error {
	isTag, err := s.git.TagExists(ctx, dest, p.Reference)
	if err != nil {
		return fmt.Errorf("failed to list tags for '%s': %w", p.Name, err)
	}
	if isTag {
		if err := s.git.FetchTags(ctx, dest); err != nil {
			return fmt.Errorf("failed to fetch tags for '%s': %w", p.Name, err)
		}
		return nil
	}
	if err := s.git.Fetch(ctx, dest, p.Reference); err != nil {
		return fmt.Errorf("failed to fetch ref %s for '%s': %w", p.Reference, p.Name, err)
	}
	return nil
}
