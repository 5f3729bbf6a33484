package core

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
)

// Workspace holds the resolved on-disk layout for one pipeline run. Every
// service receives paths from here instead of assuming shared directory
// names, so two runs with different roots can never trample each other.
type Workspace struct {
	RunID        string
	Root         string
	Repositories string // synchronized project checkouts (kept across runs as a cache)
	Reports      string // per-branch raw analysis reports
	Diff         string // per-project diff pages plus the summary index
}

// NewWorkspace resolves the workspace layout under the given root directory.
func NewWorkspace(root string) *Workspace {
	return &Workspace{
		RunID:        uuid.NewString()[:8],
		Root:         root,
		Repositories: filepath.Join(root, RepositoriesDirName),
		Reports:      filepath.Join(root, ReportsDirName),
		Diff:         filepath.Join(root, DiffDirName),
	}
}

// BranchReportDir returns the report tree root for one branch side.
func (w *Workspace) BranchReportDir(branch string) string {
	return filepath.Join(w.Reports, branch)
}

// ProjectReportFile returns the collected raw report path for a project on
// one branch side.
func (w *Workspace) ProjectReportFile(branch, project string) string {
	return filepath.Join(w.Reports, branch, project, RawReportFileName)
}

// Clean removes report and diff output left over from a previous run so
// stale and fresh results never mix. The repositories directory is kept:
// an existing checkout is treated as already synchronized.
// Prompts for confirmation unless assumeYes is set; declining returns
// ErrCancelled.
func (w *Workspace) Clean(fs FileSystem, ui UICallback, assumeYes bool) error {
	stale := []string{}
	for _, dir := range []string{w.Reports, w.Diff} {
		if fs.Exists(dir) {
			stale = append(stale, dir)
		}
	}
	if len(stale) == 0 {
		return nil
	}

	if !assumeYes {
		ok := ui.AskConfirmation(
			"Delete previous results?",
			fmt.Sprintf("Output from an earlier run exists under %s and will be deleted.", w.Root),
		)
		if !ok {
			return ErrCancelled
		}
	}

	for _, dir := range stale {
		if err := fs.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to clean %s: %w", dir, err)
		}
	}
	return nil
}
