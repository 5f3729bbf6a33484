package core

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/checkdiff/checkdiff/internal/types"
)

// AnalysisService builds the analyzer from source and runs it against
// synchronized project trees through the build tool. The analyzer and the
// build tool are consumed as black boxes; this service only composes their
// command lines.
type AnalysisService struct {
	runner CommandRunner
	git    GitClient
	ui     UICallback
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(runner CommandRunner, git GitClient, ui UICallback) *AnalysisService {
	return &AnalysisService{runner: runner, git: git, ui: ui}
}

// AnalysisOptions parameterizes one analyzer invocation against one project.
type AnalysisOptions struct {
	ProjectDir   string // synchronized project tree
	ConfigPath   string // absolute rule-config XML path
	Excludes     string // comma-joined exclude globs, possibly empty
	Version      string // pinned released analyzer version; empty = version under test
	ExtraOptions string // free-form extra build-tool options
}

// InstallFromSource checks out the requested branch of the analyzer's local
// repository, logs its HEAD identity, and builds-and-installs it into the
// local package cache so subsequent project runs pick it up.
func (a *AnalysisService) InstallFromSource(ctx context.Context, repoPath, branch string) (types.CommitInfo, error) {
	if err := a.git.Checkout(ctx, repoPath, branch); err != nil {
		return types.CommitInfo{}, fmt.Errorf("failed to checkout analyzer branch %s: %w", branch, err)
	}

	info, err := a.git.HeadCommit(ctx, repoPath)
	if err != nil {
		return types.CommitInfo{}, fmt.Errorf("failed to read analyzer commit on %s: %w", branch, err)
	}
	info.Branch = branch
	a.ui.ShowInfo(fmt.Sprintf("building analyzer %s at %.7s (%s)", branch, info.Hash, info.Subject))

	args := []string{
		"-e", "--no-transfer-progress", "--batch-mode",
		"clean", "install",
		"-Dmaven.test.skip=true",
		"-Dcheckstyle.ancestor.skip=true",
		"-Dpmd.skip=true",
		"-Dspotbugs.skip=true",
		"-Djacoco.skip=true",
		"-Dxml.skip=true",
	}
	if err := a.runner.Run(ctx, repoPath, "mvn", args...); err != nil {
		return types.CommitInfo{}, fmt.Errorf("failed to install analyzer from %s: %w", branch, err)
	}

	return info, nil
}

// Run cleans the project's build output and invokes the analyzer's site-style
// report goal, returning the raw result file path.
func (a *AnalysisService) Run(ctx context.Context, opts AnalysisOptions) (string, error) {
	args := []string{
		"-e", "--no-transfer-progress", "--batch-mode",
		"clean", "site",
		"-Dcheckstyle.config.location=" + opts.ConfigPath,
		"-Dcheckstyle.excludes=" + opts.Excludes,
		"-DMAVEN_OPTS=-Xmx3024m",
	}
	if opts.Version != "" {
		args = append(args, "-Dcheckstyle.version="+opts.Version)
	}
	args = append(args, splitExtraOptions(opts.ExtraOptions)...)

	if err := a.runner.Run(ctx, opts.ProjectDir, "mvn", args...); err != nil {
		return "", err
	}

	result := filepath.Join(opts.ProjectDir, "target", RawReportFileName)
	return result, nil
}

// splitExtraOptions tokenizes the free-form extra options string. Each token
// is auto-prefixed with '-' if the caller forgot it, since every build-tool
// option the harness forwards is flag-shaped.
func splitExtraOptions(extra string) []string {
	fields := strings.Fields(extra)
	for i, f := range fields {
		if !strings.HasPrefix(f, "-") {
			fields[i] = "-" + f
		}
	}
	return fields
}
