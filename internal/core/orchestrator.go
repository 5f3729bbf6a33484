package core

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/checkdiff/checkdiff/internal/types"
)

// Mode selects between comparing two analyzer versions and running one.
type Mode string

// Pipeline modes.
const (
	ModeDiff   Mode = "diff"
	ModeSingle Mode = "single"
)

// PipelineConfig is the full, typed configuration for one pipeline run.
// Built from CLI flags at startup, validated eagerly, read-only afterwards.
type PipelineConfig struct {
	Mode             Mode
	AnalyzerRepoPath string // local checkout of the analyzer under test
	// Base is the zero value in single mode.
	Base         types.BranchReportConfig
	Patch        types.BranchReportConfig
	ProjectsFile string
	WorkRoot     string
	DiffJarPath  string // packaged diff-report tool
	XrefJarPath  string // optional text-transform utility for config pages
	ShortPaths   bool
	AssumeYes    bool
}

// Validate runs the eager configuration checks: everything here fails before
// a single clone or build starts.
func (c *PipelineConfig) Validate(fs FileSystem) error {
	switch c.Mode {
	case ModeDiff, ModeSingle:
	default:
		return fmt.Errorf("invalid mode '%s' (expected 'diff' or 'single')", c.Mode)
	}

	if c.ProjectsFile == "" {
		return fmt.Errorf("no project list file given")
	}
	if !fs.Exists(c.ProjectsFile) {
		return fmt.Errorf("project list file %s not found", c.ProjectsFile)
	}

	if c.Patch.Version == "" || c.Mode == ModeDiff && c.Base.Version == "" {
		if c.AnalyzerRepoPath == "" {
			return fmt.Errorf("no analyzer repository path given")
		}
		if !fs.Exists(c.AnalyzerRepoPath) {
			return fmt.Errorf("analyzer repository %s not found", c.AnalyzerRepoPath)
		}
	}

	if c.Patch.ConfigPath == "" || !fs.Exists(c.Patch.ConfigPath) {
		return fmt.Errorf("patch rule-config %s not found", c.Patch.ConfigPath)
	}
	if c.Mode == ModeDiff {
		if c.Base.ConfigPath == "" || !fs.Exists(c.Base.ConfigPath) {
			return fmt.Errorf("base rule-config %s not found", c.Base.ConfigPath)
		}
		if c.DiffJarPath == "" || !fs.Exists(c.DiffJarPath) {
			return fmt.Errorf("diff-report tool %s not found", c.DiffJarPath)
		}
	}

	return nil
}

// Pipeline drives the full run: build analyzer, iterate projects per branch
// side, then diff and summarize. Strictly sequential: every stage mutates
// the shared workspace, and the patch side needs to know whether a base
// report tree exists.
type Pipeline struct {
	cfg      PipelineConfig
	ws       *Workspace
	store    *ProjectStore
	sync     *RepoSyncService
	analysis *AnalysisService
	diff     *DiffReportService
	summary  *SummaryService
	fs       FileSystem
	ui       UICallback
	progress ProgressFactory
}

// NewPipeline wires a Pipeline from its collaborators.
func NewPipeline(
	cfg PipelineConfig,
	ws *Workspace,
	store *ProjectStore,
	syncSvc *RepoSyncService,
	analysis *AnalysisService,
	diff *DiffReportService,
	summary *SummaryService,
	fs FileSystem,
	ui UICallback,
	progress ProgressFactory,
) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		ws:       ws,
		store:    store,
		sync:     syncSvc,
		analysis: analysis,
		diff:     diff,
		summary:  summary,
		fs:       fs,
		ui:       ui,
		progress: progress,
	}
}

// Run executes the whole pipeline. Any project failure aborts the run: the
// harness exists to produce complete regression comparisons, and a partial
// one is worse than none.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()

	if err := p.cfg.Validate(p.fs); err != nil {
		return err
	}

	projects, err := p.store.Load()
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		return fmt.Errorf("project list %s is empty", p.cfg.ProjectsFile)
	}

	if err := p.ws.Clean(p.fs, p.ui, p.cfg.AssumeYes); err != nil {
		return err
	}

	p.ui.ShowInfo(fmt.Sprintf("run %s: %d project(s), mode %s", p.ws.RunID, len(projects), p.cfg.Mode))

	var baseInfo *types.CommitInfo
	if p.cfg.Mode == ModeDiff {
		info, err := p.runSide(ctx, p.cfg.Base, projects)
		if err != nil {
			return err
		}
		baseInfo = &info
	}

	patchInfo, err := p.runSide(ctx, p.cfg.Patch, projects)
	if err != nil {
		return err
	}

	if p.cfg.Mode == ModeSingle {
		p.ui.ShowSuccess(fmt.Sprintf("patch reports written to %s (%s)",
			p.ws.BranchReportDir(p.branchLabel(p.cfg.Patch)), humanize.RelTime(start, time.Now(), "", "")))
		return nil
	}

	baseReports := p.ws.BranchReportDir(p.branchLabel(p.cfg.Base))
	patchReports := p.ws.BranchReportDir(p.branchLabel(p.cfg.Patch))
	if err := p.diff.GenerateAll(ctx, patchReports, baseReports, p.ws.Diff,
		filepath.Base(p.cfg.Base.ConfigPath), filepath.Base(p.cfg.Patch.ConfigPath)); err != nil {
		return err
	}

	stats, err := p.summary.CollectStats(p.ws.Diff)
	if err != nil {
		return err
	}
	chartFile, err := WriteDiffChart(p.ws.Diff, stats)
	if err != nil {
		return err
	}

	out, err := p.summary.Render(ctx, p.ws.Diff, p.ws.RunID, baseInfo, patchInfo,
		[]string{p.cfg.Base.ConfigPath, p.cfg.Patch.ConfigPath},
		p.cfg.Patch.AllowExcludes, chartFile)
	if err != nil {
		return err
	}

	p.ui.ShowSuccess(fmt.Sprintf("summary written to %s (%s)",
		out, humanize.RelTime(start, time.Now(), "", "")))
	return nil
}

// runSide executes one branch side over every project: build analyzer,
// then synchronize, analyze, post-process, and collect per project.
func (p *Pipeline) runSide(ctx context.Context, side types.BranchReportConfig, projects []types.ProjectDescriptor) (types.CommitInfo, error) {
	label := p.branchLabel(side)

	var info types.CommitInfo
	if side.Version != "" {
		// Published release: nothing to build, just record the identity.
		info = types.CommitInfo{Branch: side.Version}
	} else {
		var err error
		info, err = p.analysis.InstallFromSource(ctx, p.cfg.AnalyzerRepoPath, side.Branch)
		if err != nil {
			return types.CommitInfo{}, err
		}
	}

	configPath, err := filepath.Abs(side.ConfigPath)
	if err != nil {
		return types.CommitInfo{}, err
	}

	tracker := p.progress(len(projects), "analyzing on "+label)
	for _, proj := range projects {
		tracker.Increment(proj.Name)

		if err := p.runProject(ctx, side, label, configPath, proj); err != nil {
			tracker.Fail(err)
			return types.CommitInfo{}, err
		}
	}
	tracker.Complete()

	return info, nil
}

// runProject handles one project on one branch side.
func (p *Pipeline) runProject(ctx context.Context, side types.BranchReportConfig, label, configPath string, proj types.ProjectDescriptor) error {
	projectDir, err := p.sync.Synchronize(ctx, proj, p.ws.Repositories, side.ShallowClone)
	if err != nil {
		return err
	}

	raw, err := p.analysis.Run(ctx, AnalysisOptions{
		ProjectDir:   projectDir,
		ConfigPath:   configPath,
		Excludes:     ExcludesProperty(proj, side.AllowExcludes, p.ui),
		Version:      side.Version,
		ExtraOptions: side.ExtraOptions,
	})
	if err != nil {
		return err
	}
	if !p.fs.Exists(raw) {
		return fmt.Errorf(ErrRawReportMissingMsg, proj.Name, raw)
	}

	if err := NormalizePaths(raw, projectDir, p.sourcePath(proj)); err != nil {
		return err
	}

	collected := p.ws.ProjectReportFile(label, proj.Name)
	if _, err := p.fs.CopyFile(raw, collected); err != nil {
		return fmt.Errorf("failed to collect report for '%s': %w", proj.Name, err)
	}
	return nil
}

// sourcePath is the stable path a project's report entries are rewritten to:
// the original source directory for local projects, a short
// repository-relative path for cloned ones.
func (p *Pipeline) sourcePath(proj types.ProjectDescriptor) string {
	if proj.SCM == types.SCMLocal {
		return proj.URL
	}
	return filepath.Join(RepositoriesDirName, proj.Name)
}

// branchLabel names the report directory for one side.
func (p *Pipeline) branchLabel(side types.BranchReportConfig) string {
	if side.Version != "" {
		return side.Version
	}
	return side.Branch
}
