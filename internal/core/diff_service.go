package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// DiffReportService drives the external diff-rendering tool, one invocation
// per project, comparing base and patch raw reports.
type DiffReportService struct {
	runner     CommandRunner
	fs         FileSystem
	JarPath    string // packaged diff-report tool artifact
	ShortPaths bool   // pass --shortFilePaths through to the tool
}

// NewDiffReportService creates a new DiffReportService
func NewDiffReportService(runner CommandRunner, fs FileSystem, jarPath string, shortPaths bool) *DiffReportService {
	return &DiffReportService{
		runner:     runner,
		fs:         fs,
		JarPath:    jarPath,
		ShortPaths: shortPaths,
	}
}

// GenerateAll walks every project directory under the patch report tree and
// generates its diff page under diffRoot. baseReports is empty in single
// mode, in which case only the patch side is passed to the tool.
//
// A project directory present in the patch tree without a patch report file
// is a fatal error, not a skip: a silently incomplete regression comparison
// is worse than no comparison.
func (d *DiffReportService) GenerateAll(ctx context.Context, patchReports, baseReports, diffRoot, baseConfigName, patchConfigName string) error {
	entries, err := os.ReadDir(patchReports)
	if err != nil {
		return fmt.Errorf("cannot read patch report tree: %w", err)
	}

	var projects []string
	for _, e := range entries {
		if e.IsDir() {
			projects = append(projects, e.Name())
		}
	}
	sort.Strings(projects)

	for _, project := range projects {
		patchReport := filepath.Join(patchReports, project, RawReportFileName)
		if !d.fs.Exists(patchReport) {
			return fmt.Errorf(ErrMissingPatchReportMsg+": %w", project, patchReport, os.ErrNotExist)
		}

		baseReport := ""
		if baseReports != "" {
			baseReport = filepath.Join(baseReports, project, RawReportFileName)
			if !d.fs.Exists(baseReport) {
				return fmt.Errorf(ErrMissingBaseReportMsg+": %w", project, baseReport, os.ErrNotExist)
			}
		}

		outputDir := filepath.Join(diffRoot, project)
		if err := d.generateProject(ctx, patchReport, baseReport, outputDir, baseConfigName, patchConfigName); err != nil {
			return fmt.Errorf("diff generation for '%s' failed: %w", project, err)
		}
	}

	return nil
}

// generateProject invokes the diff tool once. The config arguments are file
// names, not full paths; the tool expects them staged alongside its output.
func (d *DiffReportService) generateProject(ctx context.Context, patchReport, baseReport, outputDir, baseConfigName, patchConfigName string) error {
	args := []string{
		"-jar", d.JarPath,
		"--patchReport", patchReport,
		"--output", outputDir,
		"--patchConfig", patchConfigName,
	}
	if baseReport != "" {
		args = append(args, "--baseReport", baseReport, "--baseConfig", baseConfigName)
	}
	if d.ShortPaths {
		args = append(args, "--shortFilePaths")
	}

	return d.runner.Run(ctx, filepath.Dir(d.JarPath), "java", args...)
}
