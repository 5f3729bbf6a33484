// Package main implements the checkdiff CLI, a regression diff harness for
// Checkstyle-style static analyzers.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/checkdiff/checkdiff/cmd"
	"github.com/checkdiff/checkdiff/internal/core"
	"github.com/checkdiff/checkdiff/internal/tui"
	"github.com/checkdiff/checkdiff/internal/types"
	"github.com/checkdiff/checkdiff/internal/version"
)

// Version information is managed in internal/version package
// GoReleaser injects version info directly via ldflags

// pipelineFlags holds the parsed CLI flags shared by diff and single.
type pipelineFlags struct {
	analyzerRepo  string
	baseBranch    string
	patchBranch   string
	baseVersion   string
	patchVersion  string
	config        string
	baseConfig    string
	patchConfig   string
	projectsFile  string
	workRoot      string
	extraOptions  string
	diffJar       string
	xrefJar       string
	allowExcludes bool
	shallowClone  bool
	shortPaths    bool
	assumeYes     bool
	verbose       bool
}

// parsePipelineFlags parses the diff/single flag set for the given command.
func parsePipelineFlags(command string, args []string) (*pipelineFlags, error) {
	f := &pipelineFlags{}
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.StringVar(&f.analyzerRepo, "r", "", "local analyzer repository")
	fs.StringVar(&f.baseBranch, "b", "", "base branch")
	fs.StringVar(&f.patchBranch, "p", "", "patch branch")
	fs.StringVar(&f.baseVersion, "bv", "", "published base analyzer version (skips the source build)")
	fs.StringVar(&f.patchVersion, "pv", "", "published patch analyzer version (skips the source build)")
	fs.StringVar(&f.config, "c", "", "rule-config used for both sides")
	fs.StringVar(&f.baseConfig, "bc", "", "base-side rule-config")
	fs.StringVar(&f.patchConfig, "pc", "", "patch-side rule-config")
	fs.StringVar(&f.projectsFile, "l", "", "project list file")
	fs.StringVar(&f.workRoot, "w", ".", "workspace root")
	fs.StringVar(&f.extraOptions, "x", "", "extra build-tool options")
	fs.StringVar(&f.diffJar, "diff-tool-jar", "", "packaged diff-report tool artifact")
	fs.StringVar(&f.xrefJar, "xref-jar", "", "optional config-page renderer artifact")
	fs.BoolVar(&f.allowExcludes, "allow-excludes", false, "honor per-project exclude globs")
	fs.BoolVar(&f.shallowClone, "shallow-clone", false, "shallow-clone projects pinned to branch/tag refs")
	fs.BoolVar(&f.shortPaths, "short-paths", false, "ask the diff tool for short file paths")
	fs.BoolVar(&f.assumeYes, "yes", false, "skip the stale-output confirmation")
	fs.BoolVar(&f.assumeYes, "y", false, "skip the stale-output confirmation (shorthand)")
	fs.BoolVar(&f.verbose, "verbose", false, "show external commands as they run")
	fs.BoolVar(&f.verbose, "v", false, "show external commands as they run (shorthand)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if f.config != "" && (f.baseConfig != "" || f.patchConfig != "") {
		return nil, fmt.Errorf("-c conflicts with -bc/-pc: use one shared config or one per side")
	}
	if command == "diff" && (f.baseConfig == "") != (f.patchConfig == "") {
		return nil, fmt.Errorf("-bc and -pc must be given together")
	}
	if f.config != "" {
		f.baseConfig = f.config
		f.patchConfig = f.config
	}
	return f, nil
}

// pipelineConfig translates parsed flags into the typed pipeline config.
func (f *pipelineFlags) pipelineConfig(mode core.Mode) core.PipelineConfig {
	cfg := core.PipelineConfig{
		Mode:             mode,
		AnalyzerRepoPath: f.analyzerRepo,
		Patch: types.BranchReportConfig{
			Branch:        f.patchBranch,
			Version:       f.patchVersion,
			ConfigPath:    f.patchConfig,
			ExtraOptions:  f.extraOptions,
			AllowExcludes: f.allowExcludes,
			ShallowClone:  f.shallowClone,
		},
		ProjectsFile: f.projectsFile,
		WorkRoot:     f.workRoot,
		DiffJarPath:  f.diffJar,
		XrefJarPath:  f.xrefJar,
		ShortPaths:   f.shortPaths,
		AssumeYes:    f.assumeYes,
	}
	if mode == core.ModeDiff {
		cfg.Base = types.BranchReportConfig{
			Branch:        f.baseBranch,
			Version:       f.baseVersion,
			ConfigPath:    f.baseConfig,
			ExtraOptions:  f.extraOptions,
			AllowExcludes: f.allowExcludes,
			ShallowClone:  f.shallowClone,
		}
	}
	return cfg
}

// buildPipeline wires the pipeline from its collaborators, picking the
// interactive TUI when stdout is a terminal and verbose output is off.
func buildPipeline(cfg core.PipelineConfig, verbose bool) *core.Pipeline {
	var ui core.UICallback
	var progress core.ProgressFactory
	if isatty.IsTerminal(os.Stdout.Fd()) && !verbose {
		ui = tui.NewTUICallback()
		progress = tui.NewBubbleteaProgressTracker
	} else {
		ui = tui.NewPlainCallback(cfg.AssumeYes)
		progress = tui.NewTextProgressTracker
	}

	fs := core.NewOSFileSystem()
	runner := core.NewExecRunner()
	git := core.NewSystemGitClient(verbose)

	return core.NewPipeline(
		cfg,
		core.NewWorkspace(cfg.WorkRoot),
		core.NewProjectStore(cfg.ProjectsFile),
		core.NewRepoSyncService(git, fs, ui),
		core.NewAnalysisService(runner, git, ui),
		core.NewDiffReportService(runner, fs, cfg.DiffJarPath, cfg.ShortPaths),
		core.NewSummaryService(fs, core.SelectConfigRenderer(runner, fs, cfg.XrefJarPath, ui)),
		fs,
		ui,
		progress,
	)
}

// runPipeline is the shared entry point for the diff and single commands.
func runPipeline(command string, mode core.Mode, args []string) {
	f, err := parsePipelineFlags(command, args)
	if err != nil {
		tui.PrintError("Invalid Arguments", err.Error())
		os.Exit(1)
	}
	core.Verbose = f.verbose

	if !core.IsGitInstalled() {
		tui.PrintError("Error", "git not found.")
		os.Exit(1)
	}

	pipeline := buildPipeline(f.pipelineConfig(mode), f.verbose)
	if err := pipeline.Run(context.Background()); err != nil {
		tui.PrintError("Pipeline Failed", err.Error())
		os.Exit(1)
	}
}

func runGenerate(args []string) {
	var inputRoot, outputDir string
	var verbose bool
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.StringVar(&inputRoot, "i", "", "test-input root to scan")
	fs.StringVar(&outputDir, "o", "", "output directory for generated configs")
	fs.BoolVar(&verbose, "verbose", false, "show each generated file")
	fs.BoolVar(&verbose, "v", false, "show each generated file (shorthand)")
	if err := fs.Parse(args); err != nil {
		tui.PrintError("Invalid Arguments", err.Error())
		os.Exit(1)
	}
	core.Verbose = verbose

	if inputRoot == "" || outputDir == "" {
		tui.PrintError("Usage", "checkdiff generate -i <test-inputs-root> -o <output-dir>")
		os.Exit(1)
	}

	var ui core.UICallback
	if isatty.IsTerminal(os.Stdout.Fd()) {
		ui = tui.NewTUICallback()
	} else {
		ui = tui.NewPlainCallback(false)
	}

	svc := core.NewExtractService(core.NewOSFileSystem(), ui)
	count, err := svc.Generate(inputRoot, outputDir)
	if err != nil {
		tui.PrintError("Generation Failed", err.Error())
		os.Exit(1)
	}
	tui.PrintSuccess(fmt.Sprintf("Generated %d config(s) in %s", count, outputDir))
}

func main() {
	if len(os.Args) < 2 {
		tui.PrintHelp()
		os.Exit(0)
	}

	command := os.Args[1]

	// Handle help flags
	if command == "--help" || command == "-h" || command == "help" {
		tui.PrintHelp()
		os.Exit(0)
	}

	// Handle version flag
	if command == "--version" || command == "version" {
		fmt.Printf("checkdiff %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
		os.Exit(0)
	}

	switch command {
	case "diff":
		runPipeline("diff", core.ModeDiff, os.Args[2:])

	case "single":
		runPipeline("single", core.ModeSingle, os.Args[2:])

	case "generate":
		runGenerate(os.Args[2:])

	case "completion":
		if len(os.Args) < 3 {
			tui.PrintError("Usage", "checkdiff completion <bash|zsh|fish>")
			os.Exit(1)
		}
		script, err := cmd.GenerateCompletion(os.Args[2])
		if err != nil {
			tui.PrintError("Error", err.Error())
			os.Exit(1)
		}
		fmt.Print(script)

	default:
		tui.PrintError("Unknown Command", fmt.Sprintf("'%s' is not a checkdiff command.", command))
		tui.PrintHelp()
		os.Exit(1)
	}
}
