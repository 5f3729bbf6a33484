// Package tui provides terminal output for the checkdiff CLI: styled print
// helpers, interactive and non-interactive UI callbacks, and progress
// tracking over the per-project pipeline loop.
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	styleErr     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
)

// PrintError prints a styled error title followed by the message.
func PrintError(title, msg string) { fmt.Println(styleErr.Render("✖ " + title)); fmt.Println(msg) }

// PrintSuccess prints a styled success message.
func PrintSuccess(msg string) { fmt.Println(styleSuccess.Render("✔ " + msg)) }

// PrintWarning prints a styled warning title followed by the message.
func PrintWarning(title, msg string) { fmt.Println(styleWarn.Render("! " + title)); fmt.Println(msg) }

// StyleTitle renders text in the title style.
func StyleTitle(text string) string { return styleTitle.Render(text) }

// PrintHelp prints the top-level usage text.
func PrintHelp() {
	fmt.Println(styleTitle.Render("checkdiff"))
	fmt.Println("Regression diff harness for Checkstyle-style analyzers")
	fmt.Println("\nCommands:")
	fmt.Println("  diff [options]      Run base and patch analyzer versions over the corpus and diff the results")
	fmt.Println("    -r <path>         Local analyzer repository (built from source)")
	fmt.Println("    -b <branch>       Base branch")
	fmt.Println("    -p <branch>       Patch branch")
	fmt.Println("    -bv <version>     Published base analyzer version (skips the source build)")
	fmt.Println("    -pv <version>     Published patch analyzer version (skips the source build)")
	fmt.Println("    -c <file>         Rule-config used for both sides")
	fmt.Println("    -bc <file>        Base-side rule-config (paired with -pc)")
	fmt.Println("    -pc <file>        Patch-side rule-config (paired with -bc)")
	fmt.Println("    -l <file>         Project list (YAML or pipe-delimited)")
	fmt.Println("    -w <dir>          Workspace root (default: current directory)")
	fmt.Println("    -x <options>      Extra build-tool options")
	fmt.Println("    --diff-tool-jar <path>")
	fmt.Println("                      Packaged diff-report tool artifact")
	fmt.Println("    --xref-jar <path> Optional config-page renderer artifact")
	fmt.Println("    --allow-excludes  Honor per-project exclude globs")
	fmt.Println("    --shallow-clone   Shallow-clone projects pinned to branch/tag refs")
	fmt.Println("    --short-paths     Ask the diff tool for short file paths")
	fmt.Println("    --yes, -y         Skip the stale-output confirmation")
	fmt.Println("    --verbose, -v     Show external commands as they run")
	fmt.Println("  single [options]    Run only the patch side; no diff, no summary")
	fmt.Println("  generate [options]  Extract inline example configs from test inputs")
	fmt.Println("    -i <dir>          Test-input root to scan")
	fmt.Println("    -o <dir>          Output directory for generated configs")
	fmt.Println("  completion <shell>  Generate shell completion script (bash/zsh/fish)")
	fmt.Println("  version             Print version information")
	fmt.Println("\nExamples:")
	fmt.Println("  checkdiff diff -r ~/src/checkstyle -b master -p my-fix -c config.xml -l projects.yml --diff-tool-jar patch-diff-report-tool.jar")
	fmt.Println("  checkdiff single -r ~/src/checkstyle -p my-fix -pc config.xml -l projects.properties")
	fmt.Println("  checkdiff generate -i src/xdocs-examples -o build/configs")
}
