package core

import (
	"fmt"
	"strings"

	"github.com/checkdiff/checkdiff/internal/types"
)

// ExcludesProperty joins a project's exclude globs into the comma-separated
// pattern the build tool expects. Excludes are honored only when globally
// allowed; otherwise the pattern is empty and a loud warning tells the
// operator the project's excludes were ignored, because silently narrowing
// the analyzed file set would skew a regression comparison.
func ExcludesProperty(p types.ProjectDescriptor, allowExcludes bool, ui UICallback) string {
	if len(p.Excludes) == 0 {
		return ""
	}
	if !allowExcludes {
		ui.ShowWarning("Excludes ignored",
			fmt.Sprintf("project '%s' configures %d exclude pattern(s) but excludes are disabled; run with --allow-excludes to honor them", p.Name, len(p.Excludes)))
		return ""
	}
	return strings.Join(p.Excludes, ",")
}
