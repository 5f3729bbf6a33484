// Package types holds the plain data structures shared between the harness
// services: project descriptors, per-branch report configuration, and the
// statistics scraped out of generated diff pages.
package types

// SCMKind identifies how a project's sources are obtained.
type SCMKind string

// Supported SCM kinds. Anything else in a project list is a configuration error.
const (
	SCMGit   SCMKind = "git"
	SCMLocal SCMKind = "local"
)

// ProjectDescriptor identifies one external source tree to analyze.
// Loaded once from the project list file and never mutated afterwards.
type ProjectDescriptor struct {
	Name      string   `yaml:"name"`
	SCM       SCMKind  `yaml:"scm"`
	URL       string   `yaml:"url"`
	Reference string   `yaml:"reference,omitempty"` // branch, tag, or commit SHA; empty = clone default
	Excludes  []string `yaml:"excludes,omitempty"`  // path globs handed to the analyzer
}

// ProjectList is the YAML shape of a project list file.
type ProjectList struct {
	Projects []ProjectDescriptor `yaml:"projects"`
}

// BranchReportConfig configures one side (base or patch) of a pipeline run.
// Constructed from CLI flags at startup and read-only afterwards.
type BranchReportConfig struct {
	Branch        string // analyzer branch to build and run; ignored when Version is set
	Version       string // published analyzer version; empty = build Branch from source
	ConfigPath    string // rule-config XML handed to the analyzer
	ExtraOptions  string // free-form extra build-tool options
	AllowExcludes bool
	ShallowClone  bool
}

// CommitInfo is the commit metadata captured once per branch side right
// after checkout. Used only for report headers.
type CommitInfo struct {
	Branch    string
	Hash      string
	Subject   string
	Timestamp string
}

// ProjectDiffStat holds the counts scraped from one project's diff page.
type ProjectDiffStat struct {
	Project string
	Total   int
	Added   int
	Removed int
}

// HasDiff reports whether the project produced any differences at all.
func (s ProjectDiffStat) HasDiff() bool {
	return s.Total != 0 || s.Added != 0 || s.Removed != 0
}

// CloneOptions configures a repository clone.
type CloneOptions struct {
	Depth  int    // 0 means full history
	Branch string // pin to a branch or tag at clone time
}
