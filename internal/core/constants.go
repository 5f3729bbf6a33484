package core

import "time"

// Workspace directory names under the per-run root.
const (
	RepositoriesDirName = "repositories"
	ReportsDirName      = "reports"
	DiffDirName         = "diff"
)

// Well-known file names.
const (
	RawReportFileName = "checkstyle-result.xml"
	SummaryFileName   = "index.html"
	ChartFileName     = "diff-counts.html"
)

// Retry policy for network clone operations. Ordinary external-process
// failures are not retried; only clones get this treatment because transient
// network errors are common when synchronizing a large corpus.
const (
	CloneAttempts  = 5
	CloneRetryWait = 15 * time.Second
)

// Verbose controls whether external commands are logged to stderr.
var Verbose = false
