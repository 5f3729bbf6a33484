package core

import "errors"

// Sentinel errors for common error conditions.
// These can be used with errors.Is() for error type checking.
var (
	// ErrGitNotInstalled indicates the git binary is missing from PATH
	ErrGitNotInstalled = errors.New("git not found on PATH")

	// ErrCancelled indicates the operator declined a confirmation prompt
	ErrCancelled = errors.New("cancelled by operator")
)

// Error message templates for formatted errors.
// Use with fmt.Errorf() to create errors with context.
const (
	// ErrUnknownSCMMsg is the message for an unrecognized scm kind in a project list
	ErrUnknownSCMMsg = "unknown scm kind '%s' for project '%s' (expected 'git' or 'local')"

	// ErrDuplicateProjectMsg is the message for duplicate project names
	ErrDuplicateProjectMsg = "duplicate project name '%s' in project list"

	// ErrMissingPatchReportMsg is the message for a project present in the diff
	// tree without a corresponding patch report
	ErrMissingPatchReportMsg = "patch report for project '%s' not found at %s"

	// ErrMissingBaseReportMsg is the message for a project missing its base report
	ErrMissingBaseReportMsg = "base report for project '%s' not found at %s"

	// ErrRawReportMissingMsg is the message for an analysis run that exited zero
	// but produced no result file
	ErrRawReportMissingMsg = "analysis of '%s' produced no result file at %s"
)
