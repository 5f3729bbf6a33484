package core

// UICallback abstracts operator-facing output so services stay testable and
// the same pipeline code drives both the styled interactive terminal and
// plain non-interactive (CI) output.
type UICallback interface {
	ShowError(title, message string)
	ShowSuccess(message string)
	ShowWarning(title, message string)
	ShowInfo(message string)
	AskConfirmation(title, message string) bool
	StyleTitle(title string) string
}

// ProgressTracker reports progress through the per-project pipeline loop.
// The interactive implementation draws a live bar; the non-interactive one
// prints plain lines.
type ProgressTracker interface {
	Increment(message string)
	Complete()
	Fail(err error)
}

// ProgressFactory builds a tracker for a loop of the given length.
type ProgressFactory func(total int, label string) ProgressTracker

