package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
)

// TUICallback implements core.UICallback for interactive terminal use with
// styled output.
//
//nolint:revive // Name TUICallback is intentional and descriptive
type TUICallback struct{}

// NewTUICallback creates a new interactive terminal UI callback.
func NewTUICallback() *TUICallback {
	return &TUICallback{}
}

// ShowError displays an error message with styled output.
func (t *TUICallback) ShowError(title, message string) {
	PrintError(title, message)
}

// ShowSuccess displays a success message with styled output.
func (t *TUICallback) ShowSuccess(message string) {
	PrintSuccess(message)
}

// ShowWarning displays a warning message with styled output.
func (t *TUICallback) ShowWarning(title, message string) {
	PrintWarning(title, message)
}

// ShowInfo displays a plain informational message.
func (t *TUICallback) ShowInfo(message string) {
	fmt.Println(message)
}

// AskConfirmation prompts the user for yes/no confirmation.
func (t *TUICallback) AskConfirmation(title, message string) bool {
	var confirm bool
	err := huh.NewConfirm().
		Title(title).
		Description(message).
		Value(&confirm).
		Affirmative("Yes").
		Negative("No").
		Run()
	if err != nil {
		return false
	}
	return confirm
}

// StyleTitle returns a styled title string for terminal output.
func (t *TUICallback) StyleTitle(title string) string {
	return StyleTitle(title)
}

// PlainCallback implements core.UICallback for non-interactive (CI) use.
// Errors and warnings go to stderr; confirmations are answered by the
// assume-yes flag instead of a prompt.
type PlainCallback struct {
	AssumeYes bool
}

// NewPlainCallback creates a new non-interactive callback.
func NewPlainCallback(assumeYes bool) *PlainCallback {
	return &PlainCallback{AssumeYes: assumeYes}
}

// ShowError displays an error message on stderr.
func (p *PlainCallback) ShowError(title, message string) {
	fmt.Fprintf(os.Stderr, "Error: %s - %s\n", title, message)
}

// ShowSuccess displays a success message.
func (p *PlainCallback) ShowSuccess(message string) {
	fmt.Println(message)
}

// ShowWarning displays a warning message on stderr.
func (p *PlainCallback) ShowWarning(title, message string) {
	fmt.Fprintf(os.Stderr, "Warning: %s - %s\n", title, message)
}

// ShowInfo displays a plain informational message.
func (p *PlainCallback) ShowInfo(message string) {
	fmt.Println(message)
}

// AskConfirmation answers from the assume-yes flag; there is no terminal to
// prompt on.
func (p *PlainCallback) AskConfirmation(_, _ string) bool {
	return p.AssumeYes
}

// StyleTitle returns the title unstyled.
func (p *PlainCallback) StyleTitle(title string) string {
	return title
}
