package cmd

import (
	"strings"
	"testing"
)

func TestGenerateBashCompletion(t *testing.T) {
	script := GenerateBashCompletion()

	for _, command := range []string{"diff", "single", "generate", "completion", "version", "help"} {
		if !strings.Contains(script, command) {
			t.Errorf("bash completion missing command %q", command)
		}
	}
	if !strings.Contains(script, "--diff-tool-jar") {
		t.Error("bash completion missing the diff flag options")
	}
	if !strings.Contains(script, "complete -F _checkdiff_completions checkdiff") {
		t.Error("bash completion missing the complete registration")
	}
}

func TestGenerateZshCompletion(t *testing.T) {
	script := GenerateZshCompletion()

	if !strings.HasPrefix(script, "#compdef checkdiff") {
		t.Error("zsh completion missing the compdef header")
	}
	if !strings.Contains(script, "'diff:") {
		t.Error("zsh completion missing the diff command description")
	}
}

func TestGenerateFishCompletion(t *testing.T) {
	script := GenerateFishCompletion()

	if !strings.Contains(script, "complete -c checkdiff") {
		t.Error("fish completion missing the complete invocation")
	}
	if !strings.Contains(script, "-a 'single'") {
		t.Error("fish completion missing the single command")
	}
}

func TestGenerateCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish"} {
		script, err := GenerateCompletion(shell)
		if err != nil {
			t.Errorf("Expected %s completion to generate, got error: %v", shell, err)
		}
		if script == "" {
			t.Errorf("Expected non-empty %s completion", shell)
		}
	}

	if _, err := GenerateCompletion("powershell"); err == nil {
		t.Error("Expected an error for an unsupported shell")
	}
}
