package core

import (
	"testing"

	"github.com/checkdiff/checkdiff/internal/types"
)

func TestExcludesProperty_NoneConfigured(t *testing.T) {
	ui := &MockUICallback{}
	p := types.ProjectDescriptor{Name: "clean"}

	if got := ExcludesProperty(p, true, ui); got != "" {
		t.Errorf("Expected empty property, got %q", got)
	}
	if len(ui.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", ui.Warnings)
	}
}

func TestExcludesProperty_Allowed(t *testing.T) {
	ui := &MockUICallback{}
	p := types.ProjectDescriptor{
		Name:     "spring",
		Excludes: []string{"**/generated/**", "**/test/**"},
	}

	if got := ExcludesProperty(p, true, ui); got != "**/generated/**,**/test/**" {
		t.Errorf("Expected comma-joined globs, got %q", got)
	}
	if len(ui.Warnings) != 0 {
		t.Errorf("Expected no warnings when excludes are allowed, got %v", ui.Warnings)
	}
}

func TestExcludesProperty_DisallowedWarnsAndIgnores(t *testing.T) {
	ui := &MockUICallback{}
	p := types.ProjectDescriptor{
		Name:     "spring",
		Excludes: []string{"**/generated/**"},
	}

	if got := ExcludesProperty(p, false, ui); got != "" {
		t.Errorf("Expected excludes to be ignored, got %q", got)
	}
	if len(ui.Warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d", len(ui.Warnings))
	}
	if ui.Warnings[0][0] != "Excludes ignored" {
		t.Errorf("Unexpected warning title: %s", ui.Warnings[0][0])
	}
}
