package core

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/checkdiff/checkdiff/internal/types"
)

// ============================================================================
// InstallFromSource Tests
// ============================================================================

func TestInstallFromSource_CheckoutBuildAndCapture(t *testing.T) {
	git := &MockGitClient{}
	runner := &MockCommandRunner{}
	ui := &MockUICallback{}

	git.HeadCommitFunc = func(ctx context.Context, dir string) (types.CommitInfo, error) {
		return types.CommitInfo{
			Hash:      "cafe1234cafe1234cafe1234cafe1234cafe1234",
			Subject:   "Fix JavadocMethod false positive",
			Timestamp: "2026-08-01T10:00:00Z",
		}, nil
	}

	svc := NewAnalysisService(runner, git, ui)
	info, err := svc.InstallFromSource(context.Background(), "/src/analyzer", "my-fix")
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}

	if len(git.CheckoutCalls) != 1 || git.CheckoutCalls[0][1] != "my-fix" {
		t.Errorf("Expected checkout of my-fix, got %v", git.CheckoutCalls)
	}
	if info.Branch != "my-fix" {
		t.Errorf("Expected branch recorded on the commit info, got %s", info.Branch)
	}
	if info.Hash != "cafe1234cafe1234cafe1234cafe1234cafe1234" {
		t.Errorf("Unexpected hash: %s", info.Hash)
	}

	if len(runner.RunCalls) != 1 {
		t.Fatalf("Expected 1 build invocation, got %d", len(runner.RunCalls))
	}
	call := runner.RunCalls[0]
	if call[0] != "/src/analyzer" || call[1] != "mvn" {
		t.Errorf("Expected mvn in the analyzer repo, got %v", call[:2])
	}
	joined := strings.Join(call, " ")
	if !strings.Contains(joined, "clean install") {
		t.Errorf("Expected a clean install, got: %s", joined)
	}
	if !strings.Contains(joined, "-Dmaven.test.skip=true") {
		t.Errorf("Expected the test skip flag, got: %s", joined)
	}
}

func TestInstallFromSource_CheckoutFailure(t *testing.T) {
	git := &MockGitClient{
		CheckoutFunc: func(ctx context.Context, dir, ref string) error {
			return errors.New("pathspec did not match")
		},
	}
	runner := &MockCommandRunner{}

	svc := NewAnalysisService(runner, git, &MockUICallback{})
	_, err := svc.InstallFromSource(context.Background(), "/src/analyzer", "no-such-branch")
	if err == nil {
		t.Fatal("Expected an error for a failed checkout")
	}
	if len(runner.RunCalls) != 0 {
		t.Errorf("Expected no build after a failed checkout, got %d", len(runner.RunCalls))
	}
}

// ============================================================================
// Run Tests
// ============================================================================

func TestRun_ComposesAnalyzerInvocation(t *testing.T) {
	runner := &MockCommandRunner{}
	svc := NewAnalysisService(runner, &MockGitClient{}, &MockUICallback{})

	result, err := svc.Run(context.Background(), AnalysisOptions{
		ProjectDir: "/work/repositories/guava",
		ConfigPath: "/configs/my-config.xml",
		Excludes:   "**/generated/**,**/test/**",
	})
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}

	expected := filepath.Join("/work/repositories/guava", "target", RawReportFileName)
	if result != expected {
		t.Errorf("Expected result path %s, got %s", expected, result)
	}

	call := runner.RunCalls[0]
	if call[0] != "/work/repositories/guava" || call[1] != "mvn" {
		t.Errorf("Expected mvn in the project dir, got %v", call[:2])
	}
	joined := strings.Join(call, " ")
	if !strings.Contains(joined, "-Dcheckstyle.config.location=/configs/my-config.xml") {
		t.Errorf("Expected the config location property, got: %s", joined)
	}
	if !strings.Contains(joined, "-Dcheckstyle.excludes=**/generated/**,**/test/**") {
		t.Errorf("Expected the excludes property, got: %s", joined)
	}
	if strings.Contains(joined, "-Dcheckstyle.version=") {
		t.Errorf("Did not expect a version pin, got: %s", joined)
	}
}

func TestRun_VersionPinAndExtraOptions(t *testing.T) {
	runner := &MockCommandRunner{}
	svc := NewAnalysisService(runner, &MockGitClient{}, &MockUICallback{})

	_, err := svc.Run(context.Background(), AnalysisOptions{
		ProjectDir:   "/work/repositories/guava",
		ConfigPath:   "/configs/my-config.xml",
		Version:      "10.12.0",
		ExtraOptions: "-Dskip.sources Prelease",
	})
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}

	joined := strings.Join(runner.RunCalls[0], " ")
	if !strings.Contains(joined, "-Dcheckstyle.version=10.12.0") {
		t.Errorf("Expected the version pin, got: %s", joined)
	}
	if !strings.Contains(joined, "-Dskip.sources") {
		t.Errorf("Expected the pass-through extra option, got: %s", joined)
	}
	// Tokens without a leading dash are auto-prefixed.
	if !strings.Contains(joined, " -Prelease") {
		t.Errorf("Expected the auto-prefixed extra option, got: %s", joined)
	}
}

func TestRun_BuildFailurePropagates(t *testing.T) {
	runner := &MockCommandRunner{
		RunFunc: func(ctx context.Context, dir, name string, args ...string) error {
			return errors.New("BUILD FAILURE")
		},
	}
	svc := NewAnalysisService(runner, &MockGitClient{}, &MockUICallback{})

	if _, err := svc.Run(context.Background(), AnalysisOptions{ProjectDir: "/p", ConfigPath: "/c.xml"}); err == nil {
		t.Fatal("Expected the build failure to propagate")
	}
}

// ============================================================================
// splitExtraOptions Tests
// ============================================================================

func TestSplitExtraOptions(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"-Dskip.sources", []string{"-Dskip.sources"}},
		{"Dskip.sources Prelease", []string{"-Dskip.sources", "-Prelease"}},
		{"  -X   -e  ", []string{"-X", "-e"}},
	}

	for _, tt := range tests {
		got := splitExtraOptions(tt.input)
		if len(got) == 0 && len(tt.expected) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("splitExtraOptions(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}
