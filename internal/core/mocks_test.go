package core

import (
	"context"
	"os"
	"time"

	"github.com/checkdiff/checkdiff/internal/types"
)

// ============================================================================
// MockGitClient
// ============================================================================

// MockGitClient implements GitClient interface for testing
type MockGitClient struct {
	CloneFunc      func(ctx context.Context, dir, url string, opts *types.CloneOptions) error
	FetchFunc      func(ctx context.Context, dir, ref string) error
	FetchTagsFunc  func(ctx context.Context, dir string) error
	CheckoutFunc   func(ctx context.Context, dir, ref string) error
	ResetHardFunc  func(ctx context.Context, dir, ref string) error
	HeadHashFunc   func(ctx context.Context, dir string) (string, error)
	ResolveRefFunc func(ctx context.Context, dir, ref string) (string, error)
	TagExistsFunc  func(ctx context.Context, dir, name string) (bool, error)
	HeadCommitFunc func(ctx context.Context, dir string) (types.CommitInfo, error)

	// Call tracking
	CloneCalls      [][]interface{}
	FetchCalls      [][]string
	FetchTagsCalls  []string
	CheckoutCalls   [][]string
	ResetHardCalls  [][]string
	HeadHashCalls   []string
	ResolveRefCalls [][]string
	TagExistsCalls  [][]string
	HeadCommitCalls []string
}

// Clone implements GitClient
func (m *MockGitClient) Clone(ctx context.Context, dir, url string, opts *types.CloneOptions) error {
	m.CloneCalls = append(m.CloneCalls, []interface{}{dir, url, opts})
	if m.CloneFunc != nil {
		return m.CloneFunc(ctx, dir, url, opts)
	}
	return nil
}

// Fetch implements GitClient
func (m *MockGitClient) Fetch(ctx context.Context, dir, ref string) error {
	m.FetchCalls = append(m.FetchCalls, []string{dir, ref})
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, dir, ref)
	}
	return nil
}

// FetchTags implements GitClient
func (m *MockGitClient) FetchTags(ctx context.Context, dir string) error {
	m.FetchTagsCalls = append(m.FetchTagsCalls, dir)
	if m.FetchTagsFunc != nil {
		return m.FetchTagsFunc(ctx, dir)
	}
	return nil
}

// Checkout implements GitClient
func (m *MockGitClient) Checkout(ctx context.Context, dir, ref string) error {
	m.CheckoutCalls = append(m.CheckoutCalls, []string{dir, ref})
	if m.CheckoutFunc != nil {
		return m.CheckoutFunc(ctx, dir, ref)
	}
	return nil
}

// ResetHard implements GitClient
func (m *MockGitClient) ResetHard(ctx context.Context, dir, ref string) error {
	m.ResetHardCalls = append(m.ResetHardCalls, []string{dir, ref})
	if m.ResetHardFunc != nil {
		return m.ResetHardFunc(ctx, dir, ref)
	}
	return nil
}

// HeadHash implements GitClient
func (m *MockGitClient) HeadHash(ctx context.Context, dir string) (string, error) {
	m.HeadHashCalls = append(m.HeadHashCalls, dir)
	if m.HeadHashFunc != nil {
		return m.HeadHashFunc(ctx, dir)
	}
	return "abc123def4567890abc123def4567890abc123de", nil
}

// ResolveRef implements GitClient
func (m *MockGitClient) ResolveRef(ctx context.Context, dir, ref string) (string, error) {
	m.ResolveRefCalls = append(m.ResolveRefCalls, []string{dir, ref})
	if m.ResolveRefFunc != nil {
		return m.ResolveRefFunc(ctx, dir, ref)
	}
	return "abc123def4567890abc123def4567890abc123de", nil
}

// TagExists implements GitClient
func (m *MockGitClient) TagExists(ctx context.Context, dir, name string) (bool, error) {
	m.TagExistsCalls = append(m.TagExistsCalls, []string{dir, name})
	if m.TagExistsFunc != nil {
		return m.TagExistsFunc(ctx, dir, name)
	}
	return false, nil
}

// HeadCommit implements GitClient
func (m *MockGitClient) HeadCommit(ctx context.Context, dir string) (types.CommitInfo, error) {
	m.HeadCommitCalls = append(m.HeadCommitCalls, dir)
	if m.HeadCommitFunc != nil {
		return m.HeadCommitFunc(ctx, dir)
	}
	return types.CommitInfo{
		Hash:      "abc123def4567890abc123def4567890abc123de",
		Subject:   "test commit",
		Timestamp: "2026-01-01T00:00:00Z",
	}, nil
}

// GitCallCount returns the total number of git operations recorded.
func (m *MockGitClient) GitCallCount() int {
	return len(m.CloneCalls) + len(m.FetchCalls) + len(m.FetchTagsCalls) +
		len(m.CheckoutCalls) + len(m.ResetHardCalls) + len(m.HeadHashCalls) +
		len(m.ResolveRefCalls) + len(m.TagExistsCalls) + len(m.HeadCommitCalls)
}

// ============================================================================
// MockFileSystem
// ============================================================================

// MockFileSystem implements FileSystem interface for testing
type MockFileSystem struct {
	CopyFileFunc  func(src, dst string) (CopyStats, error)
	CopyDirFunc   func(src, dst string) (CopyStats, error)
	MkdirAllFunc  func(path string, perm os.FileMode) error
	StatFunc      func(path string) (os.FileInfo, error)
	ExistsFunc    func(path string) bool
	ReadFileFunc  func(path string) ([]byte, error)
	WriteFileFunc func(path string, data []byte, perm os.FileMode) error
	RemoveAllFunc func(path string) error

	// Call tracking
	CopyFileCalls  [][]string
	CopyDirCalls   [][]string
	MkdirAllCalls  []string
	StatCalls      []string
	ExistsCalls    []string
	ReadFileCalls  []string
	WriteFileCalls []string
	RemoveAllCalls []string

	// Written captures WriteFile payloads by path when WriteFileFunc is nil
	Written map[string][]byte
}

// CopyFile implements FileSystem
func (m *MockFileSystem) CopyFile(src, dst string) (CopyStats, error) {
	m.CopyFileCalls = append(m.CopyFileCalls, []string{src, dst})
	if m.CopyFileFunc != nil {
		return m.CopyFileFunc(src, dst)
	}
	return CopyStats{FileCount: 1, ByteCount: 100}, nil
}

// CopyDir implements FileSystem
func (m *MockFileSystem) CopyDir(src, dst string) (CopyStats, error) {
	m.CopyDirCalls = append(m.CopyDirCalls, []string{src, dst})
	if m.CopyDirFunc != nil {
		return m.CopyDirFunc(src, dst)
	}
	return CopyStats{FileCount: 3, ByteCount: 300}, nil
}

// MkdirAll implements FileSystem
func (m *MockFileSystem) MkdirAll(path string, perm os.FileMode) error {
	m.MkdirAllCalls = append(m.MkdirAllCalls, path)
	if m.MkdirAllFunc != nil {
		return m.MkdirAllFunc(path, perm)
	}
	return nil
}

// Stat implements FileSystem
func (m *MockFileSystem) Stat(path string) (os.FileInfo, error) {
	m.StatCalls = append(m.StatCalls, path)
	if m.StatFunc != nil {
		return m.StatFunc(path)
	}
	return nil, os.ErrNotExist
}

// Exists implements FileSystem
func (m *MockFileSystem) Exists(path string) bool {
	m.ExistsCalls = append(m.ExistsCalls, path)
	if m.ExistsFunc != nil {
		return m.ExistsFunc(path)
	}
	return false
}

// ReadFile implements FileSystem
func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	m.ReadFileCalls = append(m.ReadFileCalls, path)
	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(path)
	}
	return nil, os.ErrNotExist
}

// WriteFile implements FileSystem
func (m *MockFileSystem) WriteFile(path string, data []byte, perm os.FileMode) error {
	m.WriteFileCalls = append(m.WriteFileCalls, path)
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(path, data, perm)
	}
	if m.Written == nil {
		m.Written = make(map[string][]byte)
	}
	m.Written[path] = append([]byte(nil), data...)
	return nil
}

// RemoveAll implements FileSystem
func (m *MockFileSystem) RemoveAll(path string) error {
	m.RemoveAllCalls = append(m.RemoveAllCalls, path)
	if m.RemoveAllFunc != nil {
		return m.RemoveAllFunc(path)
	}
	return nil
}

// ============================================================================
// MockCommandRunner
// ============================================================================

// MockCommandRunner implements CommandRunner interface for testing
type MockCommandRunner struct {
	RunFunc func(ctx context.Context, dir, name string, args ...string) error

	// Call tracking: each entry is dir, name, args...
	RunCalls [][]string
}

// Run implements CommandRunner
func (m *MockCommandRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	call := append([]string{dir, name}, args...)
	m.RunCalls = append(m.RunCalls, call)
	if m.RunFunc != nil {
		return m.RunFunc(ctx, dir, name, args...)
	}
	return nil
}

// ============================================================================
// MockUICallback
// ============================================================================

// MockUICallback implements UICallback interface for testing
type MockUICallback struct {
	AskConfirmationFunc func(title, message string) bool

	Errors        [][]string
	Successes     []string
	Warnings      [][]string
	Infos         []string
	Confirmations [][]string
}

// ShowError implements UICallback
func (m *MockUICallback) ShowError(title, message string) {
	m.Errors = append(m.Errors, []string{title, message})
}

// ShowSuccess implements UICallback
func (m *MockUICallback) ShowSuccess(message string) {
	m.Successes = append(m.Successes, message)
}

// ShowWarning implements UICallback
func (m *MockUICallback) ShowWarning(title, message string) {
	m.Warnings = append(m.Warnings, []string{title, message})
}

// ShowInfo implements UICallback
func (m *MockUICallback) ShowInfo(message string) {
	m.Infos = append(m.Infos, message)
}

// AskConfirmation implements UICallback
func (m *MockUICallback) AskConfirmation(title, message string) bool {
	m.Confirmations = append(m.Confirmations, []string{title, message})
	if m.AskConfirmationFunc != nil {
		return m.AskConfirmationFunc(title, message)
	}
	return true
}

// StyleTitle implements UICallback
func (m *MockUICallback) StyleTitle(title string) string {
	return title
}

// ============================================================================
// Test helpers
// ============================================================================

// noopTracker is a ProgressTracker that records calls and does nothing.
type noopTracker struct {
	Increments []string
	Completed  bool
	Failed     error
}

func (t *noopTracker) Increment(message string) { t.Increments = append(t.Increments, message) }
func (t *noopTracker) Complete()                { t.Completed = true }
func (t *noopTracker) Fail(err error)           { t.Failed = err }

// noopProgressFactory returns the shared tracker regardless of loop size.
func noopProgressFactory(tracker *noopTracker) ProgressFactory {
	return func(total int, label string) ProgressTracker {
		return tracker
	}
}

// noSleep is a sleep function that records durations without sleeping.
type noSleep struct {
	Slept []time.Duration
}

func (s *noSleep) Sleep(d time.Duration) {
	s.Slept = append(s.Slept, d)
}
