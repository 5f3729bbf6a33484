package core

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CopyStats tracks file copy statistics
type CopyStats struct {
	FileCount int
	ByteCount int64
}

// Add adds another CopyStats to this one
func (s *CopyStats) Add(other CopyStats) {
	s.FileCount += other.FileCount
	s.ByteCount += other.ByteCount
}

// FileSystem abstracts file system operations for testing
type FileSystem interface {
	CopyFile(src, dst string) (CopyStats, error)
	CopyDir(src, dst string) (CopyStats, error)
	MkdirAll(path string, perm os.FileMode) error
	Stat(path string) (os.FileInfo, error)
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	RemoveAll(path string) error
}

// OSFileSystem implements FileSystem using standard os package
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// CopyFile copies a single file from src to dst
func (fs *OSFileSystem) CopyFile(src, dst string) (CopyStats, error) {
	source, err := os.Open(src)
	if err != nil {
		return CopyStats{}, err
	}
	defer func() { _ = source.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return CopyStats{}, err
	}

	dest, err := os.Create(dst)
	if err != nil {
		return CopyStats{}, err
	}
	defer func() { _ = dest.Close() }()

	bytes, err := io.Copy(dest, source)
	if err != nil {
		return CopyStats{}, err
	}

	return CopyStats{FileCount: 1, ByteCount: bytes}, nil
}

// CopyDir recursively copies a directory from src to dst, skipping .git trees.
func (fs *OSFileSystem) CopyDir(src, dst string) (CopyStats, error) {
	var stats CopyStats

	err := filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, _ := filepath.Rel(src, path)
		if relPath == ".git" || strings.HasPrefix(relPath, ".git"+string(filepath.Separator)) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		destPath := filepath.Join(dst, relPath)

		if info.IsDir() {
			return os.MkdirAll(destPath, info.Mode())
		}

		fileStats, err := fs.CopyFile(path, destPath)
		if err != nil {
			return err
		}
		stats.Add(fileStats)

		return nil
	})

	return stats, err
}

// MkdirAll creates a directory path
func (fs *OSFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Stat returns file info for a path
func (fs *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Exists reports whether a path exists
func (fs *OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads an entire file
func (fs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes an entire file
func (fs *OSFileSystem) WriteFile(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}

// RemoveAll removes a path and any children
func (fs *OSFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
