package core

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/checkdiff/checkdiff/internal/types"
)

// maxListFileSize is the maximum size of a project list file (1 MB).
// A corpus of several hundred projects is well under 100 KB, so 1 MB is
// generous while still bounding memory for a malformed input.
const maxListFileSize = 1 << 20

// ProjectStore loads project descriptors from a list file. Two formats are
// supported: a YAML document with a top-level "projects" key, and the legacy
// pipe-delimited line format
//
//	NAME|SCM|URL|[REFERENCE]|[EXCLUDE1,EXCLUDE2,...]
//
// where blank lines and lines starting with '#' are ignored.
type ProjectStore struct {
	path string
}

// NewProjectStore creates a store for the given list file.
func NewProjectStore(path string) *ProjectStore {
	return &ProjectStore{path: path}
}

// Path returns the list file path.
func (s *ProjectStore) Path() string {
	return s.path
}

// Load reads, parses, and validates the project list.
func (s *ProjectStore) Load() ([]types.ProjectDescriptor, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxListFileSize {
		return nil, fmt.Errorf("%s exceeds maximum size (%d bytes > %d byte limit)", s.path, info.Size(), maxListFileSize)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var projects []types.ProjectDescriptor
	if isYAMLList(s.path) {
		var list types.ProjectList
		if err := yaml.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("invalid project list %s: %w", s.path, err)
		}
		projects = list.Projects
	} else {
		projects, err = parseDelimited(string(data))
		if err != nil {
			return nil, fmt.Errorf("invalid project list %s: %w", s.path, err)
		}
	}

	if err := validateProjects(projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// isYAMLList decides the list format from the file extension.
func isYAMLList(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".yml") || strings.HasSuffix(lower, ".yaml")
}

// parseDelimited parses the pipe-delimited line format.
func parseDelimited(content string) ([]types.ProjectDescriptor, error) {
	var projects []types.ProjectDescriptor

	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: expected NAME|SCM|URL|[REFERENCE]|[EXCLUDES], got %d fields", i+1, len(fields))
		}

		p := types.ProjectDescriptor{
			Name: strings.TrimSpace(fields[0]),
			SCM:  types.SCMKind(strings.TrimSpace(fields[1])),
			URL:  strings.TrimSpace(fields[2]),
		}
		if len(fields) > 3 {
			p.Reference = strings.TrimSpace(fields[3])
		}
		if len(fields) > 4 && strings.TrimSpace(fields[4]) != "" {
			for _, ex := range strings.Split(fields[4], ",") {
				if ex = strings.TrimSpace(ex); ex != "" {
					p.Excludes = append(p.Excludes, ex)
				}
			}
		}
		projects = append(projects, p)
	}

	return projects, nil
}

// validateProjects enforces the configuration-error class of checks eagerly,
// before any clone or build work starts.
func validateProjects(projects []types.ProjectDescriptor) error {
	seen := make(map[string]bool, len(projects))
	for _, p := range projects {
		if p.Name == "" {
			return fmt.Errorf("project with empty name (url: %s)", p.URL)
		}
		if seen[p.Name] {
			return fmt.Errorf(ErrDuplicateProjectMsg, p.Name)
		}
		seen[p.Name] = true

		if p.SCM != types.SCMGit && p.SCM != types.SCMLocal {
			return fmt.Errorf(ErrUnknownSCMMsg, p.SCM, p.Name)
		}
		if p.URL == "" {
			return fmt.Errorf("project '%s' has no url", p.Name)
		}
	}
	return nil
}
