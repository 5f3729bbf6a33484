package core

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"
)

// inlineConfigRegex matches the inline example configurations embedded in
// test-input files as /*xml ... */ comment fences.
var inlineConfigRegex = regexp.MustCompile(`(?s)/\*xml\s*(.*?)\*/`)

// ExtractService pulls inline example configurations out of a tree of
// test-input files and serializes them into standalone rule-config files
// plus companion project lists pointing each config at the example's own
// sources.
type ExtractService struct {
	fs FileSystem
	ui UICallback
}

// NewExtractService creates a new ExtractService
func NewExtractService(filesystem FileSystem, ui UICallback) *ExtractService {
	return &ExtractService{fs: filesystem, ui: ui}
}

// Generate walks inputRoot, extracts every inline configuration, and writes
// the generated artifacts under outputDir. Returns the number of configs
// written. A file with a malformed inline configuration is a fatal error,
// not a skip: silently dropping an example would shrink the regression
// corpus unnoticed.
func (e *ExtractService) Generate(inputRoot, outputDir string) (int, error) {
	if !e.fs.Exists(inputRoot) {
		return 0, fmt.Errorf("input root %s not found", inputRoot)
	}
	if err := e.fs.MkdirAll(outputDir, 0o755); err != nil {
		return 0, err
	}

	written := 0
	err := filepath.WalkDir(inputRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := e.fs.ReadFile(path)
		if err != nil {
			return err
		}
		blocks := inlineConfigRegex.FindAllSubmatch(data, -1)
		if len(blocks) == 0 {
			return nil
		}

		n, err := e.extractFile(path, blocks, outputDir)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		written += n
		return nil
	})
	if err != nil {
		return written, err
	}

	e.ui.ShowSuccess(fmt.Sprintf("generated %d config(s) under %s", written, outputDir))
	return written, nil
}

// extractFile serializes every inline configuration found in one input file.
// Identifiers are index-based within the file: the first example gets id
// "example1", the second "example2", and so on, derived onto the target
// module, merged with whatever properties the example already declares.
func (e *ExtractService) extractFile(inputPath string, blocks [][][]byte, outputDir string) (int, error) {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	for i, block := range blocks {
		root, err := ParseConfig(block[1])
		if err != nil {
			return i, err
		}

		target := TargetModule(root)
		if target == nil {
			return i, fmt.Errorf("example %d contains only scaffold modules", i+1)
		}
		target.SetProperty("id", fmt.Sprintf("example%d", i+1))

		serialized, err := MarshalConfig(root)
		if err != nil {
			return i, err
		}

		configName := fmt.Sprintf("%s-config-%d.xml", base, i+1)
		if err := e.fs.WriteFile(filepath.Join(outputDir, configName), serialized, 0o644); err != nil {
			return i, err
		}

		if err := e.writeProjectList(inputPath, base, i+1, outputDir); err != nil {
			return i, err
		}
	}

	return len(blocks), nil
}

// writeProjectList emits the companion project list for one extracted
// config: a single local project pointing back at the example's own source
// directory, in the pipe-delimited list format the pipeline consumes.
func (e *ExtractService) writeProjectList(inputPath, base string, index int, outputDir string) error {
	sourceDir, err := filepath.Abs(filepath.Dir(inputPath))
	if err != nil {
		return err
	}

	listName := fmt.Sprintf("%s-projects-%d.properties", base, index)
	content := fmt.Sprintf("# generated from %s\n%s|local|%s||\n", filepath.Base(inputPath), base, sourceDir)
	return e.fs.WriteFile(filepath.Join(outputDir, listName), []byte(content), 0o644)
}
