package core

import (
	"bytes"
	"fmt"
	"os"
)

// NormalizePaths rewrites every occurrence of the transient build-tree path
// in a raw result file with the path the project was actually sourced from,
// so diff links survive across machines and across runs that use different
// workspace roots.
//
// Pure in-place text substitution. The result file is analyzer output and can
// embed the path in attributes, messages, and stack traces alike, so XML
// parsing would both complicate and narrow the rewrite.
func NormalizePaths(resultFile, buildTreePath, sourcePath string) error {
	if buildTreePath == "" || buildTreePath == sourcePath {
		return nil
	}

	info, err := os.Stat(resultFile)
	if err != nil {
		return fmt.Errorf("cannot post-process %s: %w", resultFile, err)
	}

	data, err := os.ReadFile(resultFile)
	if err != nil {
		return err
	}

	rewritten := bytes.ReplaceAll(data, []byte(buildTreePath), []byte(sourcePath))
	if bytes.Equal(rewritten, data) {
		return nil
	}

	return os.WriteFile(resultFile, rewritten, info.Mode().Perm())
}
