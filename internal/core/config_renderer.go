package core

import (
	"context"
	"fmt"
	"html"
	"path/filepath"
	"strings"
)

// ConfigRenderer turns a rule-config file into an HTML page under destDir
// and returns the generated file name. Two implementations exist: a rich
// syntax-highlighting renderer backed by an external text-transform artifact,
// and a verbatim fallback used when that artifact is absent. The choice is
// made once at startup, not per call.
type ConfigRenderer interface {
	Render(ctx context.Context, configPath, destDir string) (string, error)
}

// SelectConfigRenderer picks the rich renderer when its backing artifact
// exists, the verbatim renderer otherwise.
func SelectConfigRenderer(runner CommandRunner, fs FileSystem, xrefJarPath string, ui UICallback) ConfigRenderer {
	if xrefJarPath != "" && fs.Exists(xrefJarPath) {
		return &XrefConfigRenderer{runner: runner, jarPath: xrefJarPath}
	}
	if xrefJarPath != "" {
		ui.ShowWarning("Plain config pages",
			fmt.Sprintf("text-transform artifact %s not found; config files will be copied verbatim", xrefJarPath))
	}
	return &VerbatimConfigRenderer{fs: fs}
}

// XrefConfigRenderer runs the external text-transform utility to produce a
// syntax-highlighted HTML copy of the config file.
type XrefConfigRenderer struct {
	runner  CommandRunner
	jarPath string
}

// Render invokes the utility with source and destination paths.
func (r *XrefConfigRenderer) Render(ctx context.Context, configPath, destDir string) (string, error) {
	name := renderedConfigName(configPath)
	dest := filepath.Join(destDir, name)
	if err := r.runner.Run(ctx, destDir, "java", "-jar", r.jarPath, configPath, dest); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", configPath, err)
	}
	return name, nil
}

// VerbatimConfigRenderer wraps the config file content in a minimal
// escaped <pre> page. Safe fallback with no external dependency.
type VerbatimConfigRenderer struct {
	fs FileSystem
}

// Render copies the config content into an escaped preformatted HTML page.
func (r *VerbatimConfigRenderer) Render(ctx context.Context, configPath, destDir string) (string, error) {
	data, err := r.fs.ReadFile(configPath)
	if err != nil {
		return "", fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	name := renderedConfigName(configPath)
	page := "<!DOCTYPE html>\n<html><head><title>" + html.EscapeString(filepath.Base(configPath)) +
		"</title></head>\n<body><pre>\n" + html.EscapeString(string(data)) + "</pre></body></html>\n"

	dest := filepath.Join(destDir, name)
	if err := r.fs.WriteFile(dest, []byte(page), 0o644); err != nil {
		return "", err
	}
	return name, nil
}

// renderedConfigName maps a config path to its HTML page name.
func renderedConfigName(configPath string) string {
	base := filepath.Base(configPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
}
