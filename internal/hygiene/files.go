// Copyright IBM Corp. 2014, 2025
// SPDX-License-Identifier: MPL-2.0

package hygiene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jucelint/jucelint/internal/config"
)

// findHeaders enumerates header files under root matching the configured
// pattern, in lexical order. Paths are root-relative and slash-separated.
// A root without any matching directory yields no headers, not an error.
func findHeaders(root string, cfg *config.Config) ([]Header, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	matches, err := doublestar.Glob(os.DirFS(root), cfg.Files.Pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", cfg.Files.Pattern, err)
	}

	// Filter files to process
	headers := make([]Header, 0, len(matches))
	for _, m := range matches {
		if !cfg.ShouldCheck(m) {
			continue
		}
		headers = append(headers, Header{
			Path:    m,
			AbsPath: filepath.Join(root, filepath.FromSlash(m)),
		})
	}

	return headers, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// includeName extracts the display name from an include directive, e.g.
// "JuceHeader.h" out of `#include <JuceHeader.h>`.
func includeName(directive string) string {
	if open := strings.IndexAny(directive, "<\""); open != -1 {
		rest := directive[open+1:]
		if end := strings.IndexAny(rest, ">\""); end != -1 {
			return rest[:end]
		}
	}
	return strings.TrimSpace(directive)
}

// includeInsertAt picks the line index where new include directives belong:
// after `#pragma once`, after an opening include guard, otherwise the top.
func includeInsertAt(lines []string) int {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		if trimmed == "#pragma once" {
			return i + 1
		}
		if strings.HasPrefix(trimmed, "#ifndef ") && i+1 < len(lines) &&
			strings.HasPrefix(strings.TrimSpace(lines[i+1]), "#define ") {
			return i + 2
		}
		return 0
	}
	return 0
}
