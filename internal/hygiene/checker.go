// Copyright IBM Corp. 2014, 2025
// SPDX-License-Identifier: MPL-2.0

package hygiene

import (
	"os"
	"strings"

	"github.com/jucelint/jucelint/internal/config"
	"github.com/schollz/progressbar/v3"
)

type Checker struct {
	config *config.Config
}

func NewChecker(cfg *config.Config) *Checker {
	return &Checker{config: cfg}
}

// Check runs every enabled pass over the headers under root. All
// implementation findings come before all include findings, each pass
// reporting in discovery order.
func (c *Checker) Check(root string) ([]Issue, error) {
	headers, err := findHeaders(root, c.config)
	if err != nil {
		return nil, err
	}

	if len(headers) == 0 {
		return nil, nil
	}

	var issues []Issue

	if c.config.Pairing.Enabled {
		bar := progressbar.Default(int64(len(headers)), "Checking implementations")
		for _, h := range headers {
			if issue := c.checkImplementation(h); issue != nil {
				issues = append(issues, *issue)
			}
			_ = bar.Add(1)
		}
	}

	if c.config.Includes.Enabled {
		bar := progressbar.Default(int64(len(headers)), "Checking includes")
		for _, h := range headers {
			issues = append(issues, c.checkIncludes(h)...)
			_ = bar.Add(1)
		}
	}

	return issues, nil
}

func (c *Checker) checkImplementation(h Header) *Issue {
	if !strings.HasSuffix(h.Path, c.config.Pairing.HeaderExt) {
		return nil
	}
	if c.config.IsExempt(h.Path) {
		return nil
	}

	implPath := strings.TrimSuffix(h.AbsPath, c.config.Pairing.HeaderExt) + c.config.Pairing.SourceExt
	if fileExists(implPath) {
		return nil
	}

	return &Issue{File: h.Path, Kind: KindMissingImplementation}
}

func (c *Checker) checkIncludes(h Header) []Issue {
	content, err := os.ReadFile(h.AbsPath)
	if err != nil {
		return []Issue{{File: h.Path, Kind: KindUnreadable}}
	}

	text := string(content)
	var issues []Issue
	for _, directive := range c.config.Includes.Required {
		if !strings.Contains(text, directive) {
			issues = append(issues, Issue{
				File:    h.Path,
				Kind:    KindMissingInclude,
				Subject: includeName(directive),
			})
		}
	}

	return issues
}
