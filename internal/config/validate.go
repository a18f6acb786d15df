// Copyright IBM Corp. 2014, 2025
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/bmatcuk/doublestar/v4"
)

// Validate checks the configuration and returns the first problem found.
// Patterns validated here may be matched later without re-validation.
func (c *Config) Validate() error {
	if err := c.Files.validate(); err != nil {
		return fmt.Errorf("files: %w", err)
	}
	if err := c.Pairing.validate(); err != nil {
		return fmt.Errorf("pairing: %w", err)
	}
	if err := c.Includes.validate(); err != nil {
		return fmt.Errorf("includes: %w", err)
	}
	if err := c.Fix.validate(); err != nil {
		return fmt.Errorf("fix: %w", err)
	}
	return nil
}

func (f *Files) validate() error {
	if strings.TrimSpace(f.Pattern) == "" {
		return fmt.Errorf("pattern must not be empty")
	}
	if !doublestar.ValidatePattern(f.Pattern) {
		return fmt.Errorf("invalid pattern %q", f.Pattern)
	}
	for _, pattern := range f.IgnorePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid ignore pattern %q", pattern)
		}
	}
	return nil
}

func (p *Pairing) validate() error {
	if !p.Enabled {
		return nil
	}
	if !strings.HasPrefix(p.HeaderExt, ".") {
		return fmt.Errorf("header_ext must start with a dot, got %q", p.HeaderExt)
	}
	if !strings.HasPrefix(p.SourceExt, ".") {
		return fmt.Errorf("source_ext must start with a dot, got %q", p.SourceExt)
	}
	if p.HeaderExt == p.SourceExt {
		return fmt.Errorf("header_ext and source_ext must differ, both are %q", p.HeaderExt)
	}
	for _, pattern := range p.Exempt {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exempt pattern %q", pattern)
		}
	}
	return nil
}

func (i *Includes) validate() error {
	if !i.Enabled {
		return nil
	}
	for _, directive := range i.Required {
		if strings.TrimSpace(directive) == "" {
			return fmt.Errorf("required directives must not be blank")
		}
	}
	return nil
}

func (f *Fix) validate() error {
	if _, err := template.New("stub").Parse(f.StubTemplate); err != nil {
		return fmt.Errorf("stub_template: %w", err)
	}
	return nil
}
