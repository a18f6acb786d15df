// Copyright IBM Corp. 2014, 2025
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"bytes"
	"text/template"

	"github.com/bmatcuk/doublestar/v4"
)

type Config struct {
	Files    Files    `yaml:"files"`
	Pairing  Pairing  `yaml:"pairing"`
	Includes Includes `yaml:"includes"`
	Fix      Fix      `yaml:"fix"`
}

type Files struct {
	Pattern        string   `yaml:"pattern" mapstructure:"pattern"`
	IgnorePatterns []string `yaml:"ignore_patterns" mapstructure:"ignore_patterns"`
}

type Pairing struct {
	Enabled   bool     `yaml:"enabled" mapstructure:"enabled"`
	HeaderExt string   `yaml:"header_ext" mapstructure:"header_ext"`
	SourceExt string   `yaml:"source_ext" mapstructure:"source_ext"`
	Exempt    []string `yaml:"exempt" mapstructure:"exempt"`
}

type Includes struct {
	Enabled  bool     `yaml:"enabled" mapstructure:"enabled"`
	Required []string `yaml:"required" mapstructure:"required"`
}

type Fix struct {
	Stubs        bool   `yaml:"stubs" mapstructure:"stubs"`
	StubTemplate string `yaml:"stub_template" mapstructure:"stub_template"`
}

// Default returns the configuration used when no config file is present.
// It reproduces the check behavior for a stock JUCE project layout.
func Default() *Config {
	return &Config{
		Files: Files{
			Pattern: "src/**/*.h",
		},
		Pairing: Pairing{
			Enabled:   true,
			HeaderExt: ".h",
			SourceExt: ".cpp",
		},
		Includes: Includes{
			Enabled:  true,
			Required: []string{"#include <JuceHeader.h>"},
		},
		Fix: Fix{
			StubTemplate: "#include \"{{.Header}}\"\n",
		},
	}
}

// ShouldCheck reports whether a discovered header takes part in any check.
// Paths are root-relative in slash form, as produced by the header glob.
func (c *Config) ShouldCheck(path string) bool {
	for _, pattern := range c.Files.IgnorePatterns {
		if doublestar.MatchUnvalidated(pattern, path) {
			return false
		}
	}
	return true
}

// IsExempt reports whether a header is declared header-only on purpose.
// Exempt headers skip the pairing check but still need required includes.
func (c *Config) IsExempt(path string) bool {
	for _, pattern := range c.Pairing.Exempt {
		if doublestar.MatchUnvalidated(pattern, path) {
			return true
		}
	}
	return false
}

// StubContent renders the implementation stub for a header file name.
func (c *Config) StubContent(header string) (string, error) {
	tmpl, err := template.New("stub").Parse(c.Fix.StubTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct{ Header string }{Header: header})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
