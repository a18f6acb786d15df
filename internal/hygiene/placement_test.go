package hygiene

import (
	"testing"
)

func TestIncludeInsertAt(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected int
	}{
		{
			name:     "pragma once",
			lines:    []string{"#pragma once", "", "class A {};"},
			expected: 1,
		},
		{
			name:     "pragma once after comment",
			lines:    []string{"// Voice allocation.", "#pragma once", "class A {};"},
			expected: 2,
		},
		{
			name:     "include guard",
			lines:    []string{"#ifndef APP_H", "#define APP_H", "", "#endif"},
			expected: 2,
		},
		{
			name:     "ifndef without define",
			lines:    []string{"#ifndef APP_H", "class A {};"},
			expected: 0,
		},
		{
			name:     "no marker",
			lines:    []string{"class A {};"},
			expected: 0,
		},
		{
			name:     "blank lines before pragma",
			lines:    []string{"", "", "#pragma once", "class A {};"},
			expected: 3,
		},
		{
			name:     "empty file",
			lines:    []string{""},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := includeInsertAt(tt.lines)
			if at != tt.expected {
				t.Errorf("expected insert at %d, got %d", tt.expected, at)
			}
		})
	}
}

func TestIncludeName(t *testing.T) {
	tests := []struct {
		name      string
		directive string
		expected  string
	}{
		{
			name:      "angle brackets",
			directive: "#include <JuceHeader.h>",
			expected:  "JuceHeader.h",
		},
		{
			name:      "quotes",
			directive: "#include \"AppConfig.h\"",
			expected:  "AppConfig.h",
		},
		{
			name:      "unterminated",
			directive: "#include <JuceHeader.h",
			expected:  "#include <JuceHeader.h",
		},
		{
			name:      "bare name",
			directive: "  JuceHeader.h  ",
			expected:  "JuceHeader.h",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := includeName(tt.directive)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}
