package hygiene

import "testing"

func TestIssueMessage(t *testing.T) {
	tests := []struct {
		name     string
		issue    Issue
		expected string
	}{
		{
			name:     "missing implementation",
			issue:    Issue{File: "src/PluginEditor.h", Kind: KindMissingImplementation},
			expected: "Missing implementation: src/PluginEditor.h",
		},
		{
			name:     "missing include",
			issue:    Issue{File: "src/PluginEditor.h", Kind: KindMissingInclude, Subject: "JuceHeader.h"},
			expected: "Missing JuceHeader.h in: src/PluginEditor.h",
		},
		{
			name:     "unreadable",
			issue:    Issue{File: "src/PluginEditor.h", Kind: KindUnreadable},
			expected: "Cannot read: src/PluginEditor.h",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.issue.Message(); got != tt.expected {
				t.Errorf("Message() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindMissingImplementation, "missing_implementation"},
		{KindMissingInclude, "missing_include"},
		{KindUnreadable, "unreadable"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}
