// Copyright IBM Corp. 2014, 2025
// SPDX-License-Identifier: MPL-2.0

// Package hygiene checks JUCE project source trees for headers that are
// missing an implementation file or a required include directive.
package hygiene

// Kind identifies the class of a detected problem.
type Kind int

const (
	// KindMissingImplementation marks a header without its source file.
	KindMissingImplementation Kind = iota
	// KindMissingInclude marks a header lacking a required directive.
	KindMissingInclude
	// KindUnreadable marks a header whose content could not be read.
	KindUnreadable
)

// String returns the machine-readable name of a Kind.
func (k Kind) String() string {
	switch k {
	case KindMissingImplementation:
		return "missing_implementation"
	case KindMissingInclude:
		return "missing_include"
	case KindUnreadable:
		return "unreadable"
	default:
		return "unknown"
	}
}

// Header is a discovered header file. Path is relative to the checked root
// in slash form and appears in messages; AbsPath is used for file access.
type Header struct {
	Path    string
	AbsPath string
}

// Issue is a single finding for one header. Subject carries the display
// name of the missing include for KindMissingInclude.
type Issue struct {
	File    string
	Kind    Kind
	Subject string
}

// Message renders the issue as the single report line shown to users.
func (i Issue) Message() string {
	switch i.Kind {
	case KindMissingImplementation:
		return "Missing implementation: " + i.File
	case KindMissingInclude:
		return "Missing " + i.Subject + " in: " + i.File
	case KindUnreadable:
		return "Cannot read: " + i.File
	default:
		return i.File
	}
}

type FixResult struct {
	IncludesAdded int
	StubsCreated  int
}
