package hygiene

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/jucelint/jucelint/internal/config"
	"github.com/schollz/progressbar/v3"
)

type Fixer struct {
	config *config.Config
}

func NewFixer(cfg *config.Config) *Fixer {
	return &Fixer{config: cfg}
}

func (f *Fixer) Fix(root string) (*FixResult, error) {
	headers, err := findHeaders(root, f.config)
	if err != nil {
		return nil, err
	}

	if len(headers) == 0 {
		return &FixResult{}, nil
	}

	bar := progressbar.Default(int64(len(headers)), "Fixing headers")
	result := &FixResult{}

	for _, h := range headers {
		fixed := false
		if f.config.Includes.Enabled && f.addIncludes(h) {
			result.IncludesAdded++
			fixed = true
		}
		if f.config.Pairing.Enabled && f.config.Fix.Stubs && f.createStub(h) {
			result.StubsCreated++
			fixed = true
		}
		if fixed {
			fmt.Printf("Fixed: %s\n", h.Path)
		}
		_ = bar.Add(1)
	}

	return result, nil
}

func (f *Fixer) addIncludes(h Header) bool {
	content, err := os.ReadFile(h.AbsPath)
	if err != nil {
		return false
	}

	text := string(content)
	var missing []string
	for _, directive := range f.config.Includes.Required {
		if !strings.Contains(text, directive) {
			missing = append(missing, directive)
		}
	}
	if len(missing) == 0 {
		return false
	}

	lines := strings.Split(text, "\n")
	at := includeInsertAt(lines)

	var result []string
	result = append(result, lines[:at]...)
	if at > 0 && strings.TrimSpace(lines[at-1]) != "" {
		result = append(result, "")
	}
	result = append(result, missing...)
	if at < len(lines) && strings.TrimSpace(lines[at]) != "" {
		result = append(result, "")
	}
	result = append(result, lines[at:]...)

	if err := os.WriteFile(h.AbsPath, []byte(strings.Join(result, "\n")), 0644); err != nil {
		return false
	}
	return true
}

func (f *Fixer) createStub(h Header) bool {
	if !strings.HasSuffix(h.Path, f.config.Pairing.HeaderExt) {
		return false
	}
	if f.config.IsExempt(h.Path) {
		return false
	}

	implPath := strings.TrimSuffix(h.AbsPath, f.config.Pairing.HeaderExt) + f.config.Pairing.SourceExt
	if fileExists(implPath) {
		return false
	}

	stub, err := f.config.StubContent(path.Base(h.Path))
	if err != nil {
		return false
	}

	if err := os.WriteFile(implPath, []byte(stub), 0644); err != nil {
		return false
	}
	return true
}
