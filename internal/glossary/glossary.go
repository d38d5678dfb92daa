// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package glossary loads the hand-maintained terminology file that pins
// preferred English renderings of recurring Chinese vocabulary.
package glossary

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/l10n-engine/pkg/types"
)

// Glossary is a parsed terminology file.
type Glossary struct {
	Terms []types.GlossaryTerm `yaml:"terms"`
}

// Load reads and validates a glossary YAML file. Every term needs a
// headword and a rendering; notes are optional.
func Load(path string) (*Glossary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading glossary: %w", err)
	}

	var g Glossary
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parsing glossary %s: %w", path, err)
	}

	for i, term := range g.Terms {
		if term.Zh == "" || term.En == "" {
			return nil, fmt.Errorf("glossary %s: term %d needs both zh and en", path, i)
		}
	}
	return &g, nil
}

// Match returns the terms whose headword, rendering, or note contains
// term, case-folded.
func (g *Glossary) Match(term string) []types.GlossaryTerm {
	needle := strings.ToLower(term)
	var hits []types.GlossaryTerm
	for _, t := range g.Terms {
		if strings.Contains(strings.ToLower(t.Zh), needle) ||
			strings.Contains(strings.ToLower(t.En), needle) ||
			strings.Contains(strings.ToLower(t.Note), needle) {
			hits = append(hits, t)
		}
	}
	return hits
}
