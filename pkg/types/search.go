// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the l10n-engine workflow.
package types

// SearchResult represents a single terminology hit returned by a local source.
type SearchResult struct {
	// Source identifies which source found this result (e.g. "catalog", "glossary", "bundle").
	Source string `json:"source" yaml:"source"`

	// Key is the option key, localization key, or glossary headword that matched.
	Key string `json:"key" yaml:"key"`

	// Original is the source-language text (Chinese for the clang-format database).
	Original string `json:"original" yaml:"original"`

	// Translation is the English text, if one exists. Empty when untranslated.
	Translation string `json:"translation,omitempty" yaml:"translation,omitempty"`

	// Note carries extra context, such as a glossary usage note.
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}
