// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// GlossaryTerm is a single terminology entry pinning a preferred translation.
type GlossaryTerm struct {
	// Zh is the source-language headword (e.g. "缩进").
	Zh string `json:"zh" yaml:"zh"`

	// En is the preferred English rendering (e.g. "indentation").
	En string `json:"en" yaml:"en"`

	// Note is optional usage guidance shown alongside the term.
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}
