// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bundle

import (
	"fmt"
	"io"
)

// MergeSummary counts what a merge did with each template entry.
type MergeSummary struct {
	Added   int
	Updated int
	Skipped int
}

// Total returns the number of template entries processed.
func (s MergeSummary) Total() int { return s.Added + s.Updated + s.Skipped }

// Merge folds src, a filled-in translation template, into dst. Entries
// are processed in src order: empty values are skipped so an
// untranslated placeholder never blanks an existing translation, new
// keys append in template order, and existing keys are updated in
// place. One progress line per entry goes to w.
func Merge(dst, src *Document, w io.Writer) MergeSummary {
	var summary MergeSummary
	for _, key := range src.Keys() {
		value, _ := src.Get(key)

		switch _, exists := dst.Get(key); {
		case value == "":
			fmt.Fprintf(w, "skipped  %s: empty value\n", key)
			summary.Skipped++
		case exists:
			dst.Set(key, value)
			fmt.Fprintf(w, "updated  %s\n", key)
			summary.Updated++
		default:
			dst.Set(key, value)
			fmt.Fprintf(w, "added    %s\n", key)
			summary.Added++
		}
	}
	return summary
}
