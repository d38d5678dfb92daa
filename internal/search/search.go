// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search looks a term up across the local translation sources
// and returns unified, deduplicated results.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pdiddy/l10n-engine/pkg/types"
)

// Source searches a single local store. Each store (catalog, glossary,
// bundle) implements this interface.
type Source interface {
	Name() string
	Search(ctx context.Context, term string) ([]types.SearchResult, error)
}

// Output holds the merged results and per-source statistics.
type Output struct {
	Results      []types.SearchResult
	DupsRemoved  int
	SourceErrors []string
}

// Search fans the term out to all sources concurrently. Results are
// merged in source order so output stays stable run to run, and
// deduplicated on source and key with the first occurrence winning.
// A failing source contributes a warning on w, not an error.
func Search(ctx context.Context, term string, sources []Source, limit int, w io.Writer) (Output, error) {
	if strings.TrimSpace(term) == "" {
		return Output{}, fmt.Errorf("search term is empty")
	}
	if len(sources) == 0 {
		return Output{}, fmt.Errorf("no search sources available")
	}

	type sourceResult struct {
		idx     int
		name    string
		results []types.SearchResult
		err     error
	}

	ch := make(chan sourceResult, len(sources))
	var wg sync.WaitGroup

	for i, src := range sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			results, err := src.Search(ctx, term)
			ch <- sourceResult{idx: i, name: src.Name(), results: results, err: err}
		}(i, src)
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	bySource := make([][]types.SearchResult, len(sources))
	var sourceErrors []string
	for sr := range ch {
		if sr.err != nil {
			sourceErrors = append(sourceErrors, fmt.Sprintf("%s: %v", sr.name, sr.err))
			fmt.Fprintf(w, "warning: source %s failed: %v\n", sr.name, sr.err)
			continue
		}
		bySource[sr.idx] = sr.results
	}

	merged, removed := deduplicate(bySource)

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}

	return Output{
		Results:      merged,
		DupsRemoved:  removed,
		SourceErrors: sourceErrors,
	}, nil
}

// deduplicate flattens the per-source result lists in source order,
// dropping repeats of the same source and key.
func deduplicate(bySource [][]types.SearchResult) ([]types.SearchResult, int) {
	seen := make(map[string]bool)
	var merged []types.SearchResult
	removed := 0

	for _, results := range bySource {
		for _, r := range results {
			key := r.Source + "\x00" + r.Key
			if seen[key] {
				removed++
				continue
			}
			seen[key] = true
			merged = append(merged, r)
		}
	}
	return merged, removed
}

// FormatTable writes results as a human-readable table to w.
func FormatTable(out Output, w io.Writer) {
	if len(out.Results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-10s  %-44s  %-24s  %s\n", "Source", "Key", "Original", "Translation")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for _, r := range out.Results {
		fmt.Fprintf(w, "%-10s  %-44s  %-24s  %s\n",
			r.Source, truncate(r.Key, 44), truncate(r.Original, 24), r.Translation)
	}

	fmt.Fprintf(w, "\n%d results", len(out.Results))
	if out.DupsRemoved > 0 {
		fmt.Fprintf(w, " (%d duplicates removed)", out.DupsRemoved)
	}
	fmt.Fprintln(w)
}

// FormatJSON writes results as indented JSON to w with non-ASCII text
// unescaped.
func FormatJSON(out Output, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(out.Results)
}

// truncate shortens s to max runes. CJK text makes byte slicing unsafe.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
