// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"strings"

	"github.com/pdiddy/l10n-engine/internal/bundle"
	"github.com/pdiddy/l10n-engine/internal/catalog"
	"github.com/pdiddy/l10n-engine/internal/glossary"
	"github.com/pdiddy/l10n-engine/pkg/types"
)

// CatalogSource searches the translation catalog's full-text index.
type CatalogSource struct {
	Store *catalog.Store
}

// Name returns the source identifier shown in results.
func (s *CatalogSource) Name() string { return "catalog" }

// Search matches the term as a prefix against option keys, names, and
// descriptions, returning each hit with its stored translation.
func (s *CatalogSource) Search(ctx context.Context, term string) ([]types.SearchResult, error) {
	rows, err := s.Store.Retrieve(ctx, catalog.QueryOptions{Match: ftsQuery(term)})
	if err != nil {
		return nil, err
	}

	results := make([]types.SearchResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, types.SearchResult{
			Source:      "catalog",
			Key:         row.Key,
			Original:    row.Name,
			Translation: row.TranslatedName,
			Note:        row.Description,
		})
	}
	return results, nil
}

// ftsQuery wraps the term as a quoted FTS5 prefix query, so punctuation
// in the term is matched literally instead of parsed as operators.
func ftsQuery(term string) string {
	return `"` + strings.ReplaceAll(term, `"`, `""`) + `"*`
}

// GlossarySource searches the terminology glossary.
type GlossarySource struct {
	Glossary *glossary.Glossary
}

// Name returns the source identifier shown in results.
func (s *GlossarySource) Name() string { return "glossary" }

// Search substring-matches the term against headwords, renderings, and
// notes.
func (s *GlossarySource) Search(_ context.Context, term string) ([]types.SearchResult, error) {
	results := make([]types.SearchResult, 0)
	for _, t := range s.Glossary.Match(term) {
		results = append(results, types.SearchResult{
			Source:      "glossary",
			Key:         t.Zh,
			Original:    t.Zh,
			Translation: t.En,
			Note:        t.Note,
		})
	}
	return results, nil
}

// BundleSource searches the l10n bundle's keys and translated values.
type BundleSource struct {
	Doc *bundle.Document

	// Namespace, when set, restricts hits to keys under it. The bundle
	// can carry other feature areas' strings.
	Namespace string
}

// Name returns the source identifier shown in results.
func (s *BundleSource) Name() string { return "bundle" }

// Search substring-matches the term against keys and values, case-folded.
func (s *BundleSource) Search(_ context.Context, term string) ([]types.SearchResult, error) {
	needle := strings.ToLower(term)
	var results []types.SearchResult
	for _, key := range s.Doc.Keys() {
		if s.Namespace != "" && !strings.HasPrefix(key, s.Namespace+".") {
			continue
		}
		value, _ := s.Doc.Get(key)
		if !strings.Contains(strings.ToLower(key), needle) &&
			!strings.Contains(strings.ToLower(value), needle) {
			continue
		}
		results = append(results, types.SearchResult{
			Source:      "bundle",
			Key:         key,
			Translation: value,
		})
	}
	return results, nil
}
