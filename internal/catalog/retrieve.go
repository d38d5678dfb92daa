// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// QueryOptions holds parameters for catalog queries.
type QueryOptions struct {
	// Key filters to a single option by exact key.
	Key string

	// Match is an FTS5 query over key, name, and description.
	Match string

	// Untranslated keeps only options still missing a stored value for
	// the name or the description.
	Untranslated bool

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Key == "" && q.Match == "" && !q.Untranslated
}

// QueryResult is one option joined with its stored translations.
type QueryResult struct {
	Key                   string `json:"key" yaml:"key"`
	Name                  string `json:"name" yaml:"name"`
	Description           string `json:"description" yaml:"description"`
	SourcePath            string `json:"source_path,omitempty" yaml:"source_path,omitempty"`
	TranslatedName        string `json:"translated_name,omitempty" yaml:"translated_name,omitempty"`
	TranslatedDescription string `json:"translated_description,omitempty" yaml:"translated_description,omitempty"`
}

// Retrieve queries the catalog with optional full-text search and
// filters. Full-text queries are ranked by relevance; everything else is
// ordered by option key.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Match != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT o.key, o.name, o.description, o.source_path, tn.value, td.value
			FROM options_fts
			JOIN options o ON o.rowid = options_fts.rowid
			LEFT JOIN translations tn ON tn.option_key = o.key AND tn.field = 'name'
			LEFT JOIN translations td ON td.option_key = o.key AND td.field = 'description'
			WHERE options_fts MATCH ?`)
		args = append(args, opts.Match)
	} else {
		qb.WriteString(
			`SELECT o.key, o.name, o.description, o.source_path, tn.value, td.value
			FROM options o
			LEFT JOIN translations tn ON tn.option_key = o.key AND tn.field = 'name'
			LEFT JOIN translations td ON td.option_key = o.key AND td.field = 'description'
			WHERE 1=1`)
	}

	if opts.Key != "" {
		qb.WriteString(` AND o.key = ?`)
		args = append(args, opts.Key)
	}

	if opts.Untranslated {
		qb.WriteString(` AND (tn.value IS NULL OR tn.value = '' OR td.value IS NULL OR td.value = '')`)
	}

	if useFTS {
		qb.WriteString(` ORDER BY options_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY o.key`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var (
			qr         QueryResult
			sourcePath sql.NullString
			tn         sql.NullString
			td         sql.NullString
		)

		if err := rows.Scan(&qr.Key, &qr.Name, &qr.Description, &sourcePath, &tn, &td); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		qr.SourcePath = sourcePath.String
		qr.TranslatedName = tn.String
		qr.TranslatedDescription = td.String

		results = append(results, qr)
	}

	return results, rows.Err()
}
