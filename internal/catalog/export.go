// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 100000

// Export writes the full catalog to w ordered by option key, as JSON or
// YAML. JSON keeps non-ASCII characters unescaped so the Chinese source
// text stays readable in the snapshot.
func (s *Store) Export(ctx context.Context, w io.Writer, format string) error {
	results, err := s.Retrieve(ctx, QueryOptions{MaxResults: exportLimit})
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}
	if results == nil {
		results = []QueryResult{}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		data, err := yaml.Marshal(results)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}
