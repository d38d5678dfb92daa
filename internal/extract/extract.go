// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract scans the clang-format options database for entries
// authored in Chinese and renders the translation prompt and the JSON
// template with empty slots for the English translations.
package extract

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"unicode/utf8"

	"github.com/pdiddy/l10n-engine/internal/glossary"
	"github.com/pdiddy/l10n-engine/pkg/types"
)

// optionRe matches one options-database record: an open brace followed
// by key, name, and description fields in that order, each single-quoted.
// A field containing an embedded single quote does not match, and the
// record is silently dropped or truncated at the quote. Double-quoted
// fields never match.
var optionRe = regexp.MustCompile(`\{\s*key:\s*'([^']+)',\s*name:\s*'([^']+)',\s*description:\s*'([^']+)',`)

// Scan returns every record found in content, in encounter order.
// Duplicate keys are kept as separate records; zero matches yields an
// empty slice, not an error.
func Scan(content string) []types.Record {
	matches := optionRe.FindAllStringSubmatch(content, -1)
	records := make([]types.Record, 0, len(matches))
	for _, m := range matches {
		records = append(records, types.Record{Key: m[1], Name: m[2], Description: m[3]})
	}
	return records
}

// ScanFile reads the database file and scans it. The file must exist and
// be valid UTF-8.
func ScanFile(path string) ([]types.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading database %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("database %s is not valid UTF-8", path)
	}
	return Scan(string(data)), nil
}

// Run scans cfg.DatabasePath and writes both reports to w. When
// cfg.GlossaryPath is set the glossary terms are folded into the prompt;
// a configured glossary that cannot be loaded is an error.
func Run(cfg types.ExtractConfig, w io.Writer) error {
	records, err := ScanFile(cfg.DatabasePath)
	if err != nil {
		return err
	}

	rep := Report{Namespace: cfg.Namespace}
	if cfg.GlossaryPath != "" {
		gl, err := glossary.Load(cfg.GlossaryPath)
		if err != nil {
			return err
		}
		rep.Terms = gl.Terms
	}

	rep.Write(w, records)
	return nil
}
