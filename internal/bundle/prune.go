// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bundle

import (
	"strings"

	"github.com/pdiddy/l10n-engine/pkg/types"
)

// PruneSummary lists what a prune removed and what remains.
type PruneSummary struct {
	Removed []string
	Kept    []string
}

// GeneratedKeys returns the set of localization keys records produce
// under namespace.
func GeneratedKeys(records []types.Record, namespace string) map[string]bool {
	keys := make(map[string]bool, 2*len(records))
	for _, rec := range records {
		keys[rec.NameKey(namespace)] = true
		keys[rec.DescriptionKey(namespace)] = true
	}
	return keys
}

// StaleKeys returns the bundle keys inside namespace that no current
// record generates, in document order. Keys outside the namespace are
// never candidates: the bundle may carry other feature areas' strings.
func StaleKeys(doc *Document, generated map[string]bool, namespace string) []string {
	prefix := namespace + "."
	var stale []string
	for _, key := range doc.Keys() {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if !generated[key] {
			stale = append(stale, key)
		}
	}
	return stale
}

// Prune deletes the stale keys from doc and reports what was removed
// and what remains.
func Prune(doc *Document, generated map[string]bool, namespace string) PruneSummary {
	summary := PruneSummary{Removed: StaleKeys(doc, generated, namespace)}
	for _, key := range summary.Removed {
		doc.Delete(key)
	}
	summary.Kept = doc.Keys()
	return summary
}
