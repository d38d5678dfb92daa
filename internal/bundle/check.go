// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bundle

import (
	"github.com/pdiddy/l10n-engine/pkg/types"
)

// CheckEntry is one generated key that still awaits translation.
type CheckEntry struct {
	Key string

	// Missing is true when the key is absent from the bundle, false
	// when it is present with an empty value.
	Missing bool
}

// CheckReport describes how completely the bundle covers the keys the
// database generates.
type CheckReport struct {
	// Pending lists keys awaiting translation in database order, the
	// name key before the description key of each record.
	Pending []CheckEntry

	// Total counts every key the database generates.
	Total int
}

// Complete reports whether every generated key has a translation.
func (r CheckReport) Complete() bool { return len(r.Pending) == 0 }

// Counts splits the pending keys into missing and empty tallies.
func (r CheckReport) Counts() (missing, empty int) {
	for _, e := range r.Pending {
		if e.Missing {
			missing++
		} else {
			empty++
		}
	}
	return missing, empty
}

// Check compares the keys generated by records against doc. A key is
// pending when it is absent from doc or present with an empty value.
func Check(records []types.Record, namespace string, doc *Document) CheckReport {
	var report CheckReport
	for _, rec := range records {
		for _, key := range []string{rec.NameKey(namespace), rec.DescriptionKey(namespace)} {
			report.Total++
			value, ok := doc.Get(key)
			switch {
			case !ok:
				report.Pending = append(report.Pending, CheckEntry{Key: key, Missing: true})
			case value == "":
				report.Pending = append(report.Pending, CheckEntry{Key: key})
			}
		}
	}
	return report
}
