// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bundle

import (
	"testing"

	"github.com/pdiddy/l10n-engine/pkg/types"
)

func TestCheck(t *testing.T) {
	records := []types.Record{
		{Key: "A", Name: "甲", Description: "第一。"},
		{Key: "B", Name: "乙", Description: "第二。"},
	}

	doc := New()
	doc.Set("ns.option.A.name", "Alpha")
	doc.Set("ns.option.A.description", "")
	doc.Set("ns.option.B.description", "Second.")

	report := Check(records, "ns", doc)

	if report.Total != 4 {
		t.Errorf("Total = %d, want 4", report.Total)
	}
	if report.Complete() {
		t.Error("report should not be complete")
	}

	// Pending keys come in database order: A's empty description before
	// B's missing name.
	want := []CheckEntry{
		{Key: "ns.option.A.description", Missing: false},
		{Key: "ns.option.B.name", Missing: true},
	}
	if len(report.Pending) != len(want) {
		t.Fatalf("Pending = %+v, want %+v", report.Pending, want)
	}
	for i := range want {
		if report.Pending[i] != want[i] {
			t.Errorf("pending %d = %+v, want %+v", i, report.Pending[i], want[i])
		}
	}

	missing, empty := report.Counts()
	if missing != 1 || empty != 1 {
		t.Errorf("Counts() = %d, %d, want 1, 1", missing, empty)
	}
}

func TestCheckComplete(t *testing.T) {
	records := []types.Record{{Key: "A", Name: "甲", Description: "第一。"}}

	doc := New()
	doc.Set("ns.option.A.name", "Alpha")
	doc.Set("ns.option.A.description", "First.")

	report := Check(records, "ns", doc)
	if !report.Complete() {
		t.Errorf("report should be complete: %+v", report.Pending)
	}
	if report.Total != 2 {
		t.Errorf("Total = %d, want 2", report.Total)
	}
}

func TestCheckEmptyDatabase(t *testing.T) {
	report := Check(nil, "ns", New())
	if !report.Complete() || report.Total != 0 {
		t.Errorf("empty inputs should be trivially complete: %+v", report)
	}
}

func TestCheckIgnoresForeignKeys(t *testing.T) {
	records := []types.Record{{Key: "A", Name: "甲", Description: "第一。"}}

	doc := New()
	doc.Set("other.feature.key", "irrelevant")
	doc.Set("ns.option.A.name", "Alpha")
	doc.Set("ns.option.A.description", "First.")

	report := Check(records, "ns", doc)
	if !report.Complete() {
		t.Errorf("foreign keys must not affect the check: %+v", report.Pending)
	}
}
