// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bundle

import (
	"testing"

	"github.com/pdiddy/l10n-engine/pkg/types"
)

func TestGeneratedKeys(t *testing.T) {
	records := []types.Record{
		{Key: "A", Name: "甲", Description: "第一。"},
		{Key: "B", Name: "乙", Description: "第二。"},
	}

	keys := GeneratedKeys(records, "clangFormat")
	if len(keys) != 4 {
		t.Fatalf("got %d keys, want 4", len(keys))
	}
	for _, k := range []string{
		"clangFormat.option.A.name",
		"clangFormat.option.A.description",
		"clangFormat.option.B.name",
		"clangFormat.option.B.description",
	} {
		if !keys[k] {
			t.Errorf("missing generated key %s", k)
		}
	}
}

func TestStaleKeys(t *testing.T) {
	records := []types.Record{{Key: "Current", Name: "甲", Description: "第一。"}}
	generated := GeneratedKeys(records, "ns")

	doc := New()
	doc.Set("ns.option.Current.name", "current")
	doc.Set("ns.option.Removed.name", "stale")
	doc.Set("other.feature.key", "foreign")
	doc.Set("nsx.option.Near.name", "prefix near-miss")
	doc.Set("ns.option.Renamed.description", "stale")
	doc.Set("ns.option.Current.description", "current")

	stale := StaleKeys(doc, generated, "ns")

	// Document order, namespace-scoped only.
	want := []string{"ns.option.Removed.name", "ns.option.Renamed.description"}
	if len(stale) != len(want) {
		t.Fatalf("stale = %v, want %v", stale, want)
	}
	for i := range want {
		if stale[i] != want[i] {
			t.Errorf("stale %d = %s, want %s", i, stale[i], want[i])
		}
	}
}

func TestPrune(t *testing.T) {
	records := []types.Record{{Key: "Current", Name: "甲", Description: "第一。"}}
	generated := GeneratedKeys(records, "ns")

	doc := New()
	doc.Set("ns.option.Current.name", "keep")
	doc.Set("ns.option.Stale.name", "remove")
	doc.Set("other.feature.key", "keep")

	summary := Prune(doc, generated, "ns")

	if len(summary.Removed) != 1 || summary.Removed[0] != "ns.option.Stale.name" {
		t.Errorf("Removed = %v", summary.Removed)
	}
	if len(summary.Kept) != 2 {
		t.Errorf("Kept = %v, want 2 keys", summary.Kept)
	}
	if _, ok := doc.Get("ns.option.Stale.name"); ok {
		t.Error("stale key still present after prune")
	}
	if _, ok := doc.Get("other.feature.key"); !ok {
		t.Error("key outside the namespace was pruned")
	}
}

func TestPruneNothingStale(t *testing.T) {
	records := []types.Record{{Key: "A", Name: "甲", Description: "第一。"}}
	generated := GeneratedKeys(records, "ns")

	doc := New()
	doc.Set("ns.option.A.name", "x")
	doc.Set("ns.option.A.description", "y")

	summary := Prune(doc, generated, "ns")
	if len(summary.Removed) != 0 {
		t.Errorf("Removed = %v, want none", summary.Removed)
	}
	if doc.Len() != 2 {
		t.Errorf("doc has %d keys, want 2", doc.Len())
	}
}
