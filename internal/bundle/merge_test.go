// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bundle

import (
	"io"
	"strings"
	"testing"
)

func TestMerge(t *testing.T) {
	dst := New()
	dst.Set("ns.option.A.name", "Old A")
	dst.Set("ns.option.B.name", "Keep B")

	src := New()
	src.Set("ns.option.A.name", "New A")
	src.Set("ns.option.C.name", "Added C")
	src.Set("ns.option.D.name", "")

	var progress strings.Builder
	summary := Merge(dst, src, &progress)

	if summary.Added != 1 || summary.Updated != 1 || summary.Skipped != 1 {
		t.Errorf("summary = %+v, want 1 added, 1 updated, 1 skipped", summary)
	}
	if summary.Total() != 3 {
		t.Errorf("Total() = %d, want 3", summary.Total())
	}

	if v, _ := dst.Get("ns.option.A.name"); v != "New A" {
		t.Errorf("A = %q, want updated value", v)
	}
	if v, _ := dst.Get("ns.option.B.name"); v != "Keep B" {
		t.Errorf("B = %q, want untouched value", v)
	}
	if _, ok := dst.Get("ns.option.D.name"); ok {
		t.Error("empty entry must not be added")
	}

	out := progress.String()
	for _, line := range []string{
		"updated  ns.option.A.name\n",
		"added    ns.option.C.name\n",
		"skipped  ns.option.D.name: empty value\n",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("progress output missing %q:\n%s", line, out)
		}
	}
}

func TestMergeEmptyNeverBlanksExisting(t *testing.T) {
	dst := New()
	dst.Set("ns.option.A.name", "Translated")

	src := New()
	src.Set("ns.option.A.name", "")

	Merge(dst, src, io.Discard)

	if v, _ := dst.Get("ns.option.A.name"); v != "Translated" {
		t.Errorf("existing translation was blanked: %q", v)
	}
}

func TestMergeAppendsInTemplateOrder(t *testing.T) {
	dst := New()
	dst.Set("ns.option.Existing.name", "x")

	src := New()
	src.Set("ns.option.New2.name", "b")
	src.Set("ns.option.New1.name", "a")

	Merge(dst, src, io.Discard)

	want := []string{"ns.option.Existing.name", "ns.option.New2.name", "ns.option.New1.name"}
	got := dst.Keys()
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestMergeIdempotent(t *testing.T) {
	src := New()
	src.Set("ns.option.A.name", "A")
	src.Set("ns.option.B.name", "B")

	dst := New()
	first := Merge(dst, src, io.Discard)
	second := Merge(dst, src, io.Discard)

	if first.Added != 2 {
		t.Errorf("first merge added %d, want 2", first.Added)
	}
	if second.Added != 0 || second.Updated != 2 {
		t.Errorf("second merge = %+v, want 0 added, 2 updated", second)
	}
	if dst.Len() != 2 {
		t.Errorf("doc has %d keys, want 2", dst.Len())
	}
}
