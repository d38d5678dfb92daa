package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/l10n-engine/internal/bundle"
	"github.com/pdiddy/l10n-engine/pkg/types"
)

// --- test helpers ---

func testSetup(t *testing.T) (*Store, string) {
	t.Helper()
	tmpDir := t.TempDir()

	cfg := types.CatalogConfig{
		Path:       filepath.Join(tmpDir, "l10n", "catalog.db"),
		MaxResults: 20,
	}
	store, err := NewStore(cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	return store, tmpDir
}

func writeDatabase(t *testing.T, tmpDir, content string) string {
	t.Helper()
	path := filepath.Join(tmpDir, "options-database.ts")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeBundleFile(t *testing.T, tmpDir string, doc *bundle.Document) string {
	t.Helper()
	path := filepath.Join(tmpDir, "bundle.l10n.json")
	if err := doc.Save(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func sampleRecords() []types.Record {
	return []types.Record{
		{Key: "IndentWidth", Name: "缩进宽度", Description: "每级缩进的列数。"},
		{Key: "UseTab", Name: "使用制表符", Description: "缩进时是否使用制表符。"},
	}
}

// storeHelper indexes records as if extracted from a real database file.
func storeHelper(t *testing.T, store *Store, tmpDir string, records []types.Record) string {
	t.Helper()
	path := writeDatabase(t, tmpDir, "// placeholder source\n")
	var buf strings.Builder
	if _, err := store.StoreOptions(context.Background(), records, path, false, &buf); err != nil {
		t.Fatal(err)
	}
	return path
}

// --- schema tests ---

func TestNewStoreCreatesSchema(t *testing.T) {
	store, _ := testSetup(t)

	tables := []string{"options", "translations", "options_fts", "scan_status"}
	for _, table := range tables {
		var count int
		err := store.db.QueryRow(
			`SELECT count(*) FROM sqlite_master WHERE type IN ('table','view') AND name = ?`, table,
		).Scan(&count)
		if err != nil {
			t.Fatalf("checking table %s: %v", table, err)
		}
		if count == 0 {
			t.Errorf("table %s does not exist", table)
		}
	}
}

func TestNewStoreCreatesDBFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "l10n", "catalog.db")

	store, err := NewStore(types.CatalogConfig{Path: dbPath})
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file not created at %s", dbPath)
	}
}

// --- store tests ---

func TestStoreOptionsAndRetrieve(t *testing.T) {
	store, tmpDir := testSetup(t)
	storeHelper(t, store, tmpDir, sampleRecords())

	results, err := store.Retrieve(context.Background(), QueryOptions{Key: "IndentWidth"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	r := results[0]
	if r.Name != "缩进宽度" {
		t.Errorf("Name = %q, want 缩进宽度", r.Name)
	}
	if r.Description != "每级缩进的列数。" {
		t.Errorf("Description = %q", r.Description)
	}
	if r.TranslatedName != "" || r.TranslatedDescription != "" {
		t.Errorf("translations should be empty before a bundle is stored: %+v", r)
	}
}

func TestStoreOptionsSkipsUnchanged(t *testing.T) {
	store, tmpDir := testSetup(t)
	path := storeHelper(t, store, tmpDir, sampleRecords())

	var buf strings.Builder
	summary, err := store.StoreOptions(context.Background(), sampleRecords(), path, false, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Skipped != 1 || summary.Options != 0 {
		t.Errorf("summary = %+v, want skipped run", summary)
	}
	if !strings.Contains(buf.String(), "skipped") {
		t.Errorf("expected skip notice, got: %s", buf.String())
	}
}

func TestStoreOptionsForce(t *testing.T) {
	store, tmpDir := testSetup(t)
	path := storeHelper(t, store, tmpDir, sampleRecords())

	var buf strings.Builder
	summary, err := store.StoreOptions(context.Background(), sampleRecords(), path, true, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Options != 2 || summary.Skipped != 0 {
		t.Errorf("summary = %+v, want forced re-index", summary)
	}
}

func TestStoreOptionsUpdatesChangedFile(t *testing.T) {
	store, tmpDir := testSetup(t)
	path := storeHelper(t, store, tmpDir, sampleRecords())

	// Same key, new source text, newer mod time.
	updated := []types.Record{
		{Key: "IndentWidth", Name: "缩进宽度（新）", Description: "更新后的描述。"},
		{Key: "UseTab", Name: "使用制表符", Description: "缩进时是否使用制表符。"},
	}
	later := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	if _, err := store.StoreOptions(context.Background(), updated, path, false, &buf); err != nil {
		t.Fatal(err)
	}

	results, err := store.Retrieve(context.Background(), QueryOptions{Key: "IndentWidth"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Name != "缩进宽度（新）" {
		t.Errorf("option was not updated: %+v", results)
	}
}

func TestStoreOptionsRemovesStale(t *testing.T) {
	store, tmpDir := testSetup(t)
	path := storeHelper(t, store, tmpDir, sampleRecords())

	// UseTab disappears from the database file.
	remaining := sampleRecords()[:1]
	later := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	summary, err := store.StoreOptions(context.Background(), remaining, path, false, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Stale != 1 {
		t.Errorf("Stale = %d, want 1", summary.Stale)
	}

	results, err := store.Retrieve(context.Background(), QueryOptions{Key: "UseTab"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("stale option still retrievable: %+v", results)
	}
}

func TestStaleOptionKeepsTranslation(t *testing.T) {
	store, tmpDir := testSetup(t)
	path := storeHelper(t, store, tmpDir, sampleRecords())

	doc := bundle.New()
	doc.Set("ns.option.UseTab.name", "Use Tab")
	bundlePath := writeBundleFile(t, tmpDir, doc)
	var buf strings.Builder
	if _, err := store.StoreTranslations(context.Background(), doc, "ns", bundlePath, false, &buf); err != nil {
		t.Fatal(err)
	}

	later := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}
	if _, err := store.StoreOptions(context.Background(), sampleRecords()[:1], path, false, &buf); err != nil {
		t.Fatal(err)
	}

	// The translation row survives with its option reference cleared.
	var value string
	var optionKey any
	err := store.db.QueryRow(
		`SELECT value, option_key FROM translations WHERE l10n_key = ?`, "ns.option.UseTab.name",
	).Scan(&value, &optionKey)
	if err != nil {
		t.Fatalf("translation row gone: %v", err)
	}
	if value != "Use Tab" {
		t.Errorf("value = %q, want Use Tab", value)
	}
	if optionKey != nil {
		t.Errorf("option_key = %v, want NULL", optionKey)
	}
}

func TestStoreTranslations(t *testing.T) {
	store, tmpDir := testSetup(t)
	storeHelper(t, store, tmpDir, sampleRecords())

	doc := bundle.New()
	doc.Set("ns.option.IndentWidth.name", "Indent Width")
	doc.Set("ns.option.IndentWidth.description", "Number of columns per indent level.")
	doc.Set("ns.option.Vanished.name", "No Such Option")
	doc.Set("other.feature.key", "ignored")
	bundlePath := writeBundleFile(t, tmpDir, doc)

	var buf strings.Builder
	summary, err := store.StoreTranslations(context.Background(), doc, "ns", bundlePath, false, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Translations != 3 {
		t.Errorf("Translations = %d, want 3", summary.Translations)
	}
	if summary.Unlinked != 1 {
		t.Errorf("Unlinked = %d, want 1", summary.Unlinked)
	}

	results, err := store.Retrieve(context.Background(), QueryOptions{Key: "IndentWidth"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].TranslatedName != "Indent Width" {
		t.Errorf("TranslatedName = %q", results[0].TranslatedName)
	}
	if results[0].TranslatedDescription != "Number of columns per indent level." {
		t.Errorf("TranslatedDescription = %q", results[0].TranslatedDescription)
	}
}

func TestStoreTranslationsSkipsUnchanged(t *testing.T) {
	store, tmpDir := testSetup(t)
	storeHelper(t, store, tmpDir, sampleRecords())

	doc := bundle.New()
	doc.Set("ns.option.IndentWidth.name", "Indent Width")
	bundlePath := writeBundleFile(t, tmpDir, doc)

	var buf strings.Builder
	if _, err := store.StoreTranslations(context.Background(), doc, "ns", bundlePath, false, &buf); err != nil {
		t.Fatal(err)
	}
	summary, err := store.StoreTranslations(context.Background(), doc, "ns", bundlePath, false, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Skipped != 1 || summary.Translations != 0 {
		t.Errorf("summary = %+v, want skipped run", summary)
	}
}

// --- retrieve tests ---

func TestRetrieveMatch(t *testing.T) {
	store, tmpDir := testSetup(t)
	storeHelper(t, store, tmpDir, sampleRecords())

	tests := []struct {
		name  string
		match string
		want  string
	}{
		{"ascii key token", "IndentWidth", "IndentWidth"},
		{"cjk name token", "缩进宽度", "IndentWidth"},
		{"cjk prefix", "使用*", "UseTab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := store.Retrieve(context.Background(), QueryOptions{Match: tt.match})
			if err != nil {
				t.Fatal(err)
			}
			if len(results) == 0 {
				t.Fatalf("no results for %q", tt.match)
			}
			if results[0].Key != tt.want {
				t.Errorf("top result = %s, want %s", results[0].Key, tt.want)
			}
		})
	}
}

func TestRetrieveUntranslated(t *testing.T) {
	store, tmpDir := testSetup(t)
	storeHelper(t, store, tmpDir, sampleRecords())

	doc := bundle.New()
	doc.Set("ns.option.IndentWidth.name", "Indent Width")
	doc.Set("ns.option.IndentWidth.description", "Columns per indent level.")
	bundlePath := writeBundleFile(t, tmpDir, doc)
	var buf strings.Builder
	if _, err := store.StoreTranslations(context.Background(), doc, "ns", bundlePath, false, &buf); err != nil {
		t.Fatal(err)
	}

	results, err := store.Retrieve(context.Background(), QueryOptions{Untranslated: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Key != "UseTab" {
		t.Errorf("untranslated = %+v, want only UseTab", results)
	}
}

func TestRetrieveMaxResults(t *testing.T) {
	store, tmpDir := testSetup(t)
	records := []types.Record{
		{Key: "A", Name: "甲", Description: "第一。"},
		{Key: "B", Name: "乙", Description: "第二。"},
		{Key: "C", Name: "丙", Description: "第三。"},
	}
	storeHelper(t, store, tmpDir, records)

	results, err := store.Retrieve(context.Background(), QueryOptions{Untranslated: true, MaxResults: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want 2", len(results))
	}
}

func TestQueryOptionsIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		opts QueryOptions
		want bool
	}{
		{"empty", QueryOptions{}, true},
		{"max results only", QueryOptions{MaxResults: 5}, true},
		{"key", QueryOptions{Key: "IndentWidth"}, false},
		{"match", QueryOptions{Match: "缩进"}, false},
		{"untranslated", QueryOptions{Untranslated: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

// --- export tests ---

func TestExportJSON(t *testing.T) {
	store, tmpDir := testSetup(t)
	storeHelper(t, store, tmpDir, sampleRecords())

	var buf bytes.Buffer
	if err := store.Export(context.Background(), &buf, "json"); err != nil {
		t.Fatal(err)
	}

	var entries []QueryResult
	if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Key != "IndentWidth" || entries[1].Key != "UseTab" {
		t.Errorf("entries not ordered by key: %s, %s", entries[0].Key, entries[1].Key)
	}
	if !strings.Contains(buf.String(), "缩进宽度") {
		t.Error("CJK text should stay unescaped in JSON export")
	}
}

func TestExportYAML(t *testing.T) {
	store, tmpDir := testSetup(t)
	storeHelper(t, store, tmpDir, sampleRecords())

	var buf bytes.Buffer
	if err := store.Export(context.Background(), &buf, "yaml"); err != nil {
		t.Fatal(err)
	}

	var entries []QueryResult
	if err := yaml.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("export is not valid YAML: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2", len(entries))
	}
}

func TestExportEmptyCatalog(t *testing.T) {
	store, _ := testSetup(t)

	var buf bytes.Buffer
	if err := store.Export(context.Background(), &buf, "json"); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty export = %q, want []", buf.String())
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	store, _ := testSetup(t)

	if err := store.Export(context.Background(), &bytes.Buffer{}, "xml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
