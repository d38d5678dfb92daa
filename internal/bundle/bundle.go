// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bundle reads and writes the l10n bundle, a flat JSON object
// mapping localization keys to translated strings. The bundle is kept
// under version control, so the document preserves key order and writes
// deterministic output to keep diffs reviewable.
package bundle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Document is an ordered localization bundle. Keys keep their first-set
// position; setting an existing key replaces the value in place.
type Document struct {
	keys   []string
	values map[string]string
}

// New returns an empty document.
func New() *Document {
	return &Document{values: make(map[string]string)}
}

// Load parses the bundle file at path. A missing file yields an empty
// document, so the first merge into a fresh checkout just works.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("opening bundle %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing bundle %s: %w", path, err)
	}
	return doc, nil
}

// Parse reads a flat JSON object of string keys to string values from r,
// preserving key order. A duplicate key keeps its first position and the
// last value wins. Nested objects, arrays, and non-string values are
// errors.
func Parse(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("document must be a JSON object, got %v", tok)
	}

	doc := New()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading key: %w", err)
		}
		key := keyTok.(string) // object keys are always strings

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading value for %q: %w", key, err)
		}
		val, ok := valTok.(string)
		if !ok {
			return nil, fmt.Errorf("value for %q is not a string", key)
		}
		doc.Set(key, val)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return doc, nil
}

// Set adds key with value, or replaces the value in place when the key
// is already present.
func (d *Document) Set(key, value string) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value for key and whether the key is present.
func (d *Document) Get(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Delete removes key. The order of the remaining keys is unchanged.
func (d *Document) Delete(key string) {
	if _, ok := d.values[key]; !ok {
		return
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in document order.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of keys in the document.
func (d *Document) Len() int { return len(d.keys) }

// Render returns the document as an indented JSON object with keys in
// document order and non-ASCII characters unescaped.
func (d *Document) Render() string {
	if len(d.keys) == 0 {
		return "{}"
	}

	var b strings.Builder
	b.WriteString("{\n")
	for i, key := range d.keys {
		fmt.Fprintf(&b, "  %s: %s", jsonString(key), jsonString(d.values[key]))
		if i < len(d.keys)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// Save writes the rendered document plus a trailing newline to path,
// through a temp file and rename so an interrupted write never leaves a
// truncated bundle behind.
func (d *Document) Save(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".bundle-*.json")
	if err != nil {
		return fmt.Errorf("creating temp bundle: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(d.Render() + "\n"); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing bundle: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp bundle: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing bundle %s: %w", path, err)
	}
	return nil
}

// jsonString encodes s as a JSON string without HTML escaping, so CJK
// text is written as-is rather than as \u escapes.
func jsonString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.Encode(s)
	return strings.TrimRight(buf.String(), "\n")
}
