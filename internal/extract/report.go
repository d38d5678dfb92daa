// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/l10n-engine/pkg/types"
)

// rule separates the report banners.
var rule = strings.Repeat("=", 80)

// Report renders the two extraction reports: the human-readable prompt
// for a chat-based translation assistant and the JSON translation
// template. The layout is fixed; downstream tooling scrapes it.
type Report struct {
	// Namespace prefixes every generated localization key.
	Namespace string

	// Terms, when non-empty, adds a terminology section to the prompt.
	Terms []types.GlossaryTerm
}

// Write prints both reports to w: the count line, the prompt banner with
// the per-record listing, then the template banner and the indented JSON
// object. Records appear in the order given; nothing is sorted or
// deduplicated.
func (r Report) Write(w io.Writer, records []types.Record) {
	fmt.Fprintf(w, "找到 %d 个配置项\n\n", len(records))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "AI 翻译提示词:")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "请将以下 clang-format 配置项从中文翻译为英文 JSON 格式。")
	fmt.Fprintln(w, "保持专业术语准确性,参考 clang-format 官方文档。")
	fmt.Fprintln(w)

	if len(r.Terms) > 0 {
		fmt.Fprintln(w, "术语表 (保持以下译法一致):")
		for _, t := range r.Terms {
			if t.Note != "" {
				fmt.Fprintf(w, "- %s: %s (注: %s)\n", t.Zh, t.En, t.Note)
			} else {
				fmt.Fprintf(w, "- %s: %s\n", t.Zh, t.En)
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "输出格式示例:")
	fmt.Fprintln(w, "{")
	fmt.Fprintf(w, "  \"%s.option.BasedOnStyle.name\": \"Based On Style\",\n", r.Namespace)
	fmt.Fprintf(w, "  \"%s.option.BasedOnStyle.description\": \"The base coding style to inherit from...\"\n", r.Namespace)
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "待翻译内容:")
	fmt.Fprintln(w)

	for _, rec := range records {
		fmt.Fprintf(w, "配置项: %s\n", rec.Key)
		fmt.Fprintf(w, "  中文名称: %s\n", rec.Name)
		fmt.Fprintf(w, "  中文描述: %s\n", rec.Description)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "JSON 模板 (填写英文翻译):")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, RenderTemplate(records, r.Namespace))
}

// RenderTemplate returns the translation template as an indented JSON
// object: a name key and a description key per record, each mapped to
// the empty string, in record order. Non-ASCII characters pass through
// unescaped. Duplicate record keys produce duplicate template keys; a
// consumer parsing the object with map semantics sees the last win.
func RenderTemplate(records []types.Record, namespace string) string {
	if len(records) == 0 {
		return "{}"
	}

	var b strings.Builder
	b.WriteString("{\n")
	for i, rec := range records {
		fmt.Fprintf(&b, "  %s: \"\",\n", jsonString(rec.NameKey(namespace)))
		fmt.Fprintf(&b, "  %s: \"\"", jsonString(rec.DescriptionKey(namespace)))
		if i < len(records)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
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
