package generator

import (
	"strings"
	"testing"
)

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text", "Garlic Bread", "Garlic Bread"},
		{"bold", "**Spicy** wings", "Spicy wings"},
		{"italic", "*fresh* basil", "fresh basil"},
		{"heading", "# Specials", "Specials"},
		{"inline code", "`secret` sauce", "secret sauce"},
		{"link", "[our site](https://example.com)", "our site"},
		{"image", "![logo](logo.png)", "logo"},
		{"blockquote", "> chef's note", "chef's note"},
		{"nested emphasis", "**_very_ good**", "very good"},
		{"thematic break", "above\n\n---\n\nbelow", "above\nbelow"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMarkdown(tt.input); got != tt.want {
				t.Errorf("StripMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripMarkdownIdempotent(t *testing.T) {
	inputs := []string{
		"**Spicy** wings",
		"# Heading with [link](x)",
		"plain already",
		"a > b & c",
	}
	for _, in := range inputs {
		once := StripMarkdown(in)
		twice := StripMarkdown(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestStripMarkdownKeepsRawHTML(t *testing.T) {
	// Raw HTML must survive stripping as literal text so the escaping
	// step can neutralize it. Silently deleting it would hide the input.
	got := StripMarkdown(`<script>alert(1)</script>`)
	if !strings.Contains(got, "<script>") {
		t.Errorf("raw HTML was dropped: %q", got)
	}
}

func TestStripMarkdownKeepsHTMLBlocks(t *testing.T) {
	// A block-level tag and an inline tag take different parse paths;
	// both must come through as literal text.
	tests := []struct{ input, keep string }{
		{"<div>\nblock\n</div>", "<div>"},
		{"before <b>bold</b> after", "<b>bold</b>"},
	}
	for _, tt := range tests {
		if got := StripMarkdown(tt.input); !strings.Contains(got, tt.keep) {
			t.Errorf("StripMarkdown(%q) = %q, want it to keep %q", tt.input, got, tt.keep)
		}
	}
}

func TestSanitizeHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"script tag", `<script>alert(1)</script>`, "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"ampersand", "fish & chips", "fish &amp; chips"},
		{"quotes", `say "hi"`, "say &quot;hi&quot;"},
		{"apostrophe", "Luigi's", "Luigi&#39;s"},
		{"markdown then escape", "**bold** & <b>raw</b>", "bold &amp; &lt;b&gt;raw&lt;/b&gt;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeHTML(tt.input); got != tt.want {
				t.Errorf("SanitizeHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeHTMLNoDoubleEscape(t *testing.T) {
	got := SanitizeHTML("a & b")
	if strings.Contains(got, "&amp;amp;") {
		t.Errorf("double-escaped ampersand: %q", got)
	}
}
