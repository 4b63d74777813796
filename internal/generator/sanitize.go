// Package generator turns a menu.Restaurant into one self-contained
// static HTML document: inline stylesheet, static markup skeleton, and
// an embedded script that renders the menu and runs the cart entirely
// client-side.
package generator

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
)

// md is the shared parser used by StripMarkdown. Parsing is stateless,
// so one instance serves all calls.
var md = goldmark.New()

// StripMarkdown removes lightweight markdown syntax from free text and
// returns the plain text: headings, emphasis and inline code unwrap to
// their inner text, links and images collapse to their display text,
// fenced code blocks and horizontal rules are dropped, blockquote
// markers are stripped. Raw HTML is kept as literal text so that the
// escaping step which follows can neutralize it instead of silently
// deleting user input.
//
// The result contains no markdown syntax, which makes the function
// idempotent for any input that does not re-introduce it.
func StripMarkdown(s string) string {
	if s == "" {
		return ""
	}

	src := []byte(s)
	doc := md.Parser().Parse(gtext.NewReader(src))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch v := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.ThematicBreak:
			if entering {
				return ast.WalkSkipChildren, nil
			}
		case *ast.HTMLBlock:
			if entering {
				writeLines(&b, v.Lines(), src)
				return ast.WalkSkipChildren, nil
			}
		case *ast.RawHTML:
			if entering {
				for i := 0; i < v.Segments.Len(); i++ {
					seg := v.Segments.At(i)
					b.Write(seg.Value(src))
				}
				return ast.WalkSkipChildren, nil
			}
		case *ast.AutoLink:
			if entering {
				b.Write(v.URL(src))
				return ast.WalkSkipChildren, nil
			}
		case *ast.Text:
			if entering {
				b.Write(v.Segment.Value(src))
				if v.SoftLineBreak() || v.HardLineBreak() {
					b.WriteByte('\n')
				}
			}
		case *ast.String:
			if entering {
				b.Write(v.Value)
			}
		default:
			// Leaving a block node ends a line of output.
			if !entering && n.Type() == ast.TypeBlock {
				endLine(&b)
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(b.String())
}

// SanitizeHTML strips markdown, then escapes the five HTML-significant
// characters. Stripping happens first so entity ampersands produced
// here are not escaped twice.
func SanitizeHTML(s string) string {
	out := StripMarkdown(s)
	out = strings.ReplaceAll(out, "&", "&amp;")
	out = strings.ReplaceAll(out, "<", "&lt;")
	out = strings.ReplaceAll(out, ">", "&gt;")
	out = strings.ReplaceAll(out, `"`, "&quot;")
	out = strings.ReplaceAll(out, "'", "&#39;")
	return out
}

// writeLines appends the raw source of a block's line segments.
func writeLines(b *strings.Builder, lines *gtext.Segments, src []byte) {
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
}

// endLine terminates the current output line unless it already is.
func endLine(b *strings.Builder) {
	s := b.String()
	if s != "" && !strings.HasSuffix(s, "\n") {
		b.WriteByte('\n')
	}
}
