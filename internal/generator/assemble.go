package generator

import (
	"bytes"
	"html/template"
	"net/url"
	"time"

	"github.com/menusmith/menusmith/internal/menu"
)

// Generator assembles complete menu documents. It is stateless apart
// from the copyright year, which is fixed at construction so the output
// is byte-identical for identical input.
type Generator struct {
	year int
}

// Option configures a Generator.
type Option func(*Generator)

// WithYear pins the copyright year. The year is the one part of the
// output derived from the clock; tests pin it to keep output stable.
func WithYear(year int) Option {
	return func(g *Generator) { g.year = year }
}

// New creates a Generator. Without options the copyright year is read
// from the clock once, here.
func New(opts ...Option) *Generator {
	g := &Generator{year: time.Now().Year()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// docData is the data passed to the document template. Style, Body and
// Script are pre-rendered trusted blocks; Title goes through the
// template's own escaping.
type docData struct {
	Title    string
	FontLink string
	Style    template.CSS
	Body     template.HTML
	Script   template.JS
}

// docTemplate is the outer HTML5 shell. The font stylesheet link is the
// only external reference besides the map iframe; both are progressive
// enhancements.
var docTemplate = template.Must(template.New("doc").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
{{if .FontLink}}<link rel="stylesheet" href="{{.FontLink}}">
{{end}}<style>
{{.Style}}</style>
</head>
<body>
{{.Body}}<script>
{{.Script}}</script>
</body>
</html>
`))

// Generate emits one self-contained HTML document for the restaurant,
// using the effective visual settings for its template. It is total
// over well-formed input: malformed colors, prices and text degrade
// locally and never abort generation. A nil restaurant is a caller
// contract violation and panics.
func (g *Generator) Generate(r *menu.Restaurant) string {
	return g.GenerateWithVisual(r, nil)
}

// GenerateWithVisual is Generate with an explicit visual-settings
// override, used by the editor's preview while the visual panel is
// being tweaked.
func (g *Generator) GenerateWithVisual(r *menu.Restaurant, override *menu.VisualSettings) string {
	normalized := r.Clone()
	menu.Normalize(normalized)
	vs := menu.ResolveVisual(normalized, override)

	title := StripMarkdown(normalized.Info.Name)
	if title == "" {
		title = "Menu"
	} else {
		title += " — Menu"
	}

	data := docData{
		Title:    title,
		FontLink: fontLink(vs.FontFamily),
		Style:    template.CSS(buildStylesheet(vs, normalized.CartSettings)),
		Body:     template.HTML(buildMarkup(normalized, g.year)),
		Script:   template.JS(buildScript(normalized)),
	}

	var buf bytes.Buffer
	if err := docTemplate.Execute(&buf, data); err != nil {
		// The template is a compile-time constant and the fields are
		// pre-rendered; execution cannot fail on well-typed input.
		panic(err)
	}
	return buf.String()
}

// fontLink returns the Google Fonts stylesheet URL for a non-system
// font family, or "" when no external stylesheet is needed.
func fontLink(family string) string {
	if family == "" || systemFonts[family] {
		return ""
	}
	q := url.Values{}
	q.Set("family", family)
	q.Set("display", "swap")
	return "https://fonts.googleapis.com/css2?" + q.Encode()
}
