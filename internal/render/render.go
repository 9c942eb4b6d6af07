// Package render formats backend values for display.
package render

import (
	"bytes"
	stdhtml "html"
	"log"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kidandcat/geolog/internal/model"
)

// Raw HTML in user text is dropped, goldmark's default.
var md = goldmark.New(
	goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

var printer = message.NewPrinter(language.BritishEnglish)

// Markdown renders user-written text (message bodies, project descriptions)
// to HTML. On failure the text is returned escaped as a single paragraph.
func Markdown(src string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		log.Printf("render markdown: %v", err)
		return "<p>" + stdhtml.EscapeString(src) + "</p>"
	}
	return buf.String()
}

// Depth formats a depth or level in metres to two places, "1.50 m".
func Depth(d model.Decimal) string {
	if !d.Valid() {
		return "-"
	}
	return printer.Sprintf("%.2f m", d.Float())
}

// Coordinate formats a grid coordinate with thousands grouping.
func Coordinate(d model.Decimal) string {
	if !d.Valid() {
		return "-"
	}
	return printer.Sprintf("%.3f", d.Float())
}

// Count formats n with the singular or plural noun, "1 borehole", "12 boreholes".
func Count(n int, singular, plural string) string {
	if n == 1 {
		return printer.Sprintf("%d %s", n, singular)
	}
	return printer.Sprintf("%d %s", n, plural)
}
