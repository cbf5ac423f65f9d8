package site

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer turns content into HTML. Markdown goes through goldmark and the
// result is sanitized with bluemonday before it reaches a page template.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	pages  *template.Template
}

// NewRenderer creates a renderer with the site's page templates.
func NewRenderer() *Renderer {
	return &Renderer{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: bluemonday.UGCPolicy(),
		pages:  template.Must(template.New("pages").Parse(pageTemplates)),
	}
}

// Markdown renders src to sanitized HTML.
func (r *Renderer) Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}

// Page executes the named page template.
func (r *Renderer) Page(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.pages.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render page %s: %w", name, err)
	}
	return buf.String(), nil
}
