package site

import (
	"strings"
	"testing"
)

func TestMarkdownRendersAndSanitizes(t *testing.T) {
	r := NewRenderer()

	out, err := r.Markdown("Some **bold** text\n\n<script>alert(1)</script>\n\n[x](javascript:alert(1))")
	if err != nil {
		t.Fatalf("Markdown error: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("missing emphasis: %s", html)
	}
	if strings.Contains(html, "<script") || strings.Contains(html, "javascript:") {
		t.Errorf("unsafe markup survived: %s", html)
	}
}

func TestPageEscapesText(t *testing.T) {
	r := NewRenderer()

	out, err := r.Page("agent", Module{Title: "<b>Agent</b>", Desc: "d"})
	if err != nil {
		t.Fatalf("Page error: %v", err)
	}
	if strings.Contains(out, "<b>Agent</b>") {
		t.Errorf("title not escaped: %s", out)
	}
}

func TestPageUnknownTemplate(t *testing.T) {
	if _, err := NewRenderer().Page("missing", nil); err == nil {
		t.Error("expected error for unknown page")
	}
}
