package errors

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "route not found",
			code:    "F001",
			wantMsg: "Route not found",
			wantCat: CategoryRouting,
		},
		{
			name:    "config error",
			code:    "F101",
			wantMsg: "Cannot read configuration",
			wantCat: CategoryConfig,
		},
		{
			name:    "content error",
			code:    "F201",
			wantMsg: "Content item not found",
			wantCat: CategoryContent,
		},
		{
			name:    "unknown error code",
			code:    "F999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "unknown step %q", "sideways")
	if err.Message != `unknown step "sideways"` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Code != "" {
		t.Errorf("Code = %q, want empty", err.Code)
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q", err.Category)
	}
}

func TestErrorString(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := New("F002").WithPath("/research/1").Wrap(cause)

	got := err.Error()
	want := "F002: Route handler failed (/research/1): boom"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should see the wrapped cause")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "F001") != nil {
		t.Error("FromError(nil) should be nil")
	}

	plain := fmt.Errorf("disk on fire")
	fe := FromError(plain, "F101")
	if fe.Code != "F101" || fe.Wrapped != plain {
		t.Errorf("FromError(plain) = %+v", fe)
	}

	orig := New("F201").WithPath("/research/42")
	wrapped := fmt.Errorf("loading: %w", orig)
	if got := FromError(wrapped, "F101"); got != orig {
		t.Errorf("FromError should return the existing FolioError, got %+v", got)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("F001").
		WithPath("/nope").
		WithSuggestion("Run `folio routes` to list registered patterns")
	out := err.Format()

	for _, want := range []string{
		"ERROR F001: Route not found",
		"path: /nope",
		"No registered pattern matches the path.",
		"Hint: Run `folio routes`",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("Format() should not contain ANSI codes when colors are disabled")
	}
	if joined := strings.Join(strings.Fields(out), " "); !strings.Contains(joined, "Patterns match segment by segment") {
		t.Errorf("Format() detail lost words across wrapping:\n%s", out)
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("F201").WithPath("/research/9")
	if got, want := err.FormatCompact(), "/research/9: F201: Content item not found"; got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestFormatJSON(t *testing.T) {
	err := New("F102").WithPath("folio.json").Wrap(fmt.Errorf("fallback_path must start with /"))

	var decoded map[string]string
	if jerr := json.Unmarshal([]byte(err.FormatJSON()), &decoded); jerr != nil {
		t.Fatalf("FormatJSON() is not valid JSON: %v", jerr)
	}
	if decoded["code"] != "F102" {
		t.Errorf("code = %q", decoded["code"])
	}
	if decoded["category"] != string(CategoryConfig) {
		t.Errorf("category = %q", decoded["category"])
	}
	if decoded["cause"] != "fallback_path must start with /" {
		t.Errorf("cause = %q", decoded["cause"])
	}
}

func TestPrintError(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	PrintError(&buf, fmt.Errorf("wrapped: %w", New("F301")))
	if !strings.Contains(buf.String(), "ERROR F301: Invalid navigation step") {
		t.Errorf("PrintError output = %q", buf.String())
	}

	buf.Reset()
	PrintError(&buf, fmt.Errorf("plain failure"))
	if !strings.Contains(buf.String(), "ERROR: plain failure") {
		t.Errorf("PrintError output = %q", buf.String())
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six", 10)
	for _, l := range lines {
		if len(l) > 10 {
			t.Errorf("line %q longer than width", l)
		}
	}
	if strings.Join(lines, " ") != "one two three four five six" {
		t.Errorf("wrapText lost words: %v", lines)
	}
	if wrapText("", 10) != nil {
		t.Error("wrapText(\"\") should be nil")
	}
}

func TestRegistry(t *testing.T) {
	codes := GetAllCodes()
	if len(codes) == 0 {
		t.Fatal("registry is empty")
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("codes not sorted: %v", codes)
		}
	}
	for _, code := range codes {
		tmpl, ok := GetTemplate(code)
		if !ok || tmpl.Message == "" || tmpl.Category == "" {
			t.Errorf("template %s incomplete: %+v", code, tmpl)
		}
	}

	Register("F999", ErrorTemplate{Category: CategoryCLI, Message: "test only"})
	defer delete(registry, "F999")
	if New("F999").Message != "test only" {
		t.Error("Register did not take effect")
	}
}
