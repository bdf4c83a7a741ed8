package markdown

import (
	"strings"
	"testing"
)

func TestExportHTMLBasics(t *testing.T) {
	html, err := ExportHTML("# Title\n\nSome *emphasis* here.\n")
	if err != nil {
		t.Fatalf("ExportHTML() error = %v", err)
	}

	if !strings.Contains(html, "<h1") {
		t.Errorf("expected an h1 element, got %q", html)
	}
	if !strings.Contains(html, "<em>emphasis</em>") {
		t.Errorf("expected emphasis markup, got %q", html)
	}
}

func TestExportHTMLFenceMetadata(t *testing.T) {
	content := "```go filename=\"main.go\" {1,3-4}\npackage main\n```\n"

	html, err := ExportHTML(content)
	if err != nil {
		t.Fatalf("ExportHTML() error = %v", err)
	}

	for _, want := range []string{
		`class="language-go"`,
		`data-filename="main.go"`,
		`data-highlight="1,3-4"`,
		"package main",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q:\n%s", want, html)
		}
	}
}

func TestExportHTMLFenceWithoutInfo(t *testing.T) {
	html, err := ExportHTML("```\nplain text\n```\n")
	if err != nil {
		t.Fatalf("ExportHTML() error = %v", err)
	}

	if !strings.Contains(html, `class="language-plaintext"`) {
		t.Errorf("expected plaintext fallback class, got %q", html)
	}
	if strings.Contains(html, "data-filename") {
		t.Errorf("unexpected filename attribute in %q", html)
	}
}

func TestExportHTMLEscapesCode(t *testing.T) {
	html, err := ExportHTML("```html\n<script>alert(1)</script>\n```\n")
	if err != nil {
		t.Fatalf("ExportHTML() error = %v", err)
	}

	if strings.Contains(html, "<script>") {
		t.Errorf("code content was not escaped: %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("expected escaped script tag, got %q", html)
	}
}

func TestExportHTMLTaskList(t *testing.T) {
	html, err := ExportHTML("- [x] done\n- [ ] pending\n")
	if err != nil {
		t.Fatalf("ExportHTML() error = %v", err)
	}
	if !strings.Contains(html, "checkbox") {
		t.Errorf("expected task list checkboxes, got %q", html)
	}
}
