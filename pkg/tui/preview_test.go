package tui

import (
	"strings"
	"testing"
)

func TestRenderPreviewFenceHeader(t *testing.T) {
	content := "intro\n```go filename=\"main.go\"\npackage main\n```\nafter"

	out := renderPreview(content, 60, DarkTheme())

	if !strings.Contains(out, "go · main.go") {
		t.Errorf("fence header missing language and filename:\n%s", out)
	}
	if !strings.Contains(out, "package main") {
		t.Errorf("fence body missing:\n%s", out)
	}
	if !strings.Contains(out, "after") {
		t.Errorf("content after the fence missing:\n%s", out)
	}
}

func TestRenderPreviewLineNumbers(t *testing.T) {
	content := "```python\nfirst\nsecond\n```"

	out := renderPreview(content, 60, DarkTheme())

	if !strings.Contains(out, "  1 first") {
		t.Errorf("expected numbered first line:\n%s", out)
	}
	if !strings.Contains(out, "  2 second") {
		t.Errorf("expected numbered second line:\n%s", out)
	}
}

func TestRenderPreviewWrapsProse(t *testing.T) {
	long := strings.Repeat("word ", 30)

	out := renderPreview(long, 20, DarkTheme())

	for _, line := range strings.Split(out, "\n") {
		if len(line) > 20 {
			t.Errorf("line exceeds wrap width: %q", line)
		}
	}
}

func TestRenderPreviewUnclosedFence(t *testing.T) {
	content := "```js\nstill code"

	out := renderPreview(content, 40, DarkTheme())
	if !strings.Contains(out, "still code") {
		t.Errorf("unclosed fence dropped its content:\n%s", out)
	}
}
