package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/inkwell-md/inkwell/pkg/markdown"
)

// renderPreview renders markdown content as styled terminal text. It is a
// line-based renderer: headings, quotes and rules get their theme styles,
// fenced code blocks are rendered with their parsed info-string metadata,
// and everything else is word-wrapped prose.
func renderPreview(content string, width int, theme Theme) string {
	if width < 10 {
		width = 10
	}

	var b strings.Builder
	var inFence bool
	var fenceMeta markdown.CodeBlockMeta
	var fenceLine int

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			if inFence {
				inFence = false
				b.WriteString(theme.CodeHeader.Render(strings.Repeat("─", width)))
				b.WriteString("\n")
				continue
			}
			inFence = true
			fenceLine = 0
			fenceMeta = markdown.ParseCodeBlockMetadata(strings.TrimPrefix(trimmed, "```"))
			header := "─ " + fenceMeta.Language
			if fenceMeta.Filename != "" {
				header += " · " + fenceMeta.Filename
			}
			header += " "
			if pad := width - len([]rune(header)); pad > 0 {
				header += strings.Repeat("─", pad)
			}
			b.WriteString(theme.CodeHeader.Render(header))
			b.WriteString("\n")
			continue
		}

		if inFence {
			fenceLine++
			rendered := line
			if fenceMeta.ShowLineNumbers {
				rendered = fmt.Sprintf("%s %s",
					theme.CodeLineNum.Render(fmt.Sprintf("%3d", fenceLine)), line)
			}
			if highlighted(fenceMeta.Highlights, fenceLine) {
				b.WriteString(theme.Highlighted.Render(rendered))
			} else {
				b.WriteString(theme.CodeBlock.Render(rendered))
			}
			b.WriteString("\n")
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "#"):
			b.WriteString(theme.Heading.Render(line))
		case trimmed == "---" || trimmed == "***" || trimmed == "___":
			b.WriteString(theme.Rule.Render(strings.Repeat("─", width)))
		case strings.HasPrefix(trimmed, ">"):
			b.WriteString(theme.Blockquote.Render(wordwrap.String(line, width)))
		default:
			b.WriteString(wordwrap.String(line, width))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func highlighted(lines []int, n int) bool {
	for _, l := range lines {
		if l == n {
			return true
		}
	}
	return false
}
