package tui

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Pure text transformations backing the formatting commands. They operate
// on single lines (plus a rune column where relevant) so they can be
// applied to the textarea's current line and tested in isolation.

// WrapInlineMarker wraps the word containing col in marker pairs, e.g.
// **bold**. If the word is already wrapped, the markers are removed
// instead. With no word under the cursor an empty pair is inserted at col.
func WrapInlineMarker(line string, col int, marker string) string {
	runes := []rune(line)
	if col < 0 {
		col = 0
	}
	if col > len(runes) {
		col = len(runes)
	}

	start, end := col, col
	for start > 0 && !unicode.IsSpace(runes[start-1]) {
		start--
	}
	for end < len(runes) && !unicode.IsSpace(runes[end]) {
		end++
	}

	word := string(runes[start:end])
	if word == "" {
		return string(runes[:col]) + marker + marker + string(runes[col:])
	}

	if strings.HasPrefix(word, marker) && strings.HasSuffix(word, marker) && len(word) > 2*len(marker) {
		unwrapped := strings.TrimSuffix(strings.TrimPrefix(word, marker), marker)
		return string(runes[:start]) + unwrapped + string(runes[end:])
	}
	return string(runes[:start]) + marker + word + marker + string(runes[end:])
}

var (
	headingPrefix = regexp.MustCompile(`^(\s*)#{1,6}\s+`)
	bulletPrefix  = regexp.MustCompile(`^(\s*)[-*+]\s+`)
	orderedPrefix = regexp.MustCompile(`^(\s*)\d+\.\s+`)
	quotePrefix   = regexp.MustCompile(`^(\s*)>\s?`)
)

// SetHeadingLevel replaces the line's block prefix with a heading of the
// given level. Level 0 demotes to a plain paragraph.
func SetHeadingLevel(line string, level int) string {
	indent, rest := splitBlockPrefix(line)
	if level < 1 {
		return indent + rest
	}
	if level > 6 {
		level = 6
	}
	return indent + strings.Repeat("#", level) + " " + rest
}

// ToggleBulletList adds or removes a bullet marker on the line.
func ToggleBulletList(line string) string {
	if m := bulletPrefix.FindStringSubmatch(line); m != nil {
		return m[1] + line[len(m[0]):]
	}
	indent, rest := splitBlockPrefix(line)
	return indent + "- " + rest
}

// ToggleOrderedList adds or removes an ordered-list marker on the line.
func ToggleOrderedList(line string) string {
	if m := orderedPrefix.FindStringSubmatch(line); m != nil {
		return m[1] + line[len(m[0]):]
	}
	indent, rest := splitBlockPrefix(line)
	return indent + "1. " + rest
}

// ToggleBlockquote adds or removes a blockquote marker on the line.
func ToggleBlockquote(line string) string {
	if m := quotePrefix.FindStringSubmatch(line); m != nil {
		return m[1] + line[len(m[0]):]
	}
	indent, rest := splitBlockPrefix(line)
	return indent + "> " + rest
}

// WrapCodeFence surrounds the line at idx with an empty fence pair.
func WrapCodeFence(lines []string, idx int) []string {
	if idx < 0 || idx >= len(lines) {
		return lines
	}
	out := make([]string, 0, len(lines)+2)
	out = append(out, lines[:idx]...)
	out = append(out, "```", lines[idx], "```")
	out = append(out, lines[idx+1:]...)
	return out
}

// InsertHorizontalRule inserts a rule after the line at idx.
func InsertHorizontalRule(lines []string, idx int) []string {
	if idx < 0 || idx >= len(lines) {
		return append(lines, "---")
	}
	out := make([]string, 0, len(lines)+2)
	out = append(out, lines[:idx+1]...)
	out = append(out, "", "---")
	out = append(out, lines[idx+1:]...)
	return out
}

// splitBlockPrefix strips any heading, list, or quote marker and returns
// the indentation and the remaining text.
func splitBlockPrefix(line string) (indent string, rest string) {
	for _, re := range []*regexp.Regexp{headingPrefix, bulletPrefix, orderedPrefix, quotePrefix} {
		if m := re.FindStringSubmatch(line); m != nil {
			return m[1], line[len(m[0]):]
		}
	}
	trimmed := strings.TrimLeft(line, " \t")
	return line[:len(line)-len(trimmed)], trimmed
}

// replaceLine swaps a single line inside content, keeping all others.
func replaceLine(content string, idx int, transform func(string) string) string {
	lines := strings.Split(content, "\n")
	if idx < 0 || idx >= len(lines) {
		return content
	}
	lines[idx] = transform(lines[idx])
	return strings.Join(lines, "\n")
}

// lineRange formats a cursor position for the status bar.
func lineRange(line, total int) string {
	return fmt.Sprintf("%d/%d", line+1, total)
}

// truncateTail shortens s to at most max runes, replacing the cut tail
// with an ellipsis. Truncation is by rune so multibyte text never splits.
func truncateTail(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max < 1 {
		return ""
	}
	return string(runes[:max-1]) + "…"
}

// truncateHead keeps the last max runes of s, marking the cut with a
// leading ellipsis. Used for paths where the tail is the useful part.
func truncateHead(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max < 1 {
		return ""
	}
	return "…" + string(runes[len(runes)-max+1:])
}
