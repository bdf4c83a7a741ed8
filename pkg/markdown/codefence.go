package markdown

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// DefaultLanguage is used when a fence carries no recognizable language tag.
const DefaultLanguage = "plaintext"

// languageAliases maps common fence tags to canonical highlighter names.
var languageAliases = map[string]string{
	"py":     "python",
	"rb":     "ruby",
	"yml":    "yaml",
	"sh":     "bash",
	"shell":  "bash",
	"zsh":    "bash",
	"ts":     "typescript",
	"tsx":    "typescript",
	"js":     "javascript",
	"jsx":    "javascript",
	"golang": "go",
	"md":     "markdown",
	"txt":    "plaintext",
	"text":   "plaintext",
}

var attrPattern = regexp.MustCompile(`(\w+)="([^"]*)"`)

// CodeBlockMeta is the parsed form of a fenced code block's info string,
// e.g. `python filename="main.py" {1,3-5}`.
type CodeBlockMeta struct {
	Language        string
	Filename        string
	Highlights      []int
	ShowLineNumbers bool
}

// ParseCodeBlockMetadata parses a fence info string. It is total: malformed
// input degrades to defaults and never produces an error.
func ParseCodeBlockMetadata(info string) CodeBlockMeta {
	meta := CodeBlockMeta{
		Language:        DefaultLanguage,
		Highlights:      []int{},
		ShowLineNumbers: true,
	}

	trimmed := strings.TrimSpace(info)
	if trimmed == "" {
		return meta
	}

	fields := strings.Fields(trimmed)

	first := fields[0]
	if !strings.Contains(first, "=") && !strings.HasPrefix(first, "{") {
		meta.Language = NormalizeLanguage(first)
	}

	for _, m := range attrPattern.FindAllStringSubmatch(trimmed, -1) {
		if m[1] == "filename" {
			meta.Filename = m[2]
		}
	}

	for _, field := range fields {
		if strings.HasPrefix(field, "{") && strings.HasSuffix(field, "}") {
			meta.Highlights = ParseLineHighlights(field[1 : len(field)-1])
		}
	}

	return meta
}

// NormalizeLanguage lower-cases and trims a language tag and resolves known
// aliases. Unrecognized tags pass through unchanged.
func NormalizeLanguage(tag string) string {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	if normalized == "" {
		return DefaultLanguage
	}
	if canonical, ok := languageAliases[normalized]; ok {
		return canonical
	}
	return normalized
}

// ParseLineHighlights parses a highlight spec such as "2,2,5-7" into a
// sorted, deduplicated set of line numbers. Invalid tokens are skipped.
func ParseLineHighlights(spec string) []int {
	seen := make(map[int]bool)

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if lo, hi, isRange := strings.Cut(part, "-"); isRange {
			start, err1 := strconv.Atoi(strings.TrimSpace(lo))
			end, err2 := strconv.Atoi(strings.TrimSpace(hi))
			if err1 != nil || err2 != nil {
				continue
			}
			for n := start; n <= end; n++ {
				if n > 0 {
					seen[n] = true
				}
			}
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			continue
		}
		seen[n] = true
	}

	lines := make([]int, 0, len(seen))
	for n := range seen {
		lines = append(lines, n)
	}
	sort.Ints(lines)
	return lines
}

// InfoString re-serializes the metadata into an equivalent info string.
func (m CodeBlockMeta) InfoString() string {
	var b strings.Builder
	b.WriteString(m.Language)
	if m.Filename != "" {
		fmt.Fprintf(&b, " filename=%q", m.Filename)
	}
	if len(m.Highlights) > 0 {
		b.WriteString(" {")
		b.WriteString(FormatLineHighlights(m.Highlights))
		b.WriteString("}")
	}
	return b.String()
}

// FormatLineHighlights renders a line set back into compact range notation,
// e.g. [1 3 4 5] -> "1,3-5". Input is assumed sorted ascending.
func FormatLineHighlights(lines []int) string {
	if len(lines) == 0 {
		return ""
	}

	var parts []string
	start := lines[0]
	prev := lines[0]

	flush := func() {
		if start == prev {
			parts = append(parts, strconv.Itoa(start))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", start, prev))
		}
	}

	for _, n := range lines[1:] {
		if n == prev+1 {
			prev = n
			continue
		}
		flush()
		start = n
		prev = n
	}
	flush()

	return strings.Join(parts, ",")
}
