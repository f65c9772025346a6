package regolith

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// annotate appends to every line of text a "# ..." comment describing the
// tokens that start on it. Comments are aligned in one column. The result is
// only meaningful under IgnorePatternWhitespace, which formatted text
// requires anyway.
func annotate(text []byte, tokens []Token) string {
	lineStarts := []int{0}
	for i, c := range text {
		if c == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	comments := make([][]string, len(lineStarts))
	for _, t := range tokens {
		if t.End <= t.Start {
			continue
		}
		line := sort.SearchInts(lineStarts, t.Start+1) - 1
		comments[line] = append(comments[line], t.Description())
	}

	lines := make([]string, len(lineStarts))
	width := 0
	for i, start := range lineStarts {
		end := len(text)
		if i+1 < len(lineStarts) {
			end = lineStarts[i+1] - 1
		}
		lines[i] = string(text[start:end])
		if len(comments[i]) > 0 {
			width = max(width, utf8.RuneCountInString(lines[i]))
		}
	}

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)
		if len(comments[i]) == 0 {
			continue
		}
		sb.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(line)))
		sb.WriteString(" # ")
		sb.WriteString(strings.Join(comments[i], ", "))
	}
	return sb.String()
}
