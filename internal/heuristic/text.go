package heuristic

import (
	"regexp"
	"strings"
)

var spaceRunRe = regexp.MustCompile(`[ \t]+`)

var newlineRunRe = regexp.MustCompile(`\n+`)

// CleanText normalizes whitespace in selected text: tabs become spaces, runs
// of spaces collapse to a single space, runs of newlines collapse to a single
// newline, and the result is trimmed. The function is idempotent.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// Collapse space runs within each line and strip line edges so blank
	// lines reduce to empty strings before newline collapsing.
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRunRe.ReplaceAllString(line, " "))
	}

	result := newlineRunRe.ReplaceAllString(strings.Join(lines, "\n"), "\n")
	return strings.TrimSpace(result)
}
