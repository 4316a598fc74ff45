package syllabus

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`[ \t]+`)

// CleanText normalizes raw extracted document text: line endings become \n,
// runs of spaces and tabs collapse to a single space, and the result is
// trimmed. Purely lexical, never fails; empty input yields an empty string.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = multiSpace.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
