package posting

import (
	"regexp"
	"strings"
)

var (
	innerSpaceRegex = regexp.MustCompile(`\s+`)
	blankLinesRegex = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes line endings, trims lines and caps blank runs at one empty line.
// Markdown headings and bullet lines keep their markers.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := blankLinesRegex.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims a line and collapses inner whitespace, keeping bullet indentation
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	content := innerSpaceRegex.ReplaceAllString(trimmed, " ")
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		if indent := len(line) - len(trimmed); indent > 0 {
			return strings.Repeat(" ", indent) + content
		}
	}
	return content
}
