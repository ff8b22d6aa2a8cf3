// Package textutil provides line and bullet helpers shared by the detectors and generators.
package textutil

import (
	"regexp"
	"strings"
)

// bulletPrefixRegex matches a leading bullet marker: a glyph, hyphen/asterisk, or "1." / "1)"
var bulletPrefixRegex = regexp.MustCompile(`^\s*(?:[•●○◦▪■►➢✓✔·\-*]|\d{1,2}[.)])\s*`)

// SplitLines splits text on newlines, trims each line, and drops blank lines.
// Inline bullet glyphs also start a new line, so "• a • b" yields two lines.
func SplitLines(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, glyph := range []string{"•", "●", "▪", "■", "►", "➢"} {
		text = strings.ReplaceAll(text, glyph, "\n"+glyph)
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// StripBullet separates a leading bullet marker from the rest of the line.
// The returned marker keeps its surrounding whitespace so it can be re-attached verbatim.
func StripBullet(line string) (marker, rest string) {
	loc := bulletPrefixRegex.FindStringIndex(line)
	if loc == nil {
		return "", line
	}
	return line[:loc[1]], line[loc[1]:]
}

// IsBulletLine reports whether a line starts with a bullet marker
func IsBulletLine(line string) bool {
	marker, rest := StripBullet(line)
	return strings.TrimSpace(marker) != "" && strings.TrimSpace(rest) != ""
}

// CountBulletLines counts the lines of text that start with a bullet marker
func CountBulletLines(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if IsBulletLine(line) {
			count++
		}
	}
	return count
}

// FirstBulletMarker returns the marker used by the first bullet line in text, normalized
// to "<glyph> ", or "" when text has no bullets.
func FirstBulletMarker(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if IsBulletLine(line) {
			marker, _ := StripBullet(line)
			return strings.TrimSpace(marker) + " "
		}
	}
	return ""
}
