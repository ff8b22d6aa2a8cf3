package formatting

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/vocabulary"
)

var (
	// spaceRunRegex matches runs of spaces/tabs that are not a single space
	spaceRunRegex = regexp.MustCompile(`[ \t]{2,}|\t`)
	// newlineRunRegex matches three or more consecutive newlines
	newlineRunRegex = regexp.MustCompile(`\n{3,}`)
)

// Cleanup normalizes typographic characters to ASCII, collapses space runs,
// trims line edges and caps consecutive newlines at two.
func Cleanup(text string) PassResult {
	log := newChangeLog()
	result := strings.ReplaceAll(text, "\r\n", "\n")

	for _, sc := range vocabulary.SmartCharacters() {
		if n := strings.Count(result, sc.Char); n > 0 {
			result = strings.ReplaceAll(result, sc.Char, sc.Replacement)
			log.add(ChangeSpecial, sc.Char, sc.Replacement, n)
		}
	}

	if n := len(spaceRunRegex.FindAllStringIndex(result, -1)); n > 0 {
		result = spaceRunRegex.ReplaceAllString(result, " ")
		log.add(ChangeWhitespace, "space/tab run", " ", n)
	}

	lines := strings.Split(result, "\n")
	trimmed := 0
	for i, line := range lines {
		if t := strings.TrimSpace(line); t != line {
			lines[i] = t
			trimmed++
		}
	}
	result = strings.Join(lines, "\n")
	log.add(ChangeLineTrim, "line edge whitespace", "", trimmed)

	if n := len(newlineRunRegex.FindAllStringIndex(result, -1)); n > 0 {
		result = newlineRunRegex.ReplaceAllString(result, "\n\n")
		log.add(ChangeNewlines, "3+ newlines", "\n\n", n)
	}

	if t := strings.Trim(result, "\n"); t != result {
		result = t
		log.add(ChangeNewlines, "leading/trailing newlines", "", 1)
	}

	return PassResult{Original: text, Result: result, Changes: log.list()}
}
