package formatting

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/jonathan/resume-optimizer/internal/vocabulary"
)

// datePattern is a numeric date family and the submatch indexes of its month and year
type datePattern struct {
	regex      *regexp.Regexp
	monthGroup int
	yearGroup  int
}

var datePatterns = []datePattern{
	{regex: regexp.MustCompile(`\b(0?[1-9]|1[0-2])/(\d{4})\b`), monthGroup: 1, yearGroup: 2}, // MM/YYYY
	{regex: regexp.MustCompile(`\b(\d{4})-(0[1-9]|1[0-2])\b`), monthGroup: 2, yearGroup: 1},  // YYYY-MM
	{regex: regexp.MustCompile(`\b(0?[1-9]|1[0-2])-(\d{4})\b`), monthGroup: 1, yearGroup: 2}, // MM-YYYY
}

type dateMatch struct {
	start, end  int
	replacement string
}

// findDates returns non-overlapping numeric date matches, ordered right-to-left
func findDates(text string) []dateMatch {
	var all []dateMatch
	for _, p := range datePatterns {
		for _, loc := range p.regex.FindAllStringSubmatchIndex(text, -1) {
			month, err := strconv.Atoi(text[loc[2*p.monthGroup]:loc[2*p.monthGroup+1]])
			if err != nil {
				continue
			}
			name := vocabulary.MonthName(month)
			if name == "" {
				continue
			}
			year := text[loc[2*p.yearGroup]:loc[2*p.yearGroup+1]]
			all = append(all, dateMatch{start: loc[0], end: loc[1], replacement: name + " " + year})
		}
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].start > all[j].start })

	// keep the rightmost match of any overlapping group
	var kept []dateMatch
	for _, m := range all {
		if len(kept) > 0 && m.end > kept[len(kept)-1].start {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

// HasNumericDates reports whether text contains any MM/YYYY, YYYY-MM or MM-YYYY date
func HasNumericDates(text string) bool {
	for _, p := range datePatterns {
		if p.regex.MatchString(text) {
			return true
		}
	}
	return false
}

// StandardizeDates rewrites numeric dates to "Month YYYY", replacing right-to-left
func StandardizeDates(text string) PassResult {
	log := newChangeLog()
	matches := findDates(text)

	result := text
	for _, m := range matches {
		log.add(ChangeDate, text[m.start:m.end], m.replacement, 1)
		result = result[:m.start] + m.replacement + result[m.end:]
	}

	return PassResult{Original: text, Result: result, Changes: reverse(log.list())}
}
