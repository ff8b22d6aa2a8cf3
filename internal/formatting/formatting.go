// Package formatting normalizes headings, dates and typography so that resume text parses cleanly in ATS software.
package formatting

import "github.com/jonathan/resume-optimizer/internal/types"

// Change types recorded by the passes
const (
	ChangeHeading    = "heading"
	ChangeDate       = "date"
	ChangeSpecial    = "special_character"
	ChangeWhitespace = "whitespace"
	ChangeNewlines   = "newlines"
	ChangeLineTrim   = "line_trim"
)

// PassResult is the output of one formatting pass, or of the full pipeline
type PassResult struct {
	Original string               `json:"original"`
	Result   string               `json:"result"`
	Changes  []types.FormatChange `json:"changes"`
}

// Changed reports whether the pass modified the text
func (r PassResult) Changed() bool {
	return len(r.Changes) > 0
}

// StandardizeAll runs the heading, date and cleanup passes in that order
func StandardizeAll(text string) PassResult {
	headings := StandardizeHeadings(text)
	dates := StandardizeDates(headings.Result)
	cleaned := Cleanup(dates.Result)

	changes := make([]types.FormatChange, 0, len(headings.Changes)+len(dates.Changes)+len(cleaned.Changes))
	changes = append(changes, headings.Changes...)
	changes = append(changes, dates.Changes...)
	changes = append(changes, cleaned.Changes...)

	return PassResult{Original: text, Result: cleaned.Result, Changes: changes}
}

// changeLog aggregates identical substitutions into one FormatChange with a count
type changeLog struct {
	order   []string
	entries map[string]*types.FormatChange
}

func newChangeLog() *changeLog {
	return &changeLog{entries: make(map[string]*types.FormatChange)}
}

func (l *changeLog) add(kind, original, replacement string, count int) {
	if count <= 0 {
		return
	}
	key := kind + "\x00" + original + "\x00" + replacement
	if entry, ok := l.entries[key]; ok {
		entry.Count += count
		return
	}
	l.entries[key] = &types.FormatChange{Type: kind, Original: original, Replacement: replacement, Count: count}
	l.order = append(l.order, key)
}

func (l *changeLog) list() []types.FormatChange {
	out := make([]types.FormatChange, 0, len(l.order))
	for _, key := range l.order {
		out = append(out, *l.entries[key])
	}
	return out
}
