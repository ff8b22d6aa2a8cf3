package keywords

import "sort"

// MatchResult is the overlap between profile and posting keywords
type MatchResult struct {
	Score   float64  `json:"score"`
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// Match scores profile keywords against posting keywords.
// Score is 100 * |matched| / |posting|, and 0 when the posting has no keywords.
// Matched and Missing are sorted and together partition the posting keywords.
func Match(profileKeywords, postingKeywords Set) MatchResult {
	matched := postingKeywords.Intersect(profileKeywords)
	missing := postingKeywords.Difference(profileKeywords)

	score := 0.0
	if postingKeywords.Len() > 0 {
		score = 100 * float64(matched.Len()) / float64(postingKeywords.Len())
	}

	return MatchResult{
		Score:   score,
		Matched: matched.Sorted(),
		Missing: missing.Sorted(),
	}
}

// RankByFrequency orders keywords by descending frequency in the posting, ties
// alphabetical, and truncates to limit when limit > 0.
func RankByFrequency(kws []string, posting string, limit int) []string {
	freq := Frequencies(posting)
	ranked := make([]string, len(kws))
	copy(ranked, kws)
	sort.SliceStable(ranked, func(i, j int) bool {
		if freq[ranked[i]] != freq[ranked[j]] {
			return freq[ranked[i]] > freq[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
