package vocabulary

import "sort"

// Canonical section headings
const (
	HeadingExperience = "Work Experience"
	HeadingEducation  = "Education"
	HeadingSkills     = "Skills"
	HeadingProjects   = "Projects"
	HeadingCerts      = "Certifications"
	HeadingSummary    = "Professional Summary"
)

// headingSynonyms maps lowercase heading variants to their canonical heading
var headingSynonyms = map[string]string{
	"experience":                  HeadingExperience,
	"work experience":             HeadingExperience,
	"professional experience":     HeadingExperience,
	"employment history":          HeadingExperience,
	"work history":                HeadingExperience,
	"employment":                  HeadingExperience,
	"career history":              HeadingExperience,
	"education":                   HeadingEducation,
	"academic background":         HeadingEducation,
	"educational background":      HeadingEducation,
	"academic history":            HeadingEducation,
	"skills":                      HeadingSkills,
	"technical skills":            HeadingSkills,
	"core competencies":           HeadingSkills,
	"areas of expertise":          HeadingSkills,
	"key skills":                  HeadingSkills,
	"projects":                    HeadingProjects,
	"personal projects":           HeadingProjects,
	"key projects":                HeadingProjects,
	"certifications":              HeadingCerts,
	"licenses and certifications": HeadingCerts,
	"certificates":                HeadingCerts,
	"summary":                     HeadingSummary,
	"professional summary":        HeadingSummary,
	"profile":                     HeadingSummary,
	"about me":                    HeadingSummary,
	"objective":                   HeadingSummary,
	"career objective":            HeadingSummary,
}

// monthNames is indexed by month number minus one
var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// SmartCharacter is a typographic character and its ASCII replacement
type SmartCharacter struct {
	Char        string
	Replacement string
	Name        string
}

// smartCharacters are normalized by the cleanup pass, in replacement order
var smartCharacters = []SmartCharacter{
	{Char: "\u201c", Replacement: "\"", Name: "left double quote"},
	{Char: "\u201d", Replacement: "\"", Name: "right double quote"},
	{Char: "\u2018", Replacement: "'", Name: "left single quote"},
	{Char: "\u2019", Replacement: "'", Name: "right single quote"},
	{Char: "\u2014", Replacement: "-", Name: "em dash"},
	{Char: "\u2013", Replacement: "-", Name: "en dash"},
	{Char: "\u2026", Replacement: "...", Name: "ellipsis"},
	{Char: "\u00a0", Replacement: " ", Name: "non-breaking space"},
	{Char: "\u2022", Replacement: "-", Name: "bullet"},
	{Char: "\u25cf", Replacement: "-", Name: "black circle bullet"},
	{Char: "\u25aa", Replacement: "-", Name: "small square bullet"},
	{Char: "\u25ba", Replacement: "-", Name: "pointer bullet"},
	{Char: "\u27a2", Replacement: "-", Name: "arrowhead bullet"},
	{Char: "\u2713", Replacement: "-", Name: "check mark bullet"},
}

// CanonicalHeading returns the canonical heading for a lowercase heading variant
func CanonicalHeading(heading string) (string, bool) {
	canonical, ok := headingSynonyms[heading]
	return canonical, ok
}

// HeadingSynonyms returns the heading variants ordered longest first, so that
// regex alternations prefer "work experience" over "experience".
func HeadingSynonyms() []string {
	synonyms := make([]string, 0, len(headingSynonyms))
	for s := range headingSynonyms {
		synonyms = append(synonyms, s)
	}
	sort.Slice(synonyms, func(i, j int) bool {
		if len(synonyms[i]) != len(synonyms[j]) {
			return len(synonyms[i]) > len(synonyms[j])
		}
		return synonyms[i] < synonyms[j]
	})
	return synonyms
}

// MonthName returns the English month name for 1..12, or "" when out of range
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// SmartCharacters returns the typographic normalization table
func SmartCharacters() []SmartCharacter {
	return append([]SmartCharacter(nil), smartCharacters...)
}
