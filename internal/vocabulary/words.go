package vocabulary

// stopWords are dropped by the keyword extractor
var stopWords = toSet([]string{
	"a", "about", "above", "across", "after", "again", "against", "all", "also", "am", "an", "and",
	"any", "are", "as", "at", "be", "because", "been", "before", "being", "below", "between",
	"both", "but", "by", "can", "could", "did", "do", "does", "doing", "down", "during", "each",
	"etc", "few", "for", "from", "further", "had", "has", "have", "having", "he", "her", "here",
	"hers", "herself", "him", "himself", "his", "how", "i", "if", "in", "into", "is", "it", "its",
	"itself", "just", "may", "me", "more", "most", "must", "my", "myself", "no", "nor", "not",
	"now", "of", "off", "on", "once", "only", "or", "other", "our", "ours", "ourselves", "out",
	"over", "own", "per", "same", "shall", "she", "should", "so", "some", "such", "than", "that",
	"the", "their", "theirs", "them", "themselves", "then", "there", "these", "they", "this",
	"those", "through", "to", "too", "under", "until", "up", "upon", "us", "very", "via", "was",
	"we", "were", "what", "when", "where", "which", "while", "who", "whom", "why", "will", "with",
	"within", "without", "would", "you", "your", "yours", "yourself", "yourselves",
	// posting boilerplate
	"able", "ability", "looking", "join", "including", "strong", "work", "working", "role",
	"candidate", "candidates", "ideal", "plus", "preferred", "required", "requirements",
	"responsibilities", "experience", "years", "year", "new", "well", "using", "like",
})

// strongVerbs is the action-verb vocabulary recognized at the start of a bullet.
// Every verb in contextVerbFamilies and generalVerbs must also appear here.
var strongVerbs = toSet([]string{
	"accelerated", "accomplished", "achieved", "administered", "analyzed", "applied",
	"architected", "audited", "automated", "boosted", "built", "championed", "coached",
	"configured", "consolidated", "coordinated", "created", "cultivated", "cut", "debugged",
	"decreased", "delivered", "deployed", "designed", "developed", "devised", "directed",
	"discovered", "doubled", "drove", "educated", "eliminated", "enhanced", "engineered",
	"established", "evaluated", "executed", "expanded", "expedited", "fortified", "founded",
	"generated", "grew", "hardened", "implemented", "improved", "increased", "influenced",
	"initiated", "integrated", "interpreted", "introduced", "invented", "investigated",
	"launched", "led", "leveraged", "managed", "maximized", "mentored", "migrated", "modeled",
	"modernized", "negotiated", "onboarded", "optimized", "orchestrated", "organized",
	"overhauled", "oversaw", "pioneered", "programmed", "provisioned", "quantified",
	"rebuilt", "redesigned", "reduced", "refactored", "researched", "resolved", "restructured",
	"revamped", "safeguarded", "saved", "scaled", "scripted", "secured", "shipped",
	"simplified", "spearheaded", "standardized", "streamlined", "strengthened", "supervised",
	"tripled", "trained", "transformed", "unified", "upgraded",
})

// weakPhrases are weak openers. Multi-word phrases are matched before single words.
var weakPhrases = []string{
	"was responsible for", "responsible for", "duties included", "in charge of", "tasked with",
	"worked on", "worked with", "work on", "helped with", "helped to", "assisted with",
	"assisted in", "participated in", "involved in", "took part in", "contributed to",
	"dealt with", "served as", "was part of",
	"worked", "helped", "assisted", "handled", "did", "made", "got", "tried", "used",
	"utilized", "supported", "performed", "was", "participated", "contributed",
}

// ContextFamily maps a set of domain keywords to candidate verbs
type ContextFamily struct {
	Name     string
	Keywords []string
	Verbs    []string
}

// contextVerbFamilies are scanned in order; the first family with a keyword hit wins
var contextVerbFamilies = []ContextFamily{
	{Name: "team", Keywords: []string{"team", "staff", "engineer", "developer", "intern", "hire", "people"},
		Verbs: []string{"Led", "Mentored", "Directed", "Coordinated", "Supervised"}},
	{Name: "system", Keywords: []string{"system", "architecture", "platform", "backend", "distributed"},
		Verbs: []string{"Architected", "Engineered", "Designed", "Built", "Implemented"}},
	{Name: "revenue", Keywords: []string{"revenue", "sales", "growth", "profit", "income"},
		Verbs: []string{"Generated", "Grew", "Increased", "Drove", "Expanded"}},
	{Name: "cost", Keywords: []string{"cost", "budget", "expense", "spend", "saving"},
		Verbs: []string{"Reduced", "Cut", "Saved", "Streamlined", "Optimized"}},
	{Name: "performance", Keywords: []string{"performance", "latency", "speed", "throughput", "efficien"},
		Verbs: []string{"Optimized", "Accelerated", "Improved", "Enhanced", "Boosted"}},
	{Name: "process", Keywords: []string{"process", "procedure", "operation", "policy", "policies"},
		Verbs: []string{"Streamlined", "Standardized", "Redesigned", "Overhauled", "Simplified"}},
	{Name: "customer", Keywords: []string{"customer", "client", "user", "stakeholder", "partner"},
		Verbs: []string{"Delivered", "Resolved", "Championed", "Cultivated", "Strengthened"}},
	{Name: "data", Keywords: []string{"data", "analytic", "report", "metric", "dashboard", "insight"},
		Verbs: []string{"Analyzed", "Modeled", "Evaluated", "Quantified", "Interpreted"}},
	{Name: "product", Keywords: []string{"product", "launch", "release", "roadmap"},
		Verbs: []string{"Launched", "Shipped", "Delivered", "Introduced", "Spearheaded"}},
	{Name: "project", Keywords: []string{"project", "initiative", "program", "milestone"},
		Verbs: []string{"Spearheaded", "Orchestrated", "Delivered", "Executed", "Directed"}},
	{Name: "automation", Keywords: []string{"automat", "script", "pipeline", "workflow", "manual"},
		Verbs: []string{"Automated", "Scripted", "Streamlined", "Engineered", "Deployed"}},
	{Name: "security", Keywords: []string{"security", "vulnerab", "compliance", "threat", "access"},
		Verbs: []string{"Secured", "Hardened", "Safeguarded", "Audited", "Fortified"}},
	{Name: "research", Keywords: []string{"research", "experiment", "study", "prototype"},
		Verbs: []string{"Investigated", "Researched", "Pioneered", "Discovered", "Evaluated"}},
	{Name: "training", Keywords: []string{"training", "workshop", "onboard", "curriculum", "teach", "mentor"},
		Verbs: []string{"Trained", "Coached", "Educated", "Mentored", "Onboarded"}},
	{Name: "development", Keywords: []string{"application", "web", "software", "feature", "code", "api", "service", "app"},
		Verbs: []string{"Developed", "Built", "Engineered", "Programmed", "Implemented"}},
	{Name: "infrastructure", Keywords: []string{"cloud", "infrastructure", "server", "cluster", "kubernetes", "aws", "database"},
		Verbs: []string{"Deployed", "Migrated", "Provisioned", "Scaled", "Configured"}},
}

// generalVerbs is the fallback when no context family matches
var generalVerbs = []string{
	"Achieved", "Delivered", "Executed", "Implemented", "Drove", "Established", "Spearheaded", "Accomplished",
}

// IsStopWord reports whether token is a stop word
func IsStopWord(token string) bool {
	return stopWords[token]
}

// IsStrongVerb reports whether the lowercase word is in the strong-verb vocabulary
func IsStrongVerb(word string) bool {
	return strongVerbs[word]
}

// StrongVerbCount returns the size of the strong-verb vocabulary
func StrongVerbCount() int {
	return len(strongVerbs)
}

// WeakPhrases returns the weak opener phrases, multi-word phrases first
func WeakPhrases() []string {
	return append([]string(nil), weakPhrases...)
}

// ContextFamilies returns the ordered context verb families
func ContextFamilies() []ContextFamily {
	families := make([]ContextFamily, len(contextVerbFamilies))
	for i, f := range contextVerbFamilies {
		families[i] = ContextFamily{
			Name:     f.Name,
			Keywords: append([]string(nil), f.Keywords...),
			Verbs:    append([]string(nil), f.Verbs...),
		}
	}
	return families
}

// GeneralVerbs returns the fallback strong verbs
func GeneralVerbs() []string {
	return append([]string(nil), generalVerbs...)
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
