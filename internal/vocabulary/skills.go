package vocabulary

import "strings"

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"reactjs":    "React",
	"vuejs":      "Vue",
	"nodejs":     "Node.js",
	"node":       "Node.js",
	"aws":        "AWS",
	"gcp":        "GCP",
	"sql":        "SQL",
	"nosql":      "NoSQL",
	"postgresql": "PostgreSQL",
	"postgres":   "PostgreSQL",
	"mysql":      "MySQL",
	"mongodb":    "MongoDB",
	"graphql":    "GraphQL",
	"html":       "HTML",
	"css":        "CSS",
	"api":        "API",
	"rest":       "REST",
	"devops":     "DevOps",
	"cicd":       "CI/CD",
	"tdd":        "TDD",
	"github":     "GitHub",
	"gitlab":     "GitLab",
}

// Keyword classifications used by the keyword injector
const (
	ClassTechnology  = "technology"
	ClassMethodology = "methodology"
	ClassTool        = "tool"
	ClassSkill       = "skill"
)

// classIndicators are checked in order; a keyword containing an indicator takes its class.
var classIndicators = []struct {
	Class      string
	Indicators []string
}{
	{Class: ClassTechnology, Indicators: []string{
		"python", "java", "golang", "rust", "ruby", "scala", "kotlin", "swift", "typescript",
		"aws", "azure", "gcp", "cloud", "docker", "kubernetes", "k8s", "sql", "postgres", "mysql",
		"mongo", "redis", "kafka", "spark", "hadoop", "react", "angular", "vue", "node", "django",
		"flask", "spring", "terraform", "linux", "graphql", "html", "css", "tensorflow", "pytorch",
	}},
	{Class: ClassTool, Indicators: []string{
		"git", "jira", "jenkins", "confluence", "slack", "figma", "tableau", "excel", "salesforce",
		"postman", "grafana", "prometheus", "datadog", "ansible", "splunk", "notion",
	}},
	{Class: ClassMethodology, Indicators: []string{
		"agile", "scrum", "kanban", "rest", "devops", "tdd", "bdd", "lean", "waterfall",
		"microservice", "cicd", "sixsigma", "design thinking",
	}},
}

// NormalizeSkillName normalizes a skill name to its canonical display form
func NormalizeSkillName(skillName string) string {
	normalized := strings.TrimSpace(skillName)
	if normalized == "" {
		return ""
	}

	// Check for exact match in normalization map (case-insensitive)
	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	// Mixed case is deliberate, return as-is
	if normalized != strings.ToUpper(normalized) && normalized != strings.ToLower(normalized) {
		return normalized
	}

	// Single lowercase or all-caps word: capitalize first letter only
	if !strings.Contains(normalized, " ") {
		return strings.ToUpper(lower[:1]) + lower[1:]
	}

	return normalized
}

// ClassifyKeyword returns the injection class of a lowercase keyword.
// Indicators of four characters or fewer must prefix the keyword, so that
// "rest" classifies "restful" but not "interest".
func ClassifyKeyword(keyword string) string {
	lower := strings.ToLower(keyword)
	for _, group := range classIndicators {
		for _, indicator := range group.Indicators {
			if len(indicator) <= 4 {
				if strings.HasPrefix(lower, indicator) {
					return group.Class
				}
				continue
			}
			if strings.Contains(lower, indicator) {
				return group.Class
			}
		}
	}
	return ClassSkill
}
