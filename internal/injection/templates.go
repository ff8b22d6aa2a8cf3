package injection

import "github.com/jonathan/resume-optimizer/internal/vocabulary"

// templates are keyed by keyword classification; each holds one %s for the keyword
var templates = map[string][]string{
	vocabulary.ClassTechnology: {
		"Leveraged %s to build scalable solutions",
		"Developed features using %s",
		"Implemented %s-based components to improve reliability",
		"Built and maintained services with %s",
		"Applied %s to streamline development workflows",
	},
	vocabulary.ClassMethodology: {
		"Applied %s practices to improve delivery cadence",
		"Championed %s principles across the team",
		"Drove adoption of %s to accelerate releases",
		"Followed %s methodology to deliver projects on schedule",
		"Implemented %s workflows to increase team velocity",
	},
	vocabulary.ClassTool: {
		"Leveraged %s to track and manage work",
		"Configured %s to automate routine tasks",
		"Integrated %s into the team toolchain",
		"Administered %s for cross-team collaboration",
		"Streamlined reporting with %s",
	},
	vocabulary.ClassSkill: {
		"Demonstrated %s across cross-functional initiatives",
		"Applied strong %s to deliver business outcomes",
		"Strengthened %s through high-impact projects",
		"Leveraged %s to drive team success",
		"Exercised %s in fast-paced environments",
	},
}

// Templates returns the sentence templates for a classification, falling back to generic skill templates
func Templates(class string) []string {
	t, ok := templates[class]
	if !ok {
		t = templates[vocabulary.ClassSkill]
	}
	return append([]string(nil), t...)
}
