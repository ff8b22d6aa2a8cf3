package quantify

import "regexp"

// Achievement types
const (
	TypePerformance       = "performance"
	TypeScale             = "scale"
	TypeTeam              = "team"
	TypeFinancial         = "financial"
	TypeTime              = "time"
	TypeQuality           = "quality"
	TypeCustomer          = "customer"
	TypeProject           = "project"
	TypeAutomation        = "automation"
	TypeCode              = "code"
	TypeGeneral           = "general"
	TypeAlreadyQuantified = "already_quantified"
)

// achievementType pairs an action-verb pattern with a noun/domain pattern
type achievementType struct {
	name        string
	verbPattern *regexp.Regexp
	nounPattern *regexp.Regexp
	metrics     []string
}

// achievementTypes is in tie-break priority order: on equal hit counts the earlier type wins.
var achievementTypes = []achievementType{
	{
		name:        TypePerformance,
		verbPattern: regexp.MustCompile(`(?i)\b(?:improv|optimiz|enhanc|boost|accelerat|speed)\w*`),
		nounPattern: regexp.MustCompile(`(?i)\b(?:performance|latency|throughput|load times?|response times?|efficiency)\b`),
		metrics: []string{
			"X% faster", "X% improvement in performance", "reduced latency by Xms",
			"X% increase in throughput", "X% reduction in load time", "Xx faster response times",
		},
	},
	{
		name:        TypeScale,
		verbPattern: regexp.MustCompile(`(?i)\b(?:scal|grew|grow|expand|migrat)\w*`),
		nounPattern: regexp.MustCompile(`(?i)\b(?:users|requests|traffic|transactions|records|servers|nodes|volume|capacity)\b`),
		metrics: []string{
			"X+ users", "X requests per second", "Xx growth in traffic",
			"X million records", "X% increase in capacity", "scaled to X servers",
		},
	},
	{
		name:        TypeTeam,
		verbPattern: regexp.MustCompile(`(?i)\b(?:led|lead|manag|mentor|supervis|coach|hir|recruit)\w*`),
		nounPattern: regexp.MustCompile(`(?i)\b(?:teams?|engineers|developers|staff|members|people|reports|interns)\b`),
		metrics: []string{
			"team of X engineers", "mentored X developers", "X% improvement in team velocity",
			"hired X team members", "X% reduction in onboarding time", "X cross-functional partners",
		},
	},
	{
		name:        TypeFinancial,
		verbPattern: regexp.MustCompile(`(?i)\b(?:sav|cut|generat|earn|monetiz|negotiat)\w*`),
		nounPattern: regexp.MustCompile(`(?i)\b(?:revenue|costs?|budgets?|profits?|sales|savings|spend|roi|dollars)\b`),
		metrics: []string{
			"$X in savings", "$X in new revenue", "X% cost reduction",
			"X% increase in sales", "$X budget managed", "X% ROI",
		},
	},
	{
		name:        TypeTime,
		verbPattern: regexp.MustCompile(`(?i)\b(?:reduc|shorten|expedit|sped|fast)\w*`),
		nounPattern: regexp.MustCompile(`(?i)\b(?:time|hours|days|weeks|deadlines?|turnaround|cycles?|schedule)\b`),
		metrics: []string{
			"X hours saved per week", "X% faster turnaround", "reduced cycle time by X days",
			"delivered X weeks ahead of schedule", "X% reduction in processing time", "cut time-to-market by X%",
		},
	},
	{
		name:        TypeQuality,
		verbPattern: regexp.MustCompile(`(?i)\b(?:fix|resolv|debug|test|prevent|eliminat)\w*`),
		nounPattern: regexp.MustCompile(`(?i)\b(?:bugs?|defects?|errors?|incidents?|quality|uptime|reliability|coverage|outages?)\b`),
		metrics: []string{
			"X% reduction in bugs", "X% test coverage", "X% uptime",
			"X% fewer incidents", "resolved X defects", "X% decrease in error rate",
		},
	},
	{
		name:        TypeCustomer,
		verbPattern: regexp.MustCompile(`(?i)\b(?:support|assist|serv|satisf|retain|onboard)\w*`),
		nounPattern: regexp.MustCompile(`(?i)\b(?:customers?|clients?|satisfaction|nps|retention|tickets?|feedback)\b`),
		metrics: []string{
			"X% increase in customer satisfaction", "X+ clients served", "NPS of X",
			"X% improvement in retention", "resolved X tickets per week", "X% reduction in response time",
		},
	},
	{
		name:        TypeProject,
		verbPattern: regexp.MustCompile(`(?i)\b(?:deliver|launch|complet|ship|execut|coordinat)\w*`),
		nounPattern: regexp.MustCompile(`(?i)\b(?:projects?|initiatives?|milestones?|releases?|products?|roadmaps?)\b`),
		metrics: []string{
			"X projects delivered", "delivered X weeks early", "X% on-time delivery",
			"X features launched", "$X project budget", "X stakeholders coordinated",
		},
	},
	{
		name:        TypeAutomation,
		verbPattern: regexp.MustCompile(`(?i)\b(?:automat|script|streamlin|orchestrat)\w*`),
		nounPattern: regexp.MustCompile(`(?i)\b(?:pipelines?|workflows?|processes|manual|deployments?|jobs?|ci/cd)\b`),
		metrics: []string{
			"X hours of manual work eliminated", "X% of processes automated", "X% reduction in deployment time",
			"X deployments per day", "X% fewer manual errors", "X workflows automated",
		},
	},
	{
		name:        TypeCode,
		verbPattern: regexp.MustCompile(`(?i)\b(?:develop|built|build|implement|refactor|architect|cod|program|wrote|writ)\w*`),
		nounPattern: regexp.MustCompile(`(?i)\b(?:code|applications?|apis?|services?|modules?|features?|components?|systems?|software)\b`),
		metrics: []string{
			"X% reduction in code complexity", "X+ lines of code", "X% test coverage",
			"X services built", "X% faster build times", "X APIs developed",
		},
	},
}

// generalMetrics are offered when no achievement type matches
var generalMetrics = []string{
	"X% improvement", "[add specific metric]", "X% increase", "$X impact", "X people impacted", "X units delivered",
}

// improvementVerbRegex decides whether an example sentence reads "... by <metric>"
var improvementVerbRegex = regexp.MustCompile(`(?i)\b(?:improv|increas|reduc|decreas|boost|enhanc|optimiz|cut|grew|accelerat|lower|rais)\w*`)

// toForRegex decides whether an example sentence reads "..., achieving <metric>"
var toForRegex = regexp.MustCompile(`(?i)\b(?:to|for)\b`)
