package personalization

import (
	"strings"

	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
)

const (
	maxChallenges    = 5
	maxLearningPaths = 5
	maxFeatures      = 6
)

var welcomeBySkill = map[onboarding.SkillLevel]string{
	onboarding.SkillBeginner:     "Welcome to your coding journey! We're excited to help you build a strong foundation.",
	onboarding.SkillIntermediate: "Welcome back! Let's take your skills to the next level.",
	onboarding.SkillAdvanced:     "Welcome, expert! Let's tackle some challenging problems together.",
}

var welcomeByStyle = map[onboarding.LearningStyle]string{
	onboarding.StyleAIMentorship: "Your AI mentor is ready to guide you through personalized lessons.",
	onboarding.StyleCodeReview:   "Our code review system will help you write better, cleaner code.",
	onboarding.StyleBoth:         "You'll get the best of both worlds with AI mentorship and code reviews.",
}

const welcomeGoalsFragment = "We've tailored your experience to help you achieve your goals."

var challengeTopicsBySkill = map[onboarding.SkillLevel][]string{
	onboarding.SkillBeginner:     {"hello-world", "variables-basics", "loops-intro", "functions-basics", "arrays-intro"},
	onboarding.SkillIntermediate: {"data-structures", "sorting-algorithms", "oop-concepts", "api-integration", "testing-basics"},
	onboarding.SkillAdvanced:     {"system-design", "performance-optimization", "concurrency-patterns", "design-patterns", "architecture-review"},
}

var defaultPathsBySkill = map[onboarding.SkillLevel][]string{
	onboarding.SkillBeginner:     {"programming-fundamentals", "problem-solving-basics"},
	onboarding.SkillIntermediate: {"intermediate-algorithms", "software-design-principles"},
	onboarding.SkillAdvanced:     {"advanced-system-design", "expert-code-optimization"},
}

// PathRule maps a goal to a learning path when Match accepts it.
type PathRule struct {
	Match  func(goal string) bool
	PathID string
}

// ContainsAny matches goals containing any keyword, ignoring case.
func ContainsAny(keywords ...string) func(string) bool {
	return func(goal string) bool {
		goal = strings.ToLower(goal)
		for _, kw := range keywords {
			if strings.Contains(goal, strings.ToLower(kw)) {
				return true
			}
		}
		return false
	}
}

// GoalPathRules is evaluated in order for every goal; every matching rule
// contributes its path.
var GoalPathRules = []PathRule{
	{Match: ContainsAny("web", "frontend"), PathID: "web-development-fundamentals"},
	{Match: ContainsAny("backend", "server"), PathID: "backend-development-path"},
	{Match: ContainsAny("mobile", "app"), PathID: "mobile-development-basics"},
	{Match: ContainsAny("data", "science"), PathID: "data-science-foundations"},
	{Match: ContainsAny("algorithm", "interview"), PathID: "algorithm-interview-prep"},
}

var styleFeatures = []struct {
	styles   []onboarding.LearningStyle
	features []string
}{
	{
		styles:   []onboarding.LearningStyle{onboarding.StyleAIMentorship, onboarding.StyleBoth},
		features: []string{"ai-tutor", "interactive-lessons", "concept-explanations"},
	},
	{
		styles:   []onboarding.LearningStyle{onboarding.StyleCodeReview, onboarding.StyleBoth},
		features: []string{"code-challenges", "peer-review", "automated-feedback"},
	},
}

var baseFeatures = []string{"progress-tracking", "achievement-system", "coding-playground"}

// Recommend derives the personalized block for a completed profile. The same
// profile always yields the same output.
func Recommend(p onboarding.Profile) onboarding.Recommendations {
	return onboarding.Recommendations{
		WelcomeMessage:         WelcomeMessage(p),
		SuggestedChallenges:    SuggestChallenges(p),
		SuggestedLearningPaths: SuggestLearningPaths(p),
		SuggestedFeatures:      SuggestFeatures(p.LearningStyle),
	}
}

func WelcomeMessage(p onboarding.Profile) string {
	parts := make([]string, 0, 4)
	if msg, ok := welcomeBySkill[p.SkillLevel]; ok {
		parts = append(parts, msg)
	}
	if msg, ok := welcomeByStyle[p.LearningStyle]; ok {
		parts = append(parts, msg)
	}
	parts = append(parts, "Let's start with "+p.PrimaryLanguage+"!")
	if len(p.Goals) > 0 {
		parts = append(parts, welcomeGoalsFragment)
	}
	return strings.Join(parts, " ")
}

func SuggestChallenges(p onboarding.Profile) []string {
	topics := challengeTopicsBySkill[p.SkillLevel]
	out := make([]string, 0, maxChallenges)
	for _, topic := range topics {
		if len(out) == maxChallenges {
			break
		}
		out = append(out, topic+"-"+p.PrimaryLanguage)
	}
	return out
}

func SuggestLearningPaths(p onboarding.Profile) []string {
	candidates := make([]string, 0, len(p.Goals)+2)
	for _, goal := range p.Goals {
		for _, rule := range GoalPathRules {
			if rule.Match(goal) {
				candidates = append(candidates, rule.PathID)
			}
		}
	}
	candidates = append(candidates, defaultPathsBySkill[p.SkillLevel]...)

	return firstUnique(candidates, maxLearningPaths)
}

func SuggestFeatures(style onboarding.LearningStyle) []string {
	candidates := make([]string, 0, 9)
	for _, group := range styleFeatures {
		for _, s := range group.styles {
			if s == style {
				candidates = append(candidates, group.features...)
				break
			}
		}
	}
	candidates = append(candidates, baseFeatures...)

	return firstUnique(candidates, maxFeatures)
}

func firstUnique(in []string, limit int) []string {
	out := make([]string, 0, min(len(in), limit))
	seen := make(map[string]struct{}, len(in))
	for _, item := range in {
		if len(out) == limit {
			break
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
