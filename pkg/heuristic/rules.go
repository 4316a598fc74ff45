package heuristic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/syllacal/syllacal/pkg/syllabus"
)

// datePattern is one recognizable date shape. Patterns are tried in the
// order of the datePatterns slice; the first match on a line wins and the
// remaining patterns are not consulted for that line.
type datePattern struct {
	name   string
	re     *regexp.Regexp
	toDate func(m []string, year int) (string, bool)
}

var monthNumbers = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

func monthNumber(name string) (int, bool) {
	n, ok := monthNumbers[strings.ToLower(strings.TrimSuffix(name, "."))]
	return n, ok
}

var datePatterns = []datePattern{
	{
		name: "weekday month day", // "Monday, September 15"
		re:   regexp.MustCompile(`(?i)\b([a-z]+day),?\s+([a-z]+)\.?\s+(\d{1,2})\b`),
		toDate: func(m []string, year int) (string, bool) {
			month, ok := monthNumber(m[2])
			if !ok {
				return "", false
			}
			return fmt.Sprintf("%d-%02d-%s", year, month, pad(m[3])), true
		},
	},
	{
		name: "month day", // "September 15" / "Sept. 15"
		re:   regexp.MustCompile(`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sept?(?:ember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+(\d{1,2})\b`),
		toDate: func(m []string, year int) (string, bool) {
			month, ok := monthNumber(m[1])
			if !ok {
				return "", false
			}
			return fmt.Sprintf("%d-%02d-%s", year, month, pad(m[2])), true
		},
	},
	{
		name: "numeric slash", // "9/15"
		re:   regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})\b`),
		toDate: func(m []string, year int) (string, bool) {
			return fmt.Sprintf("%d-%s-%s", year, pad(m[1]), pad(m[2])), true
		},
	},
	{
		name: "numeric dash", // "9-15"
		re:   regexp.MustCompile(`\b(\d{1,2})-(\d{1,2})\b`),
		toDate: func(m []string, year int) (string, bool) {
			return fmt.Sprintf("%d-%s-%s", year, pad(m[1]), pad(m[2])), true
		},
	},
	{
		name: "day month year", // "15 September 2025"
		re:   regexp.MustCompile(`(?i)\b(\d{1,2})\s+([a-z]+)\.?\s+(\d{4})\b`),
		toDate: func(m []string, _ int) (string, bool) {
			month, ok := monthNumber(m[2])
			if !ok {
				return "", false
			}
			return fmt.Sprintf("%s-%02d-%s", m[3], month, pad(m[1])), true
		},
	},
}

func pad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// classificationRule maps context keywords to an event type. Rules are
// evaluated in slice order, first match wins; the order is the documented
// precedence, there is no hidden branching.
type classificationRule struct {
	keywords  []string
	eventType syllabus.EventType
}

var classificationRules = []classificationRule{
	{[]string{"reading", "chapter"}, syllabus.TypeReading},
	{[]string{"assignment", "homework"}, syllabus.TypeAssignment},
	{[]string{"exam", "quiz", "midterm", "final"}, syllabus.TypeExam},
	{[]string{"project"}, syllabus.TypeAssignment},
	{[]string{"presentation"}, syllabus.TypePresentation},
	{[]string{"conference", "meeting"}, syllabus.TypeConference},
	{[]string{"lecture", "class", "discussion"}, syllabus.TypeReading},
}

// activityKeywords qualify a date line for emission even when the line is
// short. Broader than the classification vocabulary on purpose: "due" or
// "deadline" mark an activity without naming its kind.
var activityKeywords = []string{
	"assignment", "homework", "project", "exam", "quiz", "midterm", "final",
	"due", "submit", "deadline", "lab", "reading", "chapter", "problem set",
	"lecture", "class", "discussion", "presentation", "conference", "meeting",
}

// classify returns the event type for a lowercased context window. Windows
// without any classification keyword fall through to TypeOther.
func classify(context string) syllabus.EventType {
	for _, rule := range classificationRules {
		for _, kw := range rule.keywords {
			if strings.Contains(context, kw) {
				return rule.eventType
			}
		}
	}
	return syllabus.TypeOther
}

func hasActivityKeyword(context string) bool {
	for _, kw := range activityKeywords {
		if strings.Contains(context, kw) {
			return true
		}
	}
	return false
}
