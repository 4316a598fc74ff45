// Package heuristic is the deterministic fallback extractor. It needs no
// external service: it scans normalized text line by line for date-like
// tokens and nearby academic-activity keywords. When nothing at all matches
// it returns a canned semester schedule so callers always get a usable,
// clearly-tagged result.
package heuristic

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/syllacal/syllacal/pkg/syllabus"
)

const (
	// minLineLength qualifies substantial date lines for emission even
	// without a recognized keyword, so genuine schedule rows that use
	// unusual vocabulary are not lost.
	minLineLength = 10
	// titles shorter than minTitleLength are replaced with a synthesized
	// one referencing the date token.
	minTitleLength = 10
	maxTitleLength = 60
)

type Parser struct {
	year int
}

// NewParser returns a parser that completes year-less dates with year.
func NewParser(year int) *Parser {
	return &Parser{year: year}
}

// Parse extracts best-effort event candidates from normalized text and
// reports which origin produced them. A line yields at most one event; date
// patterns are tried in fixed priority order and the first match wins. When
// zero events are found the canned schedule is returned with origin
// CannedSample. Unlike the extraction engine, Parse never splits one line
// into multiple events: it has no reliable way to segment activities within
// a line.
func (p *Parser) Parse(text string) (*syllabus.ProcessedSyllabus, syllabus.Origin) {
	lines := strings.Split(text, "\n")
	var events []syllabus.Event

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		token, date, ok := p.matchDate(line)
		if !ok {
			continue
		}

		context := contextWindow(lines, i)
		if !hasActivityKeyword(context) && len(line) <= minLineLength {
			continue
		}

		events = append(events, syllabus.Event{
			Date:        date,
			Title:       makeTitle(line, token),
			Type:        classify(context),
			Description: line,
			IsRequired:  true,
		})
	}

	if len(events) == 0 {
		log.Info("heuristic parser found no date lines, returning canned schedule")
		return cannedSchedule(), syllabus.CannedSample
	}

	log.Infof("heuristic parser extracted %d events", len(events))
	return &syllabus.ProcessedSyllabus{
		CourseInfo:  syllabus.CourseInfo{},
		Assignments: events,
		Success:     true,
	}, syllabus.HeuristicFallback
}

// matchDate tries each date pattern in priority order and returns the
// matched token and its YYYY-MM-DD conversion.
func (p *Parser) matchDate(line string) (token string, date string, ok bool) {
	for _, pattern := range datePatterns {
		m := pattern.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		date, valid := pattern.toDate(m, p.year)
		if !valid {
			continue
		}
		return m[0], date, true
	}
	return "", "", false
}

// contextWindow concatenates the two lines before and after line i, clipped
// at document bounds, lowercased for keyword matching.
func contextWindow(lines []string, i int) string {
	start := max(0, i-2)
	end := min(len(lines), i+3)
	return strings.ToLower(strings.Join(lines[start:end], " "))
}

// makeTitle takes the first 60 characters of the line; fragments shorter
// than 10 characters become a generic title referencing the date token.
func makeTitle(line, token string) string {
	title := line
	if len(title) > maxTitleLength {
		title = title[:maxTitleLength]
	}
	title = strings.TrimSpace(title)
	if len(title) < minTitleLength {
		return "Class on " + token
	}
	return title
}
