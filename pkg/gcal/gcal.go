// Package gcal maps validated syllabus events onto Google Calendar and
// performs create operations with partial-failure accounting. The caller
// supplies the bearer credential on every call; there is no process-wide
// token cache.
package gcal

import (
	"fmt"
	"strings"
	"time"

	gcalendar "google.golang.org/api/calendar/v3"

	"github.com/syllacal/syllacal/pkg/syllabus"
)

// typeColors selects the Google Calendar color per event type.
var typeColors = map[syllabus.EventType]string{
	syllabus.TypeReading:      "2",  // green
	syllabus.TypeAssignment:   "11", // red
	syllabus.TypeExam:         "5",  // yellow
	syllabus.TypePresentation: "6",  // orange
	syllabus.TypeConference:   "10", // blue
	syllabus.TypeOther:        "1",  // lavender
}

const defaultColor = "1"

// toGoogleEvent converts one event to the Google Calendar representation:
// an all-day span of one day, with course context folded into the
// description.
func toGoogleEvent(event syllabus.Event, info *syllabus.CourseInfo, timezone string) (*gcalendar.Event, error) {
	start, err := time.Parse("2006-01-02", event.Date)
	if err != nil {
		return nil, fmt.Errorf("event %s has invalid date %q: %w", event.ID, event.Date, err)
	}
	end := start.AddDate(0, 0, 1)

	color, ok := typeColors[event.Type]
	if !ok {
		color = defaultColor
	}

	return &gcalendar.Event{
		Summary:     event.Title,
		Description: composeDescription(event, info),
		Start: &gcalendar.EventDateTime{
			Date:     start.Format("2006-01-02"),
			TimeZone: timezone,
		},
		End: &gcalendar.EventDateTime{
			Date:     end.Format("2006-01-02"),
			TimeZone: timezone,
		},
		ColorId:      color,
		Visibility:   "private",
		Transparency: "opaque",
	}, nil
}

// composeDescription joins the original description with course, professor,
// type and required/optional context, skipping absent parts.
func composeDescription(event syllabus.Event, info *syllabus.CourseInfo) string {
	requiredLabel := "Required"
	if !event.IsRequired {
		requiredLabel = "Optional"
	}

	parts := []string{event.Description}
	if info != nil {
		parts = append(parts, "Course: "+info.Title)
		if info.Professor != "" {
			parts = append(parts, "Professor: "+info.Professor)
		}
	}
	parts = append(parts, "Type: "+titleCase(string(event.Type)), requiredLabel)

	nonEmpty := parts[:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "\n\n")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
