package ics

import (
	"fmt"
	"strings"
	"time"

	"github.com/syllacal/syllacal/internal/config"
	"github.com/syllacal/syllacal/internal/utils"
	"github.com/syllacal/syllacal/pkg/syllabus"
)

const (
	dateLayout    = "20060102"
	stampLayout   = "20060102T150405Z"
	prodID        = "-//Syllabus Calendar//Syllacal//EN"
	statusFirm    = "STATUS:CONFIRMED"
	statusLoose   = "STATUS:TENTATIVE"
	defaultName   = "Syllabus Calendar"
	defaultSource = "syllabus"
)

// Encoder serializes validated events into iCalendar text. Events are
// modeled as all-day spans of exactly one day; TimeStart/TimeEnd on the
// source event are display-only and never encoded.
type Encoder struct {
	uidDomain string
	clock     utils.Clock
}

func NewEncoder(cfg config.Application, clock utils.Clock) *Encoder {
	return &Encoder{uidDomain: cfg.Calendar.UIDDomain, clock: clock}
}

// EncodeCalendar renders a full batch into one VCALENDAR container.
func (e *Encoder) EncodeCalendar(events []syllabus.Event, info syllabus.CourseInfo) (string, error) {
	lines := e.header(info)
	for _, event := range events {
		block, err := e.eventBlock(event)
		if err != nil {
			return "", err
		}
		lines = append(lines, block...)
	}
	lines = append(lines, "END:VCALENDAR")
	// content lines are CRLF-terminated, including the last one
	return strings.Join(lines, "\r\n") + "\r\n", nil
}

// EncodeEvent renders a single event with the same per-event block logic,
// in a container of one.
func (e *Encoder) EncodeEvent(event syllabus.Event, info syllabus.CourseInfo) (string, error) {
	return e.EncodeCalendar([]syllabus.Event{event}, info)
}

func (e *Encoder) header(info syllabus.CourseInfo) []string {
	name := info.Title
	if name == "" {
		name = defaultName
	}
	source := info.Title
	if source == "" {
		source = defaultSource
	}
	return []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"X-WR-CALNAME:" + escapeText(name),
		"X-WR-CALDESC:" + escapeText("Generated from "+source),
	}
}

func (e *Encoder) eventBlock(event syllabus.Event) ([]string, error) {
	start, err := time.Parse("2006-01-02", event.Date)
	if err != nil {
		return nil, fmt.Errorf("event %s has invalid date %q: %w", event.ID, event.Date, err)
	}
	end := start.AddDate(0, 0, 1)

	status := statusFirm
	if !event.IsRequired {
		status = statusLoose
	}

	return []string{
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:%s@%s", event.ID, e.uidDomain),
		"DTSTAMP:" + e.clock.Now().UTC().Format(stampLayout),
		"DTSTART;VALUE=DATE:" + start.Format(dateLayout),
		"DTEND;VALUE=DATE:" + end.Format(dateLayout),
		"SUMMARY:" + escapeText(event.Title),
		"DESCRIPTION:" + escapeText(event.Description),
		"CATEGORIES:" + strings.ToUpper(string(event.Type)),
		status,
		"END:VEVENT",
	}, nil
}

// escapeText applies RFC 5545 text escaping. Backslash must go first:
// escaping it later would double-escape the backslashes introduced by the
// comma, semicolon and newline substitutions.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}
