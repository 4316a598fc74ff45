package syllabus

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	// UnknownCourse and friends are the placeholders used when course
	// information cannot be extracted from the source text.
	UnknownCourse    = "Unknown Course"
	UnknownProfessor = "Unknown"
	UnknownSemester  = "Unknown"

	idPrefix = "assignment"
)

// IDGenerator produces batch-unique event identifiers. The sequence component
// keeps IDs unique even when the clock does not advance between calls within
// a batch.
type IDGenerator struct {
	now func() time.Time
	seq int
}

func NewIDGenerator(now func() time.Time) *IDGenerator {
	return &IDGenerator{now: now}
}

// Next returns an identifier of the form assignment_<sequence>_<unixMillis>.
func (g *IDGenerator) Next() string {
	g.seq++
	return fmt.Sprintf("%s_%d_%d", idPrefix, g.seq, g.now().UnixMilli())
}

// NormalizeEvents enforces the canonical event schema on output from either
// extraction path. Invalid events are repaired in place via defaults rather
// than dropped: dropping would silently lose syllabus content. fallbackDate
// replaces unparseable dates and must itself be a valid YYYY-MM-DD date.
func NormalizeEvents(events []Event, ids *IDGenerator, fallbackDate string) []Event {
	normalized := make([]Event, 0, len(events))
	for _, e := range events {
		if e.ID == "" {
			e.ID = ids.Next()
		}
		if !e.Type.IsValid() {
			log.Debugf("coercing unknown event type %q to %q", e.Type, TypeOther)
			e.Type = TypeOther
		}
		if !ValidDate(e.Date) {
			log.Warnf("event %s has unparseable date %q, repairing to %s", e.ID, e.Date, fallbackDate)
			e.Date = fallbackDate
		}
		if e.Title == "" {
			e.Title = fmt.Sprintf("Untitled %s", e.Type)
		}
		normalized = append(normalized, e)
	}
	return normalized
}

// NormalizeCourseInfo back-fills required course fields with placeholders.
func NormalizeCourseInfo(info CourseInfo) CourseInfo {
	if info.Title == "" {
		info.Title = UnknownCourse
	}
	if info.Professor == "" {
		info.Professor = UnknownProfessor
	}
	if info.Semester == "" {
		info.Semester = UnknownSemester
	}
	return info
}

// ValidDate reports whether date is a parseable YYYY-MM-DD calendar date.
func ValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
