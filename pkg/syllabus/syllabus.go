package syllabus

// EventType classifies a dated academic activity.
type EventType string

const (
	TypeReading      EventType = "reading"
	TypeAssignment   EventType = "assignment"
	TypeExam         EventType = "exam"
	TypePresentation EventType = "presentation"
	TypeConference   EventType = "conference"
	TypeOther        EventType = "other"
)

// EventTypes lists every valid type, in the order the extraction prompt
// presents them.
var EventTypes = []EventType{
	TypeReading,
	TypeAssignment,
	TypeExam,
	TypePresentation,
	TypeConference,
	TypeOther,
}

// IsValid reports whether t is a member of the closed type enumeration.
func (t EventType) IsValid() bool {
	for _, known := range EventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Origin tells which extraction path produced a result. It is set by the
// component that actually produced the data, never re-derived from content.
type Origin string

const (
	RealExtraction    Origin = "real_extraction"
	HeuristicFallback Origin = "heuristic_fallback"
	CannedSample      Origin = "canned_sample"
)

// Event is one dated academic activity extracted from a syllabus.
// Date is a calendar date (YYYY-MM-DD) with no time component; downstream
// consumers treat it as the start of an all-day span. TimeStart/TimeEnd are
// display-only HH:MM hints and are never encoded into calendar start/end.
type Event struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Title       string    `json:"title"`
	Type        EventType `json:"type"`
	Description string    `json:"description,omitempty"`
	IsRequired  bool      `json:"isRequired"`
	TimeStart   string    `json:"timeStart,omitempty"`
	TimeEnd     string    `json:"timeEnd,omitempty"`
}

// CourseInfo describes the course a syllabus belongs to. Title, Professor and
// Semester are always non-empty after normalization (placeholders when the
// source text gave nothing usable).
type CourseInfo struct {
	Title     string `json:"title"`
	Professor string `json:"professor"`
	Semester  string `json:"semester"`
	ClassTime string `json:"classTime,omitempty"`
	Room      string `json:"room,omitempty"`
}

// ProcessedSyllabus is the unit passed between pipeline stages. It is created
// fresh per upload and immutable once returned from the pipeline.
type ProcessedSyllabus struct {
	CourseInfo  CourseInfo `json:"courseInfo"`
	Assignments []Event    `json:"assignments"`
	Success     bool       `json:"success"`
	Error       string     `json:"error,omitempty"`
}
