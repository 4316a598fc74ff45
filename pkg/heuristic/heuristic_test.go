package heuristic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syllacal/syllacal/pkg/syllabus"
)

func TestParse(t *testing.T) {
	p := NewParser(2025)

	t.Run("extracts dated lines with activity keywords", func(t *testing.T) {
		// blank spacer lines keep each event's two-line context window
		// from picking up its neighbors' keywords
		text := strings.Join([]string{
			"Course Schedule",
			"Monday, September 15 - Read Chapter 3 before class",
			"",
			"",
			"9/22 Homework 1 due at midnight",
			"",
			"",
			"October 6 Midterm exam in the usual room",
		}, "\n")

		result, origin := p.Parse(text)
		require.Len(t, result.Assignments, 3)
		assert.Equal(t, syllabus.HeuristicFallback, origin)
		assert.True(t, result.Success)

		assert.Equal(t, "2025-09-15", result.Assignments[0].Date)
		assert.Equal(t, syllabus.TypeReading, result.Assignments[0].Type)
		assert.Equal(t, "2025-09-22", result.Assignments[1].Date)
		assert.Equal(t, syllabus.TypeAssignment, result.Assignments[1].Type)
		assert.Equal(t, "2025-10-06", result.Assignments[2].Date)
		assert.Equal(t, syllabus.TypeExam, result.Assignments[2].Type)
	})

	t.Run("keeps substantial date lines without recognized keywords", func(t *testing.T) {
		result, origin := p.Parse("September 30 - Guest speaker on antitrust remedies")
		require.Len(t, result.Assignments, 1)
		assert.Equal(t, syllabus.HeuristicFallback, origin)
		assert.Equal(t, syllabus.TypeOther, result.Assignments[0].Type)
	})

	t.Run("classifies from surrounding context lines", func(t *testing.T) {
		text := strings.Join([]string{
			"Presentation schedule:",
			"11/20",
			"Sign-up sheet posted outside the office",
		}, "\n")
		result, _ := p.Parse(text)
		require.Len(t, result.Assignments, 1)
		assert.Equal(t, syllabus.TypePresentation, result.Assignments[0].Type)
	})

	t.Run("one line yields at most one event", func(t *testing.T) {
		// both a month name and a numeric token appear; first pattern wins
		result, _ := p.Parse("September 15 or 9/16 - reading quiz in class")
		require.Len(t, result.Assignments, 1)
		assert.Equal(t, "2025-09-15", result.Assignments[0].Date)
	})

	t.Run("day month year pattern keeps its own year", func(t *testing.T) {
		result, _ := p.Parse("Paper due 15 September 2024 by 5pm, submit online")
		require.Len(t, result.Assignments, 1)
		assert.Equal(t, "2024-09-15", result.Assignments[0].Date)
	})

	t.Run("titles are clipped to 60 characters", func(t *testing.T) {
		long := "October 7 " + strings.Repeat("discussion of the assigned cases ", 4)
		result, _ := p.Parse(long)
		require.Len(t, result.Assignments, 1)
		assert.LessOrEqual(t, len(result.Assignments[0].Title), 60)
	})

	t.Run("short fragments get a synthesized title referencing the date token", func(t *testing.T) {
		text := strings.Join([]string{
			"Exam schedule below",
			"10/21",
			"",
		}, "\n")
		result, _ := p.Parse(text)
		require.Len(t, result.Assignments, 1)
		assert.Equal(t, "Class on 10/21", result.Assignments[0].Title)
	})

	t.Run("no recognizable dates returns the canned schedule", func(t *testing.T) {
		result, origin := p.Parse("This syllabus discusses grading policy and office hours only.")
		assert.Equal(t, syllabus.CannedSample, origin)
		assert.True(t, result.Success)
		assert.GreaterOrEqual(t, len(result.Assignments), 24)
		assert.Equal(t, "CSE 421/521 - Operating Systems", result.CourseInfo.Title)
	})

	t.Run("empty input returns the canned schedule", func(t *testing.T) {
		result, origin := p.Parse("")
		assert.Equal(t, syllabus.CannedSample, origin)
		assert.NotEmpty(t, result.Assignments)
	})

	t.Run("canned events all carry valid dates and types", func(t *testing.T) {
		result, _ := p.Parse("")
		for _, e := range result.Assignments {
			assert.True(t, syllabus.ValidDate(e.Date), "bad date %q", e.Date)
			assert.True(t, e.Type.IsValid())
			assert.True(t, e.IsRequired)
		}
	})
}

func TestClassify(t *testing.T) {
	t.Run("rule order is the documented precedence", func(t *testing.T) {
		// "reading" outranks "class" even though both match
		assert.Equal(t, syllabus.TypeReading, classify("reading before class"))
		// "exam" outranks the lecture rule
		assert.Equal(t, syllabus.TypeExam, classify("final exam during lecture slot"))
	})

	t.Run("project maps to assignment", func(t *testing.T) {
		assert.Equal(t, syllabus.TypeAssignment, classify("project milestone 2"))
	})

	t.Run("meetings map to conference", func(t *testing.T) {
		assert.Equal(t, syllabus.TypeConference, classify("mandatory advising meeting"))
	})

	t.Run("unknown vocabulary falls through to other", func(t *testing.T) {
		assert.Equal(t, syllabus.TypeOther, classify("guest speaker visit"))
	})
}

func TestMatchDate(t *testing.T) {
	p := NewParser(2025)

	cases := []struct {
		line string
		want string
	}{
		{"Monday, September 15 lecture", "2025-09-15"},
		{"Wednesday Oct 1 reading", "2025-10-01"},
		{"September 15", "2025-09-15"},
		{"Sept. 8 - intro", "2025-09-08"},
		{"9/15 homework", "2025-09-15"},
		{"9-15 homework", "2025-09-15"},
		{"15 September 2025 essay due", "2025-09-15"},
		{"3 March 2026 colloquium", "2026-03-03"},
	}
	for _, tc := range cases {
		_, date, ok := p.matchDate(tc.line)
		require.True(t, ok, "no match for %q", tc.line)
		assert.Equal(t, tc.want, date, "line %q", tc.line)
	}

	t.Run("lines without dates do not match", func(t *testing.T) {
		_, _, ok := p.matchDate("Office hours by appointment")
		assert.False(t, ok)
	})
}
