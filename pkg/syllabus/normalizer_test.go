package syllabus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	t.Run("normalizes windows and mac line endings", func(t *testing.T) {
		out := CleanText("Week 1\r\nReading due\rMidterm")
		assert.Equal(t, "Week 1\nReading due\nMidterm", out)
	})

	t.Run("collapses runs of spaces and tabs", func(t *testing.T) {
		out := CleanText("Sept  15\t\tAssignment   1 due")
		assert.Equal(t, "Sept 15 Assignment 1 due", out)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		out := CleanText("  \n  Course schedule  \n  ")
		assert.Equal(t, "Course schedule", out)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Equal(t, "", CleanText(""))
		assert.Equal(t, "", CleanText("   \r\n \t "))
	})

	t.Run("preserves line structure", func(t *testing.T) {
		out := CleanText("line one\nline two\nline three")
		assert.Equal(t, "line one\nline two\nline three", out)
	})
}
