package gcal

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gcalendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"

	"github.com/syllacal/syllacal/pkg/syllabus"
)

type stubInserter struct {
	inserted []*gcalendar.Event
	failOn   map[int]error // 1-based call number -> error
	calls    int
}

func (s *stubInserter) Insert(_ context.Context, event *gcalendar.Event) error {
	s.calls++
	if err, ok := s.failOn[s.calls]; ok {
		return err
	}
	s.inserted = append(s.inserted, event)
	return nil
}

func newTestService(inserter eventInserter) (*Service, *int) {
	sleeps := 0
	return &Service{
		newInserter: func(_ context.Context, _ string) (eventInserter, error) {
			return inserter, nil
		},
		timezone: "America/New_York",
		delay:    100 * time.Millisecond,
		sleep:    func(time.Duration) { sleeps++ },
	}, &sleeps
}

func batch(n int) []syllabus.Event {
	events := make([]syllabus.Event, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, syllabus.Event{
			ID:         string(rune('a' + i)),
			Date:       "2025-09-10",
			Title:      "Event",
			Type:       syllabus.TypeReading,
			IsRequired: true,
		})
	}
	return events
}

func TestCreateEvents(t *testing.T) {
	ctx := context.Background()
	course := &syllabus.CourseInfo{Title: "Contracts", Professor: "Prof. Stone"}

	t.Run("all events created with inter-request delay", func(t *testing.T) {
		inserter := &stubInserter{}
		service, sleeps := newTestService(inserter)

		result, err := service.CreateEvents(ctx, "token", batch(3), course)
		require.NoError(t, err)
		assert.Equal(t, SyncResult{Created: 3, Failed: 0}, result)
		assert.Equal(t, 2, *sleeps, "expected a delay between consecutive calls")
	})

	t.Run("a single failure does not abort the batch", func(t *testing.T) {
		inserter := &stubInserter{failOn: map[int]error{2: errors.New("backend error")}}
		service, _ := newTestService(inserter)

		result, err := service.CreateEvents(ctx, "token", batch(5), course)
		require.NoError(t, err)
		assert.Equal(t, SyncResult{Created: 4, Failed: 1}, result)
	})

	t.Run("auth expiry on the third call short-circuits the batch", func(t *testing.T) {
		expired := &googleapi.Error{Code: http.StatusUnauthorized, Message: "Invalid Credentials"}
		inserter := &stubInserter{failOn: map[int]error{3: expired}}
		service, _ := newTestService(inserter)

		result, err := service.CreateEvents(ctx, "token", batch(5), course)
		require.ErrorIs(t, err, ErrAuthExpired)
		assert.Equal(t, SyncResult{Created: 2, Failed: 0}, result)
		assert.Equal(t, 3, inserter.calls, "no calls should follow the expired credential")
	})

	t.Run("invalid event date counts as a failure", func(t *testing.T) {
		inserter := &stubInserter{}
		service, _ := newTestService(inserter)

		events := batch(2)
		events[1].Date = "sometime"
		result, err := service.CreateEvents(ctx, "token", events, course)
		require.NoError(t, err)
		assert.Equal(t, SyncResult{Created: 1, Failed: 1}, result)
	})
}

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("maps the event before inserting", func(t *testing.T) {
		inserter := &stubInserter{}
		service, _ := newTestService(inserter)

		event := syllabus.Event{ID: "a1", Date: "2025-09-10", Title: "Moot court", Type: syllabus.TypePresentation, IsRequired: true}
		err := service.CreateEvent(ctx, "token", event, &syllabus.CourseInfo{Title: "Contracts"})
		require.NoError(t, err)
		require.Len(t, inserter.inserted, 1)

		created := inserter.inserted[0]
		assert.Equal(t, "Moot court", created.Summary)
		assert.Equal(t, "2025-09-10", created.Start.Date)
		assert.Equal(t, "2025-09-11", created.End.Date)
		assert.Equal(t, "6", created.ColorId)
	})

	t.Run("expired credential surfaces distinctly", func(t *testing.T) {
		expired := &googleapi.Error{Code: http.StatusUnauthorized}
		inserter := &stubInserter{failOn: map[int]error{1: expired}}
		service, _ := newTestService(inserter)

		event := syllabus.Event{ID: "a1", Date: "2025-09-10", Title: "Reading", Type: syllabus.TypeReading}
		err := service.CreateEvent(ctx, "token", event, nil)
		assert.ErrorIs(t, err, ErrAuthExpired)
	})
}

func TestToGoogleEvent(t *testing.T) {
	t.Run("composes description with course context", func(t *testing.T) {
		event := syllabus.Event{
			ID:          "a1",
			Date:        "2025-09-10",
			Title:       "Read Chapter 3",
			Type:        syllabus.TypeReading,
			Description: "Pages 88-120",
			IsRequired:  true,
		}
		info := &syllabus.CourseInfo{Title: "Contracts", Professor: "Prof. Stone"}

		out, err := toGoogleEvent(event, info, "America/New_York")
		require.NoError(t, err)
		assert.Contains(t, out.Description, "Pages 88-120")
		assert.Contains(t, out.Description, "Course: Contracts")
		assert.Contains(t, out.Description, "Professor: Prof. Stone")
		assert.Contains(t, out.Description, "Type: Reading")
		assert.Contains(t, out.Description, "Required")
	})

	t.Run("optional events are labeled optional", func(t *testing.T) {
		event := syllabus.Event{ID: "a1", Date: "2025-09-10", Title: "Review", Type: syllabus.TypeOther, IsRequired: false}
		out, err := toGoogleEvent(event, nil, "UTC")
		require.NoError(t, err)
		assert.Contains(t, out.Description, "Optional")
		assert.NotContains(t, out.Description, "Course:")
	})

	t.Run("unknown type falls back to the default color", func(t *testing.T) {
		event := syllabus.Event{ID: "a1", Date: "2025-09-10", Title: "X", Type: syllabus.EventType("mystery")}
		out, err := toGoogleEvent(event, nil, "UTC")
		require.NoError(t, err)
		assert.Equal(t, defaultColor, out.ColorId)
	})

	t.Run("leap day rolls to march first", func(t *testing.T) {
		event := syllabus.Event{ID: "a1", Date: "2024-02-29", Title: "X", Type: syllabus.TypeOther}
		out, err := toGoogleEvent(event, nil, "UTC")
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01", out.End.Date)
	})

	t.Run("time-of-day fields never reach the all-day span", func(t *testing.T) {
		event := syllabus.Event{ID: "a1", Date: "2025-09-10", Title: "X", Type: syllabus.TypeExam, TimeStart: "09:00", TimeEnd: "10:50"}
		out, err := toGoogleEvent(event, nil, "UTC")
		require.NoError(t, err)
		assert.Empty(t, out.Start.DateTime)
		assert.Empty(t, out.End.DateTime)
		assert.False(t, strings.Contains(out.Start.Date, ":"))
	})
}
