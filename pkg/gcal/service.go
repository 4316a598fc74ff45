package gcal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	gcalendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/syllacal/syllacal/internal/config"
	"github.com/syllacal/syllacal/pkg/syllabus"
)

// ErrAuthExpired signals an expired or invalid credential. It is fatal to
// the current batch: the caller should re-prompt for authorization rather
// than retry with the same token.
var ErrAuthExpired = errors.New("google calendar authentication expired")

const calendarID = "primary"

// SyncResult accumulates per-event outcomes of a batch create.
type SyncResult struct {
	Created int `json:"created"`
	Failed  int `json:"failed"`
}

// eventInserter is the single Google Calendar operation the adapter needs.
type eventInserter interface {
	Insert(ctx context.Context, event *gcalendar.Event) error
}

type googleInserter struct {
	svc *gcalendar.Service
}

func (g *googleInserter) Insert(ctx context.Context, event *gcalendar.Event) error {
	_, err := g.svc.Events.Insert(calendarID, event).Context(ctx).Do()
	return err
}

// Service creates syllabus events in the user's primary Google Calendar.
// Batch calls are issued sequentially with an inter-request delay; that
// ordering is the backpressure mechanism against the API rate limit.
type Service struct {
	newInserter func(ctx context.Context, token string) (eventInserter, error)
	timezone    string
	delay       time.Duration
	sleep       func(d time.Duration)
}

func NewService(cfg config.Application) *Service {
	return &Service{
		newInserter: func(ctx context.Context, token string) (eventInserter, error) {
			source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
			svc, err := gcalendar.NewService(ctx, option.WithTokenSource(source))
			if err != nil {
				return nil, fmt.Errorf("unable to create Google Calendar service: %w", err)
			}
			return &googleInserter{svc: svc}, nil
		},
		timezone: cfg.Calendar.Timezone,
		delay:    time.Duration(cfg.Sync.RequestDelayMs) * time.Millisecond,
		sleep:    time.Sleep,
	}
}

// CreateEvent inserts a single event using the supplied bearer token.
func (s *Service) CreateEvent(ctx context.Context, token string, event syllabus.Event, info *syllabus.CourseInfo) error {
	inserter, err := s.newInserter(ctx, token)
	if err != nil {
		return err
	}
	return s.insert(ctx, inserter, event, info)
}

// CreateEvents inserts a batch sequentially. Each event is attempted
// independently and a single failure never aborts the batch; only an
// expired credential short-circuits, returning the counts accumulated so
// far together with ErrAuthExpired. Retrying the remaining events with a
// known-dead token would mislabel an auth problem as per-event failures.
func (s *Service) CreateEvents(ctx context.Context, token string, events []syllabus.Event, info *syllabus.CourseInfo) (SyncResult, error) {
	result := SyncResult{}
	inserter, err := s.newInserter(ctx, token)
	if err != nil {
		return result, err
	}

	for i, event := range events {
		if err := s.insert(ctx, inserter, event, info); err != nil {
			if errors.Is(err, ErrAuthExpired) {
				log.Warnf("authentication expired after %d of %d events", result.Created, len(events))
				return result, err
			}
			log.Errorf("failed to create event %s: %v", event.ID, err)
			result.Failed++
		} else {
			result.Created++
		}
		if i < len(events)-1 {
			s.sleep(s.delay)
		}
	}
	return result, nil
}

func (s *Service) insert(ctx context.Context, inserter eventInserter, event syllabus.Event, info *syllabus.CourseInfo) error {
	googleEvent, err := toGoogleEvent(event, info, s.timezone)
	if err != nil {
		return err
	}
	if err := inserter.Insert(ctx, googleEvent); err != nil {
		if isAuthExpired(err) {
			return fmt.Errorf("inserting event %s: %w", event.ID, ErrAuthExpired)
		}
		return fmt.Errorf("unable to insert event in Google Calendar: %w", err)
	}
	return nil
}

func isAuthExpired(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusUnauthorized
}
