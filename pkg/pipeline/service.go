// Package pipeline orchestrates the syllabus-to-events flow: normalize the
// raw text, try the structured extraction engine, fall back to the
// heuristic parser on any extraction failure, then validate uniformly.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/syllacal/syllacal/internal/config"
	"github.com/syllacal/syllacal/internal/utils"
	"github.com/syllacal/syllacal/pkg/extractor"
	"github.com/syllacal/syllacal/pkg/heuristic"
	"github.com/syllacal/syllacal/pkg/syllabus"
)

// Result is the boundary output of one processing run. Origin is set by the
// component that produced the data; Notice is a human-readable explanation
// filled in when the result is not a genuine extraction.
type Result struct {
	Syllabus *syllabus.ProcessedSyllabus
	Origin   syllabus.Origin
	Notice   string
}

type Service struct {
	extractor extractor.Extractor
	fallback  *heuristic.Parser
	clock     utils.Clock
	year      int
}

func NewService(ex extractor.Extractor, fallback *heuristic.Parser, clock utils.Clock, cfg config.Application) *Service {
	return &Service{
		extractor: ex,
		fallback:  fallback,
		clock:     clock,
		year:      cfg.Academic.Year,
	}
}

// Process runs the full pipeline on raw document text. It never returns an
// error: every extraction failure is absorbed by the fallback chain, and
// the heuristic parser always produces some output, canned schedule
// included. The caller distinguishes genuine extraction from fallback data
// by the Origin tag alone.
func (s *Service) Process(ctx context.Context, rawText string) Result {
	runID := uuid.NewString()
	text := syllabus.CleanText(rawText)
	log.Debugf("run %s: processing %d chars of normalized text", runID, len(text))

	processed, origin := s.extract(ctx, runID, text)

	ids := syllabus.NewIDGenerator(s.clock.Now)
	fallbackDate := fmt.Sprintf("%d-09-01", s.year)
	processed.Assignments = syllabus.NormalizeEvents(processed.Assignments, ids, fallbackDate)
	processed.CourseInfo = syllabus.NormalizeCourseInfo(processed.CourseInfo)
	processed.Success = true

	log.Infof("run %s: produced %d events (origin %s)", runID, len(processed.Assignments), origin)
	return Result{
		Syllabus: processed,
		Origin:   origin,
		Notice:   noticeFor(origin),
	}
}

func (s *Service) extract(ctx context.Context, runID, text string) (*syllabus.ProcessedSyllabus, syllabus.Origin) {
	processed, err := s.extractor.Extract(ctx, text)
	if err == nil {
		return processed, syllabus.RealExtraction
	}

	var exErr *extractor.Error
	if errors.As(err, &exErr) {
		log.Warnf("run %s: %s, falling back to heuristic parser: %v", runID, exErr.Kind, exErr.Err)
	} else {
		log.Warnf("run %s: extraction failed, falling back to heuristic parser: %v", runID, err)
	}
	return s.fallback.Parse(text)
}

func noticeFor(origin syllabus.Origin) string {
	switch origin {
	case syllabus.HeuristicFallback:
		return "AI processing was unavailable. Dates were extracted directly from the document text and may be less accurate."
	case syllabus.CannedSample:
		return "AI processing did not succeed and no dates could be recognized in the document. A sample schedule is shown instead."
	}
	return ""
}
