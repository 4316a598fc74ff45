package app

import (
	"github.com/syllacal/syllacal/internal/config"
	"github.com/syllacal/syllacal/internal/utils"
	"github.com/syllacal/syllacal/pkg/extractor"
	"github.com/syllacal/syllacal/pkg/gcal"
	"github.com/syllacal/syllacal/pkg/heuristic"
	"github.com/syllacal/syllacal/pkg/ics"
	"github.com/syllacal/syllacal/pkg/pipeline"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Extractor       extractor.Extractor
	HeuristicParser *heuristic.Parser

	PipelineService *pipeline.Service
	PipelineHandler *pipeline.Handler

	IcsEncoder *ics.Encoder
	IcsHandler *ics.Handler

	GoogleService *gcal.Service
	GoogleHandler *gcal.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = utils.SystemClock{}

	deps.Extractor = extractor.NewOpenAIExtractor(cfg, deps.Clock)
	deps.HeuristicParser = heuristic.NewParser(cfg.Academic.Year)

	deps.PipelineService = pipeline.NewService(deps.Extractor, deps.HeuristicParser, deps.Clock, cfg)
	deps.PipelineHandler = pipeline.NewHandler(deps.PipelineService)

	deps.IcsEncoder = ics.NewEncoder(cfg, deps.Clock)
	deps.IcsHandler = ics.NewHandler(deps.IcsEncoder)

	deps.GoogleService = gcal.NewService(cfg)
	deps.GoogleHandler = gcal.NewHandler(deps.GoogleService)

	return deps
}
