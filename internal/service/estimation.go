package service

import (
	"context"

	"github.com/robotnik-ag/robotnik/internal/estimation"
	"github.com/robotnik-ag/robotnik/internal/estimation/calculators"
	"github.com/robotnik-ag/robotnik/internal/events"
	"github.com/robotnik-ag/robotnik/internal/presenter"
	"github.com/robotnik-ag/robotnik/pkg/log"
)

// EstimationResult is the outcome of one estimation with its display rendering.
type EstimationResult struct {
	Profile string
	Report  estimation.Report
	Display presenter.Display
}

// EstimationService runs estimations against the profiles of a catalog. It keeps one
// Engine per profile; engines are stateless so the service is safe for concurrent use.
type EstimationService struct {
	catalog *estimation.Catalog
	engines map[string]*estimation.Engine
	events  EventWriter
	logger  *log.StructuredLogger
}

type EstimationOption func(*EstimationService)

// WithEstimationEvents publishes an EstimationEvent for every successful run.
func WithEstimationEvents(w EventWriter) EstimationOption {
	return func(es *EstimationService) {
		es.events = w
	}
}

// NewEstimationService creates an EstimationService with the default set of calculators
// registered for every profile of catalog.
func NewEstimationService(catalog *estimation.Catalog, opts ...EstimationOption) *EstimationService {
	engines := make(map[string]*estimation.Engine)
	for _, p := range catalog.Profiles() {
		engines[p.Name] = calculators.NewEngine(p)
	}

	es := &EstimationService{
		catalog: catalog,
		engines: engines,
		events:  noopEventWriter{},
		logger:  log.NewDebugLogger("estimation_service"),
	}
	for _, o := range opts {
		o(es)
	}
	return es
}

// Profiles lists the available profiles sorted by name.
func (es *EstimationService) Profiles() []estimation.Profile {
	return es.catalog.Profiles()
}

func (es *EstimationService) DefaultProfile() string {
	return es.catalog.Fallback()
}

// Calculate runs params through the engine of the named profile. An empty name selects
// the default profile.
func (es *EstimationService) Calculate(ctx context.Context, profile string, params []estimation.Param) (*EstimationResult, error) {
	if profile == "" {
		profile = es.catalog.Fallback()
	}

	logger := es.logger.WithContext(ctx)
	tracer := logger.Operation("calculate_estimation").
		WithString("profile", profile).
		WithInt("param_count", len(params)).
		Build()

	engine, found := es.engines[profile]
	if !found {
		err := NewErrProfileNotFound(profile)
		tracer.Error(err).Log()
		return nil, err
	}

	report := engine.Run(params)

	tracer.Step("engine_run").
		WithInt("calculator_count", len(report.Breakdown)).
		Log()

	pushEvent(ctx, es.events, events.EstimationMessageKind, events.EstimationEvent{
		Profile:          profile,
		LandSize:         report.Output.LandSize,
		RobotCount:       report.Output.RobotCount,
		SavingsPerSeason: report.Output.SavingsPerSeason,
	})

	tracer.Success().
		WithFloat("land_size", report.Output.LandSize).
		WithInt("robot_count", report.Output.RobotCount).
		WithFloat("savings_per_season", report.Output.SavingsPerSeason).
		Log()

	return &EstimationResult{
		Profile: profile,
		Report:  report,
		Display: presenter.Format(report.Output),
	}, nil
}
