// Package report assembles full flight comfort reports: TCI score,
// confidence, display label, explanation, and the optional realtime wind
// estimate, ready for the caller-facing API.
package report

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/couchcryptid/ride-comfort-service/internal/domain"
	"github.com/couchcryptid/ride-comfort-service/internal/observability"
)

// ScorePublisher emits a finished report to downstream consumers.
type ScorePublisher interface {
	PublishScore(ctx context.Context, rep FlightReport) error
}

// Request identifies one flight to score.
type Request struct {
	Origin       string
	Destination  string
	Date         string // ISO calendar date, "YYYY-MM-DD"
	AircraftType string
}

// FlightReport is the complete scoring output for one flight.
type FlightReport struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	Date         string `json:"date"`
	AircraftType string `json:"aircraft_type"`

	Result       domain.ScoringResult     `json:"result"`
	Label        string                   `json:"label"`
	Explanation  string                   `json:"explanation,omitempty"`
	AircraftNote string                   `json:"aircraft_note"`
	Confidence   domain.Confidence        `json:"confidence"`
	Realtime     *domain.RealtimeEstimate `json:"realtime,omitempty"`

	ComputedAt time.Time `json:"computed_at"`
}

// Service wires the scorer, the best-effort wind sampler, and the
// optional score publisher into one report-building operation.
type Service struct {
	ref         *domain.RefData
	scorer      *domain.Scorer
	sampler     domain.WindSampler // nil disables realtime enrichment
	publisher   ScorePublisher     // nil disables score publishing
	windHourUTC int
	logger      *slog.Logger
	metrics     *observability.Metrics
}

// New creates a report service. Pass a nil sampler to disable realtime
// enrichment and a nil publisher to disable score publishing.
func New(ref *domain.RefData, sampler domain.WindSampler, publisher ScorePublisher, windHourUTC int, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		ref:         ref,
		scorer:      domain.NewScorer(ref),
		sampler:     sampler,
		publisher:   publisher,
		windHourUTC: windHourUTC,
		logger:      logger,
		metrics:     metrics,
	}
}

// CheckReadiness returns nil once reference tables are loaded; they are a
// precondition for every scoring operation.
func (s *Service) CheckReadiness(_ context.Context) error {
	if s.ref == nil || len(s.ref.Aircraft) == 0 {
		return errors.New("reference tables not loaded")
	}
	return nil
}

// BuildReport scores a flight. Realtime enrichment is best-effort: when
// the sampler is disabled, a route endpoint has no known coordinates, or
// the wind service fails, the score falls back to the static blend and
// confidence is downgraded accordingly. Only invalid input errors.
func (s *Service) BuildReport(ctx context.Context, req Request) (FlightReport, error) {
	start := time.Now()

	date, err := domain.ParseFlightDate(req.Date)
	if err != nil {
		s.metrics.ScoreErrors.Inc()
		return FlightReport{}, err
	}

	estimate := s.sampleWind(ctx, req)

	var signal domain.RealtimeSignal
	if estimate != nil {
		signal = domain.PenaltySignal{Points: estimate.Penalty}
	}

	result, err := s.scorer.ComputeTCI(domain.ScoringInput{
		Origin:       req.Origin,
		Destination:  req.Destination,
		Date:         req.Date,
		AircraftType: req.AircraftType,
		Realtime:     signal,
	})
	if err != nil {
		s.metrics.ScoreErrors.Inc()
		return FlightReport{}, err
	}

	rep := FlightReport{
		Origin:       req.Origin,
		Destination:  req.Destination,
		Date:         req.Date,
		AircraftType: req.AircraftType,
		Result:       result,
		Label:        domain.HumanLabel(result.TCI),
		Explanation:  domain.ExplainResult(result),
		AircraftNote: domain.AircraftNote(req.AircraftType),
		Confidence:   domain.ComputeConfidence(date, estimate != nil),
		Realtime:     estimate,
		ComputedAt:   clock.Now().UTC(),
	}

	s.metrics.ScoresComputed.Inc()
	s.metrics.ScoresByBucket.WithLabelValues(string(result.Bucket)).Inc()
	s.metrics.ScoreDuration.Observe(time.Since(start).Seconds())

	s.publish(ctx, rep)

	return rep, nil
}

// sampleWind resolves route endpoint coordinates and runs the single
// bounded wind sampling attempt. Returns nil whenever realtime data is
// unobtainable.
func (s *Service) sampleWind(ctx context.Context, req Request) *domain.RealtimeEstimate {
	if s.sampler == nil {
		return nil
	}

	origin, ok := s.ref.Airports.Coordinates(req.Origin)
	if !ok {
		s.logger.Debug("no coordinates for origin, skipping wind sample", "origin", req.Origin)
		return nil
	}
	destination, ok := s.ref.Airports.Coordinates(req.Destination)
	if !ok {
		s.logger.Debug("no coordinates for destination, skipping wind sample", "destination", req.Destination)
		return nil
	}

	return domain.EstimateRealtimePenalty(ctx, s.sampler, origin, destination, req.Date, s.windHourUTC, s.logger)
}

// publish sends the report to the sink topic when publishing is enabled.
// Publish failures never fail the scoring request.
func (s *Service) publish(ctx context.Context, rep FlightReport) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishScore(ctx, rep); err != nil {
		s.logger.Warn("score publish failed",
			"origin", rep.Origin,
			"destination", rep.Destination,
			"error", err,
		)
		s.metrics.PublishErrors.Inc()
		return
	}
	s.metrics.ScoresPublished.Inc()
}
