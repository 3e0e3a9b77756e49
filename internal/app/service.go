// Package service provides the core business service: it runs the
// event-to-daily-table reconstruction pipeline over the acquired rows
// and holds the last built tables for the HTTP API and the exporters.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/ohbehave/internal/domain/assign"
	"github.com/okian/ohbehave/internal/domain/frame"
	"github.com/okian/ohbehave/internal/domain/model"
	"github.com/okian/ohbehave/internal/domain/normalize"
	"github.com/okian/ohbehave/internal/domain/sleep"
	"github.com/okian/ohbehave/internal/domain/weekly"
	"github.com/okian/ohbehave/pkg/logger"
	"github.com/okian/ohbehave/pkg/metrics"
)

// RowSource supplies the raw form rows. The sheets adapter implements
// it; tests inject fixed slices.
type RowSource interface {
	Rows(ctx context.Context) ([]model.RawRow, error)
}

// Service runs the reconstruction pipeline and caches its output. The
// pipeline itself is strictly sequential; the mutex only guards the
// cached results against concurrent HTTP readers.
type Service struct {
	mu sync.RWMutex

	source RowSource
	asmp   model.Assumptions
	labels normalize.Labels

	excludeGaming  bool
	excludeAlcohol bool
	excludeSleep   bool

	log logger.Logger

	daily   []*model.DailyRow
	weekly  []weekly.Row
	builtAt time.Time
	runID   string
	raws    int
	events  int
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSource sets the row source. Required for Build.
func WithSource(src RowSource) Option {
	return func(s *Service) { s.source = src }
}

// WithAssumptions sets the heuristic constants.
func WithAssumptions(a model.Assumptions) Option {
	return func(s *Service) { s.asmp = a }
}

// WithLabels overrides the form label set.
func WithLabels(l normalize.Labels) Option {
	return func(s *Service) { s.labels = l }
}

// WithExclusions toggles whole activity domains off for this run.
func WithExclusions(gaming, alcohol, sleepData bool) Option {
	return func(s *Service) {
		s.excludeGaming = gaming
		s.excludeAlcohol = alcohol
		s.excludeSleep = sleepData
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		asmp:   model.DefaultAssumptions(),
		labels: normalize.DefaultLabels(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Named("service")
	}
	return s
}

// Build acquires the rows and runs the full pipeline: normalize, build
// the daily frame, apply the assigners in order, then derive the weekly
// summary. The completed tables replace the previously cached ones
// atomically; a failed build leaves them untouched.
func (s *Service) Build(ctx context.Context) error {
	if s.source == nil {
		return fmt.Errorf("no row source configured")
	}

	start := time.Now()
	runID := uuid.NewString()

	rows, err := s.source.Rows(ctx)
	if err != nil {
		return fmt.Errorf("acquire rows: %w", err)
	}

	norm := normalize.New(
		normalize.WithAssumptions(s.asmp),
		normalize.WithLabels(s.labels),
		normalize.WithLogger(s.log),
	)
	events := norm.Normalize(ctx, rows)

	table, err := frame.Build(events)
	if err != nil {
		return fmt.Errorf("build daily frame: %w", err)
	}

	if !s.excludeGaming {
		assign.Sessions(ctx, table, events,
			assign.WithAssumptions(s.asmp), assign.WithLogger(s.log))
	}
	if !s.excludeAlcohol {
		assign.Drinks(ctx, table, events,
			assign.WithAssumptions(s.asmp), assign.WithLogger(s.log))
	}
	if !s.excludeSleep {
		segmenter := sleep.New(sleep.WithAssumptions(s.asmp), sleep.WithLogger(s.log))
		segmenter.Apply(ctx, table, events)
	}
	assign.Comments(ctx, table, rows)

	var weeklyRows []weekly.Row
	if !s.excludeSleep {
		weeklyRows = weekly.Summarize(table.Rows())
	}

	elapsed := time.Since(start)
	s.mu.Lock()
	s.daily = table.Rows()
	s.weekly = weeklyRows
	s.builtAt = start
	s.runID = runID
	s.raws = len(rows)
	s.events = len(events)
	s.mu.Unlock()

	metrics.RecordPipelineRun(elapsed.Seconds())
	metrics.UpdateDailyRows(table.Len())
	s.log.Info(ctx, "daily table built",
		logger.String("runID", runID),
		logger.Int("rows", len(rows)),
		logger.Int("events", len(events)),
		logger.Int("days", table.Len()),
		logger.Duration("elapsed", elapsed),
	)
	return nil
}

// Daily returns the rows of the last built daily table in date order,
// or nil when no build has completed yet.
func (s *Service) Daily(ctx context.Context) []*model.DailyRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.daily
}

// Weekly returns the last built weekly summary, or nil when no build
// has completed yet or sleep data was excluded.
func (s *Service) Weekly(ctx context.Context) []weekly.Row {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.weekly
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"runID":          s.runID,
		"builtAt":        s.builtAt,
		"rawRows":        s.raws,
		"events":         s.events,
		"dailyRows":      len(s.daily),
		"excludeGaming":  s.excludeGaming,
		"excludeAlcohol": s.excludeAlcohol,
		"excludeSleep":   s.excludeSleep,
	}
}
