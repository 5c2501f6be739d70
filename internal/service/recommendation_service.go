package service

import (
	"context"
	"time"

	"ticket-optimiser/internal/calendar"
	"ticket-optimiser/internal/model"
	"ticket-optimiser/internal/repository"
	"ticket-optimiser/internal/ticket"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// recommendationService implements RecommendationService.
type recommendationService struct {
	catalog       ticket.Catalog
	source        calendar.Source
	historyRepo   repository.HistoryRepository
	lookaheadDays int
	now           func() time.Time
	logger        zerolog.Logger
}

// NewRecommendationService creates a new recommendation service.
// historyRepo may be nil, in which case runs are not recorded.
func NewRecommendationService(
	catalog ticket.Catalog,
	source calendar.Source,
	historyRepo repository.HistoryRepository,
	lookaheadDays int,
	logger zerolog.Logger,
) RecommendationService {
	return &recommendationService{
		catalog:       catalog,
		source:        source,
		historyRepo:   historyRepo,
		lookaheadDays: lookaheadDays,
		now:           time.Now,
		logger:        logger.With().Str("service", "recommendation").Logger(),
	}
}

// RecommendForDates recommends the cheapest ticket for explicit travel dates.
func (s *recommendationService) RecommendForDates(ctx context.Context, dates []time.Time) (*model.RecommendationReport, error) {
	report := s.buildReport(dates)
	s.recordRun(ctx, "", report)

	s.logger.Debug().
		Int("trip_count", report.TripCount).
		Msg("recommendation produced for explicit dates")

	return report, nil
}

// RecommendForCalendar fetches upcoming travel days from the calendar source
// and recommends the cheapest ticket for them.
func (s *recommendationService) RecommendForCalendar(ctx context.Context, calendarID string) (*model.RecommendationReport, error) {
	if calendarID == "" {
		return nil, model.ErrMissingCalendarID
	}

	window := calendar.NewWindow(s.now(), s.lookaheadDays)

	days, err := s.source.TravelDays(ctx, calendarID, window)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("calendar_id", calendarID).
			Msg("failed to fetch travel days")
		return nil, model.ErrCalendarUnavailable
	}

	report := s.buildReport(days)
	s.recordRun(ctx, calendarID, report)

	s.logger.Info().
		Str("calendar_id", calendarID).
		Int("trip_count", report.TripCount).
		Msg("recommendation produced from calendar")

	return report, nil
}

// History retrieves recent recommendation runs, newest first.
func (s *recommendationService) History(ctx context.Context, limit int) ([]model.RecommendationRun, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	if s.historyRepo == nil {
		return []model.RecommendationRun{}, nil
	}

	runs, err := s.historyRepo.ListRecent(ctx, limit)
	if err != nil {
		s.logger.Error().Err(err).Int("limit", limit).Msg("failed to list recommendation runs")
		return nil, err
	}

	if runs == nil {
		runs = []model.RecommendationRun{}
	}

	return runs, nil
}

// buildReport normalises the travel days and runs the recommender.
// An empty day list yields a report with no best entry: an explicit
// no-recommendation state, not an error.
func (s *recommendationService) buildReport(dates []time.Time) *model.RecommendationReport {
	sorted := ticket.NormalizeDates(dates)

	best, options := ticket.Recommend(sorted, s.catalog)
	if options == nil {
		options = []model.ProductCoverage{}
	}

	days := make([]string, 0, len(sorted))
	for _, d := range sorted {
		days = append(days, d.Format(model.DateFormat))
	}

	return &model.RecommendationReport{
		TripCount:  len(sorted),
		TravelDays: days,
		Weeks:      calendar.GroupByWeek(sorted),
		Best:       best,
		Options:    options,
	}
}

// recordRun persists the run for later inspection. History is best effort;
// a storage failure never blocks the recommendation itself.
func (s *recommendationService) recordRun(ctx context.Context, calendarID string, report *model.RecommendationReport) {
	if s.historyRepo == nil {
		return
	}

	run := &model.RecommendationRun{
		ID:         uuid.New(),
		CalendarID: calendarID,
		TripCount:  report.TripCount,
		CreatedAt:  s.now(),
	}
	if report.Best != nil {
		name := report.Best.Name
		cost := report.Best.Result.CostPerTrip
		run.BestProduct = &name
		run.BestCostPerTrip = &cost
	}

	if err := s.historyRepo.Insert(ctx, run); err != nil {
		s.logger.Warn().
			Err(err).
			Str("run_id", run.ID.String()).
			Msg("failed to record recommendation run")
	}
}
