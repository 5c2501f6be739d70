package repository

import (
	"context"
	"fmt"

	"ticket-optimiser/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// historyRepository implements HistoryRepository using PostgreSQL.
type historyRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewHistoryRepository creates a new PostgreSQL-backed history repository.
func NewHistoryRepository(pool *pgxpool.Pool, logger zerolog.Logger) HistoryRepository {
	return &historyRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "history").Logger(),
	}
}

// Insert stores one recommendation run.
func (r *historyRepository) Insert(ctx context.Context, run *model.RecommendationRun) error {
	query := `
		INSERT INTO recommendation_runs (id, calendar_id, trip_count, best_product, best_cost_per_trip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		run.ID,
		run.CalendarID,
		run.TripCount,
		run.BestProduct,
		run.BestCostPerTrip,
		run.CreatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("run_id", run.ID.String()).
			Msg("failed to insert recommendation run")
		return fmt.Errorf("failed to insert recommendation run: %w", err)
	}

	r.logger.Debug().
		Str("run_id", run.ID.String()).
		Int("trip_count", run.TripCount).
		Msg("recommendation run recorded")

	return nil
}

// ListRecent retrieves the most recent runs, newest first.
func (r *historyRepository) ListRecent(ctx context.Context, limit int) ([]model.RecommendationRun, error) {
	query := `
		SELECT id, calendar_id, trip_count, best_product, best_cost_per_trip, created_at
		FROM recommendation_runs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error().Err(err).Int("limit", limit).Msg("failed to query recommendation runs")
		return nil, fmt.Errorf("failed to query recommendation runs: %w", err)
	}
	defer rows.Close()

	var runs []model.RecommendationRun
	for rows.Next() {
		var run model.RecommendationRun
		err := rows.Scan(
			&run.ID,
			&run.CalendarID,
			&run.TripCount,
			&run.BestProduct,
			&run.BestCostPerTrip,
			&run.CreatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan recommendation run row")
			return nil, fmt.Errorf("failed to scan recommendation run: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating recommendation run rows")
		return nil, fmt.Errorf("error iterating recommendation runs: %w", err)
	}

	return runs, nil
}
