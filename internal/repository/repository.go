package repository

import (
	"context"

	"ticket-optimiser/internal/model"
)

// HistoryRepository defines the interface for recommendation run storage.
type HistoryRepository interface {
	// Insert stores one recommendation run.
	Insert(ctx context.Context, run *model.RecommendationRun) error

	// ListRecent retrieves the most recent runs, newest first.
	ListRecent(ctx context.Context, limit int) ([]model.RecommendationRun, error)
}
