package ticket

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"ticket-optimiser/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading catalogue files from the local
// file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a JSON catalogue file and returns a validated Catalog.
// The file contains an ordered array of products; array order becomes the
// tie-break order.
func (l *fileLoader) Load(ctx context.Context, path string) (Catalog, error) {
	l.logger.Info().Str("file", path).Msg("loading catalogue file")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open catalogue file")
		return Catalog{}, fmt.Errorf("failed to open catalogue file %s: %w", path, err)
	}
	defer file.Close()

	var products []model.TicketProduct
	if err := json.NewDecoder(file).Decode(&products); err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to parse catalogue file")
		return Catalog{}, fmt.Errorf("failed to parse catalogue file %s: %w", path, err)
	}

	catalog, err := NewCatalog(products)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("catalogue validation failed")
		return Catalog{}, fmt.Errorf("invalid catalogue file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("products_loaded", catalog.Size()).
		Msg("catalogue file loaded successfully")

	return catalog, nil
}
