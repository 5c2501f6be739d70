package ticket

import (
	"context"
)

// Loader defines the interface for loading catalogue files.
type Loader interface {
	// Load reads a catalogue file and returns a validated Catalog.
	// Product order in the file is preserved.
	Load(ctx context.Context, path string) (Catalog, error)
}
