package handler

import (
	"net/http"

	"ticket-optimiser/internal/ticket"

	"github.com/rs/zerolog"
)

// TicketHandler handles ticket catalogue HTTP requests.
type TicketHandler struct {
	catalog ticket.Catalog
	logger  zerolog.Logger
}

// NewTicketHandler creates a new ticket handler.
func NewTicketHandler(catalog ticket.Catalog, logger zerolog.Logger) *TicketHandler {
	return &TicketHandler{
		catalog: catalog,
		logger:  logger.With().Str("handler", "ticket").Logger(),
	}
}

// GetAll handles GET /api/tickets requests.
func (h *TicketHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.catalog.Products())
}
