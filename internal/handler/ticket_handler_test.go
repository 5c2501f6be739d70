package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticket-optimiser/internal/model"
	"ticket-optimiser/internal/ticket"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()
	catalog := ticket.DefaultCatalog()

	h := NewTicketHandler(catalog, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
	rec := httptest.NewRecorder()

	h.GetAll(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var products []model.TicketProduct
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 4)

	assert.Equal(t, "Standard Return", products[0].Name)
	assert.Equal(t, 49.50, products[0].Price)
	assert.Equal(t, 1, products[0].ValidityDays)
	assert.Equal(t, 1, products[0].MaxTrips)

	assert.Equal(t, "Monthly Ticket", products[2].Name)
	assert.True(t, products[2].Unlimited())
}

func TestTicketHandler_GetAll_MethodNotAllowed(t *testing.T) {
	logger := zerolog.Nop()
	h := NewTicketHandler(ticket.DefaultCatalog(), logger)

	req := httptest.NewRequest(http.MethodPost, "/api/tickets", nil)
	rec := httptest.NewRecorder()

	h.GetAll(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
