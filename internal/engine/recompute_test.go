package engine

import (
	"testing"

	"pankti_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRecomputeRules(t *testing.T) {
	service := models.Service{ID: "s1", CurrentTicketNumber: 100, AverageWaitTimeMins: 10}
	ticket := models.Ticket{ID: "t1", ServiceID: "s1", TicketNumber: 103, Status: models.StatusWaiting}

	// Три человека впереди
	got := Recompute(ticket, service)
	assert.Equal(t, models.StatusWaiting, got.Status)
	assert.Equal(t, 30, got.EstimatedWaitTime)

	// Номер совпал — обслуживается
	service.CurrentTicketNumber = 103
	got = Recompute(ticket, service)
	assert.Equal(t, models.StatusServing, got.Status)
	assert.Equal(t, 0, got.EstimatedWaitTime)

	// Номер перескочен — завершён
	service.CurrentTicketNumber = 104
	got = Recompute(ticket, service)
	assert.Equal(t, models.StatusCompleted, got.Status)
}

func TestRecomputeIsPure(t *testing.T) {
	service := models.Service{ID: "s1", CurrentTicketNumber: 100, AverageWaitTimeMins: 15}
	ticket := models.Ticket{ID: "t1", ServiceID: "s1", TicketNumber: 105, Status: models.StatusWaiting}

	first := Recompute(ticket, service)
	second := Recompute(ticket, service)
	assert.Equal(t, first, second)
	// Исходный талон не изменён
	assert.Equal(t, models.StatusWaiting, ticket.Status)
	assert.Equal(t, 0, ticket.EstimatedWaitTime)
}
