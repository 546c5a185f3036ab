package tasks

import (
	"sync"
	"testing"

	"pankti_backend/internal/engine"
	"pankti_backend/internal/models"
	"pankti_backend/internal/registry"
	"pankti_backend/internal/ws"

	"github.com/stretchr/testify/assert"
)

type stubEstimator struct{}

func (stubEstimator) Estimate(service models.Service, positionInQueue int) models.WaitEstimate {
	return models.WaitEstimate{EstimatedMinutes: positionInQueue * service.AverageWaitTimeMins}
}

// alwaysPolicy продвигает каждую точку на каждом тике.
type alwaysPolicy struct{}

func (alwaysPolicy) ShouldAdvance(models.Service) bool { return true }

// neverPolicy никогда не продвигает.
type neverPolicy struct{}

func (neverPolicy) ShouldAdvance(models.Service) bool { return false }

var hubOnce sync.Once

func setupTick() *registry.Registry {
	hubOnce.Do(func() { go ws.HubInstance.Run() })

	r := registry.New()
	r.Seed([]models.Service{
		{ID: "open", Name: "Открытая", IsOpen: true, CurrentTicketNumber: 10, WaitingCount: 3, AverageWaitTimeMins: 5},
		{ID: "closed", Name: "Закрытая", IsOpen: false, CurrentTicketNumber: 20, WaitingCount: 4, AverageWaitTimeMins: 5},
		{ID: "empty", Name: "Пустая", IsOpen: true, CurrentTicketNumber: 30, WaitingCount: 0, AverageWaitTimeMins: 5},
	})
	reg = r
	eng = engine.New(r, stubEstimator{})
	return r
}

func TestAdvanceQueuesMovesOpenNonEmptyOnly(t *testing.T) {
	r := setupTick()
	SetPolicy(alwaysPolicy{})
	defer SetPolicy(RandomPolicy{Probability: AdvanceProbabilityPerTick})

	AdvanceQueues()

	open, _ := r.Get("open")
	assert.Equal(t, 11, open.CurrentTicketNumber)
	assert.Equal(t, 2, open.WaitingCount)

	closed, _ := r.Get("closed")
	assert.Equal(t, 20, closed.CurrentTicketNumber)
	assert.Equal(t, 4, closed.WaitingCount)

	empty, _ := r.Get("empty")
	assert.Equal(t, 30, empty.CurrentTicketNumber)
}

func TestAdvanceQueuesRespectsPolicy(t *testing.T) {
	r := setupTick()
	SetPolicy(neverPolicy{})
	defer SetPolicy(RandomPolicy{Probability: AdvanceProbabilityPerTick})

	AdvanceQueues()

	open, _ := r.Get("open")
	assert.Equal(t, 10, open.CurrentTicketNumber)
	assert.Equal(t, 3, open.WaitingCount)
}

func TestAdvanceQueuesRecomputesTickets(t *testing.T) {
	r := setupTick()
	SetPolicy(alwaysPolicy{})
	defer SetPolicy(RandomPolicy{Probability: AdvanceProbabilityPerTick})

	// Талон встаёт в очередь: номер 10 + 3 + 1 = 14
	ticket, err := eng.Join(1, "open")
	assert.NoError(t, err)
	assert.Equal(t, 14, ticket.TicketNumber)

	// Четыре тика доводят текущий номер до 14
	for i := 0; i < 4; i++ {
		AdvanceQueues()
	}

	open, _ := r.Get("open")
	assert.Equal(t, 14, open.CurrentTicketNumber)

	got, _ := eng.Get(ticket.ID)
	assert.Equal(t, models.StatusServing, got.Status)
	assert.Equal(t, 0, got.EstimatedWaitTime)
}

func TestRandomPolicyProbabilityBounds(t *testing.T) {
	always := RandomPolicy{Probability: 1.0}
	never := RandomPolicy{Probability: 0.0}
	s := models.Service{}

	for i := 0; i < 100; i++ {
		assert.True(t, always.ShouldAdvance(s))
		assert.False(t, never.ShouldAdvance(s))
	}
}
