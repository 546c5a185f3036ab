package registry

import (
	"testing"

	"pankti_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func testService(id string) models.Service {
	return models.Service{
		ID:                  id,
		Name:                "Тестовая точка " + id,
		Type:                models.ServiceBank,
		IsOpen:              true,
		CurrentTicketNumber: 100,
		WaitingCount:        0,
		AverageWaitTimeMins: 10,
	}
}

func TestAdvance(t *testing.T) {
	r := New()
	s := testService("s1")
	s.WaitingCount = 2
	r.Add(s)

	assert.True(t, r.Advance("s1"))
	got, _ := r.Get("s1")
	assert.Equal(t, 101, got.CurrentTicketNumber)
	assert.Equal(t, 1, got.WaitingCount)
}

func TestAdvanceClosedService(t *testing.T) {
	r := New()
	s := testService("s1")
	s.IsOpen = false
	s.WaitingCount = 5
	r.Add(s)

	assert.False(t, r.Advance("s1"))
	got, _ := r.Get("s1")
	assert.Equal(t, 100, got.CurrentTicketNumber)
	assert.Equal(t, 5, got.WaitingCount)
}

func TestAdvanceEmptyQueue(t *testing.T) {
	r := New()
	r.Add(testService("s1"))

	assert.False(t, r.Advance("s1"))
	got, _ := r.Get("s1")
	assert.Equal(t, 100, got.CurrentTicketNumber)
}

func TestAdvanceUnknownService(t *testing.T) {
	r := New()
	assert.False(t, r.Advance("нет-такой"))
}

func TestToggleOpen(t *testing.T) {
	r := New()
	s := testService("s1")
	s.WaitingCount = 3
	r.Add(s)

	assert.True(t, r.ToggleOpen("s1"))
	got, _ := r.Get("s1")
	assert.False(t, got.IsOpen)
	// Остальные счётчики не тронуты
	assert.Equal(t, 100, got.CurrentTicketNumber)
	assert.Equal(t, 3, got.WaitingCount)

	assert.True(t, r.ToggleOpen("s1"))
	got, _ = r.Get("s1")
	assert.True(t, got.IsOpen)

	assert.False(t, r.ToggleOpen("нет-такой"))
}

func TestDecrementWaitingClampsAtZero(t *testing.T) {
	r := New()
	r.Add(testService("s1"))

	r.DecrementWaiting("s1")
	r.DecrementWaiting("s1")
	got, _ := r.Get("s1")
	assert.Equal(t, 0, got.WaitingCount)

	r.IncrementWaiting("s1")
	r.DecrementWaiting("s1")
	r.DecrementWaiting("s1")
	got, _ = r.Get("s1")
	assert.Equal(t, 0, got.WaitingCount)
}

func TestCurrentTicketNumberMonotone(t *testing.T) {
	r := New()
	s := testService("s1")
	s.WaitingCount = 10
	r.Add(s)

	last := 100
	for i := 0; i < 10; i++ {
		r.IncrementWaiting("s1")
		r.DecrementWaiting("s1")
		r.Advance("s1")
		got, _ := r.Get("s1")
		assert.GreaterOrEqual(t, got.CurrentTicketNumber, last)
		last = got.CurrentTicketNumber
	}
}

func TestListKeepsInsertionOrder(t *testing.T) {
	r := New()
	r.Seed([]models.Service{testService("a"), testService("b"), testService("c")})

	list := r.List()
	assert.Len(t, list, 3)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID)
	assert.Equal(t, "c", list[2].ID)
}

func TestGetReturnsCopy(t *testing.T) {
	r := New()
	r.Add(testService("s1"))

	got, _ := r.Get("s1")
	got.WaitingCount = 99

	again, _ := r.Get("s1")
	assert.Equal(t, 0, again.WaitingCount)
}
