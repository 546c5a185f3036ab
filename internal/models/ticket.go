package models

import "time"

// TicketStatus — статус талона в очереди
type TicketStatus string

const (
	StatusWaiting   TicketStatus = "WAITING"
	StatusServing   TicketStatus = "SERVING"
	StatusCompleted TicketStatus = "COMPLETED"
	StatusCancelled TicketStatus = "CANCELLED"
	// Зарезервирован, переходами движка не используется
	StatusPaused TicketStatus = "PAUSED"
)

// Ticket — талон: заявка на один проход к точке обслуживания.
// Статус и оценку ожидания пишет только движок очереди.
type Ticket struct {
	ID        string `json:"id"`
	UserID    uint   `json:"user_id"`
	ServiceID string `json:"service_id"`
	// Номер талона, присваивается при вступлении и не меняется
	TicketNumber int          `json:"ticket_number"`
	Status       TicketStatus `json:"status"`
	JoinedAt     time.Time    `json:"joined_at"`
	// Оценка ожидания в минутах; пересчитывается пока WAITING, при SERVING = 0
	EstimatedWaitTime int `json:"estimated_wait_time"`
	// Пояснение от оценщика, чисто информационное
	AIAnalysis string `json:"ai_analysis,omitempty"`
	CrowdLevel string `json:"crowd_level,omitempty"`
}

// WaitEstimate — результат оценки времени ожидания
type WaitEstimate struct {
	EstimatedMinutes int    `json:"estimated_minutes"`
	Reasoning        string `json:"reasoning"`
	CrowdLevel       string `json:"crowd_level"`
}
