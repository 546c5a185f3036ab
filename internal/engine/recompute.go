package engine

import (
	"pankti_backend/internal/models"
)

// Recompute — чистое правило вывода статуса талона из счётчиков точки.
// Переходы монотонны: currentTicketNumber не убывает, поэтому талон
// никогда не возвращается в WAITING из SERVING или COMPLETED.
func Recompute(ticket models.Ticket, service models.Service) models.Ticket {
	switch {
	case service.CurrentTicketNumber > ticket.TicketNumber:
		ticket.Status = models.StatusCompleted
		ticket.EstimatedWaitTime = 0
	case service.CurrentTicketNumber == ticket.TicketNumber:
		ticket.Status = models.StatusServing
		ticket.EstimatedWaitTime = 0
	default:
		peopleAhead := ticket.TicketNumber - service.CurrentTicketNumber
		ticket.EstimatedWaitTime = peopleAhead * service.AverageWaitTimeMins
	}
	return ticket
}
