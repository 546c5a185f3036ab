package storage

import (
	"log"
	"time"

	"pankti_backend/internal/models"
)

// ArchiveTicket записывает завершённый или отменённый талон в историю.
// Вызывается движком через колбэк; повторная запись того же талона — no-op.
func ArchiveTicket(ticket models.Ticket, serviceName string) {
	if DB == nil {
		return
	}
	record := models.TicketArchive{
		TicketID:          ticket.ID,
		UserID:            ticket.UserID,
		ServiceID:         ticket.ServiceID,
		ServiceName:       serviceName,
		TicketNumber:      ticket.TicketNumber,
		Status:            string(ticket.Status),
		JoinedAt:          ticket.JoinedAt,
		FinishedAt:        time.Now(),
		EstimatedWaitTime: ticket.EstimatedWaitTime,
	}
	var existing models.TicketArchive
	if err := DB.Where("ticket_id = ?", ticket.ID).First(&existing).Error; err == nil {
		return
	}
	if err := DB.Create(&record).Error; err != nil {
		log.Println("Ошибка записи талона в архив:", err)
	}
}

// UserHistory возвращает архивные талоны пользователя, свежие сверху.
func UserHistory(userID uint) ([]models.TicketArchive, error) {
	var records []models.TicketArchive
	err := DB.Where("user_id = ?", userID).Order("finished_at DESC").Find(&records).Error
	return records, err
}

// CleanOldArchives удаляет архивные записи старше заданного срока.
func CleanOldArchives(maxAge time.Duration) {
	if DB == nil {
		return
	}
	threshold := time.Now().Add(-maxAge)
	if err := DB.Where("finished_at < ?", threshold).Delete(&models.TicketArchive{}).Error; err != nil {
		log.Println("Ошибка при очистке архива талонов:", err)
	} else {
		log.Println("Устаревшие записи архива успешно удалены.")
	}
}
