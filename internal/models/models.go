package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name         string `gorm:"not null"`
	Surname      string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	IsAdmin      bool   `gorm:"default:false"` // Доступ к админским операциям (вызов следующего, открытие/закрытие)
}

// TicketArchive — история завершённых и отменённых талонов.
// Живые талоны живут только в памяти движка, сюда попадают при выходе из активного набора.
type TicketArchive struct {
	gorm.Model
	TicketID          string    `gorm:"uniqueIndex;not null"` // ID талона из движка
	UserID            uint      `gorm:"index;not null"`
	ServiceID         string    `gorm:"index;not null"`
	ServiceName       string    `gorm:"not null"`
	TicketNumber      int       `gorm:"not null"`
	Status            string    `gorm:"not null"` // COMPLETED или CANCELLED
	JoinedAt          time.Time `gorm:"not null"`
	FinishedAt        time.Time `gorm:"index;not null"`
	EstimatedWaitTime int       // Последняя оценка ожидания перед завершением
}
