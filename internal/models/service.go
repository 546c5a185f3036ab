package models

// ServiceType — тип обслуживающей точки (больница, банк и т.д.)
type ServiceType string

const (
	ServiceHospital   ServiceType = "Hospital"
	ServiceBank       ServiceType = "Bank"
	ServiceGovernment ServiceType = "Government"
	ServiceRestaurant ServiceType = "Restaurant"
	ServiceTemple     ServiceType = "Temple"
	ServiceRTO        ServiceType = "RTO"
	ServiceAadhaar    ServiceType = "Aadhaar"
	ServiceOther      ServiceType = "Other"
)

// Service — точка обслуживания со своей живой очередью.
// Живое состояние хранится только в памяти (реестр), в базу не пишется.
type Service struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     ServiceType `json:"type"`
	Location string      `json:"location"`
	// Открыта ли точка: закрытые точки никогда не продвигаются
	IsOpen bool `json:"is_open"`
	// Номер талона, который обслуживается сейчас. Монотонно не убывает.
	CurrentTicketNumber int `json:"current_ticket_number"`
	// Количество ожидающих (талоны со статусом WAITING)
	WaitingCount int `json:"waiting_count"`
	// Среднее время обслуживания одного человека в минутах
	AverageWaitTimeMins int `json:"average_wait_time_mins"`
	// Информационные флаги уведомлений, на логику движка не влияют
	WhatsappEnabled bool `json:"whatsapp_enabled,omitempty"`
	SMSEnabled      bool `json:"sms_enabled,omitempty"`
}
