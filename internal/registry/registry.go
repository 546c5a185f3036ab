package registry

import (
	"sync"

	"pankti_backend/internal/models"
)

// Registry — единственный владелец коллекции точек обслуживания.
// Счётчики точки меняются только через его методы. Все мутации синхронны,
// неизвестный id — тихий no-op.
type Registry struct {
	mu       sync.RWMutex
	services map[string]*models.Service
	order    []string // Порядок добавления, чтобы List был стабильным
}

func New() *Registry {
	return &Registry{
		services: make(map[string]*models.Service),
	}
}

// Seed загружает начальный каталог точек. Существующие id перезаписываются.
func (r *Registry) Seed(services []models.Service) {
	for i := range services {
		r.Add(services[i])
	}
}

// Add добавляет точку в реестр (используется также при обнаружении новых точек поблизости).
func (r *Registry) Add(s models.Service) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.services[s.ID]; !ok {
		r.order = append(r.order, s.ID)
	}
	copied := s
	r.services[s.ID] = &copied
}

// Get возвращает копию точки по id.
func (r *Registry) Get(id string) (models.Service, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.services[id]
	if !ok {
		return models.Service{}, false
	}
	return *s, true
}

// List возвращает копии всех точек в порядке добавления.
func (r *Registry) List() []models.Service {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]models.Service, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, *r.services[id])
	}
	return result
}

// Advance вызывает следующего: currentTicketNumber += 1, waitingCount -= 1.
// Требует открытую точку с непустой очередью, иначе no-op.
// Возвращает true, если продвижение произошло.
func (r *Registry) Advance(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.services[id]
	if !ok || !s.IsOpen || s.WaitingCount <= 0 {
		return false
	}
	s.CurrentTicketNumber++
	s.WaitingCount--
	return true
}

// ToggleOpen переключает флаг открытости точки, остальные поля не трогает.
func (r *Registry) ToggleOpen(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.services[id]
	if !ok {
		return false
	}
	s.IsOpen = !s.IsOpen
	return true
}

// IncrementWaiting увеличивает счётчик ожидающих на 1.
func (r *Registry) IncrementWaiting(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.services[id]; ok {
		s.WaitingCount++
	}
}

// DecrementWaiting уменьшает счётчик ожидающих на 1, но не ниже нуля.
func (r *Registry) DecrementWaiting(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.services[id]; ok && s.WaitingCount > 0 {
		s.WaitingCount--
	}
}

// InitialServices — стартовый каталог точек для демонстрации.
func InitialServices() []models.Service {
	return []models.Service{
		{
			ID: "s1", Name: "AIIMS OPD - General Medicine", Type: models.ServiceHospital,
			Location: "Ansari Nagar, New Delhi", IsOpen: true,
			CurrentTicketNumber: 402, WaitingCount: 54, AverageWaitTimeMins: 20,
			WhatsappEnabled: true,
		},
		{
			ID: "s2", Name: "SBI - Koramangala Branch", Type: models.ServiceBank,
			Location: "Bangalore, Karnataka", IsOpen: true,
			CurrentTicketNumber: 15, WaitingCount: 12, AverageWaitTimeMins: 10,
			SMSEnabled: true,
		},
		{
			ID: "s3", Name: "RTO Indiranagar - DL Test", Type: models.ServiceRTO,
			Location: "Indiranagar, Bangalore", IsOpen: true,
			CurrentTicketNumber: 120, WaitingCount: 85, AverageWaitTimeMins: 45,
			SMSEnabled: true,
		},
		{
			ID: "s4", Name: "Tirumala Darshan - Free Line", Type: models.ServiceTemple,
			Location: "Tirupati, Andhra Pradesh", IsOpen: true,
			CurrentTicketNumber: 15402, WaitingCount: 2300, AverageWaitTimeMins: 180,
			WhatsappEnabled: true,
		},
		{
			ID: "s5", Name: "Aadhaar Seva Kendra", Type: models.ServiceAadhaar,
			Location: "Shivaji Nagar, Pune", IsOpen: true,
			CurrentTicketNumber: 88, WaitingCount: 22, AverageWaitTimeMins: 15,
			SMSEnabled: true,
		},
		{
			ID: "s6", Name: "Udupi Upahar", Type: models.ServiceRestaurant,
			Location: "Jayanagar, Bangalore", IsOpen: false,
			CurrentTicketNumber: 45, WaitingCount: 0, AverageWaitTimeMins: 15,
		},
	}
}
