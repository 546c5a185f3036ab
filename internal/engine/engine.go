package engine

import (
	"errors"
	"sync"
	"time"

	"pankti_backend/internal/estimator"
	"pankti_backend/internal/models"
	"pankti_backend/internal/registry"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound = errors.New("точка обслуживания не найдена")
	ErrServiceClosed   = errors.New("точка обслуживания закрыта")
	ErrAlreadyInQueue  = errors.New("пользователь уже стоит в этой очереди")
)

// Event — событие жизненного цикла для рассылки по WebSocket.
type Event struct {
	EventType string
	ServiceID string
	Data      map[string]interface{}
}

// Engine — движок жизненного цикла талонов. Единственный, кто пишет
// status и estimatedWaitTime. Живые талоны хранятся в памяти,
// завершённые и отменённые уходят в архив через колбэк.
type Engine struct {
	mu      sync.Mutex
	reg     *registry.Registry
	est     estimator.Estimator
	tickets map[string]*models.Ticket
	order   []string

	// Колбэки выставляются в main: рассылка событий и запись в архив.
	// Оба могут быть nil (в тестах).
	Notify  func(event Event)
	Archive func(ticket models.Ticket, serviceName string)
}

func New(reg *registry.Registry, est estimator.Estimator) *Engine {
	return &Engine{
		reg:     reg,
		est:     est,
		tickets: make(map[string]*models.Ticket),
	}
}

// Join добавляет пользователя в очередь точки обслуживания.
// Инвариант: не более одного активного талона на пару (пользователь, точка) —
// проверяется внутри движка, а не на вызывающей стороне.
// Вызов оценщика выполняется без удержания блокировки: позиция снимается
// синхронно, после (возможно медленного) вызова точка перепроверяется.
func (e *Engine) Join(userID uint, serviceID string) (models.Ticket, error) {
	e.mu.Lock()
	service, ok := e.reg.Get(serviceID)
	if !ok {
		e.mu.Unlock()
		return models.Ticket{}, ErrServiceNotFound
	}
	if !service.IsOpen {
		e.mu.Unlock()
		return models.Ticket{}, ErrServiceClosed
	}
	if e.activeTicketLocked(userID, serviceID) != nil {
		e.mu.Unlock()
		return models.Ticket{}, ErrAlreadyInQueue
	}
	positionInQueue := service.WaitingCount + 1
	e.mu.Unlock()

	// Медленный путь: внешний оценщик со своим таймаутом и резервным расчётом.
	est := e.est.Estimate(service, positionInQueue)

	e.mu.Lock()
	defer e.mu.Unlock()

	// Пока ждали оценку, точка могла исчезнуть или закрыться — перепроверяем.
	service, ok = e.reg.Get(serviceID)
	if !ok {
		return models.Ticket{}, ErrServiceNotFound
	}
	if !service.IsOpen {
		return models.Ticket{}, ErrServiceClosed
	}
	if e.activeTicketLocked(userID, serviceID) != nil {
		return models.Ticket{}, ErrAlreadyInQueue
	}

	ticket := models.Ticket{
		ID:        uuid.NewString(),
		UserID:    userID,
		ServiceID: serviceID,
		// Номер талона фиксируется по текущему состоянию реестра
		TicketNumber:      service.CurrentTicketNumber + service.WaitingCount + 1,
		Status:            models.StatusWaiting,
		JoinedAt:          time.Now(),
		EstimatedWaitTime: est.EstimatedMinutes,
		AIAnalysis:        est.Reasoning,
		CrowdLevel:        est.CrowdLevel,
	}
	e.tickets[ticket.ID] = &ticket
	e.order = append(e.order, ticket.ID)
	e.reg.IncrementWaiting(serviceID)

	e.notify(Event{
		EventType: "ticket_created",
		ServiceID: serviceID,
		Data: map[string]interface{}{
			"ticket_id":     ticket.ID,
			"user_id":       userID,
			"ticket_number": ticket.TicketNumber,
		},
	})
	return ticket, nil
}

// Leave выводит талон из очереди. Талон получает статус CANCELLED,
// уходит в архив и исчезает из активного набора. Повторный вызов,
// неизвестный id или уже завершённый талон — no-op: из очереди,
// которую уже прошёл, выйти нельзя.
func (e *Engine) Leave(ticketID string) {
	e.mu.Lock()
	ticket, ok := e.tickets[ticketID]
	if !ok || ticket.Status == models.StatusCompleted || ticket.Status == models.StatusCancelled {
		e.mu.Unlock()
		return
	}
	ticket.Status = models.StatusCancelled
	cancelled := *ticket
	e.removeLocked(ticketID)
	e.reg.DecrementWaiting(cancelled.ServiceID)
	serviceName := ""
	if s, ok := e.reg.Get(cancelled.ServiceID); ok {
		serviceName = s.Name
	}
	e.mu.Unlock()

	e.archive(cancelled, serviceName)
	e.notify(Event{
		EventType: "ticket_left",
		ServiceID: cancelled.ServiceID,
		Data: map[string]interface{}{
			"ticket_id":     cancelled.ID,
			"user_id":       cancelled.UserID,
			"ticket_number": cancelled.TicketNumber,
		},
	})
}

// RecomputeAll пересчитывает статус и оценку каждого отслеживаемого талона
// по текущему состоянию реестра. Вызывается после каждой пачки мутаций
// реестра (тик, вызов следующего, переключение точки) ровно один раз.
// Талон с исчезнувшей точкой остаётся без изменений.
func (e *Engine) RecomputeAll() {
	var finished []models.Ticket
	var finishedNames []string

	e.mu.Lock()
	for _, id := range e.order {
		ticket := e.tickets[id]
		service, ok := e.reg.Get(ticket.ServiceID)
		if !ok {
			continue
		}
		before := ticket.Status
		*ticket = Recompute(*ticket, service)
		if before != models.StatusCompleted && ticket.Status == models.StatusCompleted {
			finished = append(finished, *ticket)
			finishedNames = append(finishedNames, service.Name)
		}
	}
	e.mu.Unlock()

	for i := range finished {
		e.archive(finished[i], finishedNames[i])
		e.notify(Event{
			EventType: "ticket_completed",
			ServiceID: finished[i].ServiceID,
			Data: map[string]interface{}{
				"ticket_id":     finished[i].ID,
				"user_id":       finished[i].UserID,
				"ticket_number": finished[i].TicketNumber,
			},
		})
	}
}

// Get возвращает копию талона по id.
func (e *Engine) Get(ticketID string) (models.Ticket, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	t, ok := e.tickets[ticketID]
	if !ok {
		return models.Ticket{}, false
	}
	return *t, true
}

// TicketsByUser возвращает талоны пользователя в порядке создания.
// Завершённые талоны остаются в выдаче как история текущей сессии.
func (e *Engine) TicketsByUser(userID uint) []models.Ticket {
	e.mu.Lock()
	defer e.mu.Unlock()
	result := []models.Ticket{}
	for _, id := range e.order {
		if e.tickets[id].UserID == userID {
			result = append(result, *e.tickets[id])
		}
	}
	return result
}

// WaitingByService — число талонов точки в статусе WAITING (для проверки инвариантов).
func (e *Engine) WaitingByService(serviceID string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	count := 0
	for _, t := range e.tickets {
		if t.ServiceID == serviceID && t.Status == models.StatusWaiting {
			count++
		}
	}
	return count
}

func (e *Engine) activeTicketLocked(userID uint, serviceID string) *models.Ticket {
	for _, t := range e.tickets {
		if t.UserID == userID && t.ServiceID == serviceID &&
			(t.Status == models.StatusWaiting || t.Status == models.StatusServing) {
			return t
		}
	}
	return nil
}

func (e *Engine) removeLocked(ticketID string) {
	delete(e.tickets, ticketID)
	for i, id := range e.order {
		if id == ticketID {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

func (e *Engine) notify(ev Event) {
	if e.Notify != nil {
		e.Notify(ev)
	}
}

func (e *Engine) archive(t models.Ticket, serviceName string) {
	if e.Archive != nil {
		e.Archive(t, serviceName)
	}
}
