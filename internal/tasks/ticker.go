package tasks

import (
	"log"
	"math/rand"
	"time"

	"pankti_backend/internal/engine"
	"pankti_backend/internal/models"
	"pankti_backend/internal/registry"
	"pankti_backend/internal/storage"
	"pankti_backend/internal/ws"

	"github.com/robfig/cron/v3"
)

// Вероятность продвижения одной открытой непустой точки за тик.
// Рандомизация даёт неравномерное, живое движение очереди для демонстрации,
// это не политика планирования.
const AdvanceProbabilityPerTick = 0.2

// Срок хранения архивных талонов
const archiveMaxAge = 30 * 24 * time.Hour

// AdvancePolicy решает, продвигать ли точку на данном тике.
type AdvancePolicy interface {
	ShouldAdvance(service models.Service) bool
}

// RandomPolicy продвигает точку с фиксированной вероятностью.
type RandomPolicy struct {
	Probability float64
}

func (p RandomPolicy) ShouldAdvance(models.Service) bool {
	return rand.Float64() < p.Probability
}

var (
	reg    *registry.Registry
	eng    *engine.Engine
	policy AdvancePolicy = RandomPolicy{Probability: AdvanceProbabilityPerTick}
)

// SetPolicy подменяет политику продвижения (детерминированная в тестах).
func SetPolicy(p AdvancePolicy) {
	policy = p
}

// AdvanceQueues — один тик симуляции движения очередей: каждая открытая
// точка с ожидающими продвигается по решению политики, затем ровно один
// пересчёт всех талонов на всю пачку продвижений.
func AdvanceQueues() {
	advanced := []string{}
	for _, service := range reg.List() {
		if !service.IsOpen || service.WaitingCount <= 0 {
			continue
		}
		if !policy.ShouldAdvance(service) {
			continue
		}
		if reg.Advance(service.ID) {
			advanced = append(advanced, service.ID)
		}
	}

	if len(advanced) == 0 {
		return
	}

	eng.RecomputeAll()

	for _, id := range advanced {
		if service, ok := reg.Get(id); ok {
			ws.HubInstance.BroadcastWSMessage(ws.WSMessage{
				EventType: "queue_advanced",
				ServiceID: id,
				Data: map[string]interface{}{
					"current_ticket_number": service.CurrentTicketNumber,
					"waiting_count":         service.WaitingCount,
				},
			})
		}
	}
}

// CleanOldTicketArchives удаляет устаревшие записи истории талонов.
func CleanOldTicketArchives() {
	storage.CleanOldArchives(archiveMaxAge)
}

// InitScheduler инициализирует планировщик cron-задач.
func InitScheduler(r *registry.Registry, e *engine.Engine) *cron.Cron {
	reg = r
	eng = e

	c := cron.New(cron.WithSeconds())

	// Тик движения очередей каждые 5 секунд.
	_, err := c.AddFunc("*/5 * * * * *", AdvanceQueues)
	if err != nil {
		log.Println("Ошибка запуска cron-задачи AdvanceQueues:", err)
	}

	// Очистка архива талонов каждый день в 03:00.
	_, err = c.AddFunc("0 0 3 * * *", CleanOldTicketArchives)
	if err != nil {
		log.Println("Ошибка запуска cron-задачи CleanOldTicketArchives:", err)
	}

	c.Start()
	log.Println("Cron-планировщик запущен.")
	return c
}
