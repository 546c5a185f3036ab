package estimator

import (
	"pankti_backend/internal/models"
)

// Признанные уровни загруженности
const (
	CrowdLow      = "Low"
	CrowdMedium   = "Medium"
	CrowdHigh     = "High"
	CrowdCritical = "Critical"
)

// Estimator оценивает время ожидания для талона, который вот-вот будет создан.
// positionInQueue — позиция нового талона, начиная с 1.
// Оценка всегда успешна: любой сбой внешнего пути деградирует до
// детерминированного резервного расчёта, ошибок наружу не бывает.
type Estimator interface {
	Estimate(service models.Service, positionInQueue int) models.WaitEstimate
}

// Fallback — детерминированный резервный оценщик: позиция * среднее время на человека.
type Fallback struct{}

func (Fallback) Estimate(service models.Service, positionInQueue int) models.WaitEstimate {
	return fallbackEstimate(service, positionInQueue)
}

func fallbackEstimate(service models.Service, positionInQueue int) models.WaitEstimate {
	return models.WaitEstimate{
		EstimatedMinutes: positionInQueue * service.AverageWaitTimeMins,
		Reasoning:        "Standard estimation (AI unavailable)",
		CrowdLevel:       CrowdMedium,
	}
}

func validCrowdLevel(level string) bool {
	switch level {
	case CrowdLow, CrowdMedium, CrowdHigh, CrowdCritical:
		return true
	}
	return false
}
