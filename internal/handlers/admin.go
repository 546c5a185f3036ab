package handlers

import (
	"net/http"

	"pankti_backend/internal/response"
	"pankti_backend/internal/ws"

	"github.com/gin-gonic/gin"
)

// NextCustomerHandler обрабатывает вызов следующего клиента администратором
// @Summary		Вызов следующего клиента
// @Description	Продвигает очередь точки на один шаг и пересчитывает все талоны. Закрытая или пустая очередь не продвигается
// @Tags			admin
// @Accept			json
// @Produce		json
// @Param			id	path		string	true	"ID точки обслуживания"
// @Security		BearerAuth
// @Success		200	{object}	models.Service	"Точка после продвижения"
// @Failure		400	{object}	response.ErrorResponse	"Очередь пуста или точка закрыта (QUEUE_NOT_ADVANCEABLE)"
// @Failure		404	{object}	response.ErrorResponse	"Точка не найдена (SERVICE_NOT_FOUND)"
// @Router			/api/admin/services/{id}/next [post]
func NextCustomerHandler(c *gin.Context) {
	serviceID := c.Param("id")

	if _, ok := Registry.Get(serviceID); !ok {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "SERVICE_NOT_FOUND",
			Message: "Точка обслуживания не найдена",
		})
		return
	}

	if !Registry.Advance(serviceID) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "QUEUE_NOT_ADVANCEABLE",
			Message: "Очередь пуста или точка закрыта",
		})
		return
	}

	// Один пересчёт на одну мутацию реестра
	Engine.RecomputeAll()

	service, _ := Registry.Get(serviceID)
	ws.HubInstance.BroadcastWSMessage(ws.WSMessage{
		EventType: "queue_advanced",
		ServiceID: serviceID,
		Data: map[string]interface{}{
			"current_ticket_number": service.CurrentTicketNumber,
			"waiting_count":         service.WaitingCount,
		},
	})

	c.JSON(http.StatusOK, service)
}

// ToggleServiceHandler обрабатывает открытие/закрытие точки администратором
// @Summary		Открытие/закрытие точки
// @Description	Переключает флаг открытости точки, остальные счётчики не меняются
// @Tags			admin
// @Accept			json
// @Produce		json
// @Param			id	path		string	true	"ID точки обслуживания"
// @Security		BearerAuth
// @Success		200	{object}	models.Service	"Точка после переключения"
// @Failure		404	{object}	response.ErrorResponse	"Точка не найдена (SERVICE_NOT_FOUND)"
// @Router			/api/admin/services/{id}/toggle [post]
func ToggleServiceHandler(c *gin.Context) {
	serviceID := c.Param("id")

	if !Registry.ToggleOpen(serviceID) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "SERVICE_NOT_FOUND",
			Message: "Точка обслуживания не найдена",
		})
		return
	}

	Engine.RecomputeAll()

	service, _ := Registry.Get(serviceID)
	ws.HubInstance.BroadcastWSMessage(ws.WSMessage{
		EventType: "service_toggled",
		ServiceID: serviceID,
		Data: map[string]interface{}{
			"is_open": service.IsOpen,
		},
	})

	c.JSON(http.StatusOK, service)
}

// InsightsHandler godoc
// @Summary		Сводные советы по очередям
// @Description	Возвращает советы модели по управлению потоком по всем точкам; при сбое — нейтральный текст
// @Tags			admin
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	map[string]string	"Текст сводки"
// @Router			/api/admin/insights [get]
func InsightsHandler(c *gin.Context) {
	insights := AI.AdminInsights(Registry.List())
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// RecommendationHandler godoc
// @Summary		Рекомендация следующего шага
// @Description	Возвращает один самый эффективный шаг для точки с учётом простаивающих точек; при сбое — "Monitor Queue"
// @Tags			admin
// @Accept			json
// @Produce		json
// @Param			id	path		string	true	"ID точки обслуживания"
// @Security		BearerAuth
// @Success		200	{object}	models.QueueActionRecommendation	"Рекомендация"
// @Failure		404	{object}	response.ErrorResponse	"Точка не найдена (SERVICE_NOT_FOUND)"
// @Router			/api/admin/services/{id}/recommendation [get]
func RecommendationHandler(c *gin.Context) {
	service, ok := Registry.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "SERVICE_NOT_FOUND",
			Message: "Точка обслуживания не найдена",
		})
		return
	}

	recommendation := AI.QueueRecommendation(service, Registry.List())
	c.JSON(http.StatusOK, recommendation)
}
