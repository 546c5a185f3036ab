package handlers

import (
	"errors"
	"net/http"

	"pankti_backend/internal/engine"
	"pankti_backend/internal/models"
	"pankti_backend/internal/response"
	"pankti_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// JoinQueueHandler обрабатывает запрос на вступление в очередь точки обслуживания
// @Summary		Вступление в очередь
// @Description	Выдаёт талон в очередь точки и уведомляет подписчиков. Повторное вступление в ту же очередь отклоняется
// @Tags			queue
// @Accept			json
// @Produce		json
// @Param			id	path		string	true	"ID точки обслуживания"
// @Security		BearerAuth
// @Success		200	{object}	models.Ticket	"Выданный талон с номером и оценкой ожидания"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (ALREADY_IN_QUEUE, SERVICE_CLOSED)"
// @Failure		404	{object}	response.ErrorResponse	"Точка не найдена (SERVICE_NOT_FOUND)"
// @Router			/api/services/{id}/join [post]
func JoinQueueHandler(c *gin.Context) {
	serviceID := c.Param("id")
	userID := c.GetUint("userID")

	ticket, err := Engine.Join(userID, serviceID)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{
				Code:    "SERVICE_NOT_FOUND",
				Message: "Точка обслуживания не найдена",
			})
		case errors.Is(err, engine.ErrServiceClosed):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "SERVICE_CLOSED",
				Message: "Точка обслуживания закрыта",
			})
		case errors.Is(err, engine.ErrAlreadyInQueue):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Code:    "ALREADY_IN_QUEUE",
				Message: "Пользователь уже стоит в этой очереди",
			})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{
				Code:    "JOIN_ERROR",
				Message: "Ошибка вступления в очередь",
				Details: err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// LeaveQueueHandler обрабатывает запрос на выход из очереди
// @Summary		Выход из очереди
// @Description	Отменяет талон и уведомляет подписчиков. Уже завершённый талон отменить нельзя
// @Tags			queue
// @Accept			json
// @Produce		json
// @Param			id	path		string	true	"ID талона"
// @Security		BearerAuth
// @Success		200	{object}	response.SuccessResponse	"Успешный выход из очереди"
// @Failure		400	{object}	response.ErrorResponse	"Активный талон не найден (NOT_IN_QUEUE)"
// @Router			/api/tickets/{id}/leave [post]
func LeaveQueueHandler(c *gin.Context) {
	ticketID := c.Param("id")
	userID := c.GetUint("userID")

	ticket, ok := Engine.Get(ticketID)
	if !ok || ticket.UserID != userID || ticket.Status == models.StatusCompleted {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "NOT_IN_QUEUE",
			Message: "Активный талон не найден",
		})
		return
	}

	Engine.Leave(ticketID)

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Вы успешно вышли из очереди"})
}

// GetUserTicketsHandler godoc
// @Summary		Получение своих талонов
// @Description	Возвращает талоны пользователя текущей сессии, включая завершённые
// @Tags			profile
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		models.Ticket	"Талоны пользователя"
// @Router			/profile/tickets [get]
func GetUserTicketsHandler(c *gin.Context) {
	userID := c.GetUint("userID")
	c.JSON(http.StatusOK, Engine.TicketsByUser(userID))
}

// GetUserHistoryHandler godoc
// @Summary		История талонов
// @Description	Возвращает архив завершённых и отменённых талонов пользователя
// @Tags			profile
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		models.TicketArchive	"Архивные талоны"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/profile/history [get]
func GetUserHistoryHandler(c *gin.Context) {
	userID := c.GetUint("userID")

	records, err := storage.UserHistory(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка загрузки истории талонов",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, records)
}
