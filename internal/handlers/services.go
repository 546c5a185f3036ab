package handlers

import (
	"net/http"

	"pankti_backend/internal/response"

	"github.com/gin-gonic/gin"
)

// ListServicesHandler godoc
// @Summary		Список точек обслуживания
// @Description	Возвращает все точки с живыми счётчиками очередей
// @Tags			services
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}	models.Service	"Точки обслуживания"
// @Router			/api/services [get]
func ListServicesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, Registry.List())
}

// GetServiceHandler godoc
// @Summary		Точка обслуживания по ID
// @Description	Возвращает одну точку с текущим состоянием очереди
// @Tags			services
// @Accept			json
// @Produce		json
// @Param			id	path		string	true	"ID точки обслуживания"
// @Security		BearerAuth
// @Success		200	{object}	models.Service	"Точка обслуживания"
// @Failure		404	{object}	response.ErrorResponse	"Точка не найдена (SERVICE_NOT_FOUND)"
// @Router			/api/services/{id} [get]
func GetServiceHandler(c *gin.Context) {
	service, ok := Registry.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "SERVICE_NOT_FOUND",
			Message: "Точка обслуживания не найдена",
		})
		return
	}
	c.JSON(http.StatusOK, service)
}

type NearbyRequest struct {
	Lat float64 `json:"lat" binding:"required"`
	Lng float64 `json:"lng" binding:"required"`
}

// FindNearbyHandler godoc
// @Summary		Поиск точек поблизости
// @Description	Ищет публичные точки обслуживания рядом с координатой и добавляет их в реестр с симулированными счётчиками очередей
// @Tags			services
// @Accept			json
// @Produce		json
// @Param			coords	body		NearbyRequest	true	"Координаты"
// @Security		BearerAuth
// @Success		200	{array}	models.Service	"Обнаруженные точки"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации данных (VALIDATION_ERROR)"
// @Router			/api/services/nearby [post]
func FindNearbyHandler(c *gin.Context) {
	var req NearbyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	discovered := AI.FindNearby(req.Lat, req.Lng)

	// Обнаруженные точки добавляются в реестр, а не заменяют его:
	// существующие талоны не должны остаться без своей точки.
	for _, s := range discovered {
		Registry.Add(s)
	}

	c.JSON(http.StatusOK, discovered)
}
