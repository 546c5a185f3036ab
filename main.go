package main

import (
	"fmt"
	"log"
	"os"

	_ "pankti_backend/docs"
	"pankti_backend/internal/auth"
	"pankti_backend/internal/engine"
	"pankti_backend/internal/estimator"
	"pankti_backend/internal/handlers"
	"pankti_backend/internal/models"
	"pankti_backend/internal/registry"
	"pankti_backend/internal/storage"
	"pankti_backend/internal/tasks"
	"pankti_backend/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @Title						Pankti — умные очереди для точек обслуживания
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Println("Подключение к .env")
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Ошибка получения .env")
		}
	}

	storage.ConnectDatabase()

	if err := storage.DB.AutoMigrate(&models.User{}, &models.TicketArchive{}); err != nil {
		log.Fatal("Ошибка при миграции... ", err.Error())
	}

	storage.InitRedis()

	// Ядро: реестр точек, оценщик, движок талонов
	reg := registry.New()
	reg.Seed(registry.InitialServices())

	ai := estimator.NewGemini()

	eng := engine.New(reg, ai)
	eng.Archive = storage.ArchiveTicket
	eng.Notify = func(ev engine.Event) {
		ws.HubInstance.BroadcastWSMessage(ws.WSMessage{
			EventType: ev.EventType,
			ServiceID: ev.ServiceID,
			Data:      ev.Data,
		})
	}

	handlers.Registry = reg
	handlers.Engine = eng
	handlers.AI = ai

	tasks.InitScheduler(reg, eng)

	go ws.HubInstance.Run()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", handlers.Login)
		authGroup.POST("/register", handlers.Register)
		authGroup.POST("/refresh", handlers.RefreshToken)
	}

	api := r.Group("/api", auth.AuthMiddleware())
	{
		api.GET("/services", handlers.ListServicesHandler)
		api.GET("/services/:id", handlers.GetServiceHandler)
		api.POST("/services/nearby", handlers.FindNearbyHandler)
		api.POST("/services/:id/join", handlers.JoinQueueHandler)
		api.POST("/tickets/:id/leave", handlers.LeaveQueueHandler)
	}

	r.GET("/api/services/:id/ws", ws.ServiceWebSocketHandler)

	profile := r.Group("/profile", auth.AuthMiddleware())
	{
		profile.GET("/tickets", handlers.GetUserTicketsHandler)
		profile.GET("/history", handlers.GetUserHistoryHandler)
	}

	admin := r.Group("/api/admin", auth.AuthMiddleware(), auth.AdminMiddleware())
	{
		admin.POST("/services/:id/next", handlers.NextCustomerHandler)
		admin.POST("/services/:id/toggle", handlers.ToggleServiceHandler)
		admin.GET("/insights", handlers.InsightsHandler)
		admin.GET("/services/:id/recommendation", handlers.RecommendationHandler)
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Ошибка запуска сервера...", err.Error())
	}
}
