package main

import (
	"context"
	"log"

	_ "dashboard/api/swagger" // swagger docs
	"dashboard/internal/config"
	"dashboard/internal/gateway"
	"dashboard/internal/handler"
	"dashboard/internal/middleware"
	"dashboard/internal/service"
	"dashboard/internal/session"
	"dashboard/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Procurement Dashboard API
// @version         1.0
// @description     Session-backed gateway for the procurement dashboard frontend.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Session store: Redis when configured, in-process memory otherwise.
	var store session.Store
	if cfg.RedisURL != "" {
		redisStore, err := session.NewRedisStore(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Fatalf("Redis connection failed: %v", err)
		}
		log.Println("Connected to Redis successfully.")
		store = redisStore
	} else {
		log.Println("REDIS_URL not set, using in-memory session store.")
		store = session.NewMemoryStore()
	}

	backend := gateway.New(cfg.BackendBaseURL, cfg.GatewayTimeout)

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Gateway -> Service -> Handler)
	authService := service.NewAuthService(backend, store, cfg.SessionTTL)
	requestService := service.NewRequestService(backend, wsHub)
	orderService := service.NewOrderService(backend, wsHub)
	approvalService := service.NewApprovalService(backend, wsHub)
	dashboardService := service.NewDashboardService(backend)
	catalogService := service.NewCatalogService(backend, wsHub)

	// Initialize Handlers
	authHandler := handler.NewAuthHandler(authService, cfg.CookieSecure)
	requestHandler := handler.NewRequestHandler(requestService, approvalService, authService)
	orderHandler := handler.NewOrderHandler(orderService, authService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, authService)
	catalogHandler := handler.NewCatalogHandler(catalogService, authService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint for live refresh events
	router.GET("/ws", middleware.RequireSession(authService), func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	// Register API Routes
	authHandler.RegisterRoutes(router.Group(""))
	requestHandler.RegisterRoutes(router.Group(""))
	orderHandler.RegisterRoutes(router.Group(""))
	dashboardHandler.RegisterRoutes(router.Group(""))
	catalogHandler.RegisterRoutes(router.Group(""))

	log.Printf("Server listening on :%s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
