package main

import (
	"log"
	"net/http"

	"polarity-backend/internal/config"
	"polarity-backend/internal/database"
	"polarity-backend/internal/handlers"
	"polarity-backend/internal/middleware"
	"polarity-backend/internal/services"
	"polarity-backend/internal/ws"

	_ "polarity-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Polarity API
// @version         1.0
// @description     Multi-tenant survey tool: projects with bipolar continuums, voting sessions, invite-token participation, aggregated results and CSV export.
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		// Refuse to start rather than sign tokens with a known default.
		log.Fatal("JWT_SECRET must be set")
	}

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	projectService := services.NewProjectService(db)
	continuumService := services.NewContinuumService(db)
	sessionService := services.NewSessionService(db)
	publicService := services.NewPublicService(db)

	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService)
	continuumHandler := handlers.NewContinuumHandler(continuumService)
	sessionHandler := handlers.NewSessionHandler(sessionService, cfg.FrontendBaseURL, hub)
	publicHandler := handlers.NewPublicHandler(publicService, hub)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/session/:id", wsHandler.HandleWebSocket)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		projects := api.Group("/projects")
		projects.Use(middleware.JWTAuth(authService))
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/continuums", continuumHandler.ListContinuums)
			projects.POST("/:id/continuums", continuumHandler.CreateContinuum)
			projects.GET("/:id/sessions", sessionHandler.ListSessions)
			projects.POST("/:id/sessions", sessionHandler.CreateSession)
		}

		continuums := api.Group("/continuums")
		continuums.Use(middleware.JWTAuth(authService))
		{
			continuums.PUT("/:id", continuumHandler.UpdateContinuum)
			continuums.DELETE("/:id", continuumHandler.DeleteContinuum)
		}

		sessions := api.Group("/sessions")
		sessions.Use(middleware.JWTAuth(authService))
		{
			sessions.PUT("/:id/status", sessionHandler.UpdateStatus)
			sessions.POST("/:id/invite", sessionHandler.CreateInvite)
			sessions.GET("/:id/participants", sessionHandler.ListParticipants)
			sessions.GET("/:id/results", sessionHandler.GetResults)
			sessions.GET("/:id/export.csv", sessionHandler.ExportCSV)
		}

		public := api.Group("/public")
		{
			public.GET("/invite/:token", publicHandler.GetInvite)
			public.POST("/invite/:token/join", publicHandler.Join)
			public.POST("/invite/:token/submit", publicHandler.Submit)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
