package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"rttsite/config"
	"rttsite/controllers"
	"rttsite/database"
	"rttsite/middleware"
	"rttsite/models"
	"rttsite/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.GetAppConfig()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Contact messages are the only locally stored data; everything else
	// lives in the external ATS. The site stays up without a database.
	var messageStore controllers.ContactMessageStore
	db, err := database.Connect(cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
		cfg.Database.Password, cfg.Database.DBName, cfg.Database.SSLMode)
	if err != nil {
		log.Printf("Database unavailable, contact form disabled: %v", err)
	} else {
		if err := database.EnsureSchema(db); err != nil {
			log.Fatalf("Failed to ensure database schema: %v", err)
		}
		messageStore = models.NewContactMessageModel(db)
	}

	ats := services.NewTeamtailorService(cfg.Teamtailor)
	notifications := services.NewEmailNotificationService()
	jwtService := services.NewJWTService(cfg.JWTSecret)

	storage, err := services.NewS3Service()
	if err != nil {
		log.Printf("CV archiving disabled: %v", err)
		storage = nil
	}

	applyController := controllers.NewApplyController(ats, storage, notifications)
	contactController := controllers.NewContactController(messageStore, notifications)
	contentController := controllers.NewContentController()
	adminController := controllers.NewAdminController(messageStore, jwtService, cfg.Admin)

	limiters := middleware.CreateRateLimiters()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.MaxRequestSize(10 << 20)) // multipart bodies incl. a 5 MB CV

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.GET("/jobs", limiters["general"].Limit(), contentController.GetJobs)
		api.GET("/blog", limiters["general"].Limit(), contentController.GetBlogPosts)
		api.GET("/blog/:slug", limiters["general"].Limit(), contentController.GetBlogPost)
		api.GET("/events", limiters["general"].Limit(), contentController.GetEvents)
		api.GET("/contact-info", limiters["general"].Limit(), contentController.GetContactInfo)
		api.GET("/countries", limiters["general"].Limit(), contentController.GetCountryCodes)

		api.POST("/apply", limiters["forms"].Limit(),
			middleware.ValidateContentType("multipart/form-data"), applyController.SubmitApplication)
		api.POST("/apply/validate", limiters["general"].Limit(),
			middleware.ValidateJSON(), applyController.ValidateStep)
		api.POST("/contact", limiters["forms"].Limit(),
			middleware.ValidateJSON(), contactController.SubmitMessage)

		admin := api.Group("/admin")
		{
			admin.POST("/login", limiters["auth"].Limit(), middleware.ValidateJSON(), adminController.Login)

			protected := admin.Group("", middleware.RequireAdmin(jwtService))
			protected.GET("/messages", adminController.ListMessages)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
