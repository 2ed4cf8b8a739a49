package main

import (
	"html/template"
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/minhvu/user-admin/internal/config"
	"github.com/minhvu/user-admin/internal/constants"
	"github.com/minhvu/user-admin/internal/database"
	"github.com/minhvu/user-admin/internal/handlers"
	"github.com/minhvu/user-admin/internal/middleware"
	"github.com/minhvu/user-admin/internal/policy"
	"github.com/minhvu/user-admin/internal/repository"
	"github.com/minhvu/user-admin/internal/services"
	"github.com/minhvu/user-admin/internal/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Role rows must exist before any user can be created
	if err := database.SeedRoles(database.GetDB()); err != nil {
		log.Fatalf("Failed to seed roles: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	r.SetFuncMap(template.FuncMap{
		"formatDateYMD":    utils.FormatDateYMD,
		"formatDateDMY":    utils.FormatDateDMY,
		"formatDateYMDHIS": utils.FormatDateYMDHIS,
		"formatDateDMYHIS": utils.FormatDateDMYHIS,
	})
	r.LoadHTMLGlob("web/templates/*.html")

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Services and policy
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo, roleRepo)
	taskService := services.NewTaskService(taskRepo)
	userPolicy := policy.NewUserPolicy()

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, authService, userPolicy)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "User admin is running",
		})
	})

	// Auth routes (public)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)

	// Task listing is public
	r.GET("/tasks", taskHandler.Index)

	// User administration (session required)
	users := r.Group("/users")
	users.Use(middleware.RequireAuth())
	{
		users.GET("", userHandler.Index)
		users.GET("/create", userHandler.Create)
		users.POST("", userHandler.Store)
		users.GET("/:id", userHandler.Show)
		users.GET("/:id/edit", userHandler.Edit)
		users.PUT("/:id", userHandler.Update)
		users.POST("/:id", userHandler.Update) // HTML form fallback
		users.DELETE("/:id", userHandler.Destroy)
		users.POST("/:id/delete", userHandler.Destroy) // HTML form fallback
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
