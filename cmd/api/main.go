package main

import (
	"log"
	"net/http"
	"time"

	"todo-api/internal/api"
	"todo-api/internal/api/handlers"
	"todo-api/internal/config"
	"todo-api/internal/database"
	"todo-api/internal/middleware"
	"todo-api/internal/repository"
	"todo-api/internal/requestlog"
	"todo-api/internal/services"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	serverConfig := config.NewServerConfig()
	bufferConfig := config.NewLogBufferConfig()

	// Initialize database connection
	db, err := database.InitDB(config.NewDatabaseConfig())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Get underlying *sql.DB instance for connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to get underlying *sql.DB instance:", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	// Cache is optional; without Redis the service reads straight
	// from the database.
	var cache services.CacheService
	if redisCache, err := services.NewRedisCacheService(config.NewCacheConfig()); err != nil {
		log.Printf("Warning: Redis unavailable, running without cache: %v", err)
	} else {
		cache = redisCache
	}

	// Initialize repositories and services
	todoRepo := repository.NewTodoRepository(db)
	todoService := services.NewTodoService(todoRepo, cache)

	// Request log buffer is constructed here and handed to the
	// middleware and the logs endpoint; no package-level state.
	buffer := requestlog.New(bufferConfig.Capacity)
	requestLogger := middleware.NewRequestLogger(buffer, bufferConfig.Location)

	// Initialize handlers
	todoHandler := handlers.NewTodoHandler(todoService)
	logHandler := handlers.NewRequestLogHandler(buffer)
	dbHandler := handlers.NewDatabaseHandler(todoRepo)

	// Initialize router; the request logger wraps the whole router so
	// every request, matched or not, is recorded.
	router := api.SetupRoutes(db, todoHandler, logHandler, dbHandler)
	loggedRouter := requestLogger.LogRequest(router)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	// Create server with timeouts
	srv := &http.Server{
		Handler:      corsMiddleware.Handler(loggedRouter),
		Addr:         ":" + serverConfig.Port,
		WriteTimeout: serverConfig.WriteTimeout,
		ReadTimeout:  serverConfig.ReadTimeout,
	}

	// Start server
	log.Printf("Server starting on port %s...", serverConfig.Port)
	log.Fatal(srv.ListenAndServe())
}
