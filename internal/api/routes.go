package api

import (
	"todo-api/internal/api/handlers"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func SetupRoutes(
	db *gorm.DB,
	todoHandler *handlers.TodoHandler,
	logHandler *handlers.RequestLogHandler,
	dbHandler *handlers.DatabaseHandler,
) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", handlers.HealthCheckHandler(db)).Methods("GET")

	router.HandleFunc("/api/todos", todoHandler.ListTodos).Methods("GET")
	router.HandleFunc("/api/todos", todoHandler.CreateTodo).Methods("POST")
	router.HandleFunc("/api/todos/{id}/toggle", todoHandler.ToggleTodo).Methods("PUT")
	router.HandleFunc("/api/todos/{id}", todoHandler.DeleteTodo).Methods("DELETE")

	router.HandleFunc("/api/logs", logHandler.GetLogs).Methods("GET")
	router.HandleFunc("/api/database/structure", dbHandler.GetStructure).Methods("GET")

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return router
}
