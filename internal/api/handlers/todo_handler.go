package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"todo-api/internal/logger"
	"todo-api/internal/metrics"
	"todo-api/internal/models"
	"todo-api/internal/services"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type TodoHandler struct {
	todoService services.TodoService
}

func NewTodoHandler(todoService services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// ListTodos - Fetch all todos, newest first
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.todoService.ListTodos(r.Context())
	if err != nil {
		logger.LogEvent(logrus.ErrorLevel, "Failed to fetch todos", logrus.Fields{
			"error": err.Error(),
		})
		respondWithError(w, http.StatusInternalServerError, "Error fetching todos")
		return
	}

	if todos == nil {
		todos = []models.Todo{}
	}
	respondWithJSON(w, http.StatusOK, todos)
}

// CreateTodo - Create a new todo from {title, due_date?}
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	todo, err := h.todoService.CreateTodo(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyTitle), errors.Is(err, services.ErrInvalidDueDate):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			logger.LogEvent(logrus.ErrorLevel, "Failed to create todo", logrus.Fields{
				"error": err.Error(),
			})
			respondWithError(w, http.StatusInternalServerError, "Error creating todo")
		}
		return
	}

	metrics.TodosCreatedTotal.Inc()
	respondWithJSON(w, http.StatusCreated, todo)
}

// ToggleTodo - Flip the completed flag of one todo
func (h *TodoHandler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid todo ID")
		return
	}

	todo, err := h.todoService.ToggleTodo(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(w, http.StatusNotFound, "Todo not found")
			return
		}
		logger.LogEvent(logrus.ErrorLevel, "Failed to toggle todo", logrus.Fields{
			"error": err.Error(),
			"id":    id,
		})
		respondWithError(w, http.StatusInternalServerError, "Error toggling todo")
		return
	}

	metrics.TodosToggledTotal.Inc()
	respondWithJSON(w, http.StatusOK, todo)
}

// DeleteTodo - Remove a todo permanently
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid todo ID")
		return
	}

	if err := h.todoService.DeleteTodo(r.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(w, http.StatusNotFound, "Todo not found")
			return
		}
		logger.LogEvent(logrus.ErrorLevel, "Failed to delete todo", logrus.Fields{
			"error": err.Error(),
			"id":    id,
		})
		respondWithError(w, http.StatusInternalServerError, "Error deleting todo")
		return
	}

	metrics.TodosDeletedTotal.Inc()
	w.WriteHeader(http.StatusNoContent)
}

func todoID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}
