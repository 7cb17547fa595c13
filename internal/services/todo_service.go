package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"todo-api/internal/logger"
	"todo-api/internal/models"
	"todo-api/internal/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyTitle     = errors.New("title is required")
	ErrInvalidDueDate = errors.New("due date must use YYYY-MM-DD format")
)

const (
	dueDateLayout = "2006-01-02"

	todoListCacheKey = "todos:list"
	todoListCacheTTL = 1 * time.Minute
)

type TodoService interface {
	ListTodos(ctx context.Context) ([]models.Todo, error)
	CreateTodo(ctx context.Context, req models.CreateTodoRequest) (*models.Todo, error)
	ToggleTodo(ctx context.Context, id int) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id int) error
}

type todoService struct {
	todoRepo repository.TodoRepository
	cache    CacheService
}

// NewTodoService wires the repository and an optional cache; a nil
// cache disables caching entirely.
func NewTodoService(todoRepo repository.TodoRepository, cache CacheService) TodoService {
	return &todoService{todoRepo: todoRepo, cache: cache}
}

func (s *todoService) ListTodos(ctx context.Context) ([]models.Todo, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, todoListCacheKey); err == nil {
			var todos []models.Todo
			if err := json.Unmarshal([]byte(cached), &todos); err == nil {
				return todos, nil
			}
		}
	}

	todos, err := s.todoRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, todoListCacheKey, todos, todoListCacheTTL); err != nil {
			logger.LogEvent(logrus.WarnLevel, "Failed to cache todo list", logrus.Fields{
				"error": err.Error(),
			})
		}
	}

	return todos, nil
}

func (s *todoService) CreateTodo(ctx context.Context, req models.CreateTodoRequest) (*models.Todo, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse(dueDateLayout, req.DueDate)
		if err != nil {
			return nil, ErrInvalidDueDate
		}
		dueDate = &parsed
	}

	todo := &models.Todo{
		Title:   title,
		DueDate: dueDate,
	}
	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return todo, nil
}

func (s *todoService) ToggleTodo(ctx context.Context, id int) (*models.Todo, error) {
	todo, err := s.todoRepo.Toggle(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return todo, nil
}

func (s *todoService) DeleteTodo(ctx context.Context, id int) error {
	if err := s.todoRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	return nil
}

// Cache trouble never fails a write; the list is re-read from the
// database once the TTL expires anyway.
func (s *todoService) invalidateListCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, todoListCacheKey); err != nil {
		logger.LogEvent(logrus.WarnLevel, "Failed to invalidate todo list cache", logrus.Fields{
			"error": err.Error(),
		})
	}
}
