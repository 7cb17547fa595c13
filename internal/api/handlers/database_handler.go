package handlers

import (
	"net/http"

	"todo-api/internal/logger"
	"todo-api/internal/repository"

	"github.com/sirupsen/logrus"
)

const sampleDataLimit = 10

type DatabaseHandler struct {
	todoRepo repository.TodoRepository
}

func NewDatabaseHandler(todoRepo repository.TodoRepository) *DatabaseHandler {
	return &DatabaseHandler{todoRepo: todoRepo}
}

// GetStructure - Inspect the todos table: column definitions, row
// count, and the newest sample rows.
func (h *DatabaseHandler) GetStructure(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	columns, err := h.todoRepo.Columns(ctx)
	if err != nil {
		h.fail(w, "Failed to read table columns", err)
		return
	}

	totalRows, err := h.todoRepo.Count(ctx)
	if err != nil {
		h.fail(w, "Failed to count rows", err)
		return
	}

	sample, err := h.todoRepo.Sample(ctx, sampleDataLimit)
	if err != nil {
		h.fail(w, "Failed to read sample data", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"table_name":  "todos",
		"columns":     columns,
		"total_rows":  totalRows,
		"sample_data": sample,
	})
}

func (h *DatabaseHandler) fail(w http.ResponseWriter, message string, err error) {
	logger.LogEvent(logrus.ErrorLevel, message, logrus.Fields{
		"error": err.Error(),
	})
	respondWithError(w, http.StatusInternalServerError, "Error inspecting database structure")
}
