package handlers

import (
	"net/http"
	"strconv"

	"todo-api/internal/requestlog"
)

// defaultLogLimit caps how many recent entries the logs endpoint
// returns unless the caller asks for more.
const defaultLogLimit = 50

type RequestLogHandler struct {
	buffer *requestlog.Buffer
}

func NewRequestLogHandler(buffer *requestlog.Buffer) *RequestLogHandler {
	return &RequestLogHandler{buffer: buffer}
}

// GetLogs - Recent request history plus the running total.
// ?limit=N overrides the default window, ?split=1 adds the GET/write
// partition for two-column displays.
func (h *RequestLogHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	limit := defaultLogLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		if parsed, err := strconv.Atoi(limitParam); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries, total := h.buffer.Snapshot(limit)

	payload := map[string]interface{}{
		"logs":           entries,
		"total_requests": total,
	}

	if r.URL.Query().Get("split") == "1" {
		reads, writes := requestlog.SplitByMethod(entries)
		payload["reads"] = reads
		payload["writes"] = writes
	}

	respondWithJSON(w, http.StatusOK, payload)
}
