package requestlog

// Unknown marks optional entry fields the caller could not determine.
const Unknown = "unknown"

// Entry is one immutable record of a completed HTTP request/response pair.
// Field names match the JSON payload served by the logs endpoint.
type Entry struct {
	Timestamp     string  `json:"timestamp"`
	Method        string  `json:"method"`
	URL           string  `json:"url"`
	ClientIP      string  `json:"client_ip"`
	UserAgent     string  `json:"user_agent"`
	StatusCode    int     `json:"status_code"`
	ProcessTimeMs float64 `json:"process_time_ms"`
	ResponseSize  string  `json:"response_size"`
}
