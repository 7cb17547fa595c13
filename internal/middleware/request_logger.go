package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"todo-api/internal/logger"
	"todo-api/internal/metrics"
	"todo-api/internal/requestlog"

	"github.com/sirupsen/logrus"
)

// Timestamps carry the configured fixed offset, so the zone suffix is
// part of the rendered string.
const timestampLayout = "2006-01-02T15:04:05.000000-07:00"

type ResponseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (rw *ResponseWriter) WriteHeader(status int) {
	rw.status = status
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *ResponseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

// RequestLogger times every request and records a summary entry into
// the shared request log buffer after the response is sent.
type RequestLogger struct {
	buffer   *requestlog.Buffer
	location *time.Location
	now      func() time.Time
}

func NewRequestLogger(buffer *requestlog.Buffer, location *time.Location) *RequestLogger {
	if location == nil {
		location = time.UTC
	}
	return &RequestLogger{
		buffer:   buffer,
		location: location,
		now:      time.Now,
	}
}

// WithClock replaces the wall clock, for deterministic tests.
func (rl *RequestLogger) WithClock(now func() time.Time) *RequestLogger {
	rl.now = now
	return rl
}

func (rl *RequestLogger) LogRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := rl.now()

		// Create custom response writer to capture status code and size
		rw := &ResponseWriter{
			ResponseWriter: w,
			status:         http.StatusOK,
		}

		// Execute the request
		next.ServeHTTP(rw, r)

		elapsed := rl.now().Sub(start)
		rl.record(r, rw, start, elapsed)
	})
}

// record is best-effort: any fault here is swallowed so that logging
// can never perturb the response already sent to the client.
func (rl *RequestLogger) record(r *http.Request, rw *ResponseWriter, start time.Time, elapsed time.Duration) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Logger.WithField("panic", rec).Error("Failed to record request log entry")
		}
	}()

	processTimeMs := math.Round(elapsed.Seconds()*1000*100) / 100

	rl.buffer.Record(requestlog.Entry{
		Timestamp:     start.In(rl.location).Format(timestampLayout),
		Method:        r.Method,
		URL:           fullURL(r),
		ClientIP:      clientIP(r),
		UserAgent:     userAgent(r),
		StatusCode:    rw.status,
		ProcessTimeMs: processTimeMs,
		ResponseSize:  strconv.Itoa(rw.size),
	})

	metrics.RequestsTotal.WithLabelValues(r.Method, strconv.Itoa(rw.status)).Inc()

	logger.LogEvent(logrus.InfoLevel, "Request handled", logrus.Fields{
		"method":        r.Method,
		"url":           r.URL.Path,
		"status_code":   rw.status,
		"response_time": elapsed.Milliseconds(),
		"ip":            clientIP(r),
	})
}

func fullURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if host == "" {
		return requestlog.Unknown
	}
	return host
}

func userAgent(r *http.Request) string {
	if ua := r.Header.Get("User-Agent"); ua != "" {
		return ua
	}
	return requestlog.Unknown
}
