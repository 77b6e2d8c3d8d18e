package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/tracks-backend-go/internal/logger"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) { c.String(http.StatusOK, "ok") }

func TestRateLimiterWindow(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }

	if !rl.Allow("1.1.1.1") || !rl.Allow("1.1.1.1") {
		t.Fatal("first two requests must pass")
	}
	if rl.Allow("1.1.1.1") {
		t.Fatal("third request within the window must be rejected")
	}
	if !rl.Allow("2.2.2.2") {
		t.Fatal("other clients are limited separately")
	}

	now = now.Add(time.Minute)
	if !rl.Allow("1.1.1.1") {
		t.Fatal("requests must pass again after the window")
	}

	now = now.Add(2 * time.Minute)
	rl.cleanup()
	if len(rl.requests) != 0 {
		t.Fatalf("expected stale entries removed, got %v", rl.requests)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(NewRateLimiter(1, time.Minute)))
	r.GET("/", okHandler)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status codes %v", codes)
	}
}

func TestAuth(t *testing.T) {
	r := gin.New()
	r.Use(Auth(testSecret))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(SubjectKey)) })

	valid, err := IssueToken(testSecret, "uploader", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	expired, _ := IssueToken(testSecret, "uploader", -time.Hour)
	foreign, _ := IssueToken("other-secret", "uploader", time.Hour)

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{"valid", "Bearer " + valid, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized},
		{"garbage", "Bearer not-a-token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, w.Code)
			}
			if tt.code == http.StatusOK && w.Body.String() != "uploader" {
				t.Fatalf("expected subject in context, got %q", w.Body.String())
			}
		})
	}
}

func TestLoggerRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger.Init(logger.Options{Level: "info", Format: "json", Writer: &buf})
	t.Cleanup(func() { logger.Init(logger.Options{Level: "info", Format: "json"}) })

	r := gin.New()
	r.Use(Logger())
	r.GET("/", func(c *gin.Context) {
		logger.C(c.Request.Context()).Info().Msg("inside")
		okHandler(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/?day=all", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "req-1" {
		t.Fatalf("expected request id echoed, got %q", got)
	}

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %s", len(lines), buf.String())
	}
	for _, line := range lines {
		var entry map[string]interface{}
		if err := json.Unmarshal(line, &entry); err != nil {
			t.Fatalf("decode log line: %v", err)
		}
		if entry["request_id"] != "req-1" {
			t.Fatalf("expected request id on every line, got %v", entry)
		}
	}

	var access map[string]interface{}
	_ = json.Unmarshal(lines[1], &access)
	if access["path"] != "/?day=all" || access["status"] != float64(http.StatusOK) {
		t.Fatalf("unexpected access log %v", access)
	}
}

func TestLoggerGeneratesRequestID(t *testing.T) {
	r := gin.New()
	r.Use(Logger())
	r.GET("/", okHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Header().Get(RequestIDHeader) == "" {
		t.Fatal("expected a generated request id")
	}
}
