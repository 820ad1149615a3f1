package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(3))
	r.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.OPTIONS("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(method, ip string) int {
		req := httptest.NewRequest(method, "/x", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 3; i++ {
		if code := send(http.MethodPost, "10.0.0.1"); code != http.StatusOK {
			t.Fatalf("request %d: %d", i, code)
		}
	}
	if code := send(http.MethodPost, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("over limit: %d", code)
	}
	if code := send(http.MethodOptions, "10.0.0.1"); code != http.StatusOK {
		t.Fatalf("preflight limited: %d", code)
	}
	if code := send(http.MethodPost, "10.0.0.2"); code != http.StatusOK {
		t.Fatalf("other client limited: %d", code)
	}
}

func TestRateLimiterEvictsIdleVisitors(t *testing.T) {
	s := newRateLimiterStore(10)
	now := time.Now()
	s.getLimiter("a", now)
	s.getLimiter("b", now.Add(idleLimiterTTL+time.Second))
	if _, ok := s.visitors["a"]; ok {
		t.Fatal("idle visitor kept")
	}
	if len(s.visitors) != 1 {
		t.Fatalf("visitors = %d", len(s.visitors))
	}
}
