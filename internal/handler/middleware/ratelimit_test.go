//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(rl *RateLimiter, userID *uuid.UUID) *gin.Engine {
		r := gin.New()
		r.POST("/checkout", func(c *gin.Context) {
			if userID != nil {
				c.Set(ctxUserIDKey, *userID)
			}
			c.Next()
		}, rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusCreated) })
		return r
	}
	hit := func(r *gin.Engine, ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("burst is enforced per caller", func(t *testing.T) {
		rl := NewRateLimiter(rate.Every(time.Hour), 2)
		r := newRouter(rl, nil)

		assert.Equal(t, http.StatusCreated, hit(r, "10.0.0.1"))
		assert.Equal(t, http.StatusCreated, hit(r, "10.0.0.1"))
		assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1"))
		assert.Equal(t, http.StatusCreated, hit(r, "10.0.0.2"))
	})

	t.Run("authenticated callers are keyed by user", func(t *testing.T) {
		rl := NewRateLimiter(rate.Every(time.Hour), 1)
		id := uuid.New()
		r := newRouter(rl, &id)

		assert.Equal(t, http.StatusCreated, hit(r, "10.0.0.1"))
		assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.2"))
	})

	t.Run("idle visitors are evicted", func(t *testing.T) {
		now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		rl := NewRateLimiter(rate.Every(time.Hour), 1)
		rl.now = func() time.Time { return now }

		rl.getVisitor("a")
		rl.getVisitor("b")
		assert.Len(t, rl.visitors, 2)

		now = now.Add(visitorIdle + time.Second)
		rl.getVisitor("b")
		assert.Len(t, rl.visitors, 1)
		_, kept := rl.visitors["b"]
		assert.True(t, kept)
	})
}
