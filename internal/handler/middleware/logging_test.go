//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"limited-drop-api/internal/domain/user"
	"limited-drop-api/internal/handler/httperr"
	"limited-drop-api/internal/handler/middleware"
	"limited-drop-api/internal/pkg/errs"
	"limited-drop-api/internal/pkg/jwt"
	"limited-drop-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter(buf *bytes.Buffer, svc *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.ErrorHandler())

	auth := middleware.NewAuthMiddleware(svc)
	r.GET("/api/orders/:id", auth.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})
	r.POST("/api/checkout", func(c *gin.Context) {
		httperr.Abort(c, errs.SalesCapReached(0))
	})
	r.GET("/boom", func(c *gin.Context) {
		panic("unexpected")
	})
	return r
}

func lastLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestRequestLogger(t *testing.T) {
	svc := jwt.NewService("logging-test-secret", "", time.Hour)

	t.Run("ルートテンプレートと利用者を記録", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf, svc)
		userID := uuid.New()
		token, err := svc.GenerateToken(userID, user.RoleCustomer)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, r, http.MethodGet, "/api/orders/"+uuid.NewString(), nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

		entry := lastLogLine(t, &buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "/api/orders/:id", entry["route"])
		assert.Equal(t, userID.String(), entry["user_id"])
		assert.Equal(t, "customer", entry["role"])
		assert.Equal(t, w.Header().Get("X-Request-ID"), entry["request_id"])
	})

	t.Run("受け取ったリクエストIDを引き継ぐ", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf, svc)

		w := httptest.PerformRequestWithHeaders(t, r, http.MethodPost, "/api/checkout", nil, "",
			map[string]string{"X-Request-ID": "drop-42", "Idempotency-Key": "8d7c1f0e-0a4b-4e59-9b8f-1d2c3b4a5f60"})
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "drop-42", w.Header().Get("X-Request-ID"))

		entry := lastLogLine(t, &buf)
		assert.Equal(t, "INFO", entry["level"], "sold out is not a warning")
		assert.Equal(t, "drop-42", entry["request_id"])
		assert.Equal(t, "8d7c1f0e-0a4b-4e59-9b8f-1d2c3b4a5f60", entry["idempotency_key"])
	})

	t.Run("認証エラーはWARN", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf, svc)

		w := httptest.PerformRequest(t, r, http.MethodGet, "/api/orders/"+uuid.NewString(), nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		entry := lastLogLine(t, &buf)
		assert.Equal(t, "WARN", entry["level"])
		assert.NotContains(t, entry, "user_id")
	})

	t.Run("パニックは500の共通エラー", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf, svc)

		w := httptest.PerformRequest(t, r, http.MethodGet, "/boom", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})
}
