package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"construction-marketplace/internal/auth"
	"construction-marketplace/internal/metrics"
	"construction-marketplace/services/market/helpers"
	"construction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing and a request id
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()
	requestID := utils.NewRequestID()
	c.Set("request_id", requestID)

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	})
}

// MetricsMiddleware records request latency per route
func MetricsMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	metrics.RecordHTTPRequestDuration(
		c.Request.Method,
		path,
		fmt.Sprintf("%d", c.Writer.Status()),
		time.Since(start),
	)
}

// AuthRequired verifies the Bearer token and stores the caller account in the
// request context. Mutating routes are mounted behind it; reads stay open.
func AuthRequired(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) < 2 || parts[0] != "Bearer" {
			utils.JSONError(c, http.StatusUnauthorized, auth.ErrInvalidToken, "missing bearer token")
			c.Abort()
			return
		}

		account, err := tm.Check(parts[1])
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, err, "invalid bearer token")
			c.Abort()
			return
		}

		helpers.SetCallerAccount(c, account)
		c.Next()
	}
}
