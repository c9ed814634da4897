// internal/middleware/logging.go
package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger emits one structured log line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		userID, _ := c.Get("user_id")
		logrus.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   duration.Milliseconds(),
			"ip":         c.ClientIP(),
			"user_agent": c.Request.UserAgent(),
			"user_id":    userID,
		}).Info("Request processed")
	}
}

// AuditLog records mutating requests (anything but GET) with a summary
// of the request body. Card fields are redacted before logging.
func AuditLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" || c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		c.Next()

		var requestData map[string]interface{}
		if len(requestBody) > 0 {
			json.Unmarshal(requestBody, &requestData)
		}
		redactSensitive(requestData)

		userID, _ := c.Get("user_id")
		logrus.WithFields(logrus.Fields{
			"action":  c.Request.Method + " " + c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"ip":      c.ClientIP(),
			"user_id": userID,
			"body":    requestData,
		}).Info("Audit")
	}
}

var sensitiveFields = []string{"password", "card_number", "cvv", "expiry_date", "card_name"}

func redactSensitive(data map[string]interface{}) {
	if data == nil {
		return
	}
	for _, field := range sensitiveFields {
		if _, ok := data[field]; ok {
			data[field] = "[redacted]"
		}
	}
	for _, v := range data {
		if nested, ok := v.(map[string]interface{}); ok {
			redactSensitive(nested)
		}
	}
}
