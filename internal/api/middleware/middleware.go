package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace-api/internal/dataloader"
	"github.com/feral-file/ff-marketplace-api/internal/identity"
	"github.com/feral-file/ff-marketplace-api/internal/logger"
	"github.com/feral-file/ff-marketplace-api/internal/store"
)

// REQUEST_ID_HEADER carries the request id in both directions
const REQUEST_ID_HEADER = "X-Request-ID"

// RequestID returns a gin middleware that tags the request context logger with a request id.
// An incoming X-Request-ID header is reused, otherwise a new id is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(REQUEST_ID_HEADER)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Header(REQUEST_ID_HEADER, requestID)
		ctx := logger.WithFields(c.Request.Context(), zap.String("request_id", requestID))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// Loaders returns a gin middleware that attaches fresh request-scoped loaders to the request context
func Loaders(st store.Store, identityClient identity.Client, opts ...dataloader.Option) gin.HandlerFunc {
	return func(c *gin.Context) {
		loaders := dataloader.NewLoaders(st, identityClient, opts...)
		c.Request = c.Request.WithContext(dataloader.NewContext(c.Request.Context(), loaders))

		c.Next()

		stats := loaders.Stats()
		fields := make([]zap.Field, 0, len(stats))
		for name, s := range stats {
			if s.Batches == 0 {
				continue
			}
			fields = append(fields, zap.String(name, fmt.Sprintf("batches=%d keys=%d hits=%d", s.Batches, s.Keys, s.Hits)))
		}
		if len(fields) > 0 {
			logger.DebugCtx(c.Request.Context(), "Loader stats", fields...)
		}
	}
}

// Logger returns a gin middleware for structured logging using zap
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		duration := time.Since(start)

		logger.InfoCtx(c.Request.Context(), "API request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	}
}

// Recovery returns a gin middleware for panic recovery with logging
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorCtx(c.Request.Context(), fmt.Errorf("panic recovered: %v", err),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
