package utils

import (
	"net/http"

	"coworking/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestLogger(c).Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
					Error: "Erreur serveur. Veuillez réessayer plus tard.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response and logs the details
// that are kept from the client.
func JSONError(c *gin.Context, status int, message string, details error) {
	fields := []zap.Field{zap.Int("status", status), zap.String("path", c.Request.URL.Path)}
	if details != nil {
		fields = append(fields, zap.Error(details))
	}
	if status >= http.StatusInternalServerError {
		requestLogger(c).Error(message, fields...)
	} else {
		requestLogger(c).Warn(message, fields...)
	}
	c.JSON(status, models.ErrorResponse{Error: message})
}

// requestLogger returns the logger attached to the request, if any.
func requestLogger(c *gin.Context) *zap.Logger {
	if l, ok := c.Get("logger"); ok {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return GetLogger()
}
