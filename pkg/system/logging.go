package system

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReqLoggerKey is the context key used to store the request-scoped logger
// in gin context.
const ReqLoggerKey = "reqLogger"

// RelayIDKey is the context key holding the per-request relay ID.
const RelayIDKey = "relayID"

// GetReqLogger returns the request-scoped sugared logger from gin.Context
// if present, otherwise the provided fallback.
func GetReqLogger(c *gin.Context, fallback *zap.SugaredLogger) *zap.SugaredLogger {
	if c == nil {
		return fallback
	}
	if v, ok := c.Get(ReqLoggerKey); ok {
		if l, ok2 := v.(*zap.SugaredLogger); ok2 {
			return l
		}
	}
	return fallback
}

// GetRelayID returns the relay ID assigned to this request, or "" when the
// middleware did not run.
func GetRelayID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if v, ok := c.Get(RelayIDKey); ok {
		if id, ok2 := v.(string); ok2 {
			return id
		}
	}
	return ""
}
