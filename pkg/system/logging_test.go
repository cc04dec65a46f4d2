package system

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func newTestContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	return c
}

func TestGetReqLogger(t *testing.T) {
	fallback := zaptest.NewLogger(t).Sugar()

	t.Run("nil context returns fallback", func(t *testing.T) {
		assert.Same(t, fallback, GetReqLogger(nil, fallback))
	})

	t.Run("unset key returns fallback", func(t *testing.T) {
		assert.Same(t, fallback, GetReqLogger(newTestContext(t), fallback))
	})

	t.Run("stored logger is returned", func(t *testing.T) {
		c := newTestContext(t)
		stored := zaptest.NewLogger(t).Sugar().With("relayID", "abc")
		c.Set(ReqLoggerKey, stored)
		assert.Same(t, stored, GetReqLogger(c, fallback))
	})

	t.Run("wrong type returns fallback", func(t *testing.T) {
		c := newTestContext(t)
		c.Set(ReqLoggerKey, "not a logger")
		assert.Same(t, fallback, GetReqLogger(c, fallback))
	})
}

func TestGetRelayID(t *testing.T) {
	assert.Empty(t, GetRelayID(nil))
	assert.Empty(t, GetRelayID(newTestContext(t)))

	c := newTestContext(t)
	c.Set(RelayIDKey, "relay-1")
	assert.Equal(t, "relay-1", GetRelayID(c))

	c = newTestContext(t)
	c.Set(RelayIDKey, 42)
	assert.Empty(t, GetRelayID(c))
}
