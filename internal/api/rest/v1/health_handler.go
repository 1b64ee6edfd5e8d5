package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger checks that the storage backend is reachable
type Pinger func(ctx context.Context) error

// HealthHandler defines the interface for handling health checks
type HealthHandler interface {
	Check(ctx *gin.Context)
}

type healthHandler struct {
	ping Pinger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(ping Pinger) HealthHandler {
	return &healthHandler{ping: ping}
}

// Check handles the GET request for the service health
func (handler *healthHandler) Check(ctx *gin.Context) {
	if err := handler.ping(ctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"checks": gin.H{"database": err.Error()},
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"checks": gin.H{"database": "ok"},
	})
}
