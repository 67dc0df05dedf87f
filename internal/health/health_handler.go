package health

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger is the slice of *sql.DB the probe needs.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

// Check always answers 200; a dead store degrades the body, it never
// fails the probe.
func (h *Handler) Check(c *gin.Context) {
	status := "healthy"
	database := "connected"
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		status = "degraded"
		database = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   status,
		"database": database,
	})
}
