package modules

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthModule exposes a liveness endpoint that also pings the
// database pool.
type HealthModule struct {
	Pool *pgxpool.Pool
}

func NewHealthModule(pool *pgxpool.Pool) *HealthModule {
	return &HealthModule{Pool: pool}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := m.Pool.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
