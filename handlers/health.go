package handlers

import (
	"net/http"

	"coworking/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last snapshot of the health monitor. The store
// must be reachable; Redis is only reported.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	state := "ok"
	if !status.Store {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(code, gin.H{"status": state, "checks": status})
}
