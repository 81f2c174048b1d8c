package handlers

import (
	"net/http"

	"intothestar/utils"

	"github.com/gin-gonic/gin"
)

// Health reports the latest health snapshot of the backing services.
func Health(c *gin.Context) {
	status := utils.GetHealthStatus()
	db := "disconnected"
	if status.Mongo {
		db = "connected"
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"db":     db,
		"health": status,
	})
}
