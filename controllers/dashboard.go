package controllers

import (
	"net/http"

	"cashback-backend/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Customers *services.CustomerService
}

// GetStats returns the dashboard counters.
func (dc *DashboardController) GetStats(c *gin.Context) {
	stats, err := dc.Customers.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
