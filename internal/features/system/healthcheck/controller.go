package system_healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/healthcheck", c.GetSystemStatus)
}

// GetSystemStatus
// @Summary System healthcheck
// @Description Report service status with memory and disk usage
// @Tags system
// @Produce json
// @Success 200 {object} SystemStatusDTO
// @Failure 500 {object} map[string]string
// @Router /healthcheck [get]
func (c *HealthcheckController) GetSystemStatus(ctx *gin.Context) {
	status, err := c.healthcheckService.GetSystemStatus()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, status)
}
