package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sneha051188/employee-management-system/internal/services"
)

type DashboardHandler struct {
	Dashboard *services.DashboardService
}

func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	summary, err := h.Dashboard.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
