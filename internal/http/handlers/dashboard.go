package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Deepsoni5/kucash-sub001/internal/analytics"
	"github.com/Deepsoni5/kucash-sub001/internal/auth"
	dashboarddomain "github.com/Deepsoni5/kucash-sub001/internal/domain/dashboard"
)

type DashboardService interface {
	Agent(ctx context.Context, agentID string) (*dashboarddomain.AgentDashboard, error)
	Customer(ctx context.Context, userID string) (*dashboarddomain.CustomerDashboard, error)
	Admin(ctx context.Context) (*dashboarddomain.AdminDashboard, error)
	Customers(ctx context.Context, agentID, query string) ([]analytics.CustomerSummary, error)
}

type DashboardHandler struct {
	dashboards DashboardService
}

func NewDashboardHandler(dashboards DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

func (h *DashboardHandler) Agent(c *gin.Context) {
	view, err := h.dashboards.Agent(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "dashboard_failed"})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *DashboardHandler) Customer(c *gin.Context) {
	view, err := h.dashboards.Customer(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "dashboard_failed"})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *DashboardHandler) Admin(c *gin.Context) {
	view, err := h.dashboards.Admin(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "dashboard_failed"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// Customers serves the agent's customer book; admins see every customer.
func (h *DashboardHandler) Customers(c *gin.Context) {
	agentID := c.GetString("user_id")
	if c.GetString("user_role") == auth.RoleAdmin {
		agentID = strings.TrimSpace(c.Query("agent_id"))
	}

	items, err := h.dashboards.Customers(c.Request.Context(), agentID, c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "customers_failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
