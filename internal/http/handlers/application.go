package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Deepsoni5/kucash-sub001/internal/auth"
	applicationdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/application"
)

type ApplicationService interface {
	Submit(ctx context.Context, in applicationdomain.CreateInput) (*applicationdomain.Entity, error)
	Get(ctx context.Context, id string) (*applicationdomain.Entity, error)
	List(ctx context.Context, f applicationdomain.ListFilter) ([]applicationdomain.Entity, error)
	Decide(ctx context.Context, id, newStatus, agentCommission string) (*applicationdomain.Entity, error)
}

type ApplicationHandler struct {
	applications ApplicationService
}

func NewApplicationHandler(applications ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req struct {
		LoanType   string `json:"loan_type" binding:"required"`
		LoanAmount string `json:"loan_amount" binding:"required"`
		AgentID    string `json:"agent_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	created, err := h.applications.Submit(c.Request.Context(), applicationdomain.CreateInput{
		UserID:     c.GetString("user_id"),
		AgentID:    strings.TrimSpace(req.AgentID),
		LoanType:   strings.TrimSpace(req.LoanType),
		LoanAmount: strings.TrimSpace(req.LoanAmount),
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "submit_failed"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	limit, _ := strconv.ParseInt(strings.TrimSpace(c.DefaultQuery("limit", "50")), 10, 32)
	offset, _ := strconv.ParseInt(strings.TrimSpace(c.DefaultQuery("offset", "0")), 10, 32)

	filter := applicationdomain.ListFilter{
		Status:   strings.TrimSpace(c.Query("status")),
		LoanType: strings.TrimSpace(c.Query("loan_type")),
		Limit:    int32(limit),
		Offset:   int32(offset),
	}

	// Customers only ever see their own rows; agents see their book.
	// Admins may filter freely.
	switch c.GetString("user_role") {
	case auth.RoleCustomer:
		filter.UserID = c.GetString("user_id")
		filter.AgentID = ""
	case auth.RoleAgent:
		filter.AgentID = c.GetString("user_id")
	case auth.RoleAdmin:
		filter.UserID = strings.TrimSpace(c.Query("user_id"))
		filter.AgentID = strings.TrimSpace(c.Query("agent_id"))
	}

	items, err := h.applications.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list_applications_failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	id := strings.TrimSpace(c.Param("applicationId"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_application_id"})
		return
	}

	item, err := h.applications.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "application_not_found"})
		return
	}

	switch c.GetString("user_role") {
	case auth.RoleCustomer:
		if item.UserID != c.GetString("user_id") {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
	case auth.RoleAgent:
		if item.AgentID != c.GetString("user_id") {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
	}

	c.JSON(http.StatusOK, item)
}

func (h *ApplicationHandler) Decide(c *gin.Context) {
	id := strings.TrimSpace(c.Param("applicationId"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	var req struct {
		Status          string `json:"status" binding:"required"`
		AgentCommission string `json:"agent_commission"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	updated, err := h.applications.Decide(c.Request.Context(), id, req.Status, req.AgentCommission)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "decision_failed"})
		return
	}
	c.JSON(http.StatusOK, updated)
}
