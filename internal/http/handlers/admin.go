package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Deepsoni5/kucash-sub001/internal/db"
	contactdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/contact"
)

type ContactAdminService interface {
	List(ctx context.Context, unhandledOnly bool, limit, offset int32) ([]contactdomain.Submission, error)
	MarkHandled(ctx context.Context, id string) error
}

type CustomerAdminService interface {
	SetActive(ctx context.Context, userID string, active bool) error
}

type UserDirectory interface {
	ListUsers(ctx context.Context, role string, limit, offset int32) ([]db.User, error)
}

type AdminHandler struct {
	contacts  ContactAdminService
	customers CustomerAdminService
	users     UserDirectory
}

func NewAdminHandler(contacts ContactAdminService, customers CustomerAdminService, users UserDirectory) *AdminHandler {
	return &AdminHandler{contacts: contacts, customers: customers, users: users}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	limit, _ := strconv.ParseInt(strings.TrimSpace(c.DefaultQuery("limit", "50")), 10, 32)
	offset, _ := strconv.ParseInt(strings.TrimSpace(c.DefaultQuery("offset", "0")), 10, 32)

	items, err := h.users.ListUsers(c.Request.Context(), strings.TrimSpace(c.Query("role")), int32(limit), int32(offset))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list_users_failed"})
		return
	}

	views := make([]gin.H, 0, len(items))
	for i := range items {
		views = append(views, userView(&items[i]))
	}
	c.JSON(http.StatusOK, gin.H{"items": views})
}

func (h *AdminHandler) ListContactSubmissions(c *gin.Context) {
	limit, _ := strconv.ParseInt(strings.TrimSpace(c.DefaultQuery("limit", "50")), 10, 32)
	offset, _ := strconv.ParseInt(strings.TrimSpace(c.DefaultQuery("offset", "0")), 10, 32)
	unhandledOnly := strings.TrimSpace(c.Query("unhandled")) == "true"

	items, err := h.contacts.List(c.Request.Context(), unhandledOnly, int32(limit), int32(offset))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list_submissions_failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *AdminHandler) MarkContactHandled(c *gin.Context) {
	id := strings.TrimSpace(c.Param("submissionId"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if err := h.contacts.MarkHandled(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "mark_handled_failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AdminHandler) SetCustomerActive(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("userId"))
	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if userID == "" || c.ShouldBindJSON(&req) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if err := h.customers.SetActive(c.Request.Context(), userID, *req.Active); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "set_active_failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
