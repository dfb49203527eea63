package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	contactdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/contact"
)

type ContactService interface {
	Submit(ctx context.Context, in contactdomain.SubmitInput) (*contactdomain.Submission, error)
}

type ContactHandler struct {
	contacts ContactService
}

func NewContactHandler(contacts ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req struct {
		FullName     string `json:"full_name" binding:"required"`
		Email        string `json:"email"`
		MobileNumber string `json:"mobile_number"`
		Message      string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	created, err := h.contacts.Submit(c.Request.Context(), contactdomain.SubmitInput{
		FullName:     req.FullName,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		Message:      req.Message,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "submit_failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": created.ID})
}
