package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	customerdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/customer"
)

type ProfileService interface {
	UpdateProfile(ctx context.Context, in customerdomain.UpsertInput) (*customerdomain.Profile, error)
	GetProfile(ctx context.Context, userID string) (*customerdomain.Profile, error)
}

type ProfileHandler struct {
	profiles ProfileService
}

func NewProfileHandler(profiles ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profiles.GetProfile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile_not_found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req struct {
		FullName     string `json:"full_name" binding:"required"`
		Email        string `json:"email"`
		MobileNumber string `json:"mobile_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	profile, err := h.profiles.UpdateProfile(c.Request.Context(), customerdomain.UpsertInput{
		UserID:       c.GetString("user_id"),
		FullName:     req.FullName,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "update_profile_failed"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
