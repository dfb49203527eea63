package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Deepsoni5/kucash-sub001/internal/auth"
	"github.com/Deepsoni5/kucash-sub001/internal/db"
)

type AuthHandler struct {
	authService *auth.Service
	cookieCfg   auth.CookieConfig
	accessTTL   time.Duration
	refreshTTL  time.Duration
}

func NewAuthHandler(authService *auth.Service, cookieCfg auth.CookieConfig, accessTTL, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, cookieCfg: cookieCfg, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

type otpRequestBody struct {
	MobileNumber string `json:"mobile_number" binding:"required"`
}

func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req otpRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	err := h.authService.RequestOTP(c.Request.Context(), req.MobileNumber)
	switch {
	case errors.Is(err, auth.ErrOTPThrottled):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "otp_throttled"})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "otp_request_failed"})
	default:
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

type otpVerifyBody struct {
	MobileNumber string `json:"mobile_number" binding:"required"`
	Code         string `json:"code" binding:"required"`
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req otpVerifyBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	userAgent := c.GetHeader("User-Agent")
	ipAddress := auth.ClientIP(c.Request)
	tokens, err := h.authService.VerifyOTP(c.Request.Context(), req.MobileNumber, req.Code, userAgent, ipAddress)
	switch {
	case errors.Is(err, auth.ErrOTPExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "otp_expired"})
		return
	case errors.Is(err, auth.ErrOTPExhausted):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "otp_too_many_attempts"})
		return
	case err != nil:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "otp_invalid"})
		return
	}

	auth.SetAuthCookies(c.Writer, h.cookieCfg, tokens.AccessToken, tokens.RefreshToken, h.accessTTL, h.refreshTTL)
	c.JSON(http.StatusOK, gin.H{
		"user":    userView(tokens.User),
		"session": gin.H{"authenticated": true},
	})
}

type idpExchangeBody struct {
	IDPAccessToken string `json:"idp_access_token" binding:"required"`
}

func (h *AuthHandler) ExchangeIDPToken(c *gin.Context) {
	var req idpExchangeBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	userAgent := c.GetHeader("User-Agent")
	ipAddress := auth.ClientIP(c.Request)
	tokens, err := h.authService.ExchangeIDPToken(c.Request.Context(), req.IDPAccessToken, userAgent, ipAddress)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication_failed"})
		return
	}

	auth.SetAuthCookies(c.Writer, h.cookieCfg, tokens.AccessToken, tokens.RefreshToken, h.accessTTL, h.refreshTTL)
	c.JSON(http.StatusOK, gin.H{
		"user":    userView(tokens.User),
		"session": gin.H{"authenticated": true},
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	cookie, err := c.Request.Cookie(auth.RefreshCookieName)
	if err != nil || cookie.Value == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing_refresh_cookie"})
		return
	}

	userAgent := c.GetHeader("User-Agent")
	ipAddress := auth.ClientIP(c.Request)
	tokens, err := h.authService.Refresh(c.Request.Context(), cookie.Value, userAgent, ipAddress)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh_failed"})
		return
	}

	auth.SetAuthCookies(c.Writer, h.cookieCfg, tokens.AccessToken, tokens.RefreshToken, h.accessTTL, h.refreshTTL)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	cookie, err := c.Request.Cookie(auth.RefreshCookieName)
	if err == nil && cookie.Value != "" {
		_ = h.authService.Logout(c.Request.Context(), cookie.Value)
	}
	auth.ClearAuthCookies(c.Writer, h.cookieCfg)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AuthHandler) Me(c *gin.Context) {
	uid, ok := c.Get("user_id")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.authService.Me(c.Request.Context(), uid.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userView(user)})
}

func userView(user *db.User) gin.H {
	return gin.H{
		"id":              user.ID,
		"mobile_number":   user.MobileNumber,
		"email":           user.Email,
		"role":            user.Role,
		"mobile_verified": user.MobileVerified,
	}
}
