package handlers

import (
	"errors"
	"net/http"

	"duebot-backend/service"

	"github.com/gin-gonic/gin"
)

// WaitlistHandler handles HTTP requests for the pre-launch waitlist
type WaitlistHandler struct {
	waitlistService *service.WaitlistService
}

// NewWaitlistHandler creates a new waitlist handler
func NewWaitlistHandler(waitlistService *service.WaitlistService) *WaitlistHandler {
	return &WaitlistHandler{waitlistService: waitlistService}
}

// JoinWaitlistRequest represents the request body for a signup
type JoinWaitlistRequest struct {
	Email string `json:"email" binding:"required"`
}

// Join handles POST /api/waitlist
func (h *WaitlistHandler) Join(c *gin.Context) {
	var req JoinWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	result, err := h.waitlistService.JoinWaitlist(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_EMAIL",
					"message": err.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SIGNUP_FAILED",
				"message": "Something went wrong. Please try again.",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"message": result.Message,
		},
	})
}
