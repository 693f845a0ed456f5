package handlers

import (
	"errors"
	"net/http"

	"duebot-backend/middleware"
	"duebot-backend/models"
	"duebot-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReminderHandler handles HTTP requests for reminders
type ReminderHandler struct {
	reminderService *service.ReminderService
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(reminderService *service.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// GenerateReminderRequest represents the request body for generating a reminder
type GenerateReminderRequest struct {
	Tone string `json:"tone" binding:"required"`
}

// GenerateReminder handles POST /api/invoices/:id/reminders
func (h *ReminderHandler) GenerateReminder(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c)
		return
	}

	var req GenerateReminderRequest
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

	result, err := h.reminderService.GenerateReminder(c.Request.Context(), service.GenerateReminderRequest{
		UserID:    userID,
		InvoiceID: invoiceID,
		Tone:      models.Tone(req.Tone),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTone):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_TONE",
					"message": err.Error(),
				},
			})
		case errors.Is(err, service.ErrInvalidModelResponse):
			c.JSON(http.StatusBadGateway, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_MODEL_RESPONSE",
					"message": err.Error(),
				},
			})
		case errors.Is(err, service.ErrGenerationFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "GENERATION_FAILED",
					"message": err.Error(),
				},
			})
		case errors.Is(err, service.ErrSaveFailed):
			// The draft was generated but not persisted; return it so
			// the caller can retry without losing the text.
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "SAVE_FAILED",
					"message": err.Error(),
				},
				"data": gin.H{
					"subject": result.Subject,
					"body":    result.Body,
				},
			})
		default:
			respondOwnershipError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"reminder_id": result.ReminderID,
			"subject":     result.Subject,
			"body":        result.Body,
		},
	})
}

// ListReminders handles GET /api/invoices/:id/reminders
func (h *ReminderHandler) ListReminders(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c)
		return
	}

	result, err := h.reminderService.ListReminders(c.Request.Context(), service.ListRemindersRequest{
		UserID:    userID,
		InvoiceID: invoiceID,
	})
	if err != nil {
		respondOwnershipError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Reminders,
	})
}
