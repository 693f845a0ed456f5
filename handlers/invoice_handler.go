package handlers

import (
	"errors"
	"net/http"
	"time"

	"duebot-backend/middleware"
	"duebot-backend/models"
	"duebot-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// InvoiceHandler handles HTTP requests for invoices
type InvoiceHandler struct {
	invoiceService    *service.InvoiceService
	extractionService *service.ExtractionService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, extractionService *service.ExtractionService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService:    invoiceService,
		extractionService: extractionService,
	}
}

// CreateInvoiceRequest represents the request body for creating an invoice
type CreateInvoiceRequest struct {
	InvoiceNumber string  `json:"invoice_number" binding:"required"`
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerEmail string  `json:"customer_email" binding:"required"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	IssueDate     string  `json:"issue_date" binding:"required"`
	DueDate       string  `json:"due_date" binding:"required"`
}

// CreateInvoice handles POST /api/invoices
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	var req CreateInvoiceRequest
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

	issueDate, err := time.Parse(dateLayout, req.IssueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_DATE",
				"message": "issue_date must be YYYY-MM-DD",
			},
		})
		return
	}

	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_DATE",
				"message": "due_date must be YYYY-MM-DD",
			},
		})
		return
	}

	result, err := h.invoiceService.CreateInvoice(c.Request.Context(), service.CreateInvoiceRequest{
		UserID:        userID,
		UserEmail:     middleware.Email(c),
		InvoiceNumber: req.InvoiceNumber,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Amount:        req.Amount,
		Currency:      req.Currency,
		IssueDate:     issueDate,
		DueDate:       dueDate,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_AMOUNT",
					"message": err.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CREATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    result.Invoice,
	})
}

// ListInvoices handles GET /api/invoices
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), service.ListInvoicesRequest{
		UserID: userID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "LIST_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Invoices,
	})
}

// GetInvoice handles GET /api/invoices/:id
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c)
		return
	}

	result, err := h.invoiceService.GetInvoice(c.Request.Context(), service.GetInvoiceRequest{
		UserID:    userID,
		InvoiceID: id,
	})
	if err != nil {
		respondOwnershipError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Invoice,
	})
}

// UpdateStatusRequest represents the request body for a status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles PATCH /api/invoices/:id/status
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c)
		return
	}

	var req UpdateStatusRequest
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

	_, err = h.invoiceService.UpdateStatus(c.Request.Context(), service.UpdateStatusRequest{
		UserID:    userID,
		InvoiceID: id,
		Status:    models.InvoiceStatus(req.Status),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_STATUS",
					"message": err.Error(),
				},
			})
			return
		}
		respondOwnershipError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":     id,
			"status": req.Status,
		},
	})
}

// ExtractInvoice handles POST /api/invoices/extract
func (h *InvoiceHandler) ExtractInvoice(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	fileHeader, err := c.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_FILE",
				"message": "No file provided",
			},
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_OPEN_ERROR",
				"message": err.Error(),
			},
		})
		return
	}
	defer file.Close()

	result, err := h.extractionService.ExtractInvoice(c.Request.Context(), service.ExtractInvoiceRequest{
		UserID:   userID,
		Filename: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Size:     fileHeader.Size,
		Data:     file,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFile):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "MISSING_FILE",
					"message": err.Error(),
				},
			})
		case errors.Is(err, service.ErrUnsupportedType):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_FILE_TYPE",
					"message": err.Error(),
				},
			})
		case errors.Is(err, service.ErrEmptyExtraction):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "EMPTY_EXTRACTION",
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
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "EXTRACTION_FAILED",
					"message": err.Error(),
				},
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Invoice,
	})
}

// respondUnauthenticated is the fallback for handlers reached without
// RequireAuth having populated the context.
func respondUnauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHENTICATED",
			"message": "Not authenticated",
		},
	})
}

func respondInvalidID(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "INVALID_ID",
			"message": "Invalid invoice ID format",
		},
	})
}

// respondOwnershipError maps the shared lookup/ownership sentinels.
func respondOwnershipError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvoiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Invoice not found",
			},
		})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FORBIDDEN",
				"message": "Unauthorized",
			},
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INTERNAL_ERROR",
				"message": err.Error(),
			},
		})
	}
}
