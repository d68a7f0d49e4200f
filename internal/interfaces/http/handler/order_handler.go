package handler

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	app "github.com/oasis00-1/oasis-springs-app/internal/application/order"
	domain "github.com/oasis00-1/oasis-springs-app/internal/domain/order"
)

type OrderHandler struct {
	svc *app.Service

	// Receipts live in temp files; the index maps the submission ID
	// handed back by CreateOrder to the file offered for download.
	mu       sync.Mutex
	receipts map[string]receiptEntry
}

type receiptEntry struct {
	path string
	name string
}

func NewOrderHandler(svc *app.Service) *OrderHandler {
	return &OrderHandler{
		svc:      svc,
		receipts: make(map[string]receiptEntry),
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var cmd app.CreateOrderCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	placed, err := h.svc.PlaceOrder(c.Request.Context(), cmd)
	if err != nil {
		status := http.StatusInternalServerError
		if domain.IsValidation(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{
		"submission_id": placed.SubmissionID,
		"name":          placed.Record.Name,
		"order":         placed.Record.Summary,
		"delivery_fee":  placed.Record.DeliveryFee,
		"total":         placed.Record.Total,
		"payment": gin.H{
			"outcome":       placed.Payment.Outcome,
			"response_code": placed.Payment.ResponseCode,
			"instructions":  placed.Payment.Instructions,
		},
	}
	if placed.ReceiptPath != "" {
		h.mu.Lock()
		h.receipts[placed.SubmissionID] = receiptEntry{
			path: placed.ReceiptPath,
			name: placed.ReceiptName,
		}
		h.mu.Unlock()
		resp["receipt_id"] = placed.SubmissionID
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *OrderHandler) DownloadReceipt(c *gin.Context) {
	id := c.Param("id")

	h.mu.Lock()
	entry, ok := h.receipts[id]
	h.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "receipt not found"})
		return
	}

	c.FileAttachment(entry.path, entry.name)
}
