package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"warcat/internal/model"
	"warcat/internal/service"
	"warcat/internal/storage"
)

// PaymentHandler records completed payments.
type PaymentHandler struct {
	payments *service.PaymentService
}

func NewPaymentHandler(payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Record handles a payment event
// @Router /api/payments [post]
func (h *PaymentHandler) Record(c *gin.Context) {
	var req model.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"statusTxt": "error", "message": err.Error()})
		return
	}
	payment, err := h.payments.Record(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"statusTxt": "error", "message": "Email not available"})
			return
		}
		log.Printf("[handler] record payment for %s: %v", req.Email, err)
		internalError(c)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"statusTxt": "success",
		"message":   "Payment successful!",
		"data":      payment,
	})
}
