package controllers

import (
	"pos-kasir/models"
	"pos-kasir/services"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// Checkout godoc
// @Summary Process payment
// @Description Validate the tendered amount, record the transaction and clear the cart
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Payment"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Invalid payment amount",
			Code:    models.CodeInvalidAmount,
		})
		return
	}
	if req.AmountPaid == nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Payment amount is required",
			Code:    models.CodeInvalidAmount,
		})
		return
	}

	result := ctrl.checkout.Checkout(c.Request.Context(), *req.AmountPaid, req.Notes)
	if !result.Success {
		status := 400
		if result.Code == models.CodeStorageFailure {
			status = 500
		}
		c.JSON(status, models.ErrorResponse{
			Success: false,
			Message: result.Message,
			Code:    result.Code,
		})
		return
	}

	c.JSON(201, models.Response{
		Success: true,
		Message: "Payment processed",
		Data: gin.H{
			"transaction": result.Transaction,
			"change":      result.Change,
		},
	})
}
