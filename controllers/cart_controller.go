package controllers

import (
	"strconv"

	"pos-kasir/models"
	"pos-kasir/repositories"
	"pos-kasir/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	store repositories.Store
	cart  *services.CartService
}

func NewCartController(store repositories.Store, cart *services.CartService) *CartController {
	return &CartController{store: store, cart: cart}
}

func (ctrl *CartController) cartPayload() gin.H {
	return gin.H{
		"items": ctrl.cart.Items(),
		"total": ctrl.cart.Total(),
	}
}

// GetCart godoc
// @Summary Get cart
// @Description Get the current cart contents and total
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	c.JSON(200, models.Response{Success: true, Message: "Cart retrieved", Data: ctrl.cartPayload()})
}

// AddItem godoc
// @Summary Add to cart
// @Description Add one unit of a product, incrementing quantity if present
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Product to add"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Code:    models.CodeValidationError,
		})
		return
	}

	product, err := ctrl.store.FindProductByID(c.Request.Context(), req.ProductID)
	if err != nil {
		c.JSON(500, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
			Code:    models.CodeStorageFailure,
		})
		return
	}
	if product == nil {
		c.JSON(404, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}

	ctrl.cart.AddToCart(*product)
	c.JSON(200, models.Response{Success: true, Message: "Item added", Data: ctrl.cartPayload()})
}

// RemoveItem godoc
// @Summary Remove one unit
// @Description Decrement quantity by one, dropping the line at zero
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid product id"})
		return
	}

	ctrl.cart.RemoveFromCart(id)
	c.JSON(200, models.Response{Success: true, Message: "Item removed", Data: ctrl.cartPayload()})
}

// RemoveLine godoc
// @Summary Remove a line
// @Description Drop a cart line regardless of quantity
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id}/all [delete]
func (ctrl *CartController) RemoveLine(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid product id"})
		return
	}

	ctrl.cart.RemoveItemFromCart(id)
	c.JSON(200, models.Response{Success: true, Message: "Item removed", Data: ctrl.cartPayload()})
}

// UpdateQuantity godoc
// @Summary Set quantity
// @Description Set a line's quantity; zero or less removes the line
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid product id"})
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Code:    models.CodeValidationError,
		})
		return
	}

	ctrl.cart.UpdateQuantity(id, req.Quantity)
	c.JSON(200, models.Response{Success: true, Message: "Quantity updated", Data: ctrl.cartPayload()})
}

// ClearCart godoc
// @Summary Clear cart
// @Description Empty the cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	ctrl.cart.Clear()
	c.JSON(200, models.Response{Success: true, Message: "Cart cleared", Data: ctrl.cartPayload()})
}
