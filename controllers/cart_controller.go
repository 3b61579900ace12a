package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"online-shop/models"
	"online-shop/services"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

// GetCart godoc
// @Summary Get cart
// @Description Get the authenticated user's cart, creating it on first access
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Cart
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart, err := ctrl.cart.GetCart(c.Request.Context(), c.GetString("user_email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// AddToCart godoc
// @Summary Add to cart
// @Description Reserve product quantity into the cart
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Item"
// @Success 200 {object} models.Cart
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cart, err := ctrl.cart.AddToCart(c.Request.Context(), c.GetString("user_email"), req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// UpdateCartItem godoc
// @Summary Update cart item quantity
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param itemId path int true "Cart item ID"
// @Param request body models.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} models.Cart
// @Failure 403 {object} models.ErrorResponse
// @Router /cart/items/{itemId} [put]
func (ctrl *CartController) UpdateCartItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		respondBindError(c, err)
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cart, err := ctrl.cart.UpdateItemQuantity(c.Request.Context(), c.GetString("user_email"), itemID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// RemoveFromCart godoc
// @Summary Remove cart item
// @Description Remove an item and restore its reserved quantity to stock
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param itemId path int true "Cart item ID"
// @Success 200 {object} models.Cart
// @Failure 403 {object} models.ErrorResponse
// @Router /cart/items/{itemId} [delete]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		respondBindError(c, err)
		return
	}

	cart, err := ctrl.cart.RemoveFromCart(c.Request.Context(), c.GetString("user_email"), itemID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// ClearCart godoc
// @Summary Clear cart
// @Description Remove every item, restoring all reserved stock
// @Tags Cart
// @Security BearerAuth
// @Success 204
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	if err := ctrl.cart.ClearCart(c.Request.Context(), c.GetString("user_email")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Checkout godoc
// @Summary Checkout
// @Description Finalize the sale: empties the cart without restoring stock
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.CheckoutResult
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/checkout [post]
func (ctrl *CartController) Checkout(c *gin.Context) {
	result, err := ctrl.cart.Checkout(c.Request.Context(), c.GetString("user_email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Checkout completed", Data: result})
}
