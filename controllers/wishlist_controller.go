package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"online-shop/models"
	"online-shop/services"
)

type WishlistController struct {
	wishlist *services.WishlistService
}

func NewWishlistController(wishlist *services.WishlistService) *WishlistController {
	return &WishlistController{wishlist: wishlist}
}

// GetWishlist godoc
// @Summary Get wishlist
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Wishlist
// @Router /wishlist [get]
func (ctrl *WishlistController) GetWishlist(c *gin.Context) {
	wishlist, err := ctrl.wishlist.GetWishlist(c.Request.Context(), c.GetString("user_email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, wishlist)
}

// AddToWishlist godoc
// @Summary Add to wishlist
// @Description Add a product; adding a product already present is a no-op
// @Tags Wishlist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddToWishlistRequest true "Item"
// @Success 200 {object} models.Wishlist
// @Failure 404 {object} models.ErrorResponse
// @Router /wishlist/items [post]
func (ctrl *WishlistController) AddToWishlist(c *gin.Context) {
	var req models.AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	wishlist, err := ctrl.wishlist.AddToWishlist(c.Request.Context(), c.GetString("user_email"), req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, wishlist)
}

// RemoveFromWishlist godoc
// @Summary Remove wishlist item
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Param itemId path int true "Wishlist item ID"
// @Success 200 {object} models.Wishlist
// @Failure 403 {object} models.ErrorResponse
// @Router /wishlist/items/{itemId} [delete]
func (ctrl *WishlistController) RemoveFromWishlist(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		respondBindError(c, err)
		return
	}

	wishlist, err := ctrl.wishlist.RemoveFromWishlist(c.Request.Context(), c.GetString("user_email"), itemID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, wishlist)
}

// ClearWishlist godoc
// @Summary Clear wishlist
// @Tags Wishlist
// @Security BearerAuth
// @Success 204
// @Router /wishlist [delete]
func (ctrl *WishlistController) ClearWishlist(c *gin.Context) {
	if err := ctrl.wishlist.ClearWishlist(c.Request.Context(), c.GetString("user_email")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
