// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/novamart/storefront-api/internal/services"
	"github.com/novamart/storefront-api/internal/utils"
)

// CartHandler exposes the cart aggregator. The shopping session's cart id
// travels in the X-Cart-ID header; the first mutation without one starts
// a fresh cart and the response carries its id.
type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	cartID := utils.GetCartIDFromContext(c)
	utils.SuccessResponse(c, h.cartService.GetCart(cartID))
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	cartID := utils.GetCartIDFromContext(c)

	var req services.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	cartView, err := h.cartService.AddItem(cartID, &req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, cartView)
}

// PUT /cart/items/:lineId
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	cartID := utils.GetCartIDFromContext(c)
	lineID := c.Param("lineId")

	var req services.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	utils.SuccessResponse(c, h.cartService.UpdateQuantity(cartID, lineID, req.Quantity))
}

// DELETE /cart/items/:lineId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cartID := utils.GetCartIDFromContext(c)
	lineID := c.Param("lineId")

	utils.SuccessResponse(c, h.cartService.RemoveItem(cartID, lineID))
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	cartID := utils.GetCartIDFromContext(c)
	utils.SuccessResponse(c, h.cartService.ClearCart(cartID))
}

// GET /cart/quote
//
// Prices the cart as it stands: subtotal, tax, shipping, total. The
// order summary panel rerenders from this on every cart change.
func (h *CartHandler) GetQuote(c *gin.Context) {
	cartID := utils.GetCartIDFromContext(c)
	utils.SuccessResponse(c, gin.H{
		"totals": h.cartService.Quote(cartID),
	})
}
