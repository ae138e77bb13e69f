package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/baeza-marine/booking-service/internal/domain/dto"
	"github.com/baeza-marine/booking-service/internal/domain/model"
	"github.com/baeza-marine/booking-service/internal/i18n"
	"github.com/baeza-marine/booking-service/internal/service"
)

// SessionIDHeader carries the cart session identifier. The server issues one
// on the first cart request and echoes it back on every response.
const SessionIDHeader = "X-Session-ID"

// CartHandler provides HTTP handlers for the session cart routes.
type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new CartHandler instance.
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// sessionID returns the caller's session ID, issuing a fresh one when the
// header is absent. The ID is always set on the response so the client can
// persist it.
func (h *CartHandler) sessionID(c *gin.Context) string {
	id := c.GetHeader(SessionIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(SessionIDHeader, id)
	return id
}

// cartResponse augments the cart with its computed total.
func cartResponse(cart *model.Cart) map[string]interface{} {
	total, exact := cart.Total()
	return map[string]interface{}{
		"cart":        cart,
		"total":       total,
		"total_exact": exact,
	}
}

// GetCart handles GET /api/cart requests.
//
// @Summary      Get the session cart
// @Description  Returns the cart for the X-Session-ID header, creating an empty one when the header is absent. The issued session ID is echoed in the response header.
// @Tags         Cart
// @Produce      json
// @Param        X-Session-ID header string false "Cart session ID"
// @Success      200 {object} dto.SuccessResponse "Session cart"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cart, err := h.cartService.Get(c.Request.Context(), h.sessionID(c))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(cartResponse(cart))
}

// AddCartItem handles POST /api/cart/items requests.
//
// @Summary      Add a forfait to the cart
// @Description  Adds a forfait priced for the given engine power. Forfaits without an automatic price are added as quote lines.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Cart session ID"
// @Param        request body dto.CartItemRequest true "Forfait and engine power"
// @Success      200 {object} dto.SuccessResponse "Updated cart"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/items [post]
func (h *CartHandler) AddCartItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), h.sessionID(c), req.Forfait, req.Power)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPower) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationPower, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(cartResponse(cart))
}

// RemoveCartItem handles DELETE /api/cart/items/:index requests.
//
// @Summary      Remove a cart item
// @Description  Removes the item at the given position in the cart.
// @Tags         Cart
// @Produce      json
// @Param        X-Session-ID header string false "Cart session ID"
// @Param        index path int true "Item position, zero-based"
// @Success      200 {object} dto.SuccessResponse "Updated cart"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid index"
// @Failure      404 {object} dto.ErrorResponse "No item at this position"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/items/{index} [delete]
func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	cart, err := h.cartService.RemoveItem(c.Request.Context(), h.sessionID(c), index)
	if err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(cartResponse(cart))
}

// SetCartPower handles PUT /api/cart/power requests.
//
// @Summary      Change the engine power selection
// @Description  Sets the session's engine power and reprices every cart item for it.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Cart session ID"
// @Param        request body dto.CartPowerRequest true "Engine power"
// @Success      200 {object} dto.SuccessResponse "Updated cart"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid power"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/power [put]
func (h *CartHandler) SetCartPower(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CartPowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	cart, err := h.cartService.SetPower(c.Request.Context(), h.sessionID(c), req.Power)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPower) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationPower, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(cartResponse(cart))
}

// SetCartAddress handles PUT /api/cart/address requests.
//
// @Summary      Update the cart address
// @Description  Updates the address fields and schedules a debounced travel fee estimate. The response never carries the new estimate; it lands on the cart asynchronously and is visible on the next GET.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Cart session ID"
// @Param        request body dto.CartAddressRequest true "Address fields"
// @Success      200 {object} dto.SuccessResponse "Updated cart, estimate pending"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/address [put]
func (h *CartHandler) SetCartAddress(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CartAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	address := model.CartAddress{
		Address:    req.Address,
		PostalCode: req.PostalCode,
		City:       req.City,
	}

	cart, err := h.cartService.SetAddress(c.Request.Context(), h.sessionID(c), address)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(cartResponse(cart))
}

// ClearCart handles DELETE /api/cart requests.
//
// @Summary      Clear the session cart
// @Description  Empties the cart and cancels any pending travel fee estimate.
// @Tags         Cart
// @Produce      json
// @Param        X-Session-ID header string false "Cart session ID"
// @Success      200 {object} dto.SuccessResponse "Cart cleared"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.cartService.Clear(c.Request.Context(), h.sessionID(c)); err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(map[string]interface{}{"cleared": true})
}
