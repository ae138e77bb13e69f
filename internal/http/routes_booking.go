package http

import (
	"github.com/gin-gonic/gin"
)

// BookingRoutes handles registration of the public site and admin routes.
type BookingRoutes struct {
	handler         *Handler
	forfaitsHandler *ForfaitsHandler
	cartHandler     *CartHandler
	bookingHandler  *BookingHandler
}

// NewBookingRoutes creates a new BookingRoutes instance from the configured
// services.
func NewBookingRoutes(handler *Handler, cfg *RouterConfig) *BookingRoutes {
	r := &BookingRoutes{handler: handler}

	if cfg.ForfaitsService != nil {
		r.forfaitsHandler = NewForfaitsHandler(cfg.ForfaitsService, handler)
	}
	if cfg.CartService != nil {
		r.cartHandler = NewCartHandler(cfg.CartService)
	}
	if cfg.BookingService != nil {
		r.bookingHandler = NewBookingHandler(cfg.BookingService, cfg.CartService)
	}

	return r
}

// RegisterPublicRoutes registers the routes the public site calls. These never
// require authentication.
func (r *BookingRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/forfaits", r.handler.ListForfaits)
	rg.GET("/powers", r.handler.ListPowers)
	rg.POST("/quote", r.handler.Quote)
	rg.POST("/travel-fee", r.handler.EstimateTravelFee)

	if r.cartHandler != nil {
		cart := rg.Group("/cart")
		{
			cart.GET("", r.cartHandler.GetCart)
			cart.DELETE("", r.cartHandler.ClearCart)
			cart.POST("/items", r.cartHandler.AddCartItem)
			cart.DELETE("/items/:index", r.cartHandler.RemoveCartItem)
			cart.PUT("/power", r.cartHandler.SetCartPower)
			cart.PUT("/address", r.cartHandler.SetCartAddress)
		}
	}

	if r.bookingHandler != nil {
		rg.POST("/bookings", r.bookingHandler.SubmitBooking)
	}
}

// RegisterAdminRoutes registers the staff-only routes on a JWT-protected
// group.
func (r *BookingRoutes) RegisterAdminRoutes(protected *gin.RouterGroup) {
	admin := protected.Group("/admin")

	if r.forfaitsHandler != nil {
		admin.GET("/forfaits", r.forfaitsHandler.ListAllForfaits)
		admin.POST("/forfaits", r.forfaitsHandler.CreateForfait)
		admin.PUT("/forfaits/:id", r.forfaitsHandler.UpdateForfait)
		admin.DELETE("/forfaits/:id", r.forfaitsHandler.DeleteForfait)
	}

	if r.bookingHandler != nil {
		admin.GET("/bookings", r.bookingHandler.ListBookings)
		admin.GET("/bookings/:id", r.bookingHandler.GetBooking)
		admin.PATCH("/bookings/:id/status", r.bookingHandler.UpdateBookingStatus)
	}
}

// GetHandler returns the underlying public handler.
func (r *BookingRoutes) GetHandler() *Handler {
	return r.handler
}
