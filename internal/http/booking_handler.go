package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/baeza-marine/booking-service/internal/domain/dto"
	"github.com/baeza-marine/booking-service/internal/i18n"
	"github.com/baeza-marine/booking-service/internal/middleware"
	"github.com/baeza-marine/booking-service/internal/repository"
	"github.com/baeza-marine/booking-service/internal/service"
)

// defaultBookingPageSize bounds admin listings when no limit is given.
const defaultBookingPageSize = 50

// BookingHandler provides HTTP handlers for booking submission and
// administration routes.
type BookingHandler struct {
	bookingService service.BookingService
	cartService    service.CartService
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(bookingService service.BookingService, cartService service.CartService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		cartService:    cartService,
	}
}

// SubmitBooking handles POST /api/bookings requests.
//
// @Summary      Submit a booking
// @Description  Submits a maintenance booking. Forfait prices and the travel fee are resolved server-side at submission time; client-supplied amounts are ignored. The session cart, if any, is cleared on success. Supports idempotency via Idempotency-Key header.
// @Tags         Bookings
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        X-Session-ID header string false "Cart session ID to clear on success"
// @Param        request body dto.BookingRequest true "Booking form"
// @Success      201 {object} dto.SuccessResponse "Booking accepted"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/bookings [post]
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	booking, err := h.bookingService.Submit(c.Request.Context(), req)
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	// A submitted booking supersedes the cart it was built from.
	if h.cartService != nil {
		if sessionID := c.GetHeader(SessionIDHeader); sessionID != "" {
			_ = h.cartService.Clear(c.Request.Context(), sessionID)
		}
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "submit_booking", "Booking submitted", map[string]interface{}{
				"booking_id": booking.ID.Hex(),
				"forfaits":   req.Forfaits,
			})
		}
	}

	builder.SuccessCreated(booking)
}

// ListBookings handles GET /api/admin/bookings requests.
//
// @Summary      List bookings
// @Description  Returns bookings newest first, optionally filtered by status, with the total count for pagination.
// @Tags         Bookings Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        status query string false "Filter by status (pending, confirmed, cancelled)"
// @Param        limit query int false "Page size, default 50"
// @Param        skip query int false "Offset for pagination"
// @Success      200 {object} dto.SuccessResponse "Bookings page"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/admin/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	builder := NewResponseBuilder(c)

	opts := repository.BookingQueryOptions{
		Status: c.Query("status"),
		Limit:  defaultBookingPageSize,
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			opts.Limit = limit
		}
	}
	if skipStr := c.Query("skip"); skipStr != "" {
		if skip, err := strconv.Atoi(skipStr); err == nil && skip > 0 {
			opts.Skip = skip
		}
	}

	bookings, count, err := h.bookingService.List(c.Request.Context(), opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(map[string]interface{}{
		"bookings": bookings,
		"count":    count,
	})
}

// GetBooking handles GET /api/admin/bookings/:id requests.
//
// @Summary      Get a booking
// @Description  Returns a single booking with its price and travel fee snapshot.
// @Tags         Bookings Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Booking ID"
// @Success      200 {object} dto.SuccessResponse "Booking"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid ID"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Booking not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/admin/bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(booking)
}

// UpdateBookingStatus handles PATCH /api/admin/bookings/:id/status requests.
//
// @Summary      Update a booking's status
// @Description  Transitions a booking between pending, confirmed and cancelled.
// @Tags         Bookings Admin
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Booking ID"
// @Param        request body dto.BookingStatusRequest true "New status"
// @Success      200 {object} dto.SuccessResponse "Status updated"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown status"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Booking not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/admin/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	var req dto.BookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := h.bookingService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		var validationErr *dto.ValidationError
		switch {
		case errors.As(err, &validationErr):
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		case errors.Is(err, service.ErrBookingNotFound):
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "update_booking_status", "Booking status updated", map[string]interface{}{
				"booking_id": id.Hex(),
				"status":     req.Status,
			})
		}
	}

	builder.SuccessOK(map[string]interface{}{
		"id":     id.Hex(),
		"status": req.Status,
	})
}
