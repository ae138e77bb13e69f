package dto

import (
	"net/http"
	"time"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	// Example: {"price": 290, "available": true}
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"power: must be a positive number"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// QuoteResponse is the result of a price resolution.
//
// @Description Automatic price for a forfait, or unavailable
type QuoteResponse struct {
	Forfait string  `json:"forfait" example:"Premium+"`
	Power   float64 `json:"power" example:"50"`
	// Price is the automatic price in euros; nil when no automatic price
	// exists for this forfait/power ("sur devis").
	Price *int `json:"price" example:"290"`
	// Available reports whether an automatic price exists.
	Available bool `json:"available" example:"true"`
} // @name QuoteResponse

// TravelFeeResponse is the result of a travel fee estimation.
//
// @Description Travel fee estimate, or "to be confirmed" when unknown
type TravelFeeResponse struct {
	// Estimated is false when the address is incomplete or the geocoding
	// lookup failed; the fee is then confirmed manually by staff.
	Estimated bool `json:"estimated" example:"true"`
	// DistanceKm is the one-way distance in whole kilometers.
	DistanceKm int `json:"distance_km,omitempty" example:"23"`
	// Fee is the flat surcharge in euros. Meaningless when ManualValidation
	// is set.
	Fee int `json:"fee,omitempty" example:"25"`
	// ManualValidation is set for distances beyond the automatic schedule.
	ManualValidation bool `json:"manual_validation,omitempty" example:"false"`
	// Label is the customer-facing French fee label.
	Label string `json:"label,omitempty" example:"25 €"`
} // @name TravelFeeResponse
