package http

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/baeza-marine/booking-service/internal/domain/dto"
	"github.com/baeza-marine/booking-service/internal/domain/model"
	"github.com/baeza-marine/booking-service/internal/i18n"
	"github.com/baeza-marine/booking-service/internal/service"
)

// catalogCache provides thread-safe caching of the active forfait catalog.
type catalogCache struct {
	forfaits  atomic.Value // holds []model.Forfait
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newCatalogCache creates a new catalog cache with the given TTL.
func newCatalogCache(ttl time.Duration) *catalogCache {
	c := &catalogCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached catalog if valid, or nil if cache is expired/empty.
func (c *catalogCache) get() []model.Forfait {
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			if forfaits := c.forfaits.Load(); forfaits != nil {
				if f, ok := forfaits.([]model.Forfait); ok {
					return f
				}
			}
		}
	}
	return nil
}

// set stores the catalog in the cache with TTL.
func (c *catalogCache) set(forfaits []model.Forfait) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return // Already cached by another goroutine
		}
	}

	c.forfaits.Store(forfaits)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the cache.
func (c *catalogCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// Handler provides HTTP handlers for the public marketing and quoting routes.
type Handler struct {
	forfaitsService service.ForfaitsService
	pricingService  service.PricingService
	travelService   service.TravelFeeService
	catalogCache    *catalogCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCatalogCacheTTL sets the TTL for forfait catalog caching.
func WithCatalogCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.catalogCache = newCatalogCache(ttl)
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(forfaitsService service.ForfaitsService, pricingService service.PricingService, travelService service.TravelFeeService, opts ...HandlerOption) *Handler {
	h := &Handler{
		forfaitsService: forfaitsService,
		pricingService:  pricingService,
		travelService:   travelService,
		catalogCache:    newCatalogCache(30 * time.Second), // Default 30s cache
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// getCatalog retrieves the active forfaits from cache or database.
func (h *Handler) getCatalog(ctx context.Context) ([]model.Forfait, error) {
	// Without a catalog store the public site still works, with an empty
	// catalog.
	if h.forfaitsService == nil {
		return []model.Forfait{}, nil
	}

	// Check cache first
	if forfaits := h.catalogCache.get(); forfaits != nil {
		return forfaits, nil
	}

	// Cache miss - fetch from database
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	forfaits, err := h.forfaitsService.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	h.catalogCache.set(forfaits)
	return forfaits, nil
}

// InvalidateCatalogCache invalidates the forfait catalog cache.
// Call this when the catalog is updated.
func (h *Handler) InvalidateCatalogCache() {
	h.catalogCache.invalidate()
}

// ListForfaits handles GET /api/forfaits requests.
//
// @Summary      List active forfaits
// @Description  Returns the active maintenance forfaits in display order, as shown on the public site.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Active forfaits"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Router       /api/forfaits [get]
func (h *Handler) ListForfaits(c *gin.Context) {
	builder := NewResponseBuilder(c)

	forfaits, err := h.getCatalog(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(forfaits)
}

// ListPowers handles GET /api/powers requests.
//
// @Summary      List permitted engine powers
// @Description  Returns the engine power ratings (in CV) the quoting engine accepts, in ascending order.
// @Tags         Quotes
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Permitted power ratings"
// @Router       /api/powers [get]
func (h *Handler) ListPowers(c *gin.Context) {
	builder := NewResponseBuilder(c)
	builder.SuccessOK(map[string]interface{}{
		"powers": h.pricingService.Powers(),
	})
}

// Quote handles POST /api/quote requests.
//
// @Summary      Resolve a forfait price
// @Description  Resolves the automatic price of a forfait for a given engine power. Forfaits without an automatic price for that power are reported as unavailable ("sur devis").
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRequest true "Forfait and engine power"
// @Success      200 {object} dto.SuccessResponse "Price resolution result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/quote [post]
func (h *Handler) Quote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationPower, err)
		return
	}

	resp := dto.QuoteResponse{
		Forfait: req.Forfait,
		Power:   req.Power,
	}
	if price, ok := h.pricingService.ResolvePrice(req.Forfait, req.Power); ok {
		resp.Price = &price
		resp.Available = true
	}

	builder.SuccessOK(resp)
}

// EstimateTravelFee handles POST /api/travel-fee requests.
//
// @Summary      Estimate the travel fee for an address
// @Description  Geocodes the address and resolves the flat travel surcharge from the distance to the workshop's home base. Incomplete addresses and failed lookups yield a "to be confirmed" response rather than an error.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        request body dto.TravelFeeRequest true "Postal address"
// @Success      200 {object} dto.SuccessResponse "Travel fee estimate"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Router       /api/travel-fee [post]
func (h *Handler) EstimateTravelFee(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.TravelFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	address := model.CartAddress{
		Address:    req.Address,
		PostalCode: req.PostalCode,
		City:       req.City,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	estimate := h.travelService.Estimate(ctx, address)
	builder.SuccessOK(travelFeeResponse(estimate))
}

// travelFeeResponse maps an estimate (or its absence) to the API shape.
func travelFeeResponse(estimate *model.TravelEstimate) dto.TravelFeeResponse {
	if estimate == nil {
		return dto.TravelFeeResponse{
			Estimated: false,
			Label:     "Déplacement à confirmer",
		}
	}
	return dto.TravelFeeResponse{
		Estimated:        true,
		DistanceKm:       estimate.DistanceKm,
		Fee:              estimate.Fee.Amount,
		ManualValidation: estimate.Fee.ManualValidation,
		Label:            estimate.Fee.Label(),
	}
}
