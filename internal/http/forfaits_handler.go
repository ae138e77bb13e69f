package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/baeza-marine/booking-service/internal/domain/dto"
	"github.com/baeza-marine/booking-service/internal/i18n"
	"github.com/baeza-marine/booking-service/internal/middleware"
	"github.com/baeza-marine/booking-service/internal/service"
)

// ForfaitsHandler provides HTTP handlers for catalog administration routes.
type ForfaitsHandler struct {
	forfaitsService service.ForfaitsService
	publicHandler   *Handler
}

// NewForfaitsHandler creates a new ForfaitsHandler instance.
func NewForfaitsHandler(forfaitsService service.ForfaitsService, publicHandler *Handler) *ForfaitsHandler {
	return &ForfaitsHandler{
		forfaitsService: forfaitsService,
		publicHandler:   publicHandler,
	}
}

// invalidateCatalog drops the public catalog cache after a write.
func (h *ForfaitsHandler) invalidateCatalog() {
	if h.publicHandler != nil {
		h.publicHandler.InvalidateCatalogCache()
	}
}

// ListAllForfaits handles GET /api/admin/forfaits requests.
//
// @Summary      List all forfaits
// @Description  Returns every forfait in the catalog, including deactivated ones.
// @Tags         Catalog Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Success      200 {object} dto.SuccessResponse "Full catalog"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/admin/forfaits [get]
func (h *ForfaitsHandler) ListAllForfaits(c *gin.Context) {
	builder := NewResponseBuilder(c)

	forfaits, err := h.forfaitsService.List(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(forfaits)
}

// CreateForfait handles POST /api/admin/forfaits requests.
//
// @Summary      Create a forfait
// @Description  Adds a forfait to the catalog. Names are unique; the name is the key the pricing table is matched against.
// @Tags         Catalog Admin
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        request body dto.ForfaitRequest true "Forfait payload"
// @Success      201 {object} dto.SuccessResponse "Created forfait"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      409 {object} dto.ErrorResponse "A forfait with this name already exists"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/admin/forfaits [post]
func (h *ForfaitsHandler) CreateForfait(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ForfaitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	forfait, err := h.forfaitsService.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrForfaitExists) {
			builder.Error(http.StatusConflict, i18n.ErrKeyConflict, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	h.invalidateCatalog()
	h.auditCatalogChange(c, "create_forfait", forfait.Name)

	builder.SuccessCreated(forfait)
}

// UpdateForfait handles PUT /api/admin/forfaits/:id requests.
//
// @Summary      Update a forfait
// @Description  Replaces the catalog entry with the given payload.
// @Tags         Catalog Admin
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Forfait ID"
// @Param        request body dto.ForfaitRequest true "Forfait payload"
// @Success      200 {object} dto.SuccessResponse "Updated forfait"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Forfait not found"
// @Failure      409 {object} dto.ErrorResponse "A forfait with this name already exists"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/admin/forfaits/{id} [put]
func (h *ForfaitsHandler) UpdateForfait(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	var req dto.ForfaitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	forfait, err := h.forfaitsService.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForfaitNotFound):
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
		case errors.Is(err, service.ErrForfaitExists):
			builder.Error(http.StatusConflict, i18n.ErrKeyConflict, err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	h.invalidateCatalog()
	h.auditCatalogChange(c, "update_forfait", forfait.Name)

	builder.SuccessOK(forfait)
}

// DeleteForfait handles DELETE /api/admin/forfaits/:id requests.
//
// @Summary      Deactivate a forfait
// @Description  Soft-deletes a forfait: it disappears from the public catalog but remains referenced by past bookings.
// @Tags         Catalog Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Forfait ID"
// @Success      200 {object} dto.SuccessResponse "Forfait deactivated"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Forfait not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/admin/forfaits/{id} [delete]
func (h *ForfaitsHandler) DeleteForfait(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	if err := h.forfaitsService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrForfaitNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	h.invalidateCatalog()
	h.auditCatalogChange(c, "delete_forfait", id.Hex())

	builder.SuccessOK(map[string]interface{}{"deleted": true})
}

// auditCatalogChange records a catalog mutation in the audit trail.
func (h *ForfaitsHandler) auditCatalogChange(c *gin.Context, action, subject string) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, action, "Forfait catalog updated", map[string]interface{}{
				"forfait": subject,
			})
		}
	}
}
