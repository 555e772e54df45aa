package handlers

import (
	"github.com/gin-gonic/gin"

	"stockledger/internal/domain/settings"
	"stockledger/internal/infrastructure/http/v1/dto"
)

// SettingsHandler handles shared configuration endpoints.
type SettingsHandler struct {
	*BaseHandler
	service *settings.Service
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(base *BaseHandler, service *settings.Service) *SettingsHandler {
	return &SettingsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Get handles GET /settings
// Creates the default settings document on first access.
func (h *SettingsHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	cfg, err := h.service.Get(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSettings(cfg))
}

// Update handles PUT /settings
func (h *SettingsHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpdateSettingsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cfg, err := h.service.Update(ctx, req.UnitPrice)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSettings(cfg))
}

// BeginEdit handles POST /settings/edit
// Opens a staged price edit seeded with the stored value. The staged
// buffer survives concurrent refreshes of the committed settings.
func (h *SettingsHandler) BeginEdit(c *gin.Context) {
	ctx := c.Request.Context()

	seed, err := h.service.BeginEdit(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.EditStateResponse{Editing: true, UnitPrice: &seed})
}

// StagePrice handles PUT /settings/edit
func (h *SettingsHandler) StagePrice(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpdateSettingsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	staged, err := h.service.StagePrice(ctx, req.UnitPrice)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.EditStateResponse{Editing: true, UnitPrice: &staged})
}

// EditState handles GET /settings/edit
func (h *SettingsHandler) EditState(c *gin.Context) {
	pending, open := h.service.PendingPrice()
	if !open {
		h.OK(c, dto.EditStateResponse{Editing: false})
		return
	}

	h.OK(c, dto.EditStateResponse{Editing: true, UnitPrice: &pending})
}

// DiscardEdit handles DELETE /settings/edit
func (h *SettingsHandler) DiscardEdit(c *gin.Context) {
	h.service.DiscardEdit()
	h.NoContent(c)
}

// CommitEdit handles POST /settings/edit/commit
// Persists the staged price and closes the session.
func (h *SettingsHandler) CommitEdit(c *gin.Context) {
	ctx := c.Request.Context()

	cfg, err := h.service.CommitEdit(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromSettings(cfg))
}
