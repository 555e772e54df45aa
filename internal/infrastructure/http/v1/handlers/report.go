package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"stockledger/internal/domain/report"
	"stockledger/internal/infrastructure/http/v1/dto"
)

// ReportHandler handles aggregation pipeline endpoints.
type ReportHandler struct {
	*BaseHandler
	service *report.Service
}

// NewReportHandler creates a new report handler.
func NewReportHandler(base *BaseHandler, service *report.Service) *ReportHandler {
	return &ReportHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Monthly handles GET /reports/monthly?year=YYYY&month=M
// Defaults to the current month when no parameters are given.
func (h *ReportHandler) Monthly(c *gin.Context) {
	ctx := c.Request.Context()

	now := time.Now()
	year := h.ParseIntQuery(c, "year", now.Year())
	month := h.ParseIntQuery(c, "month", int(now.Month()))

	state, err := h.service.Monthly(ctx, year, month)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromDerivedState(state, year, month))
}

// Matrices handles GET /reports/matrix
// Returns the full-history flow and running-stock views.
func (h *ReportHandler) Matrices(c *gin.Context) {
	ctx := c.Request.Context()

	flow, stock, err := h.service.Matrices(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.MatricesResponse{
		Flow:  dto.FromFlowMatrix(flow),
		Stock: dto.FromStockMatrix(stock),
	})
}
