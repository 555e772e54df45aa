package handlers

import (
	"github.com/gin-gonic/gin"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/internal/domain/ledger"
	"stockledger/internal/infrastructure/http/v1/dto"
)

// TransactionHandler handles stock movement journal endpoints.
type TransactionHandler struct {
	*BaseHandler
	service *ledger.Service
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(base *BaseHandler, service *ledger.Service) *TransactionHandler {
	return &TransactionHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Create handles POST /transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateTransactionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	date, err := types.ParseDay(req.Date)
	if err != nil {
		h.Error(c, apperror.NewValidation("date must be YYYY-MM-DD").WithDetail("date", req.Date))
		return
	}

	productID, err := id.Parse(req.ProductID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid product id").WithDetail("productId", req.ProductID))
		return
	}

	t, err := h.service.Append(ctx, ledger.AppendInput{
		Date:      date,
		ProductID: productID,
		Type:      ledger.Type(req.Type),
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, t.ID.String())
}

// List handles GET /transactions
func (h *TransactionHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	transactions, err := h.service.List(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		items = append(items, dto.FromTransaction(t))
	}

	h.OK(c, dto.TransactionListResponse{Items: items, TotalCount: len(items)})
}

// Delete handles DELETE /transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	txID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, txID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
