package dto

import (
	"time"

	"stockledger/internal/domain/ledger"
)

// CreateTransactionRequest appends a stock movement.
type CreateTransactionRequest struct {
	Date      string `json:"date" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=in out"`
	Quantity  int64  `json:"quantity" binding:"required,gt=0"`
}

// TransactionResponse is one ledger entry.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	Timestamp   time.Time `json:"timestamp"`
	WorkerID    *string   `json:"workerId,omitempty"`
}

// TransactionListResponse is the journal in display order.
type TransactionListResponse struct {
	Items      []TransactionResponse `json:"items"`
	TotalCount int                   `json:"totalCount"`
}

// FromTransaction maps a transaction to its response shape.
func FromTransaction(t *ledger.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		Date:        t.Date.String(),
		ProductID:   t.ProductID.String(),
		ProductName: t.ProductName,
		Type:        string(t.Type),
		Quantity:    t.Quantity,
		Timestamp:   t.Timestamp,
		WorkerID:    t.WorkerID,
	}
}
