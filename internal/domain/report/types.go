// Package report provides the stock aggregation engine: the pure
// pipeline that turns the transaction history and product catalog into
// daily flow and running-stock matrices, per-term peak stock and the
// storage-fee invoice.
package report

import (
	"time"

	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/internal/domain/catalog/product"
	"stockledger/internal/domain/ledger"
	"stockledger/internal/domain/settings"
)

// Term boundaries: a month is billed in three fixed windows,
// days 1-10, 11-20 and 21-end.
const (
	term1End = 10
	term2End = 20
)

// Snapshot is a complete replacement snapshot of the store collections.
// The pipeline is a deterministic function of a Snapshot plus a target
// month; it never mutates the snapshot.
type Snapshot struct {
	Transactions []*ledger.Transaction
	Products     []*product.Product
	Settings     *settings.Settings
}

// Column identifies one product column of the matrices. Products deleted
// from the catalog keep their column as long as transactions reference
// them; such columns are marked orphaned and labeled with the
// denormalized name snapshot from their transactions.
type Column struct {
	ProductID   id.ID  `json:"productId"`
	ProductName string `json:"productName"`
	Orphaned    bool   `json:"orphaned,omitempty"`
}

// FlowMatrix is the dense date×product grid of signed net quantities.
type FlowMatrix struct {
	// Axis is the ascending list of distinct transaction dates.
	Axis []types.Day

	// Columns is the display-ordered product column set.
	Columns []Column

	cells map[types.Day]map[id.ID]int64
}

// Flow returns the net quantity for a date and product (0 when absent).
func (m *FlowMatrix) Flow(day types.Day, productID id.ID) int64 {
	return m.cells[day][productID]
}

// StockMatrix is the date×product grid of cumulative end-of-day stock.
type StockMatrix struct {
	Axis    []types.Day
	Columns []Column

	rows map[types.Day]map[id.ID]int64
}

// Stock returns the end-of-day stock for a date and product.
// The date must be present in the axis; absent dates return 0.
func (m *StockMatrix) Stock(day types.Day, productID id.ID) int64 {
	return m.rows[day][productID]
}

// Row returns a copy of the stock row for a date, or nil when the date
// is not in the axis.
func (m *StockMatrix) Row(day types.Day) map[id.ID]int64 {
	row, ok := m.rows[day]
	if !ok {
		return nil
	}
	out := make(map[id.ID]int64, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

// CurrentStock returns the last axis row (the latest known stock level
// per product), or an all-zero map when the history is empty.
func (m *StockMatrix) CurrentStock() map[id.ID]int64 {
	if len(m.Axis) == 0 {
		zero := make(map[id.ID]int64, len(m.Columns))
		for _, c := range m.Columns {
			zero[c.ProductID] = 0
		}
		return zero
	}
	return m.Row(m.Axis[len(m.Axis)-1])
}

// Terms holds the peak stock reached within each billing window of the
// target month. There is no ordering invariant between the three values;
// each is an independent maximum.
type Terms struct {
	Term1 int64 `json:"term1"`
	Term2 int64 `json:"term2"`
	Term3 int64 `json:"term3"`
}

// Sum returns the quantity basis for billing: the three peaks added up.
func (t Terms) Sum() int64 {
	return t.Term1 + t.Term2 + t.Term3
}

// InvoiceLine is the storage-fee charge for one product.
type InvoiceLine struct {
	ProductID   id.ID       `json:"productId"`
	ProductName string      `json:"productName"`
	Terms       Terms       `json:"terms"`
	Quantity    int64       `json:"quantity"`
	UnitPrice   types.Money `json:"unitPrice"`
	Amount      types.Money `json:"amount"`
}

// Invoice is the monthly storage-fee invoice.
type Invoice struct {
	Year      int           `json:"year"`
	Month     time.Month    `json:"month"`
	UnitPrice types.Money   `json:"unitPrice"`
	Lines     []InvoiceLine `json:"lines"`
	Total     types.Money   `json:"total"`
}

// DerivedState is the output of one full pipeline run. It is recomputed
// from scratch on every input change and never cached across snapshots.
type DerivedState struct {
	Flow    *FlowMatrix
	Stock   *StockMatrix
	Maxima  map[id.ID]Terms
	Invoice *Invoice
}
