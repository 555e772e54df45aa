package dto

import (
	"stockledger/internal/core/types"
	"stockledger/internal/domain/report"
)

// MatrixColumn describes one product column of a matrix view.
type MatrixColumn struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Orphaned    bool   `json:"orphaned,omitempty"`
}

// MatrixRow is one date row of a matrix, cells keyed by product id.
type MatrixRow struct {
	Date  string           `json:"date"`
	Cells map[string]int64 `json:"cells"`
}

// MatrixResponse is a date×product grid in ascending date order.
type MatrixResponse struct {
	Columns []MatrixColumn `json:"columns"`
	Rows    []MatrixRow    `json:"rows"`
}

// MatricesResponse carries the full-history flow and stock views.
type MatricesResponse struct {
	Flow  MatrixResponse `json:"flow"`
	Stock MatrixResponse `json:"stock"`
}

// ProductMaximaResponse is the per-term peak stock for one product.
type ProductMaximaResponse struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Orphaned    bool   `json:"orphaned,omitempty"`
	Term1       int64  `json:"term1"`
	Term2       int64  `json:"term2"`
	Term3       int64  `json:"term3"`
}

// InvoiceLineResponse is one storage-fee charge line.
type InvoiceLineResponse struct {
	ProductID   string      `json:"productId"`
	ProductName string      `json:"productName"`
	Quantity    int64       `json:"quantity"`
	UnitPrice   types.Money `json:"unitPrice"`
	Amount      types.Money `json:"amount"`
}

// InvoiceResponse is the monthly storage-fee invoice.
type InvoiceResponse struct {
	Year      int                   `json:"year"`
	Month     int                   `json:"month"`
	UnitPrice types.Money           `json:"unitPrice"`
	Lines     []InvoiceLineResponse `json:"lines"`
	Total     types.Money           `json:"total"`
}

// MonthlyReportResponse is the full derived state for a billing month.
type MonthlyReportResponse struct {
	Year    int                     `json:"year"`
	Month   int                     `json:"month"`
	Flow    MatrixResponse          `json:"flow"`
	Stock   MatrixResponse          `json:"stock"`
	Maxima  []ProductMaximaResponse `json:"maxima"`
	Invoice InvoiceResponse         `json:"invoice"`
}

// FromFlowMatrix maps a flow matrix to its response shape.
func FromFlowMatrix(m *report.FlowMatrix) MatrixResponse {
	out := MatrixResponse{
		Columns: fromColumns(m.Columns),
		Rows:    make([]MatrixRow, 0, len(m.Axis)),
	}
	for _, day := range m.Axis {
		row := MatrixRow{Date: day.String(), Cells: make(map[string]int64, len(m.Columns))}
		for _, col := range m.Columns {
			row.Cells[col.ProductID.String()] = m.Flow(day, col.ProductID)
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// FromStockMatrix maps a stock matrix to its response shape.
func FromStockMatrix(m *report.StockMatrix) MatrixResponse {
	out := MatrixResponse{
		Columns: fromColumns(m.Columns),
		Rows:    make([]MatrixRow, 0, len(m.Axis)),
	}
	for _, day := range m.Axis {
		row := MatrixRow{Date: day.String(), Cells: make(map[string]int64, len(m.Columns))}
		for _, col := range m.Columns {
			row.Cells[col.ProductID.String()] = m.Stock(day, col.ProductID)
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// FromDerivedState maps one pipeline run to the monthly report response.
// Maxima follow the matrix column order.
func FromDerivedState(state report.DerivedState, year, month int) MonthlyReportResponse {
	maxima := make([]ProductMaximaResponse, 0, len(state.Flow.Columns))
	for _, col := range state.Flow.Columns {
		terms := state.Maxima[col.ProductID]
		maxima = append(maxima, ProductMaximaResponse{
			ProductID:   col.ProductID.String(),
			ProductName: col.ProductName,
			Orphaned:    col.Orphaned,
			Term1:       terms.Term1,
			Term2:       terms.Term2,
			Term3:       terms.Term3,
		})
	}

	inv := InvoiceResponse{
		Year:      state.Invoice.Year,
		Month:     int(state.Invoice.Month),
		UnitPrice: state.Invoice.UnitPrice,
		Lines:     make([]InvoiceLineResponse, 0, len(state.Invoice.Lines)),
		Total:     state.Invoice.Total,
	}
	for _, line := range state.Invoice.Lines {
		inv.Lines = append(inv.Lines, InvoiceLineResponse{
			ProductID:   line.ProductID.String(),
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Amount:      line.Amount,
		})
	}

	return MonthlyReportResponse{
		Year:    year,
		Month:   month,
		Flow:    FromFlowMatrix(state.Flow),
		Stock:   FromStockMatrix(state.Stock),
		Maxima:  maxima,
		Invoice: inv,
	}
}

func fromColumns(cols []report.Column) []MatrixColumn {
	out := make([]MatrixColumn, 0, len(cols))
	for _, c := range cols {
		out = append(out, MatrixColumn{
			ProductID:   c.ProductID.String(),
			ProductName: c.ProductName,
			Orphaned:    c.Orphaned,
		})
	}
	return out
}
