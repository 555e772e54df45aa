package report

import (
	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
)

// ProjectStock converts a flow matrix into cumulative per-product stock:
// a left-to-right prefix sum over the date-ordered flow series,
// independent per product.
//
// Stock at any axis date equals the sum of all net flows up to and
// including that date. Dates between axis entries conceptually carry the
// previous value forward; they are not materialized as rows (the period
// aggregator handles that carry-forward).
func ProjectStock(flow *FlowMatrix) *StockMatrix {
	m := &StockMatrix{
		Axis:    flow.Axis,
		Columns: flow.Columns,
		rows:    make(map[types.Day]map[id.ID]int64, len(flow.Axis)),
	}

	running := make(map[id.ID]int64, len(flow.Columns))
	for _, c := range flow.Columns {
		running[c.ProductID] = 0
	}

	for _, d := range m.Axis {
		row := make(map[id.ID]int64, len(m.Columns))
		for _, c := range m.Columns {
			running[c.ProductID] += flow.Flow(d, c.ProductID)
			row[c.ProductID] = running[c.ProductID]
		}
		m.rows[d] = row
	}

	return m
}
