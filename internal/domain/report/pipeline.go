package report

import (
	"time"

	"stockledger/internal/domain/settings"
)

// Compute runs the full pipeline on a snapshot for a target month:
// transactions + products → flow matrix → stock matrix → term maxima →
// invoice. It is pure and referentially transparent; identical inputs
// yield identical output, and the caller may discard a superseded result
// whenever a newer snapshot arrives.
func Compute(snap Snapshot, year int, month time.Month) DerivedState {
	unitPrice := settings.DefaultUnitPrice
	if snap.Settings != nil {
		unitPrice = snap.Settings.UnitPrice
	}

	flow := BuildFlowMatrix(snap.Transactions, snap.Products)
	stock := ProjectStock(flow)
	maxima := TermMaxima(stock, year, month)
	invoice := BuildInvoice(stock.Columns, maxima, unitPrice, year, month)

	return DerivedState{
		Flow:    flow,
		Stock:   stock,
		Maxima:  maxima,
		Invoice: invoice,
	}
}
