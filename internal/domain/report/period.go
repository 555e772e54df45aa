package report

import (
	"time"

	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
)

// TermMaxima finds, for every product column, the peak stock level
// reached within each of the month's three billing windows.
//
// The stock matrix must cover the entire history, not just the target
// month: the walk is seeded with the stock carried in from the last
// known date strictly before the 1st, so a month with zero activity
// still reports the level carried over from prior months rather than
// zero. Billing charges for the peak holding in each window, so the
// update is max, never sum or last-value.
func TermMaxima(stock *StockMatrix, year int, month time.Month) map[id.ID]Terms {
	result := make(map[id.ID]Terms, len(stock.Columns))
	lastKnown := make(map[id.ID]int64, len(stock.Columns))
	for _, c := range stock.Columns {
		result[c.ProductID] = Terms{}
		lastKnown[c.ProductID] = 0
	}

	firstOfMonth := types.NewDay(year, month, 1)

	// Carry-forward seed: the latest history date before the window.
	var seedDay types.Day
	var haveSeed bool
	for _, d := range stock.Axis {
		if !d.Before(firstOfMonth) {
			break
		}
		seedDay = d
		haveSeed = true
	}
	if haveSeed {
		lastKnown = stock.Row(seedDay)
	}

	daysInMonth := types.DaysInMonth(year, month)
	for dayNum := 1; dayNum <= daysInMonth; dayNum++ {
		d := types.NewDay(year, month, dayNum)

		// Stock only changes on days with recorded movements; otherwise
		// the previous level persists.
		if row := stock.Row(d); row != nil {
			lastKnown = row
		}

		for _, c := range stock.Columns {
			qty := lastKnown[c.ProductID]
			terms := result[c.ProductID]
			switch {
			case dayNum <= term1End:
				terms.Term1 = max(terms.Term1, qty)
			case dayNum <= term2End:
				terms.Term2 = max(terms.Term2, qty)
			default:
				terms.Term3 = max(terms.Term3, qty)
			}
			result[c.ProductID] = terms
		}
	}

	return result
}
