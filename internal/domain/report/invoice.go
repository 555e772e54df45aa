package report

import (
	"time"

	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
)

// BuildInvoice prices the per-product term maxima: each line charges the
// summed peaks at the single global unit price, the total is the sum of
// all lines. Decimal arithmetic throughout, no binary floats.
func BuildInvoice(columns []Column, maxima map[id.ID]Terms, unitPrice types.Money, year int, month time.Month) *Invoice {
	inv := &Invoice{
		Year:      year,
		Month:     month,
		UnitPrice: unitPrice,
		Lines:     make([]InvoiceLine, 0, len(columns)),
		Total:     types.ZeroMoney(),
	}

	for _, c := range columns {
		terms := maxima[c.ProductID]
		qty := terms.Sum()
		amount := types.MoneyFromInt(qty).Mul(unitPrice)

		inv.Lines = append(inv.Lines, InvoiceLine{
			ProductID:   c.ProductID,
			ProductName: c.ProductName,
			Terms:       terms,
			Quantity:    qty,
			UnitPrice:   unitPrice,
			Amount:      amount,
		})
		inv.Total = inv.Total.Add(amount)
	}

	return inv
}
