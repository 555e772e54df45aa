package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/internal/domain/catalog/product"
	"stockledger/internal/domain/ledger"
	"stockledger/internal/domain/settings"
)

func tx(date string, p *product.Product, kind ledger.Type, qty int64) *ledger.Transaction {
	return &ledger.Transaction{
		ID:          id.New(),
		Date:        types.MustParseDay(date),
		ProductID:   p.ID,
		ProductName: p.Name,
		Type:        kind,
		Quantity:    qty,
		Timestamp:   time.Now(),
	}
}

func priceOf(v int64) types.Money {
	return types.MoneyFromInt(v)
}

// Single product, three movements in one month.
func TestPipeline_SingleProductMonth(t *testing.T) {
	widget := product.NewProduct("Widget", nil)

	snap := Snapshot{
		Transactions: []*ledger.Transaction{
			tx("2024-01-05", widget, ledger.TypeIn, 10),
			tx("2024-01-15", widget, ledger.TypeOut, 3),
			tx("2024-01-25", widget, ledger.TypeIn, 2),
		},
		Products: []*product.Product{widget},
		Settings: &settings.Settings{UnitPrice: priceOf(400)},
	}

	state := Compute(snap, 2024, time.January)

	wantFlow := map[string]int64{"2024-01-05": 10, "2024-01-15": -3, "2024-01-25": 2}
	wantStock := map[string]int64{"2024-01-05": 10, "2024-01-15": 7, "2024-01-25": 9}
	for date, want := range wantFlow {
		if got := state.Flow.Flow(types.MustParseDay(date), widget.ID); got != want {
			t.Errorf("flow[%s] = %d, want %d", date, got, want)
		}
	}
	for date, want := range wantStock {
		if got := state.Stock.Stock(types.MustParseDay(date), widget.ID); got != want {
			t.Errorf("stock[%s] = %d, want %d", date, got, want)
		}
	}

	// Term 2 peaks at 10: the level from Jan 5 carries through days
	// 11-14 before the Jan 15 issue drops it to 7.
	terms := state.Maxima[widget.ID]
	if terms != (Terms{Term1: 10, Term2: 10, Term3: 9}) {
		t.Errorf("terms = %+v, want {10 10 9}", terms)
	}

	wantTotal := decimal.NewFromInt(29 * 400)
	if !state.Invoice.Total.Equal(wantTotal) {
		t.Errorf("invoice total = %s, want %s", state.Invoice.Total, wantTotal)
	}
}

// A month with no activity bills the stock level carried in from before
// it, not zero.
func TestPipeline_CarryForwardAcrossEmptyMonth(t *testing.T) {
	widget := product.NewProduct("Widget", nil)

	snap := Snapshot{
		Transactions: []*ledger.Transaction{
			tx("2024-01-05", widget, ledger.TypeIn, 10),
			tx("2024-01-15", widget, ledger.TypeOut, 3),
			tx("2024-01-25", widget, ledger.TypeIn, 2),
		},
		Products: []*product.Product{widget},
		Settings: &settings.Settings{UnitPrice: priceOf(400)},
	}

	state := Compute(snap, 2024, time.February)

	terms := state.Maxima[widget.ID]
	if terms != (Terms{Term1: 9, Term2: 9, Term3: 9}) {
		t.Errorf("terms = %+v, want {9 9 9}", terms)
	}

	wantTotal := decimal.NewFromInt(27 * 400)
	if !state.Invoice.Total.Equal(wantTotal) {
		t.Errorf("invoice total = %s, want %s", state.Invoice.Total, wantTotal)
	}
}

// Mid-month arrival: terms before the first movement stay zero.
func TestPipeline_MidMonthArrival(t *testing.T) {
	widget := product.NewProduct("Widget", nil)

	snap := Snapshot{
		Transactions: []*ledger.Transaction{
			tx("2024-03-12", widget, ledger.TypeIn, 12),
			tx("2024-03-28", widget, ledger.TypeOut, 7),
		},
		Products: []*product.Product{widget},
		Settings: &settings.Settings{UnitPrice: priceOf(400)},
	}

	state := Compute(snap, 2024, time.March)

	terms := state.Maxima[widget.ID]
	if terms != (Terms{Term1: 0, Term2: 12, Term3: 12}) {
		t.Errorf("terms = %+v, want {0 12 12}", terms)
	}

	wantTotal := decimal.NewFromInt(24 * 400)
	if !state.Invoice.Total.Equal(wantTotal) {
		t.Errorf("invoice total = %s, want %s", state.Invoice.Total, wantTotal)
	}
}

// The term maximum is a peak, not the end-of-term level.
func TestPipeline_PeakWithinTerm(t *testing.T) {
	widget := product.NewProduct("Widget", nil)

	snap := Snapshot{
		Transactions: []*ledger.Transaction{
			tx("2024-05-02", widget, ledger.TypeIn, 12),
			tx("2024-05-09", widget, ledger.TypeOut, 12),
			tx("2024-05-15", widget, ledger.TypeIn, 5),
		},
		Products: []*product.Product{widget},
		Settings: &settings.Settings{UnitPrice: priceOf(400)},
	}

	state := Compute(snap, 2024, time.May)

	terms := state.Maxima[widget.ID]
	if terms != (Terms{Term1: 12, Term2: 5, Term3: 5}) {
		t.Errorf("terms = %+v, want {12 5 5}", terms)
	}

	// (12 + 5 + 5) * 400
	wantTotal := decimal.NewFromInt(22 * 400)
	if !state.Invoice.Total.Equal(wantTotal) {
		t.Errorf("invoice total = %s, want %s", state.Invoice.Total, wantTotal)
	}
}

// Transactions for a product deleted from the catalog still flow
// through the pipeline and the invoice.
func TestPipeline_OrphanedProductIncluded(t *testing.T) {
	kept := product.NewProduct("Kept", nil)
	deleted := product.NewProduct("Deleted", nil)

	snap := Snapshot{
		Transactions: []*ledger.Transaction{
			tx("2024-01-03", kept, ledger.TypeIn, 5),
			tx("2024-01-04", deleted, ledger.TypeIn, 8),
		},
		Products: []*product.Product{kept}, // deleted is gone from the catalog
		Settings: &settings.Settings{UnitPrice: priceOf(400)},
	}

	state := Compute(snap, 2024, time.January)

	var orphan *Column
	for i := range state.Flow.Columns {
		if state.Flow.Columns[i].ProductID == deleted.ID {
			orphan = &state.Flow.Columns[i]
		}
	}
	if orphan == nil {
		t.Fatal("deleted product missing from columns")
	}
	if !orphan.Orphaned {
		t.Error("deleted product not marked orphaned")
	}
	if orphan.ProductName != "Deleted" {
		t.Errorf("orphan label = %q, want denormalized name", orphan.ProductName)
	}

	if terms := state.Maxima[deleted.ID]; terms.Sum() != 24 {
		t.Errorf("orphan terms sum = %d, want 24", terms.Sum())
	}

	var orphanLine *InvoiceLine
	for i := range state.Invoice.Lines {
		if state.Invoice.Lines[i].ProductID == deleted.ID {
			orphanLine = &state.Invoice.Lines[i]
		}
	}
	if orphanLine == nil {
		t.Fatal("deleted product missing from invoice")
	}
	wantAmount := decimal.NewFromInt(24 * 400)
	if !orphanLine.Amount.Equal(wantAmount) {
		t.Errorf("orphan amount = %s, want %s", orphanLine.Amount, wantAmount)
	}
}

// Same date and product accumulate into a single flow cell.
func TestFlowMatrix_SameDayAccumulation(t *testing.T) {
	widget := product.NewProduct("Widget", nil)

	flow := BuildFlowMatrix([]*ledger.Transaction{
		tx("2024-01-05", widget, ledger.TypeIn, 10),
		tx("2024-01-05", widget, ledger.TypeOut, 4),
		tx("2024-01-05", widget, ledger.TypeIn, 1),
	}, []*product.Product{widget})

	if len(flow.Axis) != 1 {
		t.Fatalf("axis length = %d, want 1", len(flow.Axis))
	}
	if got := flow.Flow(types.MustParseDay("2024-01-05"), widget.ID); got != 7 {
		t.Errorf("flow = %d, want 7", got)
	}
}

// The axis is sorted ascending regardless of input order.
func TestFlowMatrix_AxisSorted(t *testing.T) {
	widget := product.NewProduct("Widget", nil)

	flow := BuildFlowMatrix([]*ledger.Transaction{
		tx("2024-03-01", widget, ledger.TypeIn, 1),
		tx("2023-11-20", widget, ledger.TypeIn, 1),
		tx("2024-01-15", widget, ledger.TypeIn, 1),
	}, []*product.Product{widget})

	want := []string{"2023-11-20", "2024-01-15", "2024-03-01"}
	if len(flow.Axis) != len(want) {
		t.Fatalf("axis length = %d, want %d", len(flow.Axis), len(want))
	}
	for i, w := range want {
		if flow.Axis[i].String() != w {
			t.Errorf("axis[%d] = %s, want %s", i, flow.Axis[i], w)
		}
	}
}

// Stock rows are prefix sums of flow rows, date by date.
func TestProjectStock_PrefixSumConsistency(t *testing.T) {
	a := product.NewProduct("A", nil)
	b := product.NewProduct("B", nil)
	products := []*product.Product{a, b}

	flow := BuildFlowMatrix([]*ledger.Transaction{
		tx("2024-01-01", a, ledger.TypeIn, 4),
		tx("2024-01-02", b, ledger.TypeIn, 9),
		tx("2024-01-03", a, ledger.TypeOut, 1),
		tx("2024-01-03", b, ledger.TypeOut, 2),
		tx("2024-02-10", a, ledger.TypeIn, 5),
	}, products)
	stock := ProjectStock(flow)

	running := map[id.ID]int64{}
	for _, day := range flow.Axis {
		for _, col := range flow.Columns {
			running[col.ProductID] += flow.Flow(day, col.ProductID)
			if got := stock.Stock(day, col.ProductID); got != running[col.ProductID] {
				t.Errorf("stock[%s][%s] = %d, want %d", day, col.ProductName, got, running[col.ProductID])
			}
		}
	}

	current := stock.CurrentStock()
	if current[a.ID] != 8 || current[b.ID] != 7 {
		t.Errorf("current stock = %v, want a=8 b=7", current)
	}
}

// Stock never resets across gap days or month boundaries.
func TestTermMaxima_GapDaysCarryLastKnown(t *testing.T) {
	widget := product.NewProduct("Widget", nil)

	flow := BuildFlowMatrix([]*ledger.Transaction{
		tx("2024-04-02", widget, ledger.TypeIn, 6),
		tx("2024-04-29", widget, ledger.TypeOut, 6),
	}, []*product.Product{widget})
	stock := ProjectStock(flow)

	maxima := TermMaxima(stock, 2024, time.April)
	// Level 6 persists through the silent middle of the month.
	if maxima[widget.ID] != (Terms{Term1: 6, Term2: 6, Term3: 6}) {
		t.Errorf("terms = %+v, want {6 6 6}", maxima[widget.ID])
	}
}

// February of a leap year bills through day 29.
func TestTermMaxima_LeapFebruary(t *testing.T) {
	widget := product.NewProduct("Widget", nil)

	flow := BuildFlowMatrix([]*ledger.Transaction{
		tx("2024-02-29", widget, ledger.TypeIn, 3),
	}, []*product.Product{widget})
	stock := ProjectStock(flow)

	maxima := TermMaxima(stock, 2024, time.February)
	if maxima[widget.ID] != (Terms{Term1: 0, Term2: 0, Term3: 3}) {
		t.Errorf("terms = %+v, want {0 0 3}", maxima[widget.ID])
	}
}

// Empty history: zero matrices, zero maxima, zero invoice.
func TestPipeline_EmptyHistory(t *testing.T) {
	widget := product.NewProduct("Widget", nil)

	snap := Snapshot{
		Transactions: nil,
		Products:     []*product.Product{widget},
		Settings:     &settings.Settings{UnitPrice: priceOf(400)},
	}

	state := Compute(snap, 2024, time.June)

	if len(state.Flow.Axis) != 0 {
		t.Errorf("axis length = %d, want 0", len(state.Flow.Axis))
	}
	if terms := state.Maxima[widget.ID]; terms != (Terms{}) {
		t.Errorf("terms = %+v, want zero", terms)
	}
	if !state.Invoice.Total.IsZero() {
		t.Errorf("invoice total = %s, want 0", state.Invoice.Total)
	}
}

// The pipeline is a pure function of its snapshot.
func TestPipeline_Idempotent(t *testing.T) {
	widget := product.NewProduct("Widget", nil)
	other := product.NewProduct("Other", nil)

	snap := Snapshot{
		Transactions: []*ledger.Transaction{
			tx("2024-01-05", widget, ledger.TypeIn, 10),
			tx("2024-01-09", other, ledger.TypeIn, 2),
			tx("2024-01-15", widget, ledger.TypeOut, 3),
		},
		Products: []*product.Product{widget, other},
		Settings: &settings.Settings{UnitPrice: priceOf(250)},
	}

	first := Compute(snap, 2024, time.January)
	second := Compute(snap, 2024, time.January)

	for pid, terms := range first.Maxima {
		if second.Maxima[pid] != terms {
			t.Errorf("maxima diverged for %s: %+v vs %+v", pid, terms, second.Maxima[pid])
		}
	}
	if !first.Invoice.Total.Equal(second.Invoice.Total) {
		t.Errorf("totals diverged: %s vs %s", first.Invoice.Total, second.Invoice.Total)
	}
}

// Missing settings fall back to the default unit price.
func TestPipeline_DefaultUnitPrice(t *testing.T) {
	widget := product.NewProduct("Widget", nil)

	snap := Snapshot{
		Transactions: []*ledger.Transaction{
			tx("2024-01-05", widget, ledger.TypeIn, 1),
		},
		Products: []*product.Product{widget},
		Settings: nil,
	}

	state := Compute(snap, 2024, time.January)

	// Terms {1,1,1} at the default price of 400.
	wantTotal := decimal.NewFromInt(3 * 400)
	if !state.Invoice.Total.Equal(wantTotal) {
		t.Errorf("invoice total = %s, want %s", state.Invoice.Total, wantTotal)
	}
}

// Invoice total equals the sum of its lines.
func TestInvoice_TotalMatchesLines(t *testing.T) {
	a := product.NewProduct("A", nil)
	b := product.NewProduct("B", nil)

	snap := Snapshot{
		Transactions: []*ledger.Transaction{
			tx("2024-01-02", a, ledger.TypeIn, 12),
			tx("2024-01-12", b, ledger.TypeIn, 5),
			tx("2024-01-22", a, ledger.TypeOut, 2),
		},
		Products: []*product.Product{a, b},
		Settings: &settings.Settings{UnitPrice: priceOf(400)},
	}

	state := Compute(snap, 2024, time.January)

	sum := decimal.Zero
	for _, line := range state.Invoice.Lines {
		wantLine := decimal.NewFromInt(line.Terms.Sum()).Mul(decimal.NewFromInt(400))
		if !line.Amount.Equal(wantLine) {
			t.Errorf("line %s amount = %s, want %s", line.ProductName, line.Amount, wantLine)
		}
		sum = sum.Add(line.Amount)
	}
	if !state.Invoice.Total.Equal(sum) {
		t.Errorf("invoice total = %s, lines sum to %s", state.Invoice.Total, sum)
	}
}
