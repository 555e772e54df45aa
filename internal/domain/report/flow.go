package report

import (
	"sort"

	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/internal/domain/catalog/product"
	"stockledger/internal/domain/ledger"
)

// BuildFlowMatrix groups raw transactions into a dense date×product grid
// of signed net quantities.
//
// The date axis is the ascending set of distinct transaction dates. The
// column set is the catalog plus every orphaned product ID still present
// in the history: no transaction is ever dropped, whether or not its
// product resolves to a catalog entry.
func BuildFlowMatrix(transactions []*ledger.Transaction, products []*product.Product) *FlowMatrix {
	m := &FlowMatrix{
		Columns: buildColumns(transactions, products),
		cells:   make(map[types.Day]map[id.ID]int64),
	}

	// Date axis: distinct transaction dates, ascending.
	seen := make(map[types.Day]struct{}, len(transactions))
	for _, t := range transactions {
		if _, ok := seen[t.Date]; !ok {
			seen[t.Date] = struct{}{}
			m.Axis = append(m.Axis, t.Date)
		}
	}
	sort.Slice(m.Axis, func(i, j int) bool { return m.Axis[i].Before(m.Axis[j]) })

	// Dense zero-filled rows for every known column.
	for _, d := range m.Axis {
		row := make(map[id.ID]int64, len(m.Columns))
		for _, c := range m.Columns {
			row[c.ProductID] = 0
		}
		m.cells[d] = row
	}

	// Accumulate: multiple transactions on the same date and product sum
	// up, they never overwrite each other.
	for _, t := range transactions {
		m.cells[t.Date][t.ProductID] += t.SignedQuantity()
	}

	return m
}

// buildColumns merges the catalog with orphaned product references from
// the history. Catalog products come first in display order; orphans
// follow, labeled with the denormalized name snapshot.
func buildColumns(transactions []*ledger.Transaction, products []*product.Product) []Column {
	catalog := make([]*product.Product, len(products))
	copy(catalog, products)
	product.SortForDisplay(catalog)

	columns := make([]Column, 0, len(catalog))
	known := make(map[id.ID]struct{}, len(catalog))
	for _, p := range catalog {
		columns = append(columns, Column{ProductID: p.ID, ProductName: p.Name})
		known[p.ID] = struct{}{}
	}

	var orphans []Column
	orphanSeen := make(map[id.ID]struct{})
	for _, t := range transactions {
		if _, ok := known[t.ProductID]; ok {
			continue
		}
		if _, ok := orphanSeen[t.ProductID]; ok {
			continue
		}
		orphanSeen[t.ProductID] = struct{}{}
		orphans = append(orphans, Column{
			ProductID:   t.ProductID,
			ProductName: t.ProductName,
			Orphaned:    true,
		})
	}

	sort.Slice(orphans, func(i, j int) bool {
		if orphans[i].ProductName != orphans[j].ProductName {
			return orphans[i].ProductName < orphans[j].ProductName
		}
		return orphans[i].ProductID.String() < orphans[j].ProductID.String()
	})

	return append(columns, orphans...)
}
