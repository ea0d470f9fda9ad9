package aggregate

import (
	"math"
	"reflect"
	"testing"

	"github.com/amanshaikhx1/Auto-Dashboard/adapters/coerce"
	"github.com/amanshaikhx1/Auto-Dashboard/domain/catalog"
	"github.com/amanshaikhx1/Auto-Dashboard/domain/core"
	"github.com/amanshaikhx1/Auto-Dashboard/domain/table"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func newTestAggregator(t *testing.T) *Aggregator {
	t.Helper()
	reg, err := catalog.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	return New(reg, coerce.NewDefault())
}

func mapped(column, field string) table.ColumnMapping {
	return table.ColumnMapping{
		SourceColumn:  column,
		BusinessField: core.FieldID(field),
		Mapped:        true,
		Confidence:    1.0,
	}
}

func ordersDataset() *table.ProcessedDataset {
	rows := []table.Row{
		{"oid": "O1", "when": "2024-01-15", "rev": "$100.00", "cst": "40", "qty": "2", "cid": "C1", "seg": "retail"},
		{"oid": "O2", "when": "2024-01-20", "rev": "$200.00", "cst": "80", "qty": "1", "cid": "C2", "seg": "retail"},
		{"oid": "O3", "when": "2024-02-10", "rev": "$150.00", "cst": "50", "qty": "3", "cid": "C1", "seg": "wholesale"},
	}
	return &table.ProcessedDataset{
		ID:       core.NewDatasetID(),
		FileName: "orders.csv",
		RowCount: len(rows),
		Columns:  []string{"oid", "when", "rev", "cst", "qty", "cid", "seg"},
		Data:     rows,
		Mappings: []table.ColumnMapping{
			mapped("oid", "order_id"),
			mapped("when", "order_date"),
			mapped("rev", "revenue"),
			mapped("cst", "cost"),
			mapped("qty", "quantity"),
			mapped("cid", "customer_id"),
			mapped("seg", "customer_segment"),
		},
	}
}

func TestAggregateOrders(t *testing.T) {
	a := newTestAggregator(t)
	m := a.Aggregate(ordersDataset())

	if !almostEqual(m.TotalRevenue, 450) {
		t.Errorf("TotalRevenue = %v, want 450", m.TotalRevenue)
	}
	// Profit derived as revenue minus cost
	if !almostEqual(m.TotalProfit, 280) {
		t.Errorf("TotalProfit = %v, want 280", m.TotalProfit)
	}
	if m.TotalTransactions != 3 {
		t.Errorf("TotalTransactions = %d, want 3", m.TotalTransactions)
	}
	if !almostEqual(m.AvgOrderValue, 150) {
		t.Errorf("AvgOrderValue = %v, want 150", m.AvgOrderValue)
	}
	if !almostEqual(m.ProfitMargin, 280.0/450.0) {
		t.Errorf("ProfitMargin = %v, want %v", m.ProfitMargin, 280.0/450.0)
	}
	if m.SkippedCells != 0 {
		t.Errorf("SkippedCells = %d, want 0", m.SkippedCells)
	}
}

func TestAggregateGrowth(t *testing.T) {
	a := newTestAggregator(t)
	m := a.Aggregate(ordersDataset())

	// Jan 300, Feb 150: (150-300)/300
	if !almostEqual(m.GrowthRates.Monthly, -0.5) {
		t.Errorf("Monthly = %v, want -0.5", m.GrowthRates.Monthly)
	}
	// Single quarter and single year: no rate
	if m.GrowthRates.Quarterly != 0 {
		t.Errorf("Quarterly = %v, want 0", m.GrowthRates.Quarterly)
	}
	if m.GrowthRates.Yearly != 0 {
		t.Errorf("Yearly = %v, want 0", m.GrowthRates.Yearly)
	}
	// Least squares over (0, 300), (1, 150)
	if !almostEqual(m.GrowthRates.MonthlyTrendSlope, -150) {
		t.Errorf("MonthlyTrendSlope = %v, want -150", m.GrowthRates.MonthlyTrendSlope)
	}
}

func TestAggregateCustomers(t *testing.T) {
	a := newTestAggregator(t)
	m := a.Aggregate(ordersDataset())

	cm := m.CustomerMetrics
	if cm.DistinctCustomers != 2 {
		t.Errorf("DistinctCustomers = %d, want 2", cm.DistinctCustomers)
	}
	if !almostEqual(cm.AvgRevenuePerCustomer, 225) {
		t.Errorf("AvgRevenuePerCustomer = %v, want 225", cm.AvgRevenuePerCustomer)
	}
	if !almostEqual(cm.RepeatRate, 0.5) {
		t.Errorf("RepeatRate = %v, want 0.5", cm.RepeatRate)
	}
	wantSegments := map[string]int{"retail": 2, "wholesale": 1}
	if !reflect.DeepEqual(cm.SegmentCounts, wantSegments) {
		t.Errorf("SegmentCounts = %v, want %v", cm.SegmentCounts, wantSegments)
	}
}

func TestAggregateInventory(t *testing.T) {
	a := newTestAggregator(t)

	rows := []table.Row{
		{"prod": "P1", "stock": "5", "price": "10.00"},
		{"prod": "P2", "stock": "50", "price": "20.00"},
		{"prod": "P1", "stock": "8", "price": "10.00"},
	}
	ds := &table.ProcessedDataset{
		RowCount: len(rows),
		Columns:  []string{"prod", "stock", "price"},
		Data:     rows,
		Mappings: []table.ColumnMapping{
			mapped("prod", "product_id"),
			mapped("stock", "stock_quantity"),
			mapped("price", "unit_price"),
		},
	}

	inv := a.Aggregate(ds).InventoryMetrics
	if inv.DistinctProducts != 2 {
		t.Errorf("DistinctProducts = %d, want 2", inv.DistinctProducts)
	}
	if !almostEqual(inv.AvgUnitPrice, 40.0/3.0) {
		t.Errorf("AvgUnitPrice = %v, want %v", inv.AvgUnitPrice, 40.0/3.0)
	}
	if inv.LowStockCount != 2 {
		t.Errorf("LowStockCount = %d, want 2", inv.LowStockCount)
	}
}

func TestAggregateSkipsBadCells(t *testing.T) {
	a := newTestAggregator(t)

	rows := []table.Row{
		{"rev": "$100.00"},
		{"rev": "n/a"},
		{"rev": "$50.00"},
	}
	ds := &table.ProcessedDataset{
		RowCount: len(rows),
		Columns:  []string{"rev"},
		Data:     rows,
		Mappings: []table.ColumnMapping{mapped("rev", "revenue")},
	}

	m := a.Aggregate(ds)
	if !almostEqual(m.TotalRevenue, 150) {
		t.Errorf("TotalRevenue = %v, want 150 (bad cell skipped)", m.TotalRevenue)
	}
	if m.SkippedCells != 1 {
		t.Errorf("SkippedCells = %d, want 1", m.SkippedCells)
	}
	// No order ids: transactions fall back to valid revenue rows
	if m.TotalTransactions != 2 {
		t.Errorf("TotalTransactions = %d, want 2", m.TotalTransactions)
	}
}

func TestAggregateRevenueFallback(t *testing.T) {
	a := newTestAggregator(t)

	rows := []table.Row{{"amt": "$75.00"}, {"amt": "$25.00"}}
	ds := &table.ProcessedDataset{
		RowCount: len(rows),
		Columns:  []string{"amt"},
		Data:     rows,
		Mappings: []table.ColumnMapping{mapped("amt", "total_amount")},
	}

	m := a.Aggregate(ds)
	if !almostEqual(m.TotalRevenue, 100) {
		t.Errorf("TotalRevenue = %v, want 100 via total_amount", m.TotalRevenue)
	}
}

func TestAggregateEmptyDataset(t *testing.T) {
	a := newTestAggregator(t)

	m := a.Aggregate(&table.ProcessedDataset{})
	if m.TotalRevenue != 0 || m.TotalTransactions != 0 || m.ProfitMargin != 0 {
		t.Errorf("empty dataset metrics = %+v, want zeros", m)
	}
	if m.CustomerMetrics.SegmentCounts == nil {
		t.Error("SegmentCounts should be an empty map, not nil")
	}
}

func TestAggregateIsDeterministic(t *testing.T) {
	a := newTestAggregator(t)

	first := a.Aggregate(ordersDataset())
	for i := 0; i < 5; i++ {
		again := a.Aggregate(ordersDataset())
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs:\n%+v\n%+v", i, first, again)
		}
	}
}
