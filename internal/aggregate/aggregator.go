package aggregate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/amanshaikhx1/Auto-Dashboard/domain/catalog"
	"github.com/amanshaikhx1/Auto-Dashboard/domain/core"
	"github.com/amanshaikhx1/Auto-Dashboard/domain/table"
)

// Stock levels strictly below this count as low stock.
const lowStockThreshold = 10

// Field identifiers the aggregator consumes when mapped. Revenue falls back
// through the alternates in order; the first mapped one wins.
var (
	revenueFields = []core.FieldID{"revenue", "total_amount", "order_value"}
	dateFields    = []core.FieldID{"order_date", "transaction_date", "date"}

	fieldProfit          = core.FieldID("profit")
	fieldCost            = core.FieldID("cost")
	fieldOrderID         = core.FieldID("order_id")
	fieldQuantity        = core.FieldID("quantity")
	fieldUnitPrice       = core.FieldID("unit_price")
	fieldProductID       = core.FieldID("product_id")
	fieldProductName     = core.FieldID("product_name")
	fieldStockQuantity   = core.FieldID("stock_quantity")
	fieldCustomerID      = core.FieldID("customer_id")
	fieldCustomerSegment = core.FieldID("customer_segment")
)

// Aggregator computes business metrics from a dataset and its resolved
// mappings. Aggregate is a pure function of (Data, Mappings): same input,
// same Metrics, regardless of how many columns are mapped.
type Aggregator struct {
	catalog *catalog.Registry
	norm    table.Normalizer
}

// New creates an aggregator over the given catalog and normalizer.
func New(reg *catalog.Registry, norm table.Normalizer) *Aggregator {
	return &Aggregator{catalog: reg, norm: norm}
}

// column holds row-aligned normalized values for one mapped field. present[i]
// is false when row i's cell was empty; cells that failed normalization are
// absent too and counted in skipped.
type column struct {
	values  []table.Value
	present []bool
	skipped int
}

// Aggregate computes all metrics for the dataset. Unmapped fields contribute
// zero values; Aggregate never fails.
func (a *Aggregator) Aggregate(ds *table.ProcessedDataset) table.Metrics {
	var m table.Metrics
	if ds == nil || len(ds.Data) == 0 {
		m.CustomerMetrics.SegmentCounts = map[string]int{}
		return m
	}

	revenue := a.extractFirst(ds, revenueFields, &m.SkippedCells)
	dates := a.extractFirst(ds, dateFields, &m.SkippedCells)
	profit := a.extract(ds, fieldProfit, &m.SkippedCells)
	cost := a.extract(ds, fieldCost, &m.SkippedCells)
	orderIDs := a.extract(ds, fieldOrderID, &m.SkippedCells)
	customers := a.extract(ds, fieldCustomerID, &m.SkippedCells)

	m.TotalRevenue = sumNumbers(revenue)

	switch {
	case profit != nil:
		m.TotalProfit = sumNumbers(profit)
	case revenue != nil && cost != nil:
		m.TotalProfit = m.TotalRevenue - sumNumbers(cost)
	}

	m.TotalTransactions = countTransactions(orderIDs, revenue)
	if m.TotalTransactions > 0 {
		m.AvgOrderValue = m.TotalRevenue / float64(m.TotalTransactions)
	}
	if m.TotalRevenue != 0 {
		m.ProfitMargin = m.TotalProfit / m.TotalRevenue
	}

	m.GrowthRates = computeGrowth(dates, revenue)
	m.InventoryMetrics = a.computeInventory(ds, &m.SkippedCells)
	m.CustomerMetrics = computeCustomers(customers, a.extract(ds, fieldCustomerSegment, &m.SkippedCells), m.TotalRevenue)

	return m
}

// extract returns the row-aligned column for a field, or nil when unmapped.
func (a *Aggregator) extract(ds *table.ProcessedDataset, fieldID core.FieldID, skipped *int) *column {
	colName, ok := ds.ColumnFor(fieldID)
	if !ok {
		return nil
	}
	def, ok := a.catalog.Lookup(fieldID)
	if !ok {
		return nil
	}

	c := &column{
		values:  make([]table.Value, len(ds.Data)),
		present: make([]bool, len(ds.Data)),
	}
	for i, row := range ds.Data {
		raw := row[colName]
		if isEmptyCell(raw) {
			continue
		}
		v, err := a.norm.Normalize(raw, def.ExpectedType)
		if err != nil {
			c.skipped++
			continue
		}
		c.values[i] = v
		c.present[i] = true
	}
	*skipped += c.skipped
	return c
}

// extractFirst extracts the first mapped field from the ordered alternatives.
func (a *Aggregator) extractFirst(ds *table.ProcessedDataset, fields []core.FieldID, skipped *int) *column {
	for _, f := range fields {
		if c := a.extract(ds, f, skipped); c != nil {
			return c
		}
	}
	return nil
}

func isEmptyCell(raw interface{}) bool {
	if raw == nil {
		return true
	}
	if s, ok := raw.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func sumNumbers(c *column) float64 {
	if c == nil {
		return 0
	}
	total := 0.0
	for i, v := range c.values {
		if c.present[i] && v.IsNumber() {
			total += v.AsFloat64()
		}
	}
	return total
}

// countTransactions counts distinct order identifiers, falling back to rows
// with a usable revenue value when no order id column is mapped.
func countTransactions(orderIDs, revenue *column) int {
	if orderIDs != nil {
		seen := map[string]bool{}
		for i, v := range orderIDs.values {
			if orderIDs.present[i] {
				seen[v.String()] = true
			}
		}
		return len(seen)
	}
	if revenue == nil {
		return 0
	}
	n := 0
	for i, v := range revenue.values {
		if revenue.present[i] && v.IsNumber() {
			n++
		}
	}
	return n
}

// computeGrowth buckets revenue by calendar period and reports the change
// from the second-to-last complete bucket to the last one. Fewer than two
// buckets, or a zero prior bucket, means a rate of 0.
func computeGrowth(dates, revenue *column) table.GrowthRates {
	var g table.GrowthRates
	if dates == nil || revenue == nil {
		return g
	}

	monthly := map[string]float64{}
	quarterly := map[string]float64{}
	yearly := map[string]float64{}
	for i := range dates.values {
		if !dates.present[i] || !dates.values[i].IsTime() {
			continue
		}
		if i >= len(revenue.values) || !revenue.present[i] || !revenue.values[i].IsNumber() {
			continue
		}
		t := dates.values[i].AsTime()
		amount := revenue.values[i].AsFloat64()
		monthly[t.Format("2006-01")] += amount
		quarterly[fmt.Sprintf("%04d-Q%d", t.Year(), (int(t.Month())-1)/3+1)] += amount
		yearly[t.Format("2006")] += amount
	}

	g.Monthly = lastPeriodGrowth(monthly)
	g.Quarterly = lastPeriodGrowth(quarterly)
	g.Yearly = lastPeriodGrowth(yearly)
	g.MonthlyTrendSlope = trendSlope(monthly)
	return g
}

// lastPeriodGrowth compares the two most recent buckets chronologically.
// Bucket keys are zero-padded so lexicographic order is chronological.
func lastPeriodGrowth(buckets map[string]float64) float64 {
	if len(buckets) < 2 {
		return 0
	}
	keys := sortedKeys(buckets)
	prev := buckets[keys[len(keys)-2]]
	last := buckets[keys[len(keys)-1]]
	if prev == 0 {
		return 0
	}
	return (last - prev) / prev
}

// trendSlope fits revenue over monthly bucket index by least squares.
func trendSlope(monthly map[string]float64) float64 {
	if len(monthly) < 2 {
		return 0
	}
	keys := sortedKeys(monthly)
	xs := make([]float64, len(keys))
	ys := make([]float64, len(keys))
	for i, k := range keys {
		xs[i] = float64(i)
		ys[i] = monthly[k]
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	return slope
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (a *Aggregator) computeInventory(ds *table.ProcessedDataset, skipped *int) table.InventoryMetrics {
	var inv table.InventoryMetrics

	inv.TotalQuantity = sumNumbers(a.extract(ds, fieldQuantity, skipped))

	products := a.extract(ds, fieldProductID, skipped)
	if products == nil {
		products = a.extract(ds, fieldProductName, skipped)
	}
	if products != nil {
		seen := map[string]bool{}
		for i, v := range products.values {
			if products.present[i] {
				seen[v.String()] = true
			}
		}
		inv.DistinctProducts = len(seen)
	}

	if prices := a.extract(ds, fieldUnitPrice, skipped); prices != nil {
		var data []float64
		for i, v := range prices.values {
			if prices.present[i] && v.IsNumber() {
				data = append(data, v.AsFloat64())
			}
		}
		if len(data) > 0 {
			mean, err := stats.Mean(data)
			if err == nil {
				inv.AvgUnitPrice = mean
			}
		}
	}

	if stock := a.extract(ds, fieldStockQuantity, skipped); stock != nil {
		for i, v := range stock.values {
			if stock.present[i] && v.IsNumber() && v.AsFloat64() < lowStockThreshold {
				inv.LowStockCount++
			}
		}
	}

	return inv
}

func computeCustomers(customers, segments *column, totalRevenue float64) table.CustomerMetrics {
	cm := table.CustomerMetrics{SegmentCounts: map[string]int{}}

	if customers != nil {
		rowsPer := map[string]int{}
		for i, v := range customers.values {
			if customers.present[i] {
				rowsPer[v.String()]++
			}
		}
		cm.DistinctCustomers = len(rowsPer)
		if cm.DistinctCustomers > 0 {
			cm.AvgRevenuePerCustomer = totalRevenue / float64(cm.DistinctCustomers)
			repeat := 0
			for _, n := range rowsPer {
				if n > 1 {
					repeat++
				}
			}
			cm.RepeatRate = float64(repeat) / float64(cm.DistinctCustomers)
		}
	}

	if segments != nil {
		for i, v := range segments.values {
			if segments.present[i] {
				cm.SegmentCounts[v.String()]++
			}
		}
	}

	return cm
}
