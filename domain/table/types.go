package table

import (
	"github.com/amanshaikhx1/Auto-Dashboard/domain/catalog"
	"github.com/amanshaikhx1/Auto-Dashboard/domain/core"
)

// Row is one record of raw cell values keyed by raw column name. Cell values
// arrive from the decoding adapter as string, float64, bool or nil.
type Row map[string]interface{}

// RawColumn is a source column together with its sampled values, the unit the
// classifier works on. Sample values are the first N non-empty cells.
type RawColumn struct {
	Name         string
	SampleValues []interface{}
}

// MatchReason names one kind of evidence behind a candidate match.
type MatchReason string

const (
	ReasonNameMatch    MatchReason = "nameMatch"
	ReasonAliasMatch   MatchReason = "aliasMatch"
	ReasonKeywordMatch MatchReason = "keywordMatch"
	ReasonTypeMatch    MatchReason = "typeMatch"
)

// CandidateMatch scores one (column, catalog field) pairing.
type CandidateMatch struct {
	FieldID    core.FieldID  `json:"field_id"`
	ColumnName string        `json:"column_name"`
	Confidence float64       `json:"confidence"`
	Reasons    []MatchReason `json:"reasons"`
}

// ColumnMapping is the resolved, consumer-visible association for one source
// column. Unmapped columns keep the best rejected candidate's confidence for
// observability.
type ColumnMapping struct {
	SourceColumn  string       `json:"source_column"`
	BusinessField core.FieldID `json:"business_field,omitempty"`
	Mapped        bool         `json:"mapped"`
	Confidence    float64      `json:"confidence"`
}

// ProcessedDataset owns the rows of one upload. It is created once per upload
// and replaced wholesale; mappings change only through re-resolution or an
// explicit override.
type ProcessedDataset struct {
	ID       core.DatasetID  `json:"id"`
	FileName string          `json:"file_name"`
	RowCount int             `json:"row_count"`
	Columns  []string        `json:"columns"`
	Data     []Row           `json:"-"`
	Mappings []ColumnMapping `json:"mappings"`
}

// ColumnFor returns the source column currently mapped to a field, if any.
func (d *ProcessedDataset) ColumnFor(fieldID core.FieldID) (string, bool) {
	for _, m := range d.Mappings {
		if m.Mapped && m.BusinessField == fieldID {
			return m.SourceColumn, true
		}
	}
	return "", false
}

// Normalizer converts a raw cell value to its canonical typed representation.
// Implemented by the coercion adapter.
type Normalizer interface {
	Normalize(raw interface{}, expected catalog.ValueType) (Value, error)
}

// ValuesFor returns the normalized values of the column mapped to fieldID,
// one per row, plus the count of cells that failed normalization. Failed
// cells are skipped, never fabricated. Returns nil values when the field is
// unmapped or unknown.
func (d *ProcessedDataset) ValuesFor(fieldID core.FieldID, reg *catalog.Registry, n Normalizer) ([]Value, int) {
	col, ok := d.ColumnFor(fieldID)
	if !ok {
		return nil, 0
	}
	def, ok := reg.Lookup(fieldID)
	if !ok {
		return nil, 0
	}

	values := make([]Value, 0, len(d.Data))
	skipped := 0
	for _, row := range d.Data {
		v, err := n.Normalize(row[col], def.ExpectedType)
		if err != nil {
			skipped++
			continue
		}
		values = append(values, v)
	}
	return values, skipped
}

// GrowthRates holds period-over-period revenue growth as fractions
// (0.08 = +8%). Rates are 0 when no date field is mapped or fewer than two
// complete buckets exist.
type GrowthRates struct {
	Monthly           float64 `json:"monthly"`
	Quarterly         float64 `json:"quarterly"`
	Yearly            float64 `json:"yearly"`
	MonthlyTrendSlope float64 `json:"monthly_trend_slope"`
}

// InventoryMetrics summarizes stock-related fields when mapped.
type InventoryMetrics struct {
	TotalQuantity    float64 `json:"total_quantity"`
	DistinctProducts int     `json:"distinct_products"`
	AvgUnitPrice     float64 `json:"avg_unit_price"`
	LowStockCount    int     `json:"low_stock_count"`
}

// CustomerMetrics summarizes customer-related fields when mapped.
type CustomerMetrics struct {
	DistinctCustomers     int            `json:"distinct_customers"`
	AvgRevenuePerCustomer float64        `json:"avg_revenue_per_customer"`
	SegmentCounts         map[string]int `json:"segment_counts"`
	RepeatRate            float64        `json:"repeat_rate"`
}

// Metrics is a pure function of (ProcessedDataset.Data, Mappings); it is
// recomputed and replaced atomically whenever either changes. All ratios are
// 0 when their denominator is 0.
type Metrics struct {
	TotalRevenue      float64          `json:"total_revenue"`
	TotalProfit       float64          `json:"total_profit"`
	TotalTransactions int              `json:"total_transactions"`
	AvgOrderValue     float64          `json:"avg_order_value"`
	ProfitMargin      float64          `json:"profit_margin"`
	GrowthRates       GrowthRates      `json:"growth_rates"`
	InventoryMetrics  InventoryMetrics `json:"inventory_metrics"`
	CustomerMetrics   CustomerMetrics  `json:"customer_metrics"`
	SkippedCells      int              `json:"skipped_cells"`
}
