package coerce

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/amanshaikhx1/Auto-Dashboard/domain/catalog"
	"github.com/amanshaikhx1/Auto-Dashboard/domain/table"
)

// NormalizationError reports a single cell that could not be normalized.
// It is per-cell and non-fatal: callers count it and move on, a bad cell
// never aborts aggregation of the dataset.
type NormalizationError struct {
	Reason       string
	RawValue     string
	ExpectedType catalog.ValueType
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("cannot normalize %q as %s: %s", e.RawValue, e.ExpectedType, e.Reason)
}

func failed(reason, raw string, expected catalog.ValueType) error {
	return &NormalizationError{Reason: reason, RawValue: raw, ExpectedType: expected}
}

// Coercer handles deterministic conversion of raw cell values to canonical
// typed values, tolerating the dirty encodings tabular exports carry:
// currency symbols, thousands separators, parenthesized negatives, percent
// signs, mixed date formats and spreadsheet serial numbers.
type Coercer struct {
	config Config
}

// Config defines the coercion rules
type Config struct {
	DateFormats []string // tried in order; first successful parse wins
	SerialMin   float64  // lower bound for spreadsheet date serials
	SerialMax   float64  // upper bound for spreadsheet date serials
}

// DefaultConfig returns the rules used in production
func DefaultConfig() Config {
	return Config{
		DateFormats: []string{
			"2006-01-02",
			time.RFC3339,
			"2006-01-02T15:04:05",
			"2006-01-02 15:04:05",
			"01/02/2006", // MM/DD/YYYY
			"02-01-2006", // DD-MM-YYYY
			"2006/01/02",
			"Jan 2, 2006",
			"2 Jan 2006",
		},
		SerialMin: 1000,  // ~1902-09-26
		SerialMax: 80000, // ~2119
	}
}

// New creates a coercer with the given config
func New(config Config) *Coercer {
	return &Coercer{config: config}
}

// NewDefault creates a coercer with the production rules
func NewDefault() *Coercer {
	return New(DefaultConfig())
}

// Normalize converts a raw cell value (string, float64, bool or nil) to the
// canonical value for the expected type. Percentages normalize to fractions:
// "12%" becomes 0.12. Implements table.Normalizer.
func (c *Coercer) Normalize(raw interface{}, expected catalog.ValueType) (table.Value, error) {
	if raw == nil {
		return table.Value{}, failed("empty", "", expected)
	}

	switch expected {
	case catalog.TypeCurrency:
		return c.normalizeCurrency(raw)
	case catalog.TypePercentage:
		return c.normalizePercentage(raw)
	case catalog.TypeNumber:
		return c.normalizeNumber(raw)
	case catalog.TypeDate:
		return c.normalizeDate(raw)
	case catalog.TypeIdentifier, catalog.TypeText, catalog.TypeCategorical:
		return c.normalizeText(raw, expected)
	default:
		return c.normalizeText(raw, expected)
	}
}

func (c *Coercer) normalizeCurrency(raw interface{}) (table.Value, error) {
	if f, ok := rawFloat(raw); ok {
		return table.NewNumberValue(f), nil
	}

	strVal := toString(raw)
	amount, ok := parseAmount(strVal)
	if !ok {
		return table.Value{}, failed("unparseable", strVal, catalog.TypeCurrency)
	}
	return table.NewNumberValue(amount), nil
}

func (c *Coercer) normalizePercentage(raw interface{}) (table.Value, error) {
	if f, ok := rawFloat(raw); ok {
		// Bare numbers above 1 are percent points, not fractions
		if math.Abs(f) > 1 {
			f /= 100
		}
		return table.NewNumberValue(f), nil
	}

	strVal := toString(raw)
	cleaned := strings.TrimSpace(strVal)
	hadSign := strings.Contains(cleaned, "%")
	cleaned = strings.ReplaceAll(cleaned, "%", "")

	amount, ok := parseAmount(cleaned)
	if !ok {
		return table.Value{}, failed("unparseable", strVal, catalog.TypePercentage)
	}
	if hadSign || math.Abs(amount) > 1 {
		amount /= 100
	}
	return table.NewNumberValue(amount), nil
}

func (c *Coercer) normalizeNumber(raw interface{}) (table.Value, error) {
	if f, ok := rawFloat(raw); ok {
		return table.NewNumberValue(f), nil
	}

	strVal := toString(raw)
	amount, ok := parseAmount(strVal)
	if !ok {
		return table.Value{}, failed("unparseable", strVal, catalog.TypeNumber)
	}
	return table.NewNumberValue(amount), nil
}

func (c *Coercer) normalizeDate(raw interface{}) (table.Value, error) {
	// Spreadsheet decoders hand date cells over as raw serial numbers
	if f, ok := rawFloat(raw); ok {
		if t, ok := c.fromSerial(f); ok {
			return table.NewTimeValue(t), nil
		}
		return table.Value{}, failed("unparseable", fmt.Sprintf("%g", f), catalog.TypeDate)
	}

	strVal := strings.TrimSpace(toString(raw))
	if strVal == "" {
		return table.Value{}, failed("empty", strVal, catalog.TypeDate)
	}

	for _, format := range c.config.DateFormats {
		if t, err := time.Parse(format, strVal); err == nil {
			return table.NewTimeValue(t), nil
		}
	}

	// Numeric strings may be serials or Unix timestamps
	if f, err := strconv.ParseFloat(strVal, 64); err == nil {
		if t, ok := c.fromSerial(f); ok {
			return table.NewTimeValue(t), nil
		}
		if f >= 1e9 && f < math.MaxInt32 {
			return table.NewTimeValue(time.Unix(int64(f), 0).UTC()), nil
		}
	}

	return table.Value{}, failed("unparseable", strVal, catalog.TypeDate)
}

func (c *Coercer) normalizeText(raw interface{}, expected catalog.ValueType) (table.Value, error) {
	strVal := strings.TrimSpace(toString(raw))
	if strVal == "" {
		return table.Value{}, failed("empty", strVal, expected)
	}
	return table.NewTextValue(strVal), nil
}

// fromSerial converts a spreadsheet date serial (days since 1899-12-30) when
// the number falls inside the plausible serial window.
func (c *Coercer) fromSerial(f float64) (time.Time, bool) {
	if f < c.config.SerialMin || f > c.config.SerialMax {
		return time.Time{}, false
	}
	epoch := time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
	days := int(f)
	frac := f - float64(days)
	t := epoch.AddDate(0, 0, days).Add(time.Duration(frac * 24 * float64(time.Hour)))
	return t, true
}

// rawFloat extracts an already-numeric raw cell value.
func rawFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// toString converts a raw cell value to string for parsing
func toString(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// parseAmount parses a numeric string tolerating currency symbols, percent
// residue, thousands separators, European decimal commas and parenthesized
// negatives: "(1.234,56)" -> -1234.56.
func parseAmount(strVal string) (float64, bool) {
	cleanVal := strings.TrimSpace(strVal)
	if cleanVal == "" {
		return 0, false
	}

	// Parentheses mean negative in accounting exports: (123) -> -123
	isNegative := false
	if strings.HasPrefix(cleanVal, "(") && strings.HasSuffix(cleanVal, ")") {
		cleanVal = strings.TrimSuffix(strings.TrimPrefix(cleanVal, "("), ")")
		isNegative = true
	}

	for _, symbol := range []string{"$", "€", "£", "¥", "₹", "USD", "EUR", "GBP", "JPY"} {
		cleanVal = strings.ReplaceAll(cleanVal, symbol, "")
	}
	cleanVal = strings.TrimSpace(cleanVal)

	hasComma := strings.Contains(cleanVal, ",")
	hasPeriod := strings.Contains(cleanVal, ".")
	hasSpace := strings.Contains(cleanVal, " ")

	switch {
	case hasComma && (hasPeriod || hasSpace):
		// Decide which separator is the decimal by position of the last one
		if strings.LastIndex(cleanVal, ",") > strings.LastIndex(cleanVal, ".") {
			// European: 1.234,56 or 1 234,56
			cleanVal = strings.ReplaceAll(cleanVal, ".", "")
			cleanVal = strings.ReplaceAll(cleanVal, " ", "")
			cleanVal = strings.ReplaceAll(cleanVal, ",", ".")
		} else {
			cleanVal = strings.ReplaceAll(cleanVal, ",", "")
			cleanVal = strings.ReplaceAll(cleanVal, " ", "")
		}
	case hasComma:
		// Comma only: decimal separator when followed by 1-2 digits, else thousands
		commaIdx := strings.LastIndex(cleanVal, ",")
		afterComma := cleanVal[commaIdx+1:]
		if len(afterComma) <= 2 && strings.Count(cleanVal, ",") == 1 {
			cleanVal = strings.ReplaceAll(cleanVal, ",", ".")
		} else {
			cleanVal = strings.ReplaceAll(cleanVal, ",", "")
		}
	default:
		cleanVal = strings.ReplaceAll(cleanVal, " ", "")
	}

	if isNegative {
		cleanVal = "-" + cleanVal
	}

	val, err := strconv.ParseFloat(cleanVal, 64)
	if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
		return 0, false
	}
	return val, true
}
