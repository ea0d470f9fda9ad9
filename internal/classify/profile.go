package classify

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amanshaikhx1/Auto-Dashboard/domain/catalog"
)

// typeProfile counts how many sampled values look like each semantic type.
// A single value can match several types: "$100.00" is both currency-shaped
// and numeric.
type typeProfile struct {
	examined int
	currency int
	percent  int
	date     int
	number   int
	text     int
}

var profileDateFormats = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"02-01-2006",
	"2006/01/02",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// profileSamples inspects up to limit non-empty sample values. An empty
// column yields a zero profile; fractions over it are defined as 0.
func profileSamples(samples []interface{}, limit int) typeProfile {
	var p typeProfile
	for _, raw := range samples {
		if p.examined >= limit {
			break
		}
		s := sampleString(raw)
		if s == "" {
			continue
		}
		p.examined++

		isNumber := parsesAsNumber(s)
		if isNumber {
			p.number++
		}
		if looksCurrency(s, isNumber) {
			p.currency++
		}
		if looksPercent(s) {
			p.percent++
		}
		if looksDate(s) {
			p.date++
		}
		if !isNumber {
			p.text++
		}
	}
	return p
}

// fractionFor returns the share of examined samples agreeing with the
// expected type.
func (p typeProfile) fractionFor(expected catalog.ValueType) float64 {
	if p.examined == 0 {
		return 0
	}
	var n int
	switch expected {
	case catalog.TypeCurrency:
		n = p.currency
	case catalog.TypePercentage:
		n = p.percent
	case catalog.TypeDate:
		n = p.date
	case catalog.TypeNumber:
		n = p.number
	case catalog.TypeIdentifier:
		n = p.examined // ids may be numeric or text; any non-empty value qualifies
	case catalog.TypeText, catalog.TypeCategorical:
		n = p.text
	}
	return float64(n) / float64(p.examined)
}

func sampleString(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

var currencySymbols = []string{"$", "€", "£", "¥", "₹"}

// looksCurrency requires a currency symbol, or a numeric value written with
// thousands separators or exactly two decimal places. Bare integers stay
// plain numbers.
func looksCurrency(s string, isNumber bool) bool {
	for _, sym := range currencySymbols {
		if strings.Contains(s, sym) {
			rest := s
			for _, r := range currencySymbols {
				rest = strings.ReplaceAll(rest, r, "")
			}
			return strings.ContainsAny(rest, "0123456789")
		}
	}
	if !isNumber {
		return false
	}
	if strings.Contains(s, ",") {
		return true
	}
	if idx := strings.LastIndex(s, "."); idx >= 0 && len(s)-idx-1 == 2 {
		return true
	}
	return false
}

func looksPercent(s string) bool {
	if !strings.HasSuffix(strings.TrimSpace(s), "%") {
		return false
	}
	body := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	_, err := strconv.ParseFloat(body, 64)
	return err == nil
}

func looksDate(s string) bool {
	for _, format := range profileDateFormats {
		if _, err := time.Parse(format, s); err == nil {
			return true
		}
	}
	return false
}

// parsesAsNumber tolerates thousands separators, sign and parentheses, the
// same lexicon the coercion adapter accepts for numeric cells.
func parsesAsNumber(s string) bool {
	cleaned := strings.TrimSpace(s)
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = strings.TrimSuffix(strings.TrimPrefix(cleaned, "("), ")")
	}
	for _, sym := range currencySymbols {
		cleaned = strings.ReplaceAll(cleaned, sym, "")
	}
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return false
	}
	_, err := strconv.ParseFloat(cleaned, 64)
	return err == nil
}
