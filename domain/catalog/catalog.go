package catalog

import (
	"fmt"
	"strings"

	"github.com/amanshaikhx1/Auto-Dashboard/domain/core"
	"github.com/amanshaikhx1/Auto-Dashboard/internal/errors"
)

// Category enumerates the business domains recognized fields belong to.
type Category string

const (
	CategoryFinancial  Category = "financial"
	CategorySales      Category = "sales"
	CategoryCustomer   Category = "customer"
	CategoryProduct    Category = "product"
	CategoryInventory  Category = "inventory"
	CategoryOperations Category = "operations"
	CategoryMarketing  Category = "marketing"
	CategoryHR         Category = "hr"
	CategoryLogistics  Category = "logistics"
	CategoryDigital    Category = "digital"
	CategoryTemporal   Category = "temporal"
)

// Categories lists every category in declaration order.
var Categories = []Category{
	CategoryFinancial,
	CategorySales,
	CategoryCustomer,
	CategoryProduct,
	CategoryInventory,
	CategoryOperations,
	CategoryMarketing,
	CategoryHR,
	CategoryLogistics,
	CategoryDigital,
	CategoryTemporal,
}

// ValueType is the canonical semantic type a field's values normalize to.
type ValueType string

const (
	TypeCurrency    ValueType = "currency"
	TypeNumber      ValueType = "number"
	TypePercentage  ValueType = "percentage"
	TypeDate        ValueType = "date"
	TypeIdentifier  ValueType = "identifier"
	TypeText        ValueType = "text"
	TypeCategorical ValueType = "categorical"
)

// FieldDefinition describes one recognized business field. Definitions are
// immutable after registry construction.
type FieldDefinition struct {
	ID              core.FieldID
	DisplayName     string
	Category        Category
	ExpectedType    ValueType
	Aliases         []string
	KeywordPatterns []string
}

// Registry holds the full field catalog. Declaration order is stable and
// observable: All() returns fields in the order they are declared, and
// downstream tie-breaks depend on it.
type Registry struct {
	fields []FieldDefinition
	byID   map[core.FieldID]int
}

// NewRegistry builds the registry from the built-in catalog and validates it.
func NewRegistry() (*Registry, error) {
	return newRegistry(builtinFields)
}

func newRegistry(defs []FieldDefinition) (*Registry, error) {
	if len(defs) == 0 {
		return nil, errors.CatalogInvalid("field catalog is empty")
	}

	r := &Registry{
		fields: make([]FieldDefinition, len(defs)),
		byID:   make(map[core.FieldID]int, len(defs)),
	}
	copy(r.fields, defs)

	for i, def := range r.fields {
		if def.ID == "" {
			return nil, errors.CatalogInvalid(fmt.Sprintf("field at index %d has an empty id", i))
		}
		if _, dup := r.byID[def.ID]; dup {
			return nil, errors.CatalogInvalid(fmt.Sprintf("duplicate field id %q", def.ID))
		}
		r.byID[def.ID] = i
	}

	return r, nil
}

// Lookup returns the definition for a field id.
func (r *Registry) Lookup(id core.FieldID) (FieldDefinition, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return FieldDefinition{}, false
	}
	return r.fields[idx], true
}

// All returns every field definition in declaration order.
func (r *Registry) All() []FieldDefinition {
	out := make([]FieldDefinition, len(r.fields))
	copy(out, r.fields)
	return out
}

// ByCategory returns the fields in a category, preserving declaration order.
func (r *Registry) ByCategory(c Category) []FieldDefinition {
	var out []FieldDefinition
	for _, def := range r.fields {
		if def.Category == c {
			out = append(out, def)
		}
	}
	return out
}

// Len returns the number of catalog entries.
func (r *Registry) Len() int {
	return len(r.fields)
}

// NormalizeName reduces a raw column or field name to its canonical matching
// key: lowercase, punctuation and whitespace stripped, plural folded.
// "Total Amount", "total_amount" and "TotalAmounts" all reduce to
// "totalamount".
func NormalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return foldPlural(b.String())
}

// foldPlural strips a simple English plural suffix. Words ending in "ss",
// "us" or "is" (status, address, analysis) are left alone.
func foldPlural(s string) string {
	if strings.HasSuffix(s, "ies") && len(s) > 4 {
		return s[:len(s)-3] + "y"
	}
	if strings.HasSuffix(s, "s") && len(s) > 3 &&
		!strings.HasSuffix(s, "ss") && !strings.HasSuffix(s, "us") && !strings.HasSuffix(s, "is") {
		return s[:len(s)-1]
	}
	return s
}
