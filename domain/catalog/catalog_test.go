package catalog

import (
	"testing"

	"github.com/amanshaikhx1/Auto-Dashboard/domain/core"
)

func TestNewRegistryBuildsCatalog(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	if reg.Len() == 0 {
		t.Fatal("expected a non-empty catalog")
	}

	def, ok := reg.Lookup("revenue")
	if !ok {
		t.Fatal("expected revenue field in catalog")
	}
	if def.Category != CategoryFinancial {
		t.Errorf("revenue category = %s, want %s", def.Category, CategoryFinancial)
	}
	if def.ExpectedType != TypeCurrency {
		t.Errorf("revenue expected type = %s, want %s", def.ExpectedType, TypeCurrency)
	}
}

func TestRegistryCoversEveryCategory(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	for _, cat := range Categories {
		if len(reg.ByCategory(cat)) == 0 {
			t.Errorf("category %s has no fields", cat)
		}
	}
}

func TestAllPreservesDeclarationOrder(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	all := reg.All()
	if all[0].ID != core.FieldID("revenue") {
		t.Errorf("first field = %s, want revenue", all[0].ID)
	}

	// All returns a copy; mutating it must not affect the registry
	all[0].DisplayName = "mutated"
	fresh := reg.All()
	if fresh[0].DisplayName == "mutated" {
		t.Error("All leaked internal state")
	}
}

func TestNewRegistryRejectsDuplicateIDs(t *testing.T) {
	defs := []FieldDefinition{
		def("revenue", "Revenue", CategoryFinancial, TypeCurrency, nil, nil),
		def("revenue", "Revenue Again", CategoryFinancial, TypeCurrency, nil, nil),
	}
	if _, err := newRegistry(defs); err == nil {
		t.Fatal("expected duplicate field id to fail")
	}
}

func TestNewRegistryRejectsEmptyCatalog(t *testing.T) {
	if _, err := newRegistry(nil); err == nil {
		t.Fatal("expected empty catalog to fail")
	}
}

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Total Amount", "totalamount"},
		{"total_amount", "totalamount"},
		{"TOTAL-AMOUNT", "totalamount"},
		{"Order IDs", "orderid"},
		{"Categories", "category"},
		{"Status", "status"},
		{"Qty.", "qty"},
		{"  revenue  ", "revenue"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeName(tc.in); got != tc.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
