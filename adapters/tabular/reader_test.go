package tabular

import (
	"strings"
	"testing"

	apperrors "github.com/amanshaikhx1/Auto-Dashboard/internal/errors"
)

const sampleCSV = `Order ID,Total Amount,Order Date
O-1001,$100.00,2024-01-15
O-1002,$250.50,2024-01-20
O-1003,$75.25,2024-02-10
`

func TestDecodeCSV(t *testing.T) {
	r := NewReader(1 << 20)

	decoded, err := r.Decode("orders.csv", strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	wantCols := []string{"Order ID", "Total Amount", "Order Date"}
	if len(decoded.Columns) != len(wantCols) {
		t.Fatalf("got %d columns, want %d", len(decoded.Columns), len(wantCols))
	}
	for i, c := range wantCols {
		if decoded.Columns[i] != c {
			t.Errorf("column %d = %q, want %q", i, decoded.Columns[i], c)
		}
	}

	if len(decoded.Rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(decoded.Rows))
	}
	if decoded.Rows[0]["Total Amount"] != "$100.00" {
		t.Errorf("cell = %v, want $100.00", decoded.Rows[0]["Total Amount"])
	}
}

func TestDecodeRaggedCSV(t *testing.T) {
	r := NewReader(1 << 20)

	csv := "A,B,C\n1,2\n4,5,6,7\n"
	decoded, err := r.Decode("ragged.csv", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(decoded.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(decoded.Rows))
	}
	// Short row: trailing cell absent
	if _, ok := decoded.Rows[0]["C"]; ok {
		t.Error("short row should not carry a C cell")
	}
	// Long row: extra cell dropped
	if decoded.Rows[1]["C"] != "6" {
		t.Errorf("C = %v, want 6", decoded.Rows[1]["C"])
	}
}

func TestDecodeSkipsBlankLines(t *testing.T) {
	r := NewReader(1 << 20)

	csv := "A,B\n1,2\n,\n3,4\n"
	decoded, err := r.Decode("blank.csv", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(decoded.Rows) != 2 {
		t.Errorf("got %d rows, want 2 (all-empty row dropped)", len(decoded.Rows))
	}
}

func TestDecodeHeaderOnlyCSV(t *testing.T) {
	r := NewReader(1 << 20)

	decoded, err := r.Decode("empty.csv", strings.NewReader("A,B,C\n"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(decoded.Columns) != 3 || len(decoded.Rows) != 0 {
		t.Errorf("got %d columns %d rows, want 3 and 0", len(decoded.Columns), len(decoded.Rows))
	}
}

func TestDecodeRejectsUnsupportedExtension(t *testing.T) {
	r := NewReader(1 << 20)

	_, err := r.Decode("data.txt", strings.NewReader("hello"))
	if apperrors.GetCode(err) != apperrors.CodeInvalidInput {
		t.Errorf("error code = %s, want %s", apperrors.GetCode(err), apperrors.CodeInvalidInput)
	}
}

func TestDecodeRejectsOversizedUpload(t *testing.T) {
	r := NewReader(8)

	_, err := r.Decode("big.csv", strings.NewReader(sampleCSV))
	if apperrors.GetCode(err) != apperrors.CodeInvalidInput {
		t.Errorf("error code = %s, want %s", apperrors.GetCode(err), apperrors.CodeInvalidInput)
	}
}

func TestDecodeEmptyFile(t *testing.T) {
	r := NewReader(1 << 20)

	_, err := r.Decode("nothing.csv", strings.NewReader(""))
	if apperrors.GetCode(err) != apperrors.CodeEmptyDataset {
		t.Errorf("error code = %s, want %s", apperrors.GetCode(err), apperrors.CodeEmptyDataset)
	}
}

func TestSampleColumns(t *testing.T) {
	r := NewReader(1 << 20)

	decoded, err := r.Decode("orders.csv", strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	cols := SampleColumns(decoded, 2)
	if len(cols) != 3 {
		t.Fatalf("got %d sampled columns, want 3", len(cols))
	}
	if cols[1].Name != "Total Amount" {
		t.Errorf("column name = %q, want Total Amount", cols[1].Name)
	}
	if len(cols[1].SampleValues) != 2 {
		t.Errorf("got %d samples, want 2 (capped)", len(cols[1].SampleValues))
	}
	if cols[1].SampleValues[0] != "$100.00" {
		t.Errorf("first sample = %v, want $100.00", cols[1].SampleValues[0])
	}
}
