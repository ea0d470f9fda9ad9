package tabular

import (
	"bytes"
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/amanshaikhx1/Auto-Dashboard/domain/table"
	"github.com/amanshaikhx1/Auto-Dashboard/internal"
	apperrors "github.com/amanshaikhx1/Auto-Dashboard/internal/errors"
)

var logger = internal.DefaultLogger.With("TabularReader")

// Decoded is the raw result of reading one uploaded file: ordered headers
// plus one Row per data line. Cell values stay as trimmed strings; typing
// happens downstream.
type Decoded struct {
	FileName string
	Columns  []string
	Rows     []table.Row
}

// Reader decodes uploaded CSV and XLSX streams. Uploads larger than
// maxBytes are rejected before decoding.
type Reader struct {
	maxBytes int64
}

// NewReader creates a reader with the given upload size limit in bytes.
func NewReader(maxBytes int64) *Reader {
	return &Reader{maxBytes: maxBytes}
}

// Decode reads an uploaded file into structured form. The format is chosen
// by file extension; anything other than .csv or .xlsx is rejected.
func (r *Reader) Decode(fileName string, src io.Reader) (*Decoded, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext != ".csv" && ext != ".xlsx" {
		return nil, apperrors.InvalidInput("unsupported file type: " + ext)
	}

	data, err := io.ReadAll(io.LimitReader(src, r.maxBytes+1))
	if err != nil {
		return nil, &apperrors.AppError{Code: apperrors.CodeInvalidInput, Message: "failed to read upload", Cause: err}
	}
	if int64(len(data)) > r.maxBytes {
		return nil, apperrors.InvalidInput("upload exceeds size limit")
	}
	if len(data) == 0 {
		return nil, apperrors.EmptyDataset("uploaded file is empty")
	}

	start := time.Now()
	var rows [][]string
	switch ext {
	case ".csv":
		rows, err = readCSV(data)
	case ".xlsx":
		rows, err = readXLSX(data)
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("%s decoded in %.2fms (%d raw rows)",
		strings.ToUpper(ext[1:]), float64(time.Since(start).Nanoseconds())/1e6, len(rows))

	if len(rows) == 0 {
		return nil, apperrors.EmptyDataset("uploaded file has no header row")
	}
	return assemble(fileName, rows), nil
}

func readCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &apperrors.AppError{Code: apperrors.CodeInvalidInput, Message: "failed to parse CSV", Cause: err}
	}
	return rows, nil
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &apperrors.AppError{Code: apperrors.CodeInvalidInput, Message: "failed to open XLSX", Cause: err}
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, apperrors.EmptyDataset("XLSX file has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &apperrors.AppError{Code: apperrors.CodeInvalidInput, Message: "failed to read sheet " + sheet, Cause: err}
	}
	return rows, nil
}

// assemble turns raw string rows into headers plus Row maps. Cells beyond
// the header width are dropped; missing trailing cells stay absent.
func assemble(fileName string, raw [][]string) *Decoded {
	headers := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]table.Row, 0, len(raw)-1)
	for _, line := range raw[1:] {
		row := make(table.Row, len(headers))
		empty := true
		for j, cell := range line {
			if j >= len(headers) {
				break
			}
			cell = strings.TrimSpace(cell)
			row[headers[j]] = cell
			if cell != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	logger.Debug("%s assembled (%d columns, %d rows)",
		fileName, len(headers), len(rows))
	return &Decoded{FileName: fileName, Columns: headers, Rows: rows}
}

// SampleColumns builds the classifier's input: each column with its first
// sampleSize non-empty cell values, in column order.
func SampleColumns(d *Decoded, sampleSize int) []table.RawColumn {
	cols := make([]table.RawColumn, len(d.Columns))
	for i, name := range d.Columns {
		samples := make([]interface{}, 0, sampleSize)
		for _, row := range d.Rows {
			if len(samples) >= sampleSize {
				break
			}
			v, ok := row[name]
			if !ok {
				continue
			}
			if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
				continue
			}
			samples = append(samples, v)
		}
		cols[i] = table.RawColumn{Name: name, SampleValues: samples}
	}
	return cols
}
