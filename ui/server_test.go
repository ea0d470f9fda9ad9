package ui

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanshaikhx1/Auto-Dashboard/adapters/coerce"
	"github.com/amanshaikhx1/Auto-Dashboard/app"
	"github.com/amanshaikhx1/Auto-Dashboard/domain/catalog"
	"github.com/amanshaikhx1/Auto-Dashboard/internal"
	"github.com/amanshaikhx1/Auto-Dashboard/internal/config"
)

const ordersCSV = `Order ID,Order Date,Total Amount,Customer ID
O-1001,2024-01-15,$100.00,C1
O-1002,2024-01-20,$200.00,C2
O-1003,2024-02-10,$150.00,C1
`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	reg, err := catalog.NewRegistry()
	require.NoError(t, err)

	logger := internal.NewDefaultLogger()
	cfg := config.ServerConfig{Port: "0", GinMode: "test", MaxUploadBytes: 1 << 20}
	pipeline := app.NewPipeline(reg, coerce.NewDefault(), app.Options{
		SampleSize:      20,
		AcceptThreshold: 0.5,
		MaxUploadBytes:  cfg.MaxUploadBytes,
	}, logger)
	return NewServer(pipeline, reg, cfg, logger)
}

func uploadCSV(t *testing.T, s *Server, name, content string) map[string]interface{} {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/datasets", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestUploadAndReadMappings(t *testing.T) {
	s := newTestServer(t)

	resp := uploadCSV(t, s, "orders.csv", ordersCSV)
	id, ok := resp["dataset_id"].(string)
	require.True(t, ok, "response: %v", resp)
	assert.EqualValues(t, 3, resp["row_count"])

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/datasets/"+id+"/mappings", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Mappings []struct {
			SourceColumn  string  `json:"source_column"`
			BusinessField string  `json:"business_field"`
			Mapped        bool    `json:"mapped"`
			Confidence    float64 `json:"confidence"`
		} `json:"mappings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Mappings, 4)

	fields := map[string]string{}
	for _, m := range body.Mappings {
		if m.Mapped {
			fields[m.SourceColumn] = m.BusinessField
			assert.GreaterOrEqual(t, m.Confidence, 0.5)
		}
	}
	assert.Equal(t, "total_amount", fields["Total Amount"])
	assert.Equal(t, "order_id", fields["Order ID"])
}

func TestOverrideEndpoint(t *testing.T) {
	s := newTestServer(t)

	resp := uploadCSV(t, s, "orders.csv", ordersCSV)
	id := resp["dataset_id"].(string)

	payload := strings.NewReader(`{"business_field":"revenue"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/datasets/"+id+"/mappings/Total%20Amount", payload)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"business_field":"revenue"`)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	resp := uploadCSV(t, s, "orders.csv", ordersCSV)
	id := resp["dataset_id"].(string)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/datasets/"+id+"/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Metrics struct {
			TotalRevenue      float64 `json:"total_revenue"`
			TotalTransactions int     `json:"total_transactions"`
		} `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.InDelta(t, 450.0, body.Metrics.TotalRevenue, 1e-9)
	assert.Equal(t, 3, body.Metrics.TotalTransactions)
}

func TestUploadHeaderOnlyDataset(t *testing.T) {
	s := newTestServer(t)

	resp := uploadCSV(t, s, "empty.csv", "A,B\n")
	assert.EqualValues(t, 0, resp["row_count"])
	assert.Equal(t, "no data available", resp["note"])
}

func TestUploadWithoutRowsNeverFails(t *testing.T) {
	s := newTestServer(t)

	// Zero-byte file and a CSV with no header line: neither produces a
	// dataset, both must answer 200 rather than crash.
	for _, content := range []string{"", "\n"} {
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile("file", "empty.csv")
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/datasets", &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, "content %q: %s", content, rec.Body.String())
		assert.Contains(t, rec.Body.String(), "no data available")
	}
}

func TestUploadRejectsMissingFile(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/datasets", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownDatasetReturns404(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/datasets/nope/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteDataset(t *testing.T) {
	s := newTestServer(t)

	resp := uploadCSV(t, s, "orders.csv", ordersCSV)
	id := resp["dataset_id"].(string)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/datasets/"+id, nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/datasets/"+id+"/mappings", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/catalog", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, len(catalog.Categories))
	assert.NotEmpty(t, body["financial"])
}
