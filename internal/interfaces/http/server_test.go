package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/guicheweb/recibo/internal/application/service"
	"github.com/guicheweb/recibo/internal/locations"
	"github.com/guicheweb/recibo/internal/storage"
	"github.com/guicheweb/recibo/internal/voucher"
)

type testLogger struct {
	errors []string
}

func (l *testLogger) Info(msg string, keysAndValues ...interface{}) {}

func (l *testLogger) Error(msg string, keysAndValues ...interface{}) {
	l.errors = append(l.errors, msg)
}

const ratesPayload = `{
	"mode": "diarias",
	"info": {
		"full_name": "João da Silva",
		"cpf": "52998224725",
		"producer": "Guichê Produções",
		"event_name": "Festival de Inverno",
		"date_kind": "periodo",
		"event_date": "2026-10-01",
		"event_date_end": "2026-10-03",
		"event_state": "SP",
		"event_city": "Campinas",
		"receipt_date": "2026-10-04",
		"receipt_city": "Campinas"
	},
	"services": ["bilheteria"],
	"rate_lines": [
		{"label": "Diária Evento", "quantity": 3, "unit_value": "150"},
		{"label": "Hora Extra", "quantity": 2, "unit_value": "25.50"}
	]
}`

func newTestServer(t *testing.T) (*Server, *testLogger, string) {
	t.Helper()

	logger, _ := zap.NewDevelopment()
	dir := t.TempDir()

	xlsx, err := voucher.NewExcelFiller("", logger)
	require.NoError(t, err)

	svc := service.NewReceiptService(
		voucher.NewComposer("", logger),
		voucher.NewPDFRenderer("", logger),
		xlsx,
		storage.NewFolderManager(dir, logger),
		storage.NewLocalFileStorage(dir, logger),
		&testLogger{},
	)

	httpLogger := &testLogger{}
	cfg := DefaultServerConfig()
	cfg.Mode = "test"
	cfg.Version = "1.2.3"

	directory := locations.NewDirectory(locations.DirectoryConfig{}, logger)
	return NewServer(cfg, svc, directory, httpLogger), httpLogger, dir
}

func doRequest(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) (Response, map[string]interface{}) {
	t.Helper()
	var raw struct {
		Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))

	data := map[string]interface{}{}
	if len(raw.Data) > 0 && raw.Data[0] == '{' {
		require.NoError(t, json.Unmarshal(raw.Data, &data))
	}
	return raw.Response, data
}

func TestHealthCheck(t *testing.T) {
	s, _, _ := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	resp, data := decode(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "healthy", data["status"])
	assert.Equal(t, "1.2.3", data["version"])
}

func TestTotal(t *testing.T) {
	s, _, _ := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/api/receipts/total", ratesPayload)

	require.Equal(t, http.StatusOK, w.Code)
	_, data := decode(t, w)
	assert.Equal(t, "501", data["total"])
	assert.Equal(t, "diarias", data["mode"])
	assert.Len(t, data["lines"], 2)
}

func TestPreview(t *testing.T) {
	s, _, _ := newTestServer(t)

	t.Run("full receipt", func(t *testing.T) {
		w := doRequest(t, s, http.MethodPost, "/api/receipts/preview", ratesPayload)

		require.Equal(t, http.StatusOK, w.Code)
		_, data := decode(t, w)
		assert.Equal(t, "RECIBO", data["title"])
		assert.Contains(t, data["body"], "quinhentos e um reais")
		assert.Contains(t, data["body"], "no período de 01/10/2026 a 03/10/2026")
	})

	t.Run("draft shows placeholders", func(t *testing.T) {
		w := doRequest(t, s, http.MethodPost, "/api/receipts/preview", `{"mode":"adiantamento"}`)

		require.Equal(t, http.StatusOK, w.Code)
		_, data := decode(t, w)
		assert.Contains(t, data["body"], voucher.PlaceholderFullName)
	})
}

func TestReceiptValidationErrors(t *testing.T) {
	s, _, _ := newTestServer(t)

	tests := []struct {
		name   string
		target string
		body   string
	}{
		{name: "malformed json", target: "/api/receipts/total", body: `{"mode":`},
		{name: "unknown mode", target: "/api/receipts/preview", body: `{"mode":"bonus"}`},
		{name: "missing mode", target: "/api/receipts/preview", body: `{}`},
		{name: "bad date", target: "/api/receipts/preview", body: `{"mode":"diarias","info":{"event_date":"01/10/2026"}}`},
		{name: "unknown service", target: "/api/receipts/total", body: `{"mode":"diarias","services":["catering"]}`},
		{name: "name required", target: "/api/receipts/pdf", body: `{"mode":"diarias"}`},
		{name: "negative total", target: "/api/receipts/preview", body: `{"mode":"adiantamento","advance":{"amount":"-5"}}`},
		{name: "unknown format", target: "/api/receipts/export?format=docx", body: ratesPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, s, http.MethodPost, tt.target, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp, _ := decode(t, w)
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestRenderFiles(t *testing.T) {
	s, _, _ := newTestServer(t)

	tests := []struct {
		target      string
		contentType string
		prefix      string
		fileName    string
	}{
		{target: "/api/receipts/pdf", contentType: contentTypePDF, prefix: "%PDF", fileName: "recibo-diarias-Joao_da_Silva.pdf"},
		{target: "/api/receipts/xlsx", contentType: contentTypeXLSX, prefix: "PK", fileName: "recibo-diarias-Joao_da_Silva.xlsx"},
		{target: "/api/receipts/text", contentType: contentTypeText, prefix: "RECIBO", fileName: "recibo-diarias-Joao_da_Silva.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := doRequest(t, s, http.MethodPost, tt.target, ratesPayload)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
			assert.Contains(t, w.Header().Get("Content-Disposition"), tt.fileName)
			assert.True(t, strings.HasPrefix(w.Body.String(), tt.prefix))
		})
	}
}

func TestExport(t *testing.T) {
	s, _, dir := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/api/receipts/export?format=xlsx", ratesPayload)

	require.Equal(t, http.StatusCreated, w.Code)
	_, data := decode(t, w)
	assert.Equal(t, "xlsx", data["format"])
	assert.Equal(t, "501", data["total"])

	path, ok := data["file_path"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(path, dir))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestAmountToWords(t *testing.T) {
	s, _, _ := newTestServer(t)

	t.Run("brazilian notation", func(t *testing.T) {
		w := doRequest(t, s, http.MethodGet, "/api/words?amount=1.234,56", "")

		require.Equal(t, http.StatusOK, w.Code)
		_, data := decode(t, w)
		assert.Equal(t, "mil e duzentos e trinta e quatro reais e cinquenta e seis centavos", data["words"])
		assert.Equal(t, "R$ 1.234,56", data["formatted"])
	})

	for _, target := range []string{"/api/words", "/api/words?amount=abc", "/api/words?amount=-1", "/api/words?amount=1000000000000"} {
		t.Run(target, func(t *testing.T) {
			w := doRequest(t, s, http.MethodGet, target, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCPF(t *testing.T) {
	s, _, _ := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/api/cpf/mask?value=5299822", "")
	require.Equal(t, http.StatusOK, w.Code)
	_, data := decode(t, w)
	assert.Equal(t, "529.982.2", data["masked"])
	assert.NotContains(t, data, "valid")

	w = doRequest(t, s, http.MethodGet, "/api/cpf/validate?value=529.982.247-25", "")
	require.Equal(t, http.StatusOK, w.Code)
	_, data = decode(t, w)
	assert.Equal(t, true, data["valid"])

	w = doRequest(t, s, http.MethodGet, "/api/cpf/validate?value=111.111.111-11", "")
	_, data = decode(t, w)
	assert.Equal(t, false, data["valid"])
}

func TestLocations(t *testing.T) {
	s, _, _ := newTestServer(t)

	t.Run("states", func(t *testing.T) {
		w := doRequest(t, s, http.MethodGet, "/api/locations/states", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data []locations.State `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Data, 27)
	})

	t.Run("cities", func(t *testing.T) {
		w := doRequest(t, s, http.MethodGet, "/api/locations/states/sp/cities", "")

		require.Equal(t, http.StatusOK, w.Code)
		_, data := decode(t, w)
		assert.Equal(t, "SP", data["state"])
		assert.Contains(t, data["cities"], "Campinas")
		assert.NotContains(t, data, "loading")
	})

	t.Run("status", func(t *testing.T) {
		w := doRequest(t, s, http.MethodGet, "/api/locations/status", "")

		require.Equal(t, http.StatusOK, w.Code)
		_, data := decode(t, w)
		assert.Equal(t, false, data["loading"])
	})

	t.Run("unknown state", func(t *testing.T) {
		w := doRequest(t, s, http.MethodGet, "/api/locations/states/XX/cities", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(service.ErrUnsupportedFormat))
	assert.Equal(t, http.StatusNotFound, statusFor(locations.ErrUnknownState))
	assert.Equal(t, http.StatusInternalServerError, statusFor(voucher.ErrRenderFailed))
}

func TestCORSPreflight(t *testing.T) {
	s, _, _ := newTestServer(t)

	w := doRequest(t, s, http.MethodOptions, "/api/receipts/pdf", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")
}
