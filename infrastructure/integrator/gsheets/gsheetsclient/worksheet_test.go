package gsheetsclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

const lojasCSV = `"Data","Loja","Meta","Venda Realizada","Observação"
"2024-01-01","Loja Centro","1000","1200","ok"
"","","","",""
"2024-01-02","Loja Centro","1000","800",""
"2024-01-02","Loja Norte","500"
`

func newTestClient(t *testing.T, handler http.HandlerFunc) (Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{GSheets: config.GSheets{
		URL:     server.URL + "/spreadsheets/d/abc123/edit#gid=0",
		Timeout: 5 * time.Second,
	}}
	return NewClient(cfg), server
}

func TestGSheetsClient_ReadWorksheet(t *testing.T) {
	var gotPath, gotSheet, gotFormat string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSheet = r.URL.Query().Get("sheet")
		gotFormat = r.URL.Query().Get("tqx")
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(lojasCSV))
	})

	worksheet, err := client.ReadWorksheet(context.Background(), WorksheetParams{Name: "LOJAS", Columns: 4})
	require.NoError(t, err)

	assert.Equal(t, "/spreadsheets/d/abc123/gviz/tq", gotPath)
	assert.Equal(t, "LOJAS", gotSheet)
	assert.Equal(t, "out:csv", gotFormat)

	assert.Equal(t, []string{"Data", "Loja", "Meta", "Venda Realizada"}, worksheet.Header)
	require.Len(t, worksheet.Rows, 3, "linhas totalmente vazias devem ser descartadas")
	assert.Equal(t, []string{"2024-01-01", "Loja Centro", "1000", "1200"}, worksheet.Rows[0])
	assert.Equal(t, []string{"2024-01-02", "Loja Norte", "500", ""}, worksheet.Rows[2])
}

func TestGSheetsClient_ReadWorksheet_StatusError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "sheet not shared", http.StatusForbidden)
	})

	_, err := client.ReadWorksheet(context.Background(), WorksheetParams{Name: "LOJAS", Columns: 4})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "sheet not shared")
}

func TestGSheetsClient_ReadWorksheet_EmptySheet(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	worksheet, err := client.ReadWorksheet(context.Background(), WorksheetParams{Name: "VENDEDORES", Columns: 4})
	require.NoError(t, err)
	assert.Empty(t, worksheet.Header)
	assert.Empty(t, worksheet.Rows)
}

func TestSpreadsheetPath(t *testing.T) {
	assert.Equal(t, "/spreadsheets/d/abc", spreadsheetPath("/spreadsheets/d/abc/edit"))
	assert.Equal(t, "/spreadsheets/d/abc", spreadsheetPath("/spreadsheets/d/abc/"))
	assert.Equal(t, "/spreadsheets/d/abc", spreadsheetPath("/spreadsheets/d/abc"))
}
